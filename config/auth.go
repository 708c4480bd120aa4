package config

import (
	"encoding/json"
	"fmt"
	"github.com/tidwall/gjson"
)

type AuthConfig struct {
	Type   string
	Config any
}

func (a *AuthConfig) UnmarshalJSON(data []byte) error {
	if result := gjson.GetBytes(data, "Type"); !result.Exists() {
		return fmt.Errorf("failed to find authentication type information")
	} else {
		a.Type = result.String()
	}

	switch a.Type {
	case "null":
		a.Config = &NullAuthConfig{}
		return nil
	case "jwt":
		a.Config = &JWTAuthConfig{}
	default:
		return fmt.Errorf("unknown authentication configuration type: %s", a.Type)
	}

	if result := gjson.GetBytes(data, "Config"); result.Exists() {
		return json.Unmarshal([]byte(result.Raw), a.Config)
	} else {
		return fmt.Errorf("unable to find Config stanza: %s", a.Type)
	}
}

type NullAuthConfig struct{}

type JWTAuthConfig struct {
	SystemIdentifier string
	TTLSeconds       int
	KeyIdentifier    string
	KeyFile          string
}
