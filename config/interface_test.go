package config

import (
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestParseInterface(t *testing.T) {
	t.Run("errors if json is invalid", func(t *testing.T) {
		data := []byte(`"`)
		cfg := InterfaceConfig{}

		err := json.Unmarshal(data, &cfg)
		assert.Error(t, err)
	})

	t.Run("errors if type is unknown", func(t *testing.T) {
		data := []byte(`{"Type":"unknown"}`)
		cfg := InterfaceConfig{}

		err := json.Unmarshal(data, &cfg)
		assert.Error(t, err)
	})

	t.Run("http interface", func(t *testing.T) {
		t.Run("parses successfully", func(t *testing.T) {
			data := []byte(`{"Type":"http","Config":{"Port":3000,"EnabledAPIs":["v1","metrics"]}}`)
			cfg := InterfaceConfig{}

			err := json.Unmarshal(data, &cfg)
			assert.NoError(t, err)

			httpInt, ok := cfg.Config.(*HTTPInterfaceConfig)
			assert.True(t, ok)

			assert.Equal(t, 3000, httpInt.Port)
			assert.Contains(t, httpInt.EnabledAPIs, "v1")
			assert.Contains(t, httpInt.EnabledAPIs, "metrics")
			assert.Nil(t, httpInt.Auth)
		})

		t.Run("parses a nested auth stanza", func(t *testing.T) {
			data := []byte(`{"Type":"http","Config":{"Port":3000,"Auth":{"Type":"jwt","Config":{"SystemIdentifier":"controller","TTLSeconds":3600,"KeyIdentifier":"k1","KeyFile":"jwt.pem"}}}}`)
			cfg := InterfaceConfig{}

			err := json.Unmarshal(data, &cfg)
			assert.NoError(t, err)

			httpInt, ok := cfg.Config.(*HTTPInterfaceConfig)
			assert.True(t, ok)
			assert.NotNil(t, httpInt.Auth)
			assert.Equal(t, "jwt", httpInt.Auth.Type)

			jwtCfg, ok := httpInt.Auth.Config.(*JWTAuthConfig)
			assert.True(t, ok)
			assert.Equal(t, "controller", jwtCfg.SystemIdentifier)
			assert.Equal(t, 3600, jwtCfg.TTLSeconds)
			assert.Equal(t, "jwt.pem", jwtCfg.KeyFile)
		})
	})

	t.Run("mqtt interface", func(t *testing.T) {
		t.Run("parses successfully", func(t *testing.T) {
			data := []byte(`{"Type":"mqtt","Config":{"Server":"tcp://localhost:1883","TopicPrefix":"inventory","QOS":1,"PublishStateOnConnect":true}}`)
			cfg := InterfaceConfig{}

			err := json.Unmarshal(data, &cfg)
			assert.NoError(t, err)

			mqttInt, ok := cfg.Config.(*MQTTInterfaceConfig)
			assert.True(t, ok)

			assert.Equal(t, "tcp://localhost:1883", mqttInt.Server)
			assert.Equal(t, "inventory", mqttInt.TopicPrefix)
			assert.Equal(t, byte(1), mqttInt.QOS)
			assert.True(t, mqttInt.PublishStateOnConnect)
		})
	})
}

func TestParseAuth(t *testing.T) {
	t.Run("null requires no config stanza", func(t *testing.T) {
		data := []byte(`{"Type":"null"}`)
		cfg := AuthConfig{}

		err := json.Unmarshal(data, &cfg)
		assert.NoError(t, err)

		_, ok := cfg.Config.(*NullAuthConfig)
		assert.True(t, ok)
	})

	t.Run("errors if type is unknown", func(t *testing.T) {
		data := []byte(`{"Type":"basic"}`)
		cfg := AuthConfig{}

		err := json.Unmarshal(data, &cfg)
		assert.Error(t, err)
	})

	t.Run("jwt requires a config stanza", func(t *testing.T) {
		data := []byte(`{"Type":"jwt"}`)
		cfg := AuthConfig{}

		err := json.Unmarshal(data, &cfg)
		assert.Error(t, err)
	})
}
