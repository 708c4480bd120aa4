package config

import (
	"time"
)

// ProjectConfig locates the remote building-automation project
// endpoint this controller synchronises against.
type ProjectConfig struct {
	Endpoint       string
	ProjectID      string
	ProjectName    string
	TimeoutSeconds int
}

// DefaultProjectConfig points at the public demo project.
func DefaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Endpoint:       "https://dev-proxy.zurutech.online/smarthome-public/demo",
		ProjectID:      "983399104480051190",
		ProjectName:    "Dummy Home",
		TimeoutSeconds: 30,
	}
}

func (c ProjectConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}

	return time.Duration(c.TimeoutSeconds) * time.Second
}
