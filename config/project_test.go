package config

import (
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestProjectConfig(t *testing.T) {
	t.Run("parses successfully", func(t *testing.T) {
		data := []byte(`{"Endpoint":"https://example.org/api","ProjectID":"42","ProjectName":"Test Home","TimeoutSeconds":10}`)
		cfg := ProjectConfig{}

		err := json.Unmarshal(data, &cfg)
		assert.NoError(t, err)

		assert.Equal(t, "https://example.org/api", cfg.Endpoint)
		assert.Equal(t, "42", cfg.ProjectID)
		assert.Equal(t, "Test Home", cfg.ProjectName)
		assert.Equal(t, 10*time.Second, cfg.Timeout())
	})

	t.Run("timeout falls back to thirty seconds", func(t *testing.T) {
		cfg := ProjectConfig{}
		assert.Equal(t, 30*time.Second, cfg.Timeout())
	})

	t.Run("defaults describe the demo project", func(t *testing.T) {
		cfg := DefaultProjectConfig()

		assert.Equal(t, "983399104480051190", cfg.ProjectID)
		assert.Equal(t, "Dummy Home", cfg.ProjectName)
		assert.Equal(t, 30*time.Second, cfg.Timeout())
	})
}
