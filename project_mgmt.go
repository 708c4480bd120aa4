package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dummyhome/controller/config"
)

// loadProjectConfiguration reads project.json from the configuration
// directory, writing the defaults out on first run so a deployment has
// something to edit.
func loadProjectConfiguration(dir string) (config.ProjectConfig, error) {
	cfg := config.DefaultProjectConfig()

	fullPath := filepath.Join(dir, "project.json")

	data, err := os.ReadFile(fullPath)
	if os.IsNotExist(err) {
		if data, err = json.MarshalIndent(cfg, "", "  "); err != nil {
			return cfg, fmt.Errorf("failed to marshal default project configuration: %w", err)
		}

		if err = safeWriteFile(fullPath, data, 0600); err != nil {
			return cfg, fmt.Errorf("failed to write default project configuration: %w", err)
		}

		return cfg, nil
	} else if err != nil {
		return cfg, fmt.Errorf("failed to read project configuration file '%s': %w", fullPath, err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse project configuration file '%s': %w", fullPath, err)
	}

	return cfg, nil
}
