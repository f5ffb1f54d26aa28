package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ProjectConfig is the persisted project configuration.
type ProjectConfig struct {
	Project Project `toml:"project"`
	Sync    Sync    `toml:"sync"`
}

// Project identifies the project.
type Project struct {
	UUID string `toml:"project_uuid"`
	Name string `toml:"name"`
}

// Sync holds sync behavior settings.
type Sync struct {
	// EnvFile is the tracked env file, relative to the project root.
	EnvFile string `toml:"env_file"`

	// BackupRetention is the number of backups kept per env file.
	BackupRetention int `toml:"backup_retention"`
}

// DefaultBackupRetention is used when the config does not set one.
const DefaultBackupRetention = 10

// LoadProjectConfigAt loads the project configuration under the given
// project root. A missing file yields a zero-valued config, not an error.
func LoadProjectConfigAt(root string) (*ProjectConfig, error) {
	config := &ProjectConfig{}
	if root == "" {
		return config, nil
	}

	configPath := filepath.Join(root, ".envsync", "config.toml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load project config: %w", err)
	}
	return config, nil
}

// LoadProjectConfig loads the configuration for the current project.
// Note: caller should ensure InitProjectSettings ran first.
func LoadProjectConfig() (*ProjectConfig, error) {
	return LoadProjectConfigAt(ProjectEnvsyncSettings.ProjectPath)
}

// SaveProjectConfig saves the project configuration to the config file.
func SaveProjectConfig(config *ProjectConfig) error {
	root := ProjectEnvsyncSettings.ProjectPath
	if root == "" {
		return fmt.Errorf("project path not set")
	}

	configPath := filepath.Join(root, ".envsync", "config.toml")
	if err := SaveTOML(configPath, config); err != nil {
		return fmt.Errorf("failed to save project config: %w", err)
	}

	return nil
}

// GenerateProjectUUID generates a new UUID for the project.
func GenerateProjectUUID() string {
	return uuid.New().String()
}
