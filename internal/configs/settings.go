package configs

import (
	"fmt"
	"path/filepath"

	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/utils"
)

// ProjectSettings holds the resolved runtime paths and identity for the
// current project. Empty paths mean the project is not initialized.
type ProjectSettings struct {
	ProjectUUID  string
	ProjectName  string
	ProjectPath  string
	EnvsyncPath  string // <root>/.envsync
	BackupsPath  string // <root>/.envsync/backups
	StorePath    string // <root>/.envsync/store.toml
	PolicyPath   string // <root>/.envsync/redaction.toml
	AuditLogPath string // <root>/.envsync/audit.jsonl
}

// ProjectEnvsyncSettings is the process-wide settings singleton. Populated
// by InitProjectSettings; zero-valued before that.
var ProjectEnvsyncSettings = &ProjectSettings{}

// InitProjectSettings locates the project root and populates the settings
// singleton. Outside an initialized project the paths stay empty and no
// error is returned; commands decide how to report that.
func InitProjectSettings() error {
	projectPath, err := utils.FindProjectRoot()
	if err != nil {
		return fmt.Errorf("error getting project root: %w", err)
	}

	projectName, err := utils.GetProjectName()
	if err != nil {
		return fmt.Errorf("error getting project name: %w", err)
	}

	settings := &ProjectSettings{
		ProjectName: projectName,
		ProjectPath: projectPath,
	}
	if projectPath != "" {
		envsyncPath := filepath.Join(projectPath, ".envsync")
		settings.EnvsyncPath = envsyncPath
		settings.BackupsPath = filepath.Join(envsyncPath, "backups")
		settings.StorePath = filepath.Join(envsyncPath, "store.toml")
		settings.PolicyPath = filepath.Join(envsyncPath, "redaction.toml")
		settings.AuditLogPath = filepath.Join(envsyncPath, "audit.jsonl")

		config, err := LoadProjectConfigAt(projectPath)
		if err != nil {
			return fmt.Errorf("error loading project config: %w", err)
		}
		settings.ProjectUUID = config.Project.UUID
		if config.Project.Name != "" {
			settings.ProjectName = config.Project.Name
		}
	}

	ProjectEnvsyncSettings = settings
	return nil
}
