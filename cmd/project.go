package cmd

import (
	"path/filepath"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/configs"
	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/store"
)

// loadProject resolves project settings, the tracked env file path, and the
// secret store. On failure it sets an explanatory FinalMSG on the spinner
// and reports not-ok; commands then return nil so cobra does not double-print.
func loadProject(s *spinner.Spinner) (envPath string, st store.Store, cfg *configs.ProjectConfig, ok bool) {
	Logger.Debugf("Initializing project settings")
	if err := configs.InitProjectSettings(); err != nil {
		printError("Failed to init project settings", err)
		return "", nil, nil, false
	}

	settings := configs.ProjectEnvsyncSettings
	if settings.ProjectPath == "" {
		s.FinalMSG = color.RedString("✗") + " envsync has not been initialized\n" +
			color.CyanString("→") + " Run " + color.YellowString("envsync init") + " first"
		return "", nil, nil, false
	}
	Logger.Debugf("Project path: %s", settings.ProjectPath)

	cfg, err := configs.LoadProjectConfig()
	if err != nil {
		printError("Failed to load project config", err)
		return "", nil, nil, false
	}

	envFile := cfg.Sync.EnvFile
	if syncFile != "" {
		envFile = syncFile
	}
	if envFile == "" {
		envFile = ".env"
	}
	if !filepath.IsAbs(envFile) {
		envFile = filepath.Join(settings.ProjectPath, envFile)
	}

	return envFile, store.NewFileStore(settings.StorePath), cfg, true
}
