package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/audit"
	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/configs"
	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/intercept"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize envsync in the current project",
	Long: `Creates the .envsync directory, a project configuration with a fresh
project UUID, and an empty redaction policy file. Warns when the tracked env
file is not covered by .gitignore.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		spinner, cleanup := startSpinner("Initializing envsync...", verbose)
		defer cleanup()

		cwd, err := os.Getwd()
		if err != nil {
			printError("Failed to get working directory", err)
			return nil
		}

		if _, err := os.Stat(filepath.Join(cwd, ".envsync")); err == nil {
			spinner.FinalMSG = color.RedString("✗") + " envsync has already been initialized\n" +
				color.CyanString("→") + " Run " + color.YellowString("envsync status") + " to see the current state"
			return nil
		}

		envsyncDir := filepath.Join(cwd, ".envsync")
		if err := os.MkdirAll(filepath.Join(envsyncDir, "backups"), 0700); err != nil {
			printError("Failed to create .envsync folders", err)
			return nil
		}

		if err := configs.InitProjectSettings(); err != nil {
			printError("Failed to init project settings", err)
			return nil
		}

		config := &configs.ProjectConfig{
			Project: configs.Project{
				UUID: configs.GenerateProjectUUID(),
				Name: filepath.Base(cwd),
			},
			Sync: configs.Sync{
				EnvFile:         ".env",
				BackupRetention: configs.DefaultBackupRetention,
			},
		}
		if err := configs.SaveProjectConfig(config); err != nil {
			printError("Failed to save project config", err)
			return nil
		}

		// Seed an empty policy file so the deny/allow lists are easy to find.
		policyPath := filepath.Join(envsyncDir, "redaction.toml")
		policyStub := "# Extra redaction patterns for this project.\n" +
			"# deny  = [\"custom_*\"]\n" +
			"# allow = [\"skip-secrets\"]\n"
		if err := os.WriteFile(policyPath, []byte(policyStub), 0600); err != nil {
			printError("Failed to write redaction policy stub", err)
			return nil
		}

		warnGitignore(cwd, config.Sync.EnvFile)

		banner := figure.NewColorFigure("envsync", "", "green", true)
		for _, line := range banner.Slicify() {
			fmt.Fprintln(intercept.Stdout(), line)
		}

		entry := audit.NewEntry("init")
		entry.ProjectName = config.Project.Name
		entry.ProjectUUID = config.Project.UUID
		audit.Log(entry)

		spinner.FinalMSG = color.GreenString("✓") + " envsync initialized successfully!\n" +
			color.CyanString("→") + " Run " + color.YellowString("envsync sync") + " to push your env file to the secret store"
		return nil
	},
}

// warnGitignore reports when the tracked env file is not ignored by git.
// Best-effort: a missing .gitignore produces a warning, never an error.
func warnGitignore(root, envFile string) {
	data, err := os.ReadFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		Logger.WarnfAlways("No .gitignore found; make sure %s is never committed", envFile)
		return
	}
	for _, line := range strings.Split(string(data), "\n") {
		entry := strings.TrimSpace(line)
		if entry == envFile || entry == envFile+"*" || entry == ".env*" {
			return
		}
	}
	Logger.WarnfAlways("%s is not listed in .gitignore", envFile)
}
