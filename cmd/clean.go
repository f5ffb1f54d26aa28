package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/audit"
	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/backup"
	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/configs"
)

var cleanKeep int

func init() {
	cleanCmd.Flags().IntVar(&cleanKeep, "keep", 0, "number of backups to keep per file (defaults to the configured retention)")
}

func resetCleanCommandState() {
	cleanKeep = 0
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Prune old env file backups",
	Long: `Removes the oldest backups of each env file beyond the retention
count, keeping the most recent ones.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting clean command")
		spinner, cleanup := startSpinner("Pruning backups...", verbose)
		defer cleanup()

		_, _, cfg, ok := loadProject(spinner)
		if !ok {
			return nil
		}

		keep := cleanKeep
		if keep == 0 {
			keep = cfg.Sync.BackupRetention
		}
		if keep == 0 {
			keep = configs.DefaultBackupRetention
		}

		mgr := backup.NewManager(configs.ProjectEnvsyncSettings.BackupsPath)
		removed, err := mgr.Prune(keep)
		if err != nil {
			printError("Failed to prune backups", err)
			return nil
		}

		entry := audit.NewEntry("clean")
		entry.RemovedCount = removed
		audit.Log(entry)

		if removed == 0 {
			spinner.FinalMSG = color.GreenString("✓") + " Nothing to prune"
		} else {
			spinner.FinalMSG = color.GreenString("✓") + fmt.Sprintf(" Removed %d old backups", removed)
		}
		return nil
	},
}
