package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/audit"
	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/backup"
	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/configs"
	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/envfile"
	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/intercept"
	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/syncer"
	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/utils"
)

var (
	syncDryRun bool
	syncPrune  bool
	syncFile   string
)

func init() {
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "preview sync without making changes")
	syncCmd.Flags().BoolVar(&syncPrune, "prune", false, "delete remote keys that no longer exist locally")
	syncCmd.Flags().StringVar(&syncFile, "file", "", "env file to sync (defaults to the configured one)")
}

func resetSyncCommandState() {
	syncDryRun = false
	syncPrune = false
	syncFile = ""
}

// suggestEnvFiles lists env files discovered in the project when the
// configured one could not be loaded. Best-effort: discovery failures stay
// silent, the original error has already been reported.
func suggestEnvFiles() {
	found, err := envfile.Discover(configs.ProjectEnvsyncSettings.ProjectPath, nil)
	if err != nil || len(found) == 0 {
		return
	}
	fmt.Fprint(intercept.Stderr(),
		color.CyanString("→")+" Env files found in this project:"+utils.FormatPaths(found))
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push the local env file to the remote secret store",
	Long: `Computes the difference between the local env file and the remote
secret store, backs up the env file, and applies the changes.

Use --dry-run to preview what would happen without making changes.
Use --prune to also delete remote keys that have no local counterpart.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting sync command")
		spinner, cleanup := startSpinner("Syncing secrets...", verbose)
		defer cleanup()

		envPath, st, cfg, ok := loadProject(spinner)
		if !ok {
			return nil
		}

		local, err := envfile.Load(envPath)
		if err != nil {
			printError("Failed to load env file", err)
			suggestEnvFiles()
			return nil
		}
		Logger.Debugf("Loaded %d assignments from %s", len(local.Keys()), envPath)

		remote, err := st.List(cmd.Context())
		if err != nil {
			printError("Failed to list remote secrets", err)
			return nil
		}

		opts := syncer.Options{
			DryRun:        syncDryRun,
			DeleteMissing: syncPrune,
			Verbose:       verbose,
			Debug:         debug,
		}
		plan := syncer.Plan(local.Pairs(), remote, opts)
		if len(plan) == 0 {
			spinner.FinalMSG = color.GreenString("✓") + " Already in sync — nothing to do"
			return nil
		}

		backupID := ""
		if !syncDryRun {
			mgr := backup.NewManager(configs.ProjectEnvsyncSettings.BackupsPath)
			backupID, err = mgr.Create(envPath)
			if err != nil {
				printError("Failed to back up env file", err)
				return nil
			}
			Logger.Debugf("Backup created: %s", backupID)

			retention := cfg.Sync.BackupRetention
			if retention == 0 {
				retention = configs.DefaultBackupRetention
			}
			if _, err := mgr.Prune(retention); err != nil {
				Logger.Warnf("Failed to prune old backups: %v", err)
			}
		}

		result, err := syncer.Apply(cmd.Context(), st, local.Pairs(), plan, opts)
		if err != nil {
			printError("Sync failed", err)
			return nil
		}

		changed := make([]string, len(plan))
		for i, c := range plan {
			changed[i] = c.Key
		}
		entry := audit.NewEntry("sync")
		entry.EnvFile = envPath
		entry.Changed = changed
		entry.Added = result.Added
		entry.Updated = result.Updated
		entry.Deleted = result.Deleted
		entry.DryRun = syncDryRun
		entry.BackupID = backupID
		audit.Log(entry)

		summary := fmt.Sprintf("%d added, %d updated, %d deleted",
			result.Added, result.Updated, result.Deleted)
		if syncDryRun {
			spinner.FinalMSG = color.CyanString("→") + " Dry run: " + summary
		} else if len(result.Errors) > 0 {
			spinner.FinalMSG = color.YellowString("!") + " Synced with " +
				fmt.Sprintf("%d errors: %s", len(result.Errors), summary)
		} else {
			spinner.FinalMSG = color.GreenString("✓") + " Synced: " + summary
		}
		return nil
	},
}
