package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/envfile"
	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/intercept"
	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/syncer"
)

var statusPrune bool

func init() {
	statusCmd.Flags().BoolVar(&statusPrune, "prune", false, "include deletions of remote keys missing locally")
}

func resetStatusCommandState() {
	statusPrune = false
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show pending changes between the env file and the secret store",
	Long: `Compares the local env file with the remote secret store and prints
the changes a sync would apply. Only key names are shown; values never
appear in status output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting status command")
		spinner, cleanup := startSpinner("Checking status...", verbose)
		defer cleanup()

		envPath, st, _, ok := loadProject(spinner)
		if !ok {
			return nil
		}

		local, err := envfile.Load(envPath)
		if err != nil {
			printError("Failed to load env file", err)
			return nil
		}

		remote, err := st.List(cmd.Context())
		if err != nil {
			printError("Failed to list remote secrets", err)
			return nil
		}

		plan := syncer.Plan(local.Pairs(), remote, syncer.Options{DeleteMissing: statusPrune})
		if len(plan) == 0 {
			spinner.FinalMSG = color.GreenString("✓") + " In sync: " +
				strconv.Itoa(len(local.Keys())) + " local keys, " +
				strconv.Itoa(len(remote)) + " remote keys"
			return nil
		}

		// Stop the spinner before rendering so the table is not interleaved
		// with spinner control output.
		cleanup()

		table := tablewriter.NewWriter(intercept.Stdout())
		table.Header("Key", "Action")
		for _, change := range plan {
			table.Append(change.Key, change.Action.String())
		}
		table.Render()

		fmt.Fprintln(intercept.Stdout(),
			color.CyanString("→")+" Run "+color.YellowString("envsync sync")+" to apply")
		return nil
	},
}
