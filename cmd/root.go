package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/intercept"
	logger "github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/logging"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	rootCmd = &cobra.Command{
		Use:   "envsync",
		Short: "Reconcile local env files with a remote secret store",
		Long: `envsync keeps a project's local environment files and its remote
secret store in agreement, without ever letting a secret value reach a
terminal, log file, or crash dump unredacted.

All process output passes through a redaction pipeline installed before any
other code runs. Commands additionally scrub what they print themselves, so
a gap in either layer is covered by the other.

Run 'envsync help <command>' for details on a specific command.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing envsync with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(policyCmd)
}

// Execute runs the root command with output routed through the installed
// interceptor.
func Execute() error {
	rootCmd.SetOut(intercept.Stdout())
	rootCmd.SetErr(intercept.Stderr())
	return rootCmd.Execute()
}

// Helper functions for testing

// GetRootCmd returns the root command for testing.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	resetSyncCommandState()
	resetStatusCommandState()
	resetCleanCommandState()
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
