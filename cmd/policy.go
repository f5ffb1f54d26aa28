package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/intercept"
	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/policy"
	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/ui"
	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/utils"
)

var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Show the effective redaction policy",
	Long: `Prints the user-supplied deny and allow glob patterns loaded from
.envsync/redaction.toml. The built-in pattern sets are always active on top
of these. Pattern globs are configuration, not secrets, so they are safe to
display.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := intercept.Stdout()

		root, err := utils.FindProjectRoot()
		if err != nil || root == "" {
			fmt.Fprintln(out, color.RedString("✗")+" envsync has not been initialized")
			return nil
		}

		path := filepath.Join(root, ".envsync", "redaction.toml")
		p, err := policy.LoadFile(path)
		if err != nil {
			fmt.Fprintln(out, color.YellowString("!")+" Policy file is malformed; built-in patterns only")
			fmt.Fprintln(out, "  "+ui.Path.Sprint(path))
			return nil
		}

		fmt.Fprintln(out, "Redaction policy "+ui.Muted.Sprint(path))
		printPatterns(out, "deny", p.Deny)
		printPatterns(out, "allow", p.Allow)
		return nil
	},
}

func printPatterns(out io.Writer, label string, patterns []string) {
	if len(patterns) == 0 {
		fmt.Fprintf(out, "  %s: %s\n", label, ui.Muted.Sprint("none"))
		return
	}
	fmt.Fprintf(out, "  %s:\n", label)
	for _, p := range patterns {
		fmt.Fprintf(out, "    - %s\n", ui.Highlight.Sprint(p))
	}
}
