package main

import (
	"fmt"
	"os"

	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/cmd"
	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/intercept"
	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/policy"
)

func main() {
	// Ordering is the central correctness property: the policy loader runs
	// to completion first so user patterns are active, then interception is
	// installed, and only then does any other application code execute.
	policy.Load()
	intercept.Install()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(intercept.Stderr(), err)
		os.Exit(1)
	}
}
