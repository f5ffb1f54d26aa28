package cmd

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/intercept"
	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/ui"
)

// startSpinner creates and starts a spinner with the given message when not
// in verbose or debug mode. Returns the spinner and a function that should
// be deferred to clean up.
//
// The spinner writes through the installed interceptor like every other
// output path. FinalMSG values do NOT need trailing newlines; cleanup calls
// ui.EnsureNewline before printing.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond,
		spinner.WithWriter(intercept.Stderr()))
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		// Continue without a colored spinner.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
		// Quiet stdlib log output while the spinner owns the line.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if !verbose && !debug {
			log.SetOutput(intercept.Stderr())
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if !verbose && !debug {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Fprint(intercept.Stdout(), finalMsg)
		}
	}

	return s, cleanup
}

// printError reports a failure with consistent formatting and logs the
// underlying error at debug level.
func printError(message string, err error) {
	Logger.Errorf("%s: %v", message, err)
	fmt.Fprintln(intercept.Stderr(), color.RedString("✗")+" "+message)
}
