package logger

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/intercept"
	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/redact"
)

// Logger writes leveled, redacted output. The zero value logs warnings and
// errors only; Out/Err default to the intercepted process channels.
type Logger struct {
	Verbose bool
	Debug   bool

	// Out and Err override the output channels, for tests. When nil, the
	// intercepted stdout/stderr are used.
	Out io.Writer
	Err io.Writer
}

func (l Logger) out() io.Writer {
	if l.Out != nil {
		return l.Out
	}
	return intercept.Stdout()
}

func (l Logger) err() io.Writer {
	if l.Err != nil {
		return l.Err
	}
	return intercept.Stderr()
}

// render redacts arguments, formats, then scrubs the whole line. Arguments
// are redacted before formatting: once a struct has been stringified its
// sensitive fields are indistinguishable from prose.
func render(msg string, args ...any) string {
	scrubbed := make([]any, len(args))
	for i, a := range args {
		scrubbed[i] = redact.ScrubValue(a)
	}
	return redact.ScrubText(fmt.Sprintf(msg, scrubbed...))
}

// Infof logs an informational message when verbose or debug is enabled.
func (l Logger) Infof(msg string, args ...any) {
	if l.Verbose || l.Debug {
		fmt.Fprintf(l.out(), "%s%s\n", color.GreenString("[info] "), render(msg, args...))
	}
}

// Debugf logs a debug message when debug is enabled.
func (l Logger) Debugf(msg string, args ...any) {
	if l.Debug {
		fmt.Fprintf(l.out(), "%s%s\n", color.CyanString("[debug] "), render(msg, args...))
	}
}

// Warnf logs a warning when verbose or debug is enabled.
func (l Logger) Warnf(msg string, args ...any) {
	if l.Verbose || l.Debug {
		fmt.Fprintf(l.err(), "%s%s\n", color.YellowString("[warn] "), render(msg, args...))
	}
}

// WarnfAlways logs a critical warning regardless of verbosity.
func (l Logger) WarnfAlways(msg string, args ...any) {
	fmt.Fprintf(l.err(), "%s%s\n", color.YellowString("[warn] "), render(msg, args...))
}

// Errorf logs an error message.
func (l Logger) Errorf(msg string, args ...any) {
	fmt.Fprintf(l.err(), "%s%s\n", color.RedString("[error] "), render(msg, args...))
}

// ErrorfAndReturn logs an error message and returns it as an error carrying
// the already-scrubbed text.
func (l Logger) ErrorfAndReturn(msg string, args ...any) error {
	line := render(msg, args...)
	fmt.Fprintf(l.err(), "%s%s\n", color.RedString("[error] "), line)
	return errors.New(line)
}
