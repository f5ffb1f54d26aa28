package intercept

import (
	"io"
	"log"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/redact"
)

// State tracks interceptor installation. The transitions are
// Uninstalled → Installing → Installed; there is no reverse transition.
type State int

const (
	Uninstalled State = iota
	Installing
	Installed
)

// String returns the state name for diagnostics.
func (s State) String() string {
	switch s {
	case Uninstalled:
		return "uninstalled"
	case Installing:
		return "installing"
	case Installed:
		return "installed"
	default:
		return "unknown"
	}
}

// Interceptor wraps a pair of output channels with scrubbing writers. It is
// modeled as an explicit value with observable state so install-once
// behavior can be unit-tested directly.
type Interceptor struct {
	mu    sync.Mutex
	state State

	realStdout io.Writer
	realStderr io.Writer
	stdout     io.Writer
	stderr     io.Writer

	scrubber *redact.Scrubber
}

// New returns an uninstalled Interceptor over the given real channel
// handles. The process-wide instance wraps os.Stdout/os.Stderr; tests pass
// buffers.
func New(stdout, stderr io.Writer, s *redact.Scrubber) *Interceptor {
	return &Interceptor{
		realStdout: stdout,
		realStderr: stderr,
		stdout:     stdout,
		stderr:     stderr,
		scrubber:   s,
	}
}

// Install wraps both channels with scrubbing writers. Repeated calls are
// no-ops: each logical write must produce exactly one emitted line, so a
// second caller must never add a second layer of wrapping.
func (i *Interceptor) Install() {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.state != Uninstalled {
		return
	}
	i.state = Installing
	i.stdout = &scrubWriter{dst: i.realStdout, scrub: i.scrubber.ScrubText}
	i.stderr = &scrubWriter{dst: i.realStderr, scrub: i.scrubber.ScrubText}
	i.state = Installed
}

// State reports the current installation state.
func (i *Interceptor) State() State {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.state
}

// Stdout returns the intercepted stdout surface. Before Install it is the
// raw handle; after Install every write is scrubbed.
func (i *Interceptor) Stdout() io.Writer {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.stdout
}

// Stderr returns the intercepted stderr surface.
func (i *Interceptor) Stderr() io.Writer {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.stderr
}

// scrubWriter forwards writes to dst after passing text through the
// scrubber. Payloads that are not valid UTF-8 are forwarded untouched:
// binary data must not be corrupted by text substitution.
type scrubWriter struct {
	dst   io.Writer
	scrub func(string) string
}

func (w *scrubWriter) Write(p []byte) (int, error) {
	if !utf8.Valid(p) {
		return w.dst.Write(p)
	}
	out := w.scrubString(string(p))
	n, err := w.dst.Write([]byte(out))
	if err != nil {
		// Forwarded counts are in scrubbed bytes; cap at the caller's length
		// so the short-write accounting stays consistent with len(p).
		if n > len(p) {
			n = len(p)
		}
		return n, err
	}
	// Report the original length: the scrubbed payload may be shorter, and a
	// short-write error here would break well-behaved callers.
	return len(p), nil
}

// scrubString never lets a scrubbing failure suppress output or leak the
// original: on panic the failure sentinel is forwarded instead.
func (w *scrubWriter) scrubString(s string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = redact.SentinelFailed + "\n"
		}
	}()
	return w.scrub(s)
}

// writerFunc adapts a function to io.Writer.
type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }

// proc is the process-wide interceptor. Created at package init, installed
// once from main before any other application code, never torn down. The
// underlying channels resolve os.Stdout/os.Stderr at write time so tests
// that swap the process handles for pipes still capture output.
var proc = New(
	writerFunc(func(p []byte) (int, error) { return os.Stdout.Write(p) }),
	writerFunc(func(p []byte) (int, error) { return os.Stderr.Write(p) }),
	redact.Default(),
)

// Install activates process-wide interception. Idempotent. Also points the
// standard library log package at the intercepted stderr so text emitted by
// third-party code during start-up is covered.
func Install() {
	proc.Install()
	log.SetOutput(proc.Stderr())
}

// IsInstalled reports whether process-wide interception is active.
func IsInstalled() bool {
	return proc.State() == Installed
}

// Stdout returns the process-wide intercepted stdout.
func Stdout() io.Writer {
	return proc.Stdout()
}

// Stderr returns the process-wide intercepted stderr.
func Stderr() io.Writer {
	return proc.Stderr()
}
