// Package intercept owns the process output channels. Once installed, every
// write to the intercepted stdout/stderr surface passes through the text
// scrubber before reaching the real channel handles.
//
// Interception is an explicit, enumerated set of entry points rather than
// ambient patching: the cobra command output, the logger, the ui helpers,
// and the standard library log package all write through this package.
// A genuinely new output path requires an explicit addition here — that
// trade of unbounded generality for auditability is deliberate.
//
// Install runs exactly once per process, before any other application code,
// and is idempotent: a second Install is a no-op, never a second layer of
// wrapping (double wrapping is the documented root cause of duplicate
// output). The interceptor holds the original channel handles for the
// process lifetime; there is no teardown.
package intercept
