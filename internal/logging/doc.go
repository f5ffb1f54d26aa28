// Package logger provides leveled logging for envsync CLI commands.
//
// The logger is the second redaction layer: every argument is structurally
// redacted and every formatted line is scrubbed before it is written, on top
// of the installed output interceptor. Redaction runs before formatting so
// an object's sensitive fields are never baked into a string first.
// Scrubbing is idempotent, so the two layers together emit the same text a
// single layer would.
//
// # Verbosity Levels
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: shows info and warning messages
//   - --debug: shows all messages including debug details
//
// Without flags, only critical warnings and errors are shown.
//
// # Log Methods
//
//	Logger.Infof()            // Shown with --verbose or --debug
//	Logger.Debugf()           // Shown only with --debug
//	Logger.Warnf()            // Shown with --verbose or --debug
//	Logger.WarnfAlways()      // Always shown (critical warnings)
//	Logger.Errorf()           // Always shown
//	Logger.ErrorfAndReturn()  // Logs and returns the (scrubbed) error
//
// Commands typically create a logger in their PersistentPreRun and pass it
// to internal functions.
package logger
