// Package configs manages envsync settings and their TOML persistence.
//
// Two layers exist: project configuration stored in .envsync/config.toml at
// the project root, and resolved runtime settings (absolute paths, project
// identity) held in the ProjectEnvsyncSettings singleton populated by
// InitProjectSettings.
//
// Loading is forgiving: a missing config file yields a zero-valued config
// rather than an error, so commands can detect "not initialized" and report
// it instead of crashing.
package configs
