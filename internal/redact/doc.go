// Package redact implements the secret-redaction pipeline: pattern-based
// detection of secret material in free text, key-name classification with a
// whitelist override, cycle-safe structural redaction, and a hash-keyed
// result cache.
//
// # Guarantees
//
// Every public entry point is total: it never panics and never returns the
// original text when redaction fails. Failure paths degrade to a fixed
// sentinel ([SCRUBBING_FAILED], [SCRUBBING_FAILED:INPUT_TOO_LARGE]) rather
// than leaking unscrubbed input.
//
// # Layers
//
// ScrubText applies the compiled pattern set to a flat string, bounded by
// MaxInputLength. ScrubValue walks structured data (maps, slices, structs),
// classifying field names and scrubbing string leaves, with cycle detection.
//
// The package-level Default scrubber is shared with the intercept package so
// that explicit scrubbing and output interception stay consistent: scrubbing
// twice yields the same text as scrubbing once.
//
// # Usage
//
//	clean := redact.ScrubText("API_KEY=sk_live_abc123")
//	// clean == "API_KEY=[REDACTED]"
//
//	safe := redact.ScrubValue(map[string]any{"password": "hunter2", "port": 3000})
//	// safe == map[string]any{"password": "[REDACTED]", "port": 3000}
package redact
