// Package utils provides small cross-cutting helpers: project root
// discovery, system identity lookups, and output formatting used by the
// command layer.
package utils
