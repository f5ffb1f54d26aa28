// Package ui provides semantic terminal formatting for envsync output.
//
// Formatters attach meaning (success, error, path, highlighted value) rather
// than raw colors, and degrade to plain-text decorations when color is
// disabled via NO_COLOR or terminal detection. All actual writing happens
// through the intercept package in the command layer; ui only produces
// strings.
package ui
