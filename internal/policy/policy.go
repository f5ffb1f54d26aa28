// Package policy loads the optional user redaction policy and feeds it to
// the key classifier. Loading runs once, synchronously, before output
// interception is installed; a missing or malformed policy file falls back
// silently to the built-in pattern sets and never aborts start-up.
package policy

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/redact"
	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/utils"
)

// Policy is the set of user-supplied glob patterns extending the built-in
// classifier sets. Patterns are append-only additions for the remainder of
// the process.
type Policy struct {
	// Deny lists additional sensitive-name glob patterns, e.g. "custom_*".
	Deny []string `toml:"deny"`

	// Allow lists additional whitelist glob patterns. Whitelist entries win
	// over every deny check.
	Allow []string `toml:"allow"`
}

// LoadFile reads a policy file. A missing file yields an empty policy and
// no error; a malformed file yields an empty policy and the parse error so
// callers can choose whether to mention it.
func LoadFile(path string) (*Policy, error) {
	if path == "" {
		return &Policy{}, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Policy{}, nil
	}

	p := &Policy{}
	if _, err := toml.DecodeFile(path, p); err != nil {
		return &Policy{}, err
	}
	return p, nil
}

// Apply appends the policy's patterns to the scrubber's classifier.
func (p *Policy) Apply(s *redact.Scrubber) {
	s.Classifier().AddDenyPatterns(p.Deny...)
	s.Classifier().AddAllowPatterns(p.Allow...)
}

// Load discovers the project's redaction.toml and applies it to the
// process-wide scrubber. All failures are silent: interception must still
// install with built-in patterns when the policy cannot be read.
func Load() *Policy {
	root, err := utils.FindProjectRoot()
	if err != nil || root == "" {
		return &Policy{}
	}

	p, err := LoadFile(filepath.Join(root, ".envsync", "redaction.toml"))
	if err != nil {
		return &Policy{}
	}
	p.Apply(redact.Default())
	return p
}
