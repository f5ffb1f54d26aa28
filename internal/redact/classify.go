package redact

import (
	"path"
	"strings"
	"sync"
)

// Classification is the result of classifying a field or variable name.
type Classification int

const (
	// Neutral names carry no signal either way; their values are still
	// scrubbed for pattern matches but not blanket-redacted.
	Neutral Classification = iota

	// Sensitive names mark their values as secret material.
	Sensitive

	// Whitelisted names are explicitly benign. Whitelist is final: it wins
	// over every deny check, which resolves the false-positive class where a
	// benign name (e.g. "skip-secrets") merely contains a sensitive substring.
	Whitelisted
)

// builtinDeny holds names whose values are always treated as secrets.
// Exact match after lowercasing.
var builtinDeny = map[string]struct{}{
	"password":          {},
	"passwd":            {},
	"pwd":               {},
	"secret":            {},
	"token":             {},
	"api_key":           {},
	"apikey":            {},
	"api_secret":        {},
	"api_token":         {},
	"access_token":      {},
	"refresh_token":     {},
	"auth_token":        {},
	"session_token":     {},
	"private_key":       {},
	"client_secret":     {},
	"secret_key":        {},
	"encryption_key":    {},
	"signing_key":       {},
	"authorization":     {},
	"credentials":       {},
	"db_password":       {},
	"database_password": {},
	"database_url":      {},
	"connection_string": {},
}

// builtinAllow holds names that look sensitive to the substring heuristic but
// are known benign. Exact match after lowercasing.
var builtinAllow = map[string]struct{}{
	"skip-secrets": {},
	"skipsecrets":  {},
	"skip_secrets": {},
	"public_key":   {},
	"publickey":    {},
	"key_name":     {},
	"keyname":      {},
	"key_id":       {},
	"token_count":  {},
	"tokencount":   {},
	"max_tokens":   {},
	"maxtokens":    {},
	"keyboard":     {},
	"monkey":       {},
}

// heuristicSubstrings is the narrow fallback applied only when neither the
// whitelist nor the deny set matched: a name containing one of these
// high-signal substrings classifies Sensitive.
var heuristicSubstrings = []string{"password", "secret", "token", "key"}

// Classifier decides from a name alone whether its value should be treated
// as sensitive. User-supplied glob patterns extend the built-in sets;
// patterns are append-only for the life of the process.
type Classifier struct {
	mu         sync.RWMutex
	denyGlobs  []string
	allowGlobs []string
}

// NewClassifier returns a Classifier with only the built-in sets active.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// AddDenyPatterns appends user-supplied glob patterns to the sensitive set.
// Patterns are matched case-insensitively against the full name.
func (c *Classifier) AddDenyPatterns(patterns ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range patterns {
		if p != "" {
			c.denyGlobs = append(c.denyGlobs, strings.ToLower(p))
		}
	}
}

// AddAllowPatterns appends user-supplied glob patterns to the whitelist.
func (c *Classifier) AddAllowPatterns(patterns ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range patterns {
		if p != "" {
			c.allowGlobs = append(c.allowGlobs, strings.ToLower(p))
		}
	}
}

// Classify reports whether name should be treated as sensitive.
//
// Order is load-bearing: whitelist checks run first and return immediately,
// then exact/glob deny checks, and only then the substring heuristic. This
// guarantees that an allow-listed name which happens to contain "secret" or
// "key" is never redacted.
func (c *Classifier) Classify(name string) Classification {
	if name == "" {
		return Neutral
	}
	lower := strings.ToLower(name)

	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, ok := builtinAllow[lower]; ok {
		return Whitelisted
	}
	if matchAnyGlob(c.allowGlobs, lower) {
		return Whitelisted
	}

	if _, ok := builtinDeny[lower]; ok {
		return Sensitive
	}
	if matchAnyGlob(c.denyGlobs, lower) {
		return Sensitive
	}

	for _, sub := range heuristicSubstrings {
		if strings.Contains(lower, sub) {
			return Sensitive
		}
	}
	return Neutral
}

// matchAnyGlob reports whether name matches any of the lowercased glob
// patterns. Malformed patterns are treated as non-matching rather than
// failing classification.
func matchAnyGlob(globs []string, name string) bool {
	for _, g := range globs {
		ok, err := path.Match(g, name)
		if err == nil && ok {
			return true
		}
	}
	return false
}
