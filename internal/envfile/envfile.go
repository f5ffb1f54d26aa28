// Package envfile parses and serializes dotenv-style files and discovers
// them within a project. Parsing preserves entry order, comments, and
// quoting so a load/save round-trip does not rewrite untouched lines.
package envfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	kerrors "github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/errors"
)

// Entry is a single KEY=VALUE assignment with its surrounding formatting.
type Entry struct {
	Key   string
	Value string

	// Export records a leading "export " prefix.
	Export bool

	// Quote is the quote rune used around the value in the source file, or
	// zero when the value was unquoted.
	Quote byte
}

// File is a parsed env file.
type File struct {
	// Path is the source path, when loaded from disk.
	Path string

	entries []Entry
	index   map[string]int

	// raw holds the original lines so comments and blank lines survive a
	// round-trip. Entry lines are re-rendered from their Entry.
	raw []line
}

type line struct {
	text  string
	entry int // index into entries, or -1 for comments/blanks
}

// Parse reads env assignments from text. Lines are either blank, comments
// (#), or KEY=VALUE assignments with optional "export " prefix and optional
// single or double quotes around the value.
func Parse(text string) (*File, error) {
	f := &File{index: make(map[string]int)}

	scanner := bufio.NewScanner(strings.NewReader(text))
	lineno := 0
	for scanner.Scan() {
		lineno++
		rawLine := scanner.Text()
		trimmed := strings.TrimSpace(rawLine)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			f.raw = append(f.raw, line{text: rawLine, entry: -1})
			continue
		}

		entry, err := parseAssignment(trimmed)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}

		f.index[entry.Key] = len(f.entries)
		f.entries = append(f.entries, entry)
		f.raw = append(f.raw, line{entry: len(f.entries) - 1})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return f, nil
}

func parseAssignment(s string) (Entry, error) {
	var e Entry
	if rest, ok := strings.CutPrefix(s, "export "); ok {
		e.Export = true
		s = strings.TrimSpace(rest)
	}

	eq := strings.IndexByte(s, '=')
	if eq <= 0 {
		return e, fmt.Errorf("%w: missing '='", kerrors.ErrMalformedEnvFile)
	}

	e.Key = strings.TrimSpace(s[:eq])
	if !validKey(e.Key) {
		return e, fmt.Errorf("%w: invalid key %q", kerrors.ErrMalformedEnvFile, e.Key)
	}

	value := strings.TrimSpace(s[eq+1:])
	if len(value) >= 2 && (value[0] == '"' || value[0] == '\'') && value[len(value)-1] == value[0] {
		e.Quote = value[0]
		value = value[1 : len(value)-1]
	}
	e.Value = value
	return e, nil
}

func validKey(key string) bool {
	if key == "" {
		return false
	}
	for i, r := range key {
		switch {
		case r == '_' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z'):
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Load parses the env file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", kerrors.ErrNoEnvFile, path)
		}
		return nil, err
	}
	f, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.Path = path
	return f, nil
}

// Pairs returns the assignments as a map.
func (f *File) Pairs() map[string]string {
	out := make(map[string]string, len(f.entries))
	for _, e := range f.entries {
		out[e.Key] = e.Value
	}
	return out
}

// Keys returns the keys in file order.
func (f *File) Keys() []string {
	out := make([]string, len(f.entries))
	for i, e := range f.entries {
		out[i] = e.Key
	}
	return out
}

// Get returns the value for key.
func (f *File) Get(key string) (string, bool) {
	i, ok := f.index[key]
	if !ok {
		return "", false
	}
	return f.entries[i].Value, true
}

// Set updates or appends an assignment.
func (f *File) Set(key, value string) {
	if i, ok := f.index[key]; ok {
		f.entries[i].Value = value
		return
	}
	f.index[key] = len(f.entries)
	f.entries = append(f.entries, Entry{Key: key, Value: value})
	f.raw = append(f.raw, line{entry: len(f.entries) - 1})
}

// Marshal renders the file back to text, preserving comments, blank lines,
// entry order, quoting, and export prefixes.
func (f *File) Marshal() string {
	var b strings.Builder
	for _, l := range f.raw {
		if l.entry < 0 {
			b.WriteString(l.text)
		} else {
			b.WriteString(renderEntry(f.entries[l.entry]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func renderEntry(e Entry) string {
	var b strings.Builder
	if e.Export {
		b.WriteString("export ")
	}
	b.WriteString(e.Key)
	b.WriteByte('=')
	if e.Quote != 0 {
		b.WriteByte(e.Quote)
		b.WriteString(e.Value)
		b.WriteByte(e.Quote)
	} else {
		b.WriteString(e.Value)
	}
	return b.String()
}

// Save writes the file back to its source path with owner-only permissions.
func (f *File) Save() error {
	if f.Path == "" {
		return fmt.Errorf("env file has no path")
	}
	return os.WriteFile(f.Path, []byte(f.Marshal()), 0600)
}

// Discover returns env files under projectPath matching the given patterns.
// With no patterns it finds the conventional names (.env, .env.*) in the
// project root, skipping example/template files. Results are sorted and
// deduplicated.
func Discover(projectPath string, patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		patterns = []string{".env", ".env.*"}
	}

	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(os.DirFS(projectPath), pattern)
		if err != nil {
			return nil, fmt.Errorf("bad file pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if isExampleFile(m) {
				continue
			}
			abs := filepath.Join(projectPath, m)
			if info, err := os.Stat(abs); err != nil || info.IsDir() {
				continue
			}
			if !seen[abs] {
				seen[abs] = true
				files = append(files, abs)
			}
		}
	}

	if len(files) == 0 {
		return nil, kerrors.ErrNoEnvFile
	}
	sort.Strings(files)
	return files, nil
}

func isExampleFile(name string) bool {
	base := filepath.Base(name)
	return strings.HasSuffix(base, ".example") || strings.HasSuffix(base, ".sample") ||
		strings.HasSuffix(base, ".template")
}
