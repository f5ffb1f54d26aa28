package utils

import (
	"os/user"
	"strings"

	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/ui"
)

// GetUsername returns the current username.
func GetUsername() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

// FormatPaths formats a slice of paths into an indented readable list.
func FormatPaths(paths []string) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, p := range paths {
		b.WriteString("    - ")
		b.WriteString(ui.Path.Sprint(p))
		b.WriteString("\n")
	}
	return b.String()
}
