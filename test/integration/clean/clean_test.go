package clean

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/test/integration/shared"
)

// seedBackups writes n backup files for .env with distinct timestamps.
func seedBackups(t *testing.T, tempDir string, n int) {
	t.Helper()
	backupsDir := filepath.Join(tempDir, ".envsync", "backups")
	for i := 0; i < n; i++ {
		stamp := time.Date(2026, 1, 1, 0, 0, i, 0, time.UTC).Format("20060102T150405")
		name := fmt.Sprintf(".env.%s.seed%04d.bak", stamp, i)
		if err := os.WriteFile(filepath.Join(backupsDir, name), []byte(fmt.Sprint(i)), 0600); err != nil {
			t.Fatalf("Failed to seed backup: %v", err)
		}
	}
}

func countBackups(t *testing.T, tempDir string) int {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(tempDir, ".envsync", "backups"))
	if err != nil {
		t.Fatalf("Failed to read backups dir: %v", err)
	}
	return len(entries)
}

func TestClean_NothingToPrune(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "envsync-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	shared.SetupTestEnvironment(t, tempDir, originalWd)

	shared.InitializeProject(t, tempDir)

	output := shared.RunCommand(t, "clean")
	if !strings.Contains(output, "Nothing to prune") {
		t.Errorf("Output should report nothing to prune, got: %s", output)
	}
}

func TestClean_RemovesOldBackups(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "envsync-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	shared.SetupTestEnvironment(t, tempDir, originalWd)

	shared.InitializeProject(t, tempDir)
	seedBackups(t, tempDir, 5)

	output := shared.RunCommand(t, "clean", "--keep", "2")
	if !strings.Contains(output, "Removed 3 old backups") {
		t.Errorf("Output should report 3 removals, got: %s", output)
	}
	if n := countBackups(t, tempDir); n != 2 {
		t.Errorf("Backups after clean = %d, want 2", n)
	}
}

func TestClean_DefaultRetentionFromConfig(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "envsync-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	shared.SetupTestEnvironment(t, tempDir, originalWd)

	shared.InitializeProject(t, tempDir)
	// Default retention is 10; 12 backups leave 2 to remove.
	seedBackups(t, tempDir, 12)

	output := shared.RunCommand(t, "clean")
	if !strings.Contains(output, "Removed 2 old backups") {
		t.Errorf("Output should report 2 removals at default retention, got: %s", output)
	}
	if n := countBackups(t, tempDir); n != 10 {
		t.Errorf("Backups after clean = %d, want 10", n)
	}
}

func TestClean_NotInitialized(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "envsync-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}
	defer os.RemoveAll(tempDir)

	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	shared.SetupTestEnvironment(t, tempDir, originalWd)

	output := shared.RunCommand(t, "clean")
	if !strings.Contains(output, "envsync has not been initialized") {
		t.Errorf("Output should report not initialized, got: %s", output)
	}
}
