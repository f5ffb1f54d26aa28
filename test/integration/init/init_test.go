package init_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/configs"
	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/test/integration/shared"
)

func TestInit_Basic(t *testing.T) {
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

	output := shared.RunCommand(t, "init")

	if !strings.Contains(output, "envsync initialized successfully") {
		t.Errorf("Output should confirm initialization, got: %s", output)
	}
	shared.VerifyProjectStructure(t, tempDir)

	// The generated config carries a project UUID and default sync settings.
	cfg, err := configs.LoadProjectConfigAt(tempDir)
	if err != nil {
		t.Fatalf("Failed to load generated config: %v", err)
	}
	if cfg.Project.UUID == "" {
		t.Errorf("Generated config has no project UUID")
	}
	if cfg.Sync.EnvFile != ".env" {
		t.Errorf("Default env file = %q, want .env", cfg.Sync.EnvFile)
	}
	if cfg.Sync.BackupRetention != configs.DefaultBackupRetention {
		t.Errorf("Default retention = %d, want %d", cfg.Sync.BackupRetention, configs.DefaultBackupRetention)
	}
}

func TestInit_AlreadyInitialized(t *testing.T) {
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
	output := shared.RunCommand(t, "init")

	if !strings.Contains(output, "already been initialized") {
		t.Errorf("Output should report already initialized, got: %s", output)
	}
}

func TestInit_WarnsWhenEnvFileNotIgnored(t *testing.T) {
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

	if err := os.WriteFile(filepath.Join(tempDir, ".gitignore"), []byte("node_modules/\n"), 0600); err != nil {
		t.Fatalf("Failed to write .gitignore: %v", err)
	}

	output := shared.RunCommand(t, "init")
	if !strings.Contains(output, "not listed in .gitignore") {
		t.Errorf("Output should warn about untracked env file, got: %s", output)
	}
}

func TestInit_NoGitignoreWarning(t *testing.T) {
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

	output := shared.RunCommand(t, "init")
	if !strings.Contains(output, "No .gitignore found") {
		t.Errorf("Output should warn about missing .gitignore, got: %s", output)
	}
}

func TestInit_QuietWhenEnvFileIgnored(t *testing.T) {
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

	if err := os.WriteFile(filepath.Join(tempDir, ".gitignore"), []byte(".env\n"), 0600); err != nil {
		t.Fatalf("Failed to write .gitignore: %v", err)
	}

	output := shared.RunCommand(t, "init")
	if strings.Contains(output, "[warn]") {
		t.Errorf("Output should not warn when .env is ignored, got: %s", output)
	}
}
