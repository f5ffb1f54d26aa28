package policy

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/test/integration/shared"
)

func TestPolicy_DefaultStub(t *testing.T) {
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

	// The init stub contains only comments, so both lists are empty.
	output := shared.RunCommand(t, "policy")
	if !strings.Contains(output, "Redaction policy") {
		t.Errorf("Output should show the policy header, got: %s", output)
	}
	if strings.Count(output, "none") != 2 {
		t.Errorf("Output should show both lists empty, got: %s", output)
	}
}

func TestPolicy_ShowsConfiguredPatterns(t *testing.T) {
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

	policyPath := filepath.Join(tempDir, ".envsync", "redaction.toml")
	content := `deny = ["custom_*"]
allow = ["custom_build_id"]
`
	if err := os.WriteFile(policyPath, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write policy file: %v", err)
	}

	output := shared.RunCommand(t, "policy")
	if !strings.Contains(output, "custom_*") {
		t.Errorf("Output should list the deny pattern, got: %s", output)
	}
	if !strings.Contains(output, "custom_build_id") {
		t.Errorf("Output should list the allow pattern, got: %s", output)
	}
}

func TestPolicy_MalformedFile(t *testing.T) {
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

	policyPath := filepath.Join(tempDir, ".envsync", "redaction.toml")
	if err := os.WriteFile(policyPath, []byte("deny = [unclosed"), 0600); err != nil {
		t.Fatalf("Failed to write policy file: %v", err)
	}

	output := shared.RunCommand(t, "policy")
	if !strings.Contains(output, "malformed") {
		t.Errorf("Output should report the malformed file, got: %s", output)
	}
}

func TestPolicy_NotInitialized(t *testing.T) {
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

	output := shared.RunCommand(t, "policy")
	if !strings.Contains(output, "envsync has not been initialized") {
		t.Errorf("Output should report not initialized, got: %s", output)
	}
}
