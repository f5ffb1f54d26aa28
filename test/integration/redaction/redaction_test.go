package redaction

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/intercept"
	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/test/integration/shared"
)

// These tests install the process-wide interceptor, which cannot be torn
// down. They live in their own package so the other integration suites run
// against uninstalled channels.

func TestInterceptor_CoversDirectWrites(t *testing.T) {
	intercept.Install()
	if !intercept.IsInstalled() {
		t.Fatal("interceptor did not install")
	}

	output, err := shared.CaptureOutput(func() error {
		fmt.Fprintln(intercept.Stdout(), "PASSWORD=hunter2")
		fmt.Fprintln(intercept.Stderr(), "postgres://user:pw@host/db")
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	if strings.Contains(output, "hunter2") || strings.Contains(output, ":pw@") {
		t.Fatalf("Secrets leaked through installed interceptor: %s", output)
	}
	if !strings.Contains(output, "PASSWORD=[REDACTED]") {
		t.Errorf("Expected redacted assignment, got: %s", output)
	}
}

func TestSyncDebugOutput_NeverLeaksValues(t *testing.T) {
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

	intercept.Install()
	shared.RunCommand(t, "init")
	shared.WriteEnvFile(t, tempDir, ".env",
		"API_KEY=sk_live_canaryvalue\nDB_URL=postgres://app:canarypw@db/prod\nPORT=3000\n")

	// Run with the most talkative flags: even debug logging must not leak.
	output, err := shared.CaptureOutput(func() error {
		return shared.CreateTestCLI("sync", nil, true, true).Execute()
	})
	if err != nil {
		t.Fatalf("sync command failed: %v", err)
	}

	for _, canary := range []string{"sk_live_canaryvalue", "canarypw"} {
		if strings.Contains(output, canary) {
			t.Errorf("Secret %q leaked in debug output: %s", canary, output)
		}
	}
}
