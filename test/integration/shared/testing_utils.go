// Package shared contains testing utilities shared between integration tests.
// This file provides common functions for setting up test environments,
// capturing output, and verifying expected project structures.
package shared

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/cmd"
	"github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/configs"
	logger "github.com/Dorsey-Creative/secrets-sync-cli-sub001/internal/logging"
)

// SetupTestEnvironment moves into tempDir and registers cleanup that
// restores the working directory and resets process-wide state.
func SetupTestEnvironment(t *testing.T, tempDir, originalWd string) {
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to change to original directory: %v", err)
		}
		configs.ProjectEnvsyncSettings = &configs.ProjectSettings{}
		cmd.ResetGlobalState()
	})
}

// CaptureOutput captures both stdout and stderr during function execution.
func CaptureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)

	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stdoutReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stderrReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}

// CreateTestCLI returns the root command configured to run the given
// subcommand with extra args, with flag state reset from any previous run.
func CreateTestCLI(subcommand string, args []string, verboseFlag, debugFlag bool) *cobra.Command {
	cmd.ResetGlobalState()
	cmd.SetLogger(logger.Logger{
		Verbose: verboseFlag,
		Debug:   debugFlag,
	})

	rootCmd := cmd.GetRootCmd()

	cliArgs := []string{subcommand}
	if verboseFlag {
		cliArgs = append(cliArgs, "--verbose")
	}
	if debugFlag {
		cliArgs = append(cliArgs, "--debug")
	}
	cliArgs = append(cliArgs, args...)
	rootCmd.SetArgs(cliArgs)

	return rootCmd
}

// RunCommand executes a subcommand and returns its combined output.
func RunCommand(t *testing.T, subcommand string, args ...string) string {
	t.Helper()
	output, err := CaptureOutput(func() error {
		return CreateTestCLI(subcommand, args, false, false).Execute()
	})
	if err != nil {
		t.Fatalf("%s command failed: %v", subcommand, err)
	}
	return output
}

// InitializeProject initializes a project by running the init command first.
func InitializeProject(t *testing.T, tempDir string) {
	t.Helper()
	RunCommand(t, "init")
	VerifyProjectStructure(t, tempDir)
}

// VerifyProjectStructure verifies that the expected project structure was
// created by init.
func VerifyProjectStructure(t *testing.T, tempDir string) {
	t.Helper()

	envsyncDir := filepath.Join(tempDir, ".envsync")
	if _, err := os.Stat(envsyncDir); os.IsNotExist(err) {
		t.Errorf(".envsync directory was not created")
	}

	backupsDir := filepath.Join(envsyncDir, "backups")
	if _, err := os.Stat(backupsDir); os.IsNotExist(err) {
		t.Errorf(".envsync/backups directory was not created")
	}

	configFile := filepath.Join(envsyncDir, "config.toml")
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		t.Errorf("Project config was not created at %s", configFile)
	}

	policyFile := filepath.Join(envsyncDir, "redaction.toml")
	if _, err := os.Stat(policyFile); os.IsNotExist(err) {
		t.Errorf("Redaction policy stub was not created at %s", policyFile)
	}
}

// WriteEnvFile writes an env file in the project directory.
func WriteEnvFile(t *testing.T, tempDir, name, content string) string {
	t.Helper()
	path := filepath.Join(tempDir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}
	return path
}
