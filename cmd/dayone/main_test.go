package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/dayone/internal/output"
)

// setupCLI isolates a test from the user's config, environment and
// working directory. It returns the working and config directories.
func setupCLI(t *testing.T) (workDir, configDir string) {
	t.Helper()
	workDir = t.TempDir()
	configDir = t.TempDir()

	t.Setenv("DAYONE_CONFIG_HOME", configDir)
	for _, key := range []string{"DAYONE_ENTRIES_DIR", "DAYONE_TIME_ZONE", "DAYONE_DEBUG", "DAYONE_LINE_ENDING", "TZ"} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key) //nolint:errcheck
	}
	t.Chdir(workDir)
	return workDir, configDir
}

// executeCLI runs the root command with args and returns stdout and stderr.
func executeCLI(t *testing.T, stdin io.Reader, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	outBuf := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)
	cmd.SetOut(outBuf)
	cmd.SetErr(errBuf)
	if stdin != nil {
		cmd.SetIn(stdin)
	}
	cmd.SetArgs(args)

	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestRootCommand_Version(t *testing.T) {
	version = "1.2.3"

	stdout, _, err := executeCLI(t, nil, "--version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "1.2.3") {
		t.Errorf("--version output should contain version: %q", stdout)
	}
	if !strings.Contains(stdout, "dayone") {
		t.Errorf("--version output should contain 'dayone': %q", stdout)
	}
}

func TestRootCommand_Help(t *testing.T) {
	stdout, _, err := executeCLI(t, nil, "--help")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, expected := range []string{"dayone", "Usage:", "--json", "--color", "new", "templates", "serve"} {
		if !strings.Contains(stdout, expected) {
			t.Errorf("--help output should contain %q: %q", expected, stdout)
		}
	}
}

func TestRootCommand_JSONFlag_NoSubcommand(t *testing.T) {
	stdout, _, err := executeCLI(t, nil, "--json")
	if err == nil {
		t.Fatal("Expected error when running with --json but no subcommand")
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("Output should be valid JSON: %v\nOutput: %s", err, stdout)
	}
	if _, ok := result["error"]; !ok {
		t.Errorf("JSON output should contain 'error' field: %s", stdout)
	}
	if code, _ := result["code"].(float64); code != 1 {
		t.Errorf("code = %v, want 1", result["code"])
	}
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"json", "color"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("--%s should be a persistent flag", name)
		}
	}
}

func TestRootCommand_InvalidColor(t *testing.T) {
	setupCLI(t)

	_, stderr, err := executeCLI(t, nil, "config", "--color", "sometimes")
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Fatalf("exit code = %d, want %d (err = %v)", code, output.ExitUserError, err)
	}
	if !strings.Contains(stderr, `invalid --color "sometimes"`) {
		t.Errorf("stderr = %q, want invalid color message", stderr)
	}
}

func TestRootCommand_BadEnvFileWarns(t *testing.T) {
	workDir, _ := setupCLI(t)
	writeFile(t, workDir, ".env", "NOT-A-KEY=1\n")

	stdout, stderr, err := executeCLI(t, nil, "config")
	if err != nil {
		t.Fatalf("config should still run with a broken .env: %v", err)
	}
	if !strings.Contains(stderr, "Warning: reading env file .env") {
		t.Errorf("stderr = %q, want env file warning", stderr)
	}
	if !strings.Contains(stdout, "Config") {
		t.Errorf("stdout = %q, want config output", stdout)
	}
}

func TestRootCommand_BadEnvFileKeepsJSONParseable(t *testing.T) {
	workDir, _ := setupCLI(t)
	writeFile(t, workDir, ".env", "NOT-A-KEY=1\n")

	stdout, stderr, err := executeCLI(t, nil, "config", "--json")
	if err != nil {
		t.Fatalf("config --json error = %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("stdout should be a single JSON document: %v\nOutput: %s", err, stdout)
	}
	if !strings.Contains(stderr, `"warning"`) {
		t.Errorf("stderr = %q, want JSON warning", stderr)
	}
}

func TestBuildVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		commit  string
		date    string
		want    string
	}{
		{name: "dev build", version: "dev", commit: "none", date: "unknown", want: "dev"},
		{name: "release", version: "1.0.0", commit: "abcdef1234567", date: "2026-01-01", want: "1.0.0 (abcdef1, 2026-01-01)"},
		{name: "short commit", version: "1.0.0", commit: "abc", date: "2026-01-01", want: "1.0.0 (abc, 2026-01-01)"},
	}

	origVersion, origCommit, origDate := version, commit, date
	t.Cleanup(func() { version, commit, date = origVersion, origCommit, origDate })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			version, commit, date = tt.version, tt.commit, tt.date
			if got := buildVersion(); got != tt.want {
				t.Errorf("buildVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadEnvFiles_LocalBeforeShared(t *testing.T) {
	workDir, configDir := setupCLI(t)
	writeFile(t, workDir, ".env.local", "DAYONE_TEST_SOURCE=local\n")
	writeFile(t, workDir, ".env", "DAYONE_TEST_SOURCE=shared\n")
	writeFile(t, configDir, "env", "DAYONE_TEST_SOURCE=global\nDAYONE_TEST_GLOBAL=yes\n")
	t.Setenv("DAYONE_TEST_SOURCE", "")
	t.Setenv("DAYONE_TEST_GLOBAL", "")
	_ = os.Unsetenv("DAYONE_TEST_SOURCE") //nolint:errcheck
	_ = os.Unsetenv("DAYONE_TEST_GLOBAL") //nolint:errcheck

	if err := loadEnvFiles(); err != nil {
		t.Fatalf("loadEnvFiles() error = %v", err)
	}

	if got := os.Getenv("DAYONE_TEST_SOURCE"); got != "local" {
		t.Errorf("DAYONE_TEST_SOURCE = %q, want local", got)
	}
	if got := os.Getenv("DAYONE_TEST_GLOBAL"); got != "yes" {
		t.Errorf("DAYONE_TEST_GLOBAL = %q, want yes", got)
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}
