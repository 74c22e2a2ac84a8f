package main

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/dayone/internal/output"
)

func TestConfigCommand_Defaults(t *testing.T) {
	_, configDir := setupCLI(t)

	stdout, _, err := executeCLI(t, nil, "config")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{
		"Config dir: " + configDir,
		"Config file: (none)",
		"Entries dir: ./entries",
		"Time zone: UTC",
		"Debug: false",
		"Line ending: platform",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("config output missing %q:\n%s", want, stdout)
		}
	}
}

func TestConfigCommand_JSON(t *testing.T) {
	_, configDir := setupCLI(t)
	writeFile(t, configDir, "config.yaml", "entries_dir: journal\nline_ending: lf\n")
	t.Setenv("DAYONE_TIME_ZONE", "Asia/Tokyo")

	stdout, _, err := executeCLI(t, nil, "config", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("output should be JSON: %v\n%s", err, stdout)
	}
	want := map[string]any{
		"config_file": filepath.Join(configDir, "config.yaml"),
		"entries_dir": "journal",
		"time_zone":   "Asia/Tokyo",
		"line_ending": "lf",
		"debug":       false,
	}
	for key, val := range want {
		if result[key] != val {
			t.Errorf("%s = %v, want %v", key, result[key], val)
		}
	}
}

func TestConfigCommand_InvalidConfig(t *testing.T) {
	_, configDir := setupCLI(t)
	writeFile(t, configDir, "config.yaml", "time_zone: Nowhere/Special\n")

	_, stderr, err := executeCLI(t, nil, "config")
	if err == nil {
		t.Fatal("expected error")
	}
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
	if !strings.Contains(stderr, "Nowhere/Special") {
		t.Errorf("stderr = %q", stderr)
	}
}
