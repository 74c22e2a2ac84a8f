// Package config resolves the dayone configuration directory and loads the
// optional config.yaml it holds.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// appName names the configuration directory.
const appName = "dayone"

// Dir returns the dayone configuration directory.
//
// Resolution:
//   - $DAYONE_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/dayone if set (respects XDG on any platform)
//   - %AppData%/dayone on Windows
//   - ~/.config/dayone on macOS and Linux
func Dir() string {
	if dir := os.Getenv("DAYONE_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}
