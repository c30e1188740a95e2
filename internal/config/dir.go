// Package config provides the configuration and data directories and
// the optional config.yaml settings for haven.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the haven configuration directory.
//
// Resolution:
//   - $HAVEN_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/haven if set (respects XDG on any platform)
//   - %AppData%/haven on Windows
//   - ~/.config/haven on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("HAVEN_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "haven")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "haven")
		}
	}

	// macOS and Linux: ~/.config/haven
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "haven")
}

// DataDir returns the haven data directory, where the mood store lives.
//
// Resolution:
//   - $HAVEN_DATA_HOME if set (explicit override)
//   - $XDG_DATA_HOME/haven if set
//   - %AppData%/haven on Windows
//   - ~/.local/share/haven on macOS and Linux
func DataDir() string {
	// Explicit override
	if dir := os.Getenv("HAVEN_DATA_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "haven")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "haven")
		}
	}

	// macOS and Linux: ~/.local/share/haven
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", "haven")
}
