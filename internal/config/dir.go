// Package config provides the configuration directory and YAML settings
// for commitviz.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the commitviz configuration directory.
//
// Resolution:
//   - $COMMITVIZ_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/commitviz if set (respects XDG on any platform)
//   - %AppData%/commitviz on Windows
//   - ~/.config/commitviz on macOS and Linux
func Dir() string {
	if dir := os.Getenv("COMMITVIZ_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "commitviz")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "commitviz")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "commitviz")
}
