package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the projctl config directory under the user config base.
// On Linux, this typically resolves to $XDG_CONFIG_HOME/projctl; on macOS
// to ~/Library/Application Support/projctl; and on Windows to %AppData%/projctl.
// Falls back to HOME when UserConfigDir is unavailable.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, "projctl"), nil
}

// SettingsPath returns the settings storage file path.
func SettingsPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.json"), nil
}

// PresetCatalogPath returns the optional preset catalog overrides file path.
func PresetCatalogPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "presets.yaml"), nil
}
