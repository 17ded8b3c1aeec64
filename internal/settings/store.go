package settings

import (
	"encoding/json"
	"os"
	"path/filepath"

	cfg "projctl/internal/config"
)

// Load returns the persisted settings from disk. A missing file yields the
// zero-value settings without error. Missing fields are defaulted per the
// schema (tool enabled flags default to true, isPreset to false).
func Load() (AppSettings, error) {
	p, err := cfg.SettingsPath()
	if err != nil {
		return AppSettings{}, err
	}
	return LoadFrom(p)
}

// LoadFrom reads a settings record from an explicit path.
func LoadFrom(path string) (AppSettings, error) {
	var s AppSettings
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}
	if err := json.Unmarshal(b, &s); err != nil {
		return AppSettings{}, err
	}
	s.Normalize()
	return s, nil
}

// Save writes the settings to disk, creating the directory if needed.
func Save(s AppSettings) error {
	p, err := cfg.SettingsPath()
	if err != nil {
		return err
	}
	return SaveTo(p, s)
}

// SaveTo writes a settings record to an explicit path.
func SaveTo(path string, s AppSettings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
