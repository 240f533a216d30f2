package settings

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// settingsFilePath returns the location of the user settings file.
func settingsFilePath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "cargoline", "settings.yml"), nil
}

// GetEffectiveSettings returns the effective settings (defaults overlaid
// with file overrides if any). If anything goes wrong, it returns
// defaults.
func GetEffectiveSettings() Settings {
	settings := defaultSettings
	path, err := settingsFilePath()
	if err != nil {
		return settings
	}
	if _, err := os.Stat(path); err != nil {
		// no file or other stat error -> return defaults
		return settings
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return settings
	}
	return overlay(settings, b)
}

// overlay applies yaml overrides key by key so a partial or partially
// malformed file still contributes the keys it does carry.
func overlay(settings Settings, b []byte) Settings {
	var m map[string]any
	if err := yaml.Unmarshal(b, &m); err != nil {
		return settings
	}
	if v, ok := m["enable_query_cache"]; ok {
		if vb, okb := v.(bool); okb {
			settings.EnableQueryCache = vb
		}
	}
	if v, ok := m["cache_size_limit_mb"]; ok {
		if vi, oki := v.(int); oki && vi > 0 {
			settings.CacheSizeLimitMB = vi
		}
	}
	if v, ok := m["default_page_size"]; ok {
		if vi, oki := v.(int); oki && vi > 0 {
			settings.DefaultPageSize = vi
		}
	}
	if v, ok := m["autocomplete_min_chars"]; ok {
		if vi, oki := v.(int); oki && vi > 0 {
			settings.AutocompleteMinChars = vi
		}
	}
	if v, ok := m["autocomplete_limit"]; ok {
		if vi, oki := v.(int); oki && vi > 0 {
			settings.AutocompleteLimit = vi
		}
	}
	return settings
}

// Save writes the settings file, creating the config directory if needed.
func Save(settings Settings) error {
	path, err := settingsFilePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
