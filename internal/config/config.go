// Package config handles configuration loading and marks home resolution.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// Config types
// ---------------------------------------------------------------------------

// HistoryConfig controls the jump history log.
type HistoryConfig struct {
	Enabled bool `yaml:"enabled"` // record jumps in history.db
	Limit   int  `yaml:"limit"`   // entries kept after pruning
}

// MarksConfig is the root per-home configuration.
type MarksConfig struct {
	Editor  string        `yaml:"editor"` // editor command for `marks edit`
	History HistoryConfig `yaml:"history"`
}

// Default returns a MarksConfig populated with sensible defaults.
func Default() *MarksConfig {
	return &MarksConfig{
		History: HistoryConfig{
			Enabled: true,
			Limit:   20,
		},
	}
}

// Load reads a per-home config.yaml from path.
// If the file does not exist it returns Default() with no error.
// Missing keys retain their default values.
func Load(path string) (*MarksConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	// Unmarshal into a plain map so we can apply only the keys that are present.
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	if v, ok := raw["editor"].(string); ok {
		cfg.Editor = v
	}

	if hist, ok := raw["history"].(map[string]any); ok {
		if v, ok := hist["enabled"].(bool); ok {
			cfg.History.Enabled = v
		}
		if v, ok := hist["limit"].(int); ok && v > 0 {
			cfg.History.Limit = v
		}
	}

	return cfg, nil
}

// ---------------------------------------------------------------------------
// Marks home resolution
// ---------------------------------------------------------------------------

// The global config at ~/.config/filemarks/config.yaml is distinct from the
// per-home config.yaml above: today it carries a single key, marks_home.
// It is read and written as a plain map so unknown keys survive a rewrite.

const marksHomeKey = "marks_home"

func globalConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "filemarks", "config.yaml"), nil
}

// readGlobalConfig loads the global config map along with its path.
// A missing file yields an empty map; malformed yaml is treated the same
// way, since the global config is advisory and never blocks resolution.
func readGlobalConfig() (map[string]any, string, error) {
	cfgPath, err := globalConfigPath()
	if err != nil {
		return nil, "", err
	}
	raw := map[string]any{}
	data, err := os.ReadFile(cfgPath)
	if os.IsNotExist(err) {
		return raw, cfgPath, nil
	}
	if err != nil {
		return nil, cfgPath, err
	}
	_ = yaml.Unmarshal(data, &raw)
	return raw, cfgPath, nil
}

// writeGlobalConfig persists the map, deleting the file when it is empty so
// a cleared config leaves no stale file behind.
func writeGlobalConfig(cfgPath string, raw map[string]any) error {
	if len(raw) == 0 {
		err := os.Remove(cfgPath)
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	out, err := yaml.Marshal(raw)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(cfgPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(cfgPath, out, 0o600)
}

// normalizePath expands ~ and environment variables and makes the path
// absolute, so persisted and compared homes are always in canonical form.
func normalizePath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[2:])
	}
	return filepath.Abs(os.ExpandEnv(path))
}

// ResolveMarksHome picks the marks home and reports where it came from:
// "env" for $MARKS_HOME, "config" for a persisted marks_home, and
// "default" for ~/.filemarks.
func ResolveMarksHome() (path, source string) {
	if env := os.Getenv("MARKS_HOME"); env != "" {
		if p, err := normalizePath(env); err == nil {
			return p, "env"
		}
	}
	if persisted, ok, _ := GetPersistedMarksHome(); ok {
		return persisted, "config"
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".filemarks"), "default"
}

// GetMarksHome is ResolveMarksHome without the source.
func GetMarksHome() string {
	path, _ := ResolveMarksHome()
	return path
}

// GetPersistedMarksHome reads the marks_home persisted in the global config.
// ok is false when nothing usable is persisted.
func GetPersistedMarksHome() (string, bool, error) {
	raw, _, err := readGlobalConfig()
	if err != nil {
		return "", false, err
	}
	val, _ := raw[marksHomeKey].(string)
	if val = strings.TrimSpace(val); val == "" {
		return "", false, nil
	}
	p, err := normalizePath(val)
	if err != nil {
		return "", false, err
	}
	return p, true, nil
}

// SetPersistedMarksHome normalizes path, persists it as marks_home in the
// global config, and returns the normalized form. Other keys in the file
// are left alone.
func SetPersistedMarksHome(path string) (string, error) {
	normalized, err := normalizePath(path)
	if err != nil {
		return "", err
	}
	raw, cfgPath, err := readGlobalConfig()
	if err != nil {
		return "", err
	}
	raw[marksHomeKey] = normalized
	if err := writeGlobalConfig(cfgPath, raw); err != nil {
		return "", err
	}
	return normalized, nil
}

// ClearPersistedMarksHome drops marks_home from the global config and
// reports whether it was present.
func ClearPersistedMarksHome() (bool, error) {
	raw, cfgPath, err := readGlobalConfig()
	if err != nil {
		return false, err
	}
	if _, ok := raw[marksHomeKey]; !ok {
		return false, nil
	}
	delete(raw, marksHomeKey)
	return true, writeGlobalConfig(cfgPath, raw)
}
