package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/dshills/scrub/internal/terms"
)

// Config represents the scrub configuration.
type Config struct {
	Terms           []string `json:"terms"`
	PreviewRows     int      `json:"previewRows"`
	Format          string   `json:"format"`
	OverwritePrefix string   `json:"overwritePrefix"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Terms:           terms.Defaults(),
		PreviewRows:     10,
		Format:          "text",
		OverwritePrefix: "deidentified_",
	}
}

// ConfigDir returns the platform-appropriate config directory for scrub.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "scrub"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "scrub"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "scrub"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "scrub"), nil
	default:
		return filepath.Join(home, ".config", "scrub"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil error if file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if len(src.Terms) > 0 {
		dst.Terms = src.Terms
	}
	if src.PreviewRows > 0 {
		dst.PreviewRows = src.PreviewRows
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.OverwritePrefix != "" {
		dst.OverwritePrefix = src.OverwritePrefix
	}
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("SCRUB_TERMS"); v != "" {
		cfg.Terms = SplitTerms(v)
	}
	if v := os.Getenv("SCRUB_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("SCRUB_PREVIEW_ROWS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.PreviewRows = n
		}
	}
	if v := os.Getenv("SCRUB_OVERWRITE_PREFIX"); v != "" {
		cfg.OverwritePrefix = v
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["terms"]; ok && v != "" {
		cfg.Terms = SplitTerms(v)
	}
	if v, ok := overrides["format"]; ok && v != "" {
		cfg.Format = v
	}
	if v, ok := overrides["previewRows"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.PreviewRows = n
		}
	}
	if v, ok := overrides["overwritePrefix"]; ok && v != "" {
		cfg.OverwritePrefix = v
	}
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "terms":
		cfg.Terms = SplitTerms(value)
	case "format":
		if value != "text" && value != "json" {
			return fmt.Errorf("format must be text or json")
		}
		cfg.Format = value
	case "previewRows":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("previewRows must be an integer: %w", err)
		}
		cfg.PreviewRows = n
	case "overwritePrefix":
		cfg.OverwritePrefix = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

// SplitTerms parses a comma-separated term list, dropping empty entries.
func SplitTerms(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
