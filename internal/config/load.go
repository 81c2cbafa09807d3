package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Load loads configuration from defaults, config files, environment and
// command-line overrides, in that order.
func Load(ov Overrides) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if f := findUserConfigFile(); f != "" {
		if err := loadConfigFile(cfg, f); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", f, err)
		}
	}
	if f := findProjectConfigFile(ov.WorkDir); f != "" {
		if err := loadConfigFile(cfg, f); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", f, err)
		}
	}
	if ov.ConfigFile != "" {
		f := expandPath(ov.ConfigFile)
		if _, err := os.Stat(f); err != nil {
			return nil, fmt.Errorf("config file %s: %w", f, err)
		}
		if err := loadConfigFile(cfg, f); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", f, err)
		}
	}

	loadFromEnv(cfg)
	applyOverrides(cfg, ov)

	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}
	return cfg, nil
}

func loadConfigFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	cfg.Files = append(cfg.Files, path)
	return nil
}

func applyOverrides(cfg *Config, ov Overrides) {
	if ov.Driver != "" {
		cfg.Driver = ov.Driver
	}
	if ov.DSN != "" {
		cfg.DSN = ov.DSN
	}
	if ov.LogLevel != "" {
		cfg.LogLevel = ov.LogLevel
	}
}

func finalizeConfig(cfg *Config) error {
	cfg.Driver = strings.ToLower(strings.TrimSpace(cfg.Driver))
	if cfg.Driver == "" {
		cfg.Driver = DefaultDriver
	}
	if strings.TrimSpace(cfg.StorageKey) == "" {
		return fmt.Errorf("storage_key must not be empty")
	}
	if cfg.NoticeSeconds <= 0 {
		return fmt.Errorf("notice_seconds must be positive, got %d", cfg.NoticeSeconds)
	}
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
		cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	default:
		return fmt.Errorf("invalid log_level %q (want debug|info|warn|error)", cfg.LogLevel)
	}

	dataDir := expandPath(DefaultDataDir)
	if cfg.DSN == "" {
		if cfg.Driver != "sqlite" && cfg.Driver != "sqlite3" {
			return fmt.Errorf("dsn is required for driver %q", cfg.Driver)
		}
		cfg.DSN = filepath.Join(dataDir, "daylist.db")
	}
	if cfg.Driver == "sqlite" || cfg.Driver == "sqlite3" {
		cfg.DSN = expandPath(cfg.DSN)
	}
	if cfg.EventsFile != "" && cfg.EventsFile != "-" {
		cfg.EventsFile = expandPath(cfg.EventsFile)
	} else if cfg.EventsFile == "" {
		cfg.EventsFile = filepath.Join(dataDir, "events.jsonl")
	}
	return nil
}

// NoticeTTL is how long a notice stays on screen.
func (c *Config) NoticeTTL() time.Duration {
	return time.Duration(c.NoticeSeconds) * time.Second
}

// AnalyticsPath is the events file, or "" when analytics is disabled.
func (c *Config) AnalyticsPath() string {
	if c.EventsFile == "-" {
		return ""
	}
	return c.EventsFile
}
