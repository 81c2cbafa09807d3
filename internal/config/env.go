package config

import (
	"os"
	"strconv"
)

// loadFromEnv overrides config from DAYLIST_* environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("DAYLIST_DRIVER"); v != "" {
		cfg.Driver = v
	}
	if v := os.Getenv("DAYLIST_DSN"); v != "" {
		cfg.DSN = v
	}
	if v := os.Getenv("DAYLIST_STORAGE_KEY"); v != "" {
		cfg.StorageKey = v
	}
	if v := os.Getenv("DAYLIST_DATE_LAYOUT"); v != "" {
		cfg.DateLayout = v
	}
	if v := os.Getenv("DAYLIST_TIME_LAYOUT"); v != "" {
		cfg.TimeLayout = v
	}
	if v := os.Getenv("DAYLIST_TITLE"); v != "" {
		cfg.Title = v
	}
	if v := os.Getenv("DAYLIST_EVENTS_FILE"); v != "" {
		cfg.EventsFile = v
	}
	if v := os.Getenv("DAYLIST_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("DAYLIST_NOTICE_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.NoticeSeconds = n
		}
	}
}
