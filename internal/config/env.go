package config

import (
	"os"
	"strconv"
)

// loadFromEnv overrides config from TODO_* environment variables.
// Malformed numeric values are ignored.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) {
	setString := func(key, field string, target *string) {
		if v := os.Getenv(key); v != "" {
			*target = v
			sources[field] = SourceEnv
		}
	}

	setString("TODO_THEME", "theme", &cfg.Theme)
	setString("TODO_FILTER", "filter", &cfg.Filter)
	setString("TODO_PLACEHOLDER", "placeholder", &cfg.Placeholder)
	setString("TODO_LOG_DIR", "log_dir", &cfg.LogDir)
	setString("TODO_LOG_LEVEL", "log_level", &cfg.LogLevel)
	setString("TODO_LOG_FORMAT", "log_format", &cfg.LogFormat)

	if v := os.Getenv("TODO_COMPACT_WIDTH"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.CompactWidth = i
			sources["compact_width"] = SourceEnv
		}
	}
	if v := os.Getenv("TODO_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
		sources["log_timestamps"] = SourceEnv
	}
}

func boolFromString(s string) bool {
	b, err := strconv.ParseBool(s)
	return err == nil && b
}
