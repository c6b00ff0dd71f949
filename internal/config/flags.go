package config

import "flag"

// parseFlags defines and parses CLI flags, recording explicitly set flags as
// SourceFlag.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet("todo", flag.ContinueOnError)
	}

	// Flag names mapped to their config fields.
	fields := map[string]string{
		"theme":          "theme",
		"filter":         "filter",
		"placeholder":    "placeholder",
		"compact-width":  "compact_width",
		"log-dir":        "log_dir",
		"log-level":      "log_level",
		"log-format":     "log_format",
		"log-timestamps": "log_timestamps",
	}

	// View
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "Color theme (light|dark)")
	fs.StringVar(&cfg.Filter, "filter", cfg.Filter, "Initial view filter (all|active|completed)")
	fs.StringVar(&cfg.Placeholder, "placeholder", cfg.Placeholder, "Placeholder text for the new task input")
	fs.IntVar(&cfg.CompactWidth, "compact-width", cfg.CompactWidth, "Terminal width below which the compact layout is used")

	// Logging
	fs.StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "Session log directory")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text|json|logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Include timestamps in log output")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if field, ok := fields[f.Name]; ok {
			sources[field] = SourceFlag
		}
	})
	return nil
}
