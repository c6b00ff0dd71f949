package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# todo configuration file
# Values can be overridden by TODO_* environment variables or CLI flags

# Color theme: light or dark (toggle at runtime with t)
theme = "light"

# Filter shown at startup: all, active, or completed
filter = "all"

# Placeholder text for the new task input
placeholder = "Create a new todo…"

# Terminal width (columns) below which the compact layout is used.
# 0 always uses the wide layout.
compact_width = 60

# Session log directory (supports ~ expansion)
log_dir = "~/.todo/logs"

# Log level: debug, info, warn, error
log_level = "info"

# Log format: text, json, logfmt
log_format = "json"

# Include timestamps in log lines
log_timestamps = true
`
}
