package config

import "fmt"

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource

	// Config files that were read, empty when absent.
	UserFile    string
	ProjectFile string
}

// Theme names.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Default values.
const (
	DefaultTheme        = ThemeLight
	DefaultFilter       = "all"
	DefaultPlaceholder  = "Create a new todo…"
	DefaultCompactWidth = 60
	DefaultLogDir       = "~/.todo/logs"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "json"
)

// Config holds the full configuration for todo.
type Config struct {
	// View
	Theme        string `toml:"theme"`
	Filter       string `toml:"filter"`
	Placeholder  string `toml:"placeholder"`
	CompactWidth int    `toml:"compact_width"`

	// Logging configuration
	LogDir        string `toml:"log_dir"`
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
}

// configFields returns the configurable field names for source tracking,
// matching the TOML keys.
func configFields() []string {
	return []string{
		"theme",
		"filter",
		"placeholder",
		"compact_width",
		"log_dir",
		"log_level",
		"log_format",
		"log_timestamps",
	}
}

// Value returns the field named by its TOML key as a display string.
func (c *Config) Value(field string) string {
	switch field {
	case "theme":
		return c.Theme
	case "filter":
		return c.Filter
	case "placeholder":
		return c.Placeholder
	case "compact_width":
		return fmt.Sprintf("%d", c.CompactWidth)
	case "log_dir":
		return c.LogDir
	case "log_level":
		return c.LogLevel
	case "log_format":
		return c.LogFormat
	case "log_timestamps":
		return fmt.Sprintf("%t", c.LogTimestamps)
	default:
		return ""
	}
}

// Fields returns the configurable field names in display order.
func Fields() []string {
	return configFields()
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.Theme = DefaultTheme
	cfg.Filter = DefaultFilter
	cfg.Placeholder = DefaultPlaceholder
	cfg.CompactWidth = DefaultCompactWidth
	cfg.LogDir = DefaultLogDir
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = true
}
