// Package config tests configuration loading.
package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate points HOME, XDG_CONFIG_HOME and the working directory at fresh
// temp dirs and clears TODO_* variables. It returns the project directory.
func isolate(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("APPDATA", filepath.Join(home, "AppData"))
	for _, key := range []string{
		"TODO_THEME", "TODO_FILTER", "TODO_PLACEHOLDER", "TODO_COMPACT_WIDTH",
		"TODO_LOG_DIR", "TODO_LOG_LEVEL", "TODO_LOG_FORMAT", "TODO_LOG_TIMESTAMPS",
	} {
		t.Setenv(key, "")
	}

	project := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(project); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return project
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)

	if cfg.Theme != ThemeLight {
		t.Errorf("Theme: got %q, want %q", cfg.Theme, ThemeLight)
	}
	if cfg.Filter != "all" {
		t.Errorf("Filter: got %q, want all", cfg.Filter)
	}
	if cfg.CompactWidth != DefaultCompactWidth {
		t.Errorf("CompactWidth: got %d, want %d", cfg.CompactWidth, DefaultCompactWidth)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat: got %q, want json", cfg.LogFormat)
	}
	if !cfg.LogTimestamps {
		t.Error("LogTimestamps: got false, want true")
	}
}

func TestLoadDefaultsOnly(t *testing.T) {
	isolate(t)

	cws, err := LoadWithSources(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("LoadWithSources failed: %v", err)
	}
	for _, field := range Fields() {
		if got := cws.Sources[field]; got != SourceDefault {
			t.Errorf("source of %s: got %q, want default", field, got)
		}
	}
	if cws.GetConfigFile() != "" {
		t.Errorf("GetConfigFile: got %q, want empty", cws.GetConfigFile())
	}
	if strings.HasPrefix(cws.Config.LogDir, "~") {
		t.Errorf("LogDir not expanded: %q", cws.Config.LogDir)
	}
}

func TestLoadPrecedence(t *testing.T) {
	project := isolate(t)
	home := os.Getenv("HOME")

	writeFile(t, filepath.Join(home, ".todo", "todo.toml"), `
theme = "dark"
filter = "active"
compact_width = 40
log_level = "debug"
`)
	writeFile(t, filepath.Join(project, "todo.toml"), `
filter = "completed"
compact_width = 50
`)
	t.Setenv("TODO_COMPACT_WIDTH", "70")
	t.Setenv("TODO_LOG_FORMAT", "logfmt")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cws, err := LoadWithSources(fs, []string{"--log-format", "text", "tui"})
	if err != nil {
		t.Fatalf("LoadWithSources failed: %v", err)
	}
	cfg := cws.Config

	tests := []struct {
		field      string
		wantValue  string
		wantSource ConfigSource
	}{
		{"theme", "dark", SourceUserFile},
		{"filter", "completed", SourceProjFile},
		{"compact_width", "70", SourceEnv},
		{"log_level", "debug", SourceUserFile},
		{"log_format", "text", SourceFlag},
		{"placeholder", DefaultPlaceholder, SourceDefault},
	}
	for _, tt := range tests {
		if got := cfg.Value(tt.field); got != tt.wantValue {
			t.Errorf("%s: got %q, want %q", tt.field, got, tt.wantValue)
		}
		if got := cws.Sources[tt.field]; got != tt.wantSource {
			t.Errorf("source of %s: got %q, want %q", tt.field, got, tt.wantSource)
		}
	}

	if cws.GetConfigFile() != "todo.toml" {
		t.Errorf("GetConfigFile: got %q, want todo.toml", cws.GetConfigFile())
	}
	if rest := fs.Args(); len(rest) != 1 || rest[0] != "tui" {
		t.Errorf("remaining args: got %v, want [tui]", rest)
	}
}

func TestLoadXDGUserConfig(t *testing.T) {
	isolate(t)
	if osUserConfigDir() != os.Getenv("XDG_CONFIG_HOME") {
		t.Skip("XDG_CONFIG_HOME not used on this platform")
	}

	writeFile(t, filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "todo", "todo.toml"), `theme = "dark"`)

	cfg, err := Load(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Theme != ThemeDark {
		t.Errorf("Theme: got %q, want dark", cfg.Theme)
	}
}

func TestLoadDotfileProjectConfig(t *testing.T) {
	project := isolate(t)
	writeFile(t, filepath.Join(project, ".todo.toml"), `placeholder = "What next?"`)

	cfg, err := Load(nil, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Placeholder != "What next?" {
		t.Errorf("Placeholder: got %q", cfg.Placeholder)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	project := isolate(t)
	writeFile(t, filepath.Join(project, "todo.toml"), `
theme = "dark"
max_iterations = 3
`)

	_, err := Load(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "max_iterations") {
		t.Errorf("error should name the key: %v", err)
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	project := isolate(t)
	writeFile(t, filepath.Join(project, "todo.toml"), `theme = `)

	if _, err := Load(flag.NewFlagSet("test", flag.ContinueOnError), nil); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadFromEnvIgnoresBadNumbers(t *testing.T) {
	isolate(t)
	t.Setenv("TODO_COMPACT_WIDTH", "wide")
	t.Setenv("TODO_LOG_TIMESTAMPS", "false")

	cws, err := LoadWithSources(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("LoadWithSources failed: %v", err)
	}
	if cws.Config.CompactWidth != DefaultCompactWidth {
		t.Errorf("CompactWidth: got %d, want %d", cws.Config.CompactWidth, DefaultCompactWidth)
	}
	if cws.Sources["compact_width"] != SourceDefault {
		t.Errorf("source of compact_width: got %q", cws.Sources["compact_width"])
	}
	if cws.Config.LogTimestamps {
		t.Error("LogTimestamps: got true, want false")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "dark theme", mutate: func(c *Config) { c.Theme = ThemeDark }},
		{name: "zero width", mutate: func(c *Config) { c.CompactWidth = 0 }},
		{name: "bad theme", mutate: func(c *Config) { c.Theme = "solarized" }, wantErr: true},
		{name: "bad filter", mutate: func(c *Config) { c.Filter = "completede" }, wantErr: true},
		{name: "negative width", mutate: func(c *Config) { c.CompactWidth = -1 }, wantErr: true},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "trace" }, wantErr: true},
		{name: "bad format", mutate: func(c *Config) { c.LogFormat = "xml" }, wantErr: true},
		{name: "empty log dir", mutate: func(c *Config) { c.LogDir = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			setDefaults(cfg)
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFlagValuesAreNormalized(t *testing.T) {
	isolate(t)
	cfg, err := Load(flag.NewFlagSet("test", flag.ContinueOnError), []string{"--theme", " Dark ", "--filter", "ACTIVE"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Theme != ThemeDark || cfg.Filter != "active" {
		t.Errorf("got theme %q filter %q", cfg.Theme, cfg.Filter)
	}
}

func TestExampleConfigLoads(t *testing.T) {
	project := isolate(t)
	writeFile(t, filepath.Join(project, "todo.toml"), ExampleConfig())

	cws, err := LoadWithSources(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("example config failed to load: %v", err)
	}
	for _, field := range Fields() {
		if got := cws.Sources[field]; got != SourceProjFile {
			t.Errorf("example config should set %s, source %q", field, got)
		}
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("TODO_TEST_DIR", "/var/todo")

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"~", home},
		{"~/logs", filepath.Join(home, "logs")},
		{"$TODO_TEST_DIR/logs", "/var/todo/logs"},
		{"/abs/path", "/abs/path"},
		{"rel/~path", "rel/~path"},
	}
	for _, tt := range tests {
		if got := expandPath(tt.input); got != tt.want {
			t.Errorf("expandPath(%q): got %q, want %q", tt.input, got, tt.want)
		}
	}
}
