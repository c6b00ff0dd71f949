package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nibzard/todo-go/internal/config"
	"github.com/nibzard/todo-go/internal/ui"
)

// configCommand prints the effective configuration with the source of each
// value, or an example config file.
func configCommand(cws *config.ConfigWithSources, args []string) error {
	fs := flag.NewFlagSet("todo config", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if len(remaining) > 1 {
		return fmt.Errorf("unexpected arguments: %v", remaining[1:])
	}
	if len(remaining) == 1 {
		if remaining[0] != "example" {
			return fmt.Errorf("unknown config subcommand: %s", remaining[0])
		}
		fmt.Print(config.ExampleConfig())
		return nil
	}

	if file := cws.GetConfigFile(); file != "" {
		fmt.Printf("Config file: %s\n\n", file)
	} else {
		fmt.Println("Config file: (none)")
		fmt.Println()
	}
	for _, field := range config.Fields() {
		fmt.Printf("  %-15s %-28q (%s)\n", field, cws.Config.Value(field), cws.Sources[field])
	}
	return nil
}

// doctorCommand checks that the configuration is usable.
func doctorCommand(cws *config.ConfigWithSources, args []string) error {
	fs := flag.NewFlagSet("todo doctor", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	cfg := cws.Config

	fmt.Println("Todo Doctor")
	fmt.Println("===========")
	fmt.Println()

	allOK := true

	fmt.Println("Config:")
	for _, file := range []string{cws.UserFile, cws.ProjectFile} {
		if file != "" {
			fmt.Printf("  ✅ Loaded %s\n", file)
		}
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("  ❌ %v\n", err)
		allOK = false
	} else {
		fmt.Printf("  ✅ Theme: %s, filter: %s, compact below %d columns\n", cfg.Theme, cfg.Filter, cfg.CompactWidth)
	}
	fmt.Println()

	fmt.Printf("Log directory: %s\n", cfg.LogDir)
	if err := checkWritableDir(cfg.LogDir); err != nil {
		fmt.Printf("  ❌ %v\n", err)
		allOK = false
	} else {
		fmt.Println("  ✅ Writable")
	}
	fmt.Println()

	fmt.Println("Terminal:")
	if ui.IsTTY(os.Stdout) {
		fmt.Println("  ✅ stdout is a TTY")
	} else {
		fmt.Println("  ⚠️  stdout is not a TTY; only headless commands will work")
	}
	fmt.Println()

	if !allOK {
		return errors.New("doctor checks failed")
	}
	fmt.Println("All checks passed.")
	return nil
}

// checkWritableDir creates dir if needed and probes it with a temp file.
func checkWritableDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	f, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", dir, err)
	}
	name := f.Name()
	f.Close()
	return os.Remove(filepath.Clean(name))
}
