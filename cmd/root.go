// Package cmd implements the CLI command structure for todo.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/todo-go/internal/config"
	"github.com/nibzard/todo-go/internal/logging"
	"github.com/nibzard/todo-go/internal/todo"
	"github.com/nibzard/todo-go/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the todo CLI.
func Run(ctx context.Context, args []string) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags
	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := cws.Config
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	// No args, or a leading flag, means the interactive UI.
	subcommand := "tui"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "tui":
		return tuiCommand(ctx, cfg, remainingArgs)
	case "replay":
		return replayCommand(cfg, remainingArgs)
	case "validate":
		return validateCommand(remainingArgs)
	case "tail":
		return tailCommand(ctx, cfg, remainingArgs)
	case "ls":
		return lsCommand(cfg, remainingArgs)
	case "config":
		return configCommand(cws, remainingArgs)
	case "doctor":
		return doctorCommand(cws, remainingArgs)
	case "completion":
		return completionCommand(cfg, remainingArgs)
	case "version":
		return versionCommand()
	case "help":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// loggerOptions maps the logging section of cfg to logger options.
func loggerOptions(cfg *config.Config) logging.Options {
	return logging.Options{
		Level:      cfg.LogLevel,
		Format:     cfg.LogFormat,
		Timestamps: cfg.LogTimestamps,
		Prefix:     "todo",
	}
}

// tuiCommand starts the interactive editor, optionally seeded from a script.
func tuiCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("todo tui", flag.ContinueOnError)
	inline := fs.Bool("inline", false, "Render inline instead of in the alternate screen")

	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if len(remaining) > 1 {
		return fmt.Errorf("unexpected arguments: %v", remaining[1:])
	}

	list := todo.NewList()
	if len(remaining) == 1 {
		result, err := loadAndReplay(remaining[0], list, "")
		if err != nil {
			return err
		}
		if result.Filter != todo.FilterAll {
			cfg.Filter = string(result.Filter)
		}
	}

	runLogger, err := logging.NewRunLogger(cfg.LogDir)
	if err != nil {
		return fmt.Errorf("opening session log: %w", err)
	}
	defer runLogger.Close()

	logger, err := logging.New(runLogger.Writer(), loggerOptions(cfg))
	if err != nil {
		return err
	}
	logger = logger.With("run_id", runLogger.RunID)

	return ui.RunTUI(ctx, cfg, logger, ui.WithList(list), ui.WithAltScreen(!*inline))
}

// loadAndReplay loads, validates and replays the script at path into list.
// A non-empty filter overrides the script's starting filter.
func loadAndReplay(path string, list *todo.List, filter string) (*todo.ReplayResult, error) {
	script, err := todo.LoadScript(path)
	if err != nil {
		return nil, err
	}
	if err := script.Validate().Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if filter != "" {
		parsed, err := todo.ParseFilter(filter)
		if err != nil {
			return nil, err
		}
		script.Filter = parsed
	}
	return todo.Replay(script, list)
}

// newStderrLogger builds a logger for headless commands.
func newStderrLogger(cfg *config.Config) (*log.Logger, error) {
	return logging.New(os.Stderr, loggerOptions(cfg))
}

func versionCommand() error {
	fmt.Printf("todo version %s\n", Version)
	return nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "todo - A keyboard driven todo list for the terminal")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  todo [options] [command]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  tui [script]        Launch the interactive list (default command)")
	fmt.Fprintln(w, "  replay <script>     Replay a command script and print the result")
	fmt.Fprintln(w, "  validate <script>   Check a command script against its schema")
	fmt.Fprintln(w, "  tail                Print the latest session log")
	fmt.Fprintln(w, "  ls                  List session logs")
	fmt.Fprintln(w, "  config [example]    Show effective configuration or an example file")
	fmt.Fprintln(w, "  doctor              Check configuration and log directory")
	fmt.Fprintln(w, "  completion <shell>  Print a shell completion script (bash|zsh|fish)")
	fmt.Fprintln(w, "  version             Show version information")
	fmt.Fprintln(w, "  help                Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tui Options (use with 'tui' command):")
	fmt.Fprintln(w, "  -inline")
	fmt.Fprintln(w, "        Render inline instead of in the alternate screen")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Replay Options (use with 'replay' command):")
	fmt.Fprintln(w, "  -format string")
	fmt.Fprintln(w, "        Output format (text|json) (default \"text\")")
	fmt.Fprintln(w, "  -filter string")
	fmt.Fprintln(w, "        Override the script's starting filter (all|active|completed)")
	fmt.Fprintln(w, "  -steps")
	fmt.Fprintln(w, "        Print each step and whether it changed anything")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tail Options (use with 'tail' command):")
	fmt.Fprintln(w, "  -f, --follow")
	fmt.Fprintln(w, "        Follow the log (like tail -f)")
	fmt.Fprintln(w, "  -n int")
	fmt.Fprintln(w, "        Number of lines to show (0 = all)")
}
