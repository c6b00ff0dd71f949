package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/nibzard/todo-go/internal/config"
	"github.com/nibzard/todo-go/internal/logging"
)

// tailCommand prints the latest session log.
func tailCommand(ctx context.Context, cfg *config.Config, args []string) error {
	// Parse tail-specific flags
	fs := flag.NewFlagSet("todo tail", flag.ContinueOnError)
	follow := fs.Bool("f", false, "Follow the log (like tail -f)")
	fs.BoolVar(follow, "follow", false, "Follow the log (like tail -f)")
	n := fs.Int("n", 0, "Number of lines to show (0 = all)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	logPath, err := logging.FindLatestLog(cfg.LogDir)
	if err != nil {
		return fmt.Errorf("finding latest log: %w", err)
	}

	if logPath == "" {
		fmt.Println("No log files found.")
		return nil
	}

	fmt.Printf("Tailing: %s\n", logPath)
	if *follow {
		fmt.Println("(Ctrl+C to stop)")
	}
	fmt.Println()

	return logging.TailLog(ctx, os.Stdout, logPath, *n, *follow)
}

// lsCommand lists session logs, newest first.
func lsCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("todo ls", flag.ContinueOnError)
	limit := fs.Int("n", 0, "Number of runs to show (0 = all)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	runs, err := logging.FindLogRuns(cfg.LogDir)
	if err != nil {
		return fmt.Errorf("listing logs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Printf("No log files found in %s.\n", cfg.LogDir)
		return nil
	}
	if *limit > 0 && len(runs) > *limit {
		runs = runs[:*limit]
	}

	fmt.Printf("%-26s  %-16s  %s\n", "RUN", "MODIFIED", "SIZE")
	for _, run := range runs {
		fmt.Printf("%-26s  %-16s  %s\n", run.RunID, humanize.Time(run.ModTime), humanize.Bytes(uint64(run.Size)))
	}
	return nil
}
