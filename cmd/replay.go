package cmd

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/nibzard/todo-go/internal/config"
	"github.com/nibzard/todo-go/internal/todo"
)

// replayCommand replays a command script headlessly and prints the result.
func replayCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("todo replay", flag.ContinueOnError)
	format := fs.String("format", "text", "Output format (text|json)")
	filter := fs.String("filter", "", "Override the script's starting filter (all|active|completed)")
	showSteps := fs.Bool("steps", false, "Print each step and whether it changed anything")

	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("replay requires a script path")
	}
	if len(remaining) > 1 {
		return fmt.Errorf("unexpected arguments: %v", remaining[1:])
	}
	if *format != "text" && *format != "json" {
		return fmt.Errorf("invalid format %q, must be text or json", *format)
	}

	logger, err := newStderrLogger(cfg)
	if err != nil {
		return err
	}

	path := remaining[0]
	result, err := loadAndReplay(path, todo.NewList(), *filter)
	if err != nil {
		return err
	}

	applied := 0
	for _, step := range result.Steps {
		if step.Applied {
			applied++
		}
		logger.Debug("step", "op", step.Step.Op, "id", step.Step.ID, "name", step.Step.Name, "applied", step.Applied)
	}
	logger.Info("replay finished", "script", path, "steps", len(result.Steps), "applied", applied, "tasks", len(result.Tasks))

	if *format == "json" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if *showSteps {
		fmt.Printf("Steps (%d, %d applied):\n", len(result.Steps), applied)
		for i, step := range result.Steps {
			fmt.Println(formatStep(i, step))
		}
		fmt.Println()
	}
	fmt.Printf("Filter: %s\n", result.Filter.Label())
	if len(result.Visible) == 0 {
		fmt.Println("  (no tasks)")
	}
	for _, task := range result.Visible {
		fmt.Println(formatTask(task))
	}
	fmt.Println(todo.ItemsLeft(result.Remaining))
	return nil
}

// validateCommand checks a command script against the schema.
func validateCommand(args []string) error {
	fs := flag.NewFlagSet("todo validate", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) != 1 {
		return errors.New("validate requires exactly one script path")
	}

	path := remaining[0]
	script, err := todo.LoadScript(path)
	if err != nil {
		return err
	}

	result := script.Validate()
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if result.Valid {
		fmt.Printf("✅ %s is valid (%d steps)\n", path, len(script.Steps))
		return nil
	}
	fmt.Printf("❌ %s is invalid:\n", path)
	for _, e := range result.Errors {
		fmt.Printf("  - %v\n", e)
	}
	return fmt.Errorf("validation failed with %d error(s)", len(result.Errors))
}

func formatTask(t todo.Task) string {
	mark := "( )"
	if t.Completed {
		mark = "(✓)"
	}
	return fmt.Sprintf("  %s #%d %s", mark, t.ID, t.Name)
}

func formatStep(i int, step todo.StepResult) string {
	status := "applied"
	if !step.Applied {
		status = "no-op"
	}
	desc := fmt.Sprintf("%s %s", step.Step.Op, step.Step.Filter)
	if cmd, ok := step.Step.Command(); ok {
		desc = cmd.String()
	}
	return fmt.Sprintf("  %2d. %-28s %s", i+1, desc, status)
}
