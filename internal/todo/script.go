package todo

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// ScriptSchemaVersion is the only supported script schema_version.
const ScriptSchemaVersion = 1

// OpSetFilter is a script-only step that changes the replay filter.
const OpSetFilter Op = "set_filter"

const scriptSchemaURL = "https://github.com/nibzard/todo-go/script.schema.json"

//go:embed script.schema.json
var scriptSchemaJSON string

var (
	scriptSchemaOnce sync.Once
	scriptSchema     *jsonschema.Schema
	scriptSchemaErr  error
)

// Step is one user intent in a script.
type Step struct {
	Op     Op     `json:"op"`
	Name   string `json:"name,omitempty"`
	ID     int    `json:"id,omitempty"`
	Filter Filter `json:"filter,omitempty"`
}

// Command converts a store step into a Command. It reports false for
// set_filter, which never reaches the store.
func (s Step) Command() (Command, bool) {
	if s.Op == OpSetFilter {
		return Command{}, false
	}
	return Command{Op: s.Op, Name: s.Name, ID: s.ID}, true
}

// Script is a sequence of steps replayed against a fresh list.
type Script struct {
	SchemaVersion int    `json:"schema_version"`
	Filter        Filter `json:"filter,omitempty"`
	Steps         []Step `json:"steps"`

	raw []byte
}

// ValidationError represents a validation error with context.
type ValidationError struct {
	Path string // JSON path to the error location
	Err  error  // Underlying error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationResult contains validation results.
type ValidationResult struct {
	Valid      bool
	Errors     []error
	Warnings   []string
	UsedSchema bool // true if JSON Schema validation was performed
}

// Err joins the validation errors into one, or returns nil when valid.
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	msgs := make([]string, 0, len(r.Errors))
	for _, err := range r.Errors {
		msgs = append(msgs, err.Error())
	}
	return fmt.Errorf("invalid script: %s", strings.Join(msgs, "; "))
}

// LoadScript reads and parses a script file from path.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript parses script JSON. It does not validate it.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	s.raw = append([]byte(nil), data...)
	return &s, nil
}

// Validate checks the script against the embedded JSON Schema, falling back
// to structural checks if the schema cannot be compiled.
func (s *Script) Validate() *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   make([]error, 0),
		Warnings: make([]string, 0),
	}

	schema, err := compiledScriptSchema()
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("JSON Schema validation not available, using minimal checks: %v", err))
		s.validateMinimal(result)
		return result
	}
	result.UsedSchema = true

	data := s.raw
	if data == nil {
		data, err = json.Marshal(s)
		if err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, &ValidationError{
				Err: fmt.Errorf("failed to marshal script for validation: %w", err),
			})
			return result
		}
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Err: fmt.Errorf("failed to unmarshal script for validation: %w", err),
		})
		return result
	}

	if err := schema.Validate(doc); err != nil {
		result.Valid = false
		appendSchemaErrors(result, err)
	}
	return result
}

func compiledScriptSchema() (*jsonschema.Schema, error) {
	scriptSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(scriptSchemaURL, strings.NewReader(scriptSchemaJSON)); err != nil {
			scriptSchemaErr = fmt.Errorf("add script schema: %w", err)
			return
		}
		scriptSchema, scriptSchemaErr = compiler.Compile(scriptSchemaURL)
	})
	return scriptSchema, scriptSchemaErr
}

// validateMinimal performs validation without JSON Schema.
func (s *Script) validateMinimal(result *ValidationResult) {
	if s.SchemaVersion != ScriptSchemaVersion {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Path: "schema_version",
			Err:  fmt.Errorf("expected %d, got %d", ScriptSchemaVersion, s.SchemaVersion),
		})
	}
	if s.Filter != "" {
		if _, err := ParseFilter(string(s.Filter)); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, &ValidationError{Path: "filter", Err: err})
		}
	}
	if s.Steps == nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Path: "steps",
			Err:  fmt.Errorf("missing required field"),
		})
		return
	}
	for i, step := range s.Steps {
		if err := validateStepMinimal(step, fmt.Sprintf("steps[%d]", i)); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err)
		}
	}
}

func validateStepMinimal(step Step, path string) *ValidationError {
	if step.Op == OpSetFilter {
		if _, err := ParseFilter(string(step.Filter)); err != nil || step.Filter == "" {
			return &ValidationError{Path: path + ".filter", Err: fmt.Errorf("invalid filter %q", step.Filter)}
		}
		return nil
	}
	cmd, _ := step.Command()
	if err := cmd.Validate(); err != nil {
		return &ValidationError{Path: path, Err: err}
	}
	return nil
}

func appendSchemaErrors(result *ValidationResult, err error) {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		result.Errors = append(result.Errors, err)
		return
	}
	collectSchemaErrors(result, ve)
}

func collectSchemaErrors(result *ValidationResult, err *jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		result.Errors = append(result.Errors, &ValidationError{
			Path: jsonPointerToPath(err.InstanceLocation),
			Err:  fmt.Errorf("%s", err.Message),
		})
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
	}
}

// jsonPointerToPath turns "/steps/2/id" into "steps[2].id".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&b, "[%d]", idx)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}

// StepResult records whether a step changed anything.
type StepResult struct {
	Step    Step `json:"step"`
	Applied bool `json:"applied"`
}

// ReplayResult is the state after a replay.
type ReplayResult struct {
	Filter    Filter       `json:"filter"`
	Tasks     []Task       `json:"tasks"`
	Visible   []Task       `json:"visible"`
	Remaining int          `json:"remaining"`
	Steps     []StepResult `json:"steps"`
}

// Replay applies the script's steps to list in order. Store steps go to the
// list; set_filter steps change only the returned filter.
func Replay(s *Script, list *List) (*ReplayResult, error) {
	filter, err := ParseFilter(string(s.Filter))
	if err != nil {
		return nil, &ValidationError{Path: "filter", Err: err}
	}

	steps := make([]StepResult, 0, len(s.Steps))
	for i, step := range s.Steps {
		cmd, ok := step.Command()
		if ok {
			steps = append(steps, StepResult{Step: step, Applied: list.Apply(cmd)})
			continue
		}
		next, err := ParseFilter(string(step.Filter))
		if err != nil {
			return nil, &ValidationError{Path: fmt.Sprintf("steps[%d].filter", i), Err: err}
		}
		steps = append(steps, StepResult{Step: step, Applied: next != filter})
		filter = next
	}

	tasks := list.Tasks()
	return &ReplayResult{
		Filter:    filter,
		Tasks:     tasks,
		Visible:   Visible(tasks, filter),
		Remaining: Remaining(tasks),
		Steps:     steps,
	}, nil
}
