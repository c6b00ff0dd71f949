// Package ui provides the interactive terminal interface.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/nibzard/todo-go/internal/config"
	"github.com/nibzard/todo-go/internal/todo"
)

// TUIOption configures the TUI behavior.
type TUIOption func(*tuiConfig)

// tuiConfig holds TUI configuration.
type tuiConfig struct {
	altScreen bool
	list      *todo.List
}

// WithAltScreen runs the program in the terminal's alternate screen.
func WithAltScreen(enabled bool) TUIOption {
	return func(c *tuiConfig) {
		c.altScreen = enabled
	}
}

// WithList starts the session from an existing list instead of an empty one.
func WithList(list *todo.List) TUIOption {
	return func(c *tuiConfig) {
		c.list = list
	}
}

// RunTUI starts the interactive list editor.
func RunTUI(ctx context.Context, cfg *config.Config, logger *log.Logger, opts ...TUIOption) error {
	c := &tuiConfig{altScreen: true}
	for _, opt := range opts {
		opt(c)
	}

	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	m := newModel(cfg, logger, c.list)
	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if c.altScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	m.logger.Info("session started", "theme", m.theme.Name, "filter", m.filter, "tasks", m.list.Len())
	finalModel, err := tea.NewProgram(m, programOpts...).Run()
	if err != nil {
		return err
	}
	if fm, ok := finalModel.(*model); ok {
		tasks := fm.list.Tasks()
		m.logger.Info("session ended", "tasks", len(tasks), "remaining", todo.Remaining(tasks))
	}
	return nil
}

// mode says where key presses go.
type mode int

const (
	modeInput mode = iota
	modeNavigate
)

type model struct {
	list       *todo.List
	filter     todo.Filter
	theme      Theme
	breakpoint int
	width      int
	cursor     int
	mode       mode
	showHelp   bool
	input      textinput.Model
	logger     *log.Logger
}

func newModel(cfg *config.Config, logger *log.Logger, list *todo.List) *model {
	if list == nil {
		list = todo.NewList()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	filter, err := todo.ParseFilter(cfg.Filter)
	if err != nil {
		filter = todo.FilterAll
	}

	m := &model{
		list:       list,
		filter:     filter,
		theme:      NewTheme(cfg.Theme),
		breakpoint: cfg.CompactWidth,
		mode:       modeInput,
		logger:     logger,
	}

	m.input = textinput.New()
	m.input.Placeholder = cfg.Placeholder
	m.input.Prompt = "› "
	m.input.CharLimit = 256
	m.input.Focus()
	m.styleInput()
	return m
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		before := m.layout()
		m.width = msg.Width
		m.input.Width = max(msg.Width-6, 10)
		if after := m.layout(); after != before {
			m.logger.Debug("layout changed", "layout", after, "width", msg.Width)
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+t":
			m.toggleTheme()
			return m, nil
		}
		if m.mode == modeInput {
			return m.updateInput(msg)
		}
		return m.updateNavigate(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.apply(todo.Add(m.input.Value()))
		m.input.Reset()
		return m, nil
	case "tab":
		m.mode = modeNavigate
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) updateNavigate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab", "esc", "i", "a":
		m.mode = modeInput
		m.showHelp = false
		return m, m.input.Focus()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
	case " ", "space", "x", "enter":
		if task, ok := m.selected(); ok {
			m.apply(todo.Toggle(task.ID))
		}
	case "d", "delete", "backspace":
		if task, ok := m.selected(); ok {
			m.apply(todo.Delete(task.ID))
		}
	case "c":
		m.apply(todo.ClearCompleted())
	case "1":
		m.setFilter(todo.FilterAll)
	case "2":
		m.setFilter(todo.FilterActive)
	case "3":
		m.setFilter(todo.FilterCompleted)
	case "f":
		m.setFilter(m.filter.Next())
	case "t":
		m.toggleTheme()
	case "?", "h":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// apply runs cmd against the list, logs the outcome and keeps the cursor
// inside the visible tasks.
func (m *model) apply(cmd todo.Command) bool {
	changed := m.list.Apply(cmd)
	if !changed {
		m.logger.Debug("command ignored", "cmd", cmd.String())
		return false
	}

	id := cmd.ID
	if cmd.Op == todo.OpAdd {
		tasks := m.list.Tasks()
		id = tasks[len(tasks)-1].ID
	}
	m.logger.Debug("command applied", "op", cmd.Op, "id", id, "name", strings.TrimSpace(cmd.Name), "tasks", m.list.Len())
	m.clampCursor()
	return true
}

func (m *model) setFilter(f todo.Filter) {
	if f == m.filter {
		return
	}
	m.filter = f
	m.logger.Debug("filter changed", "filter", f)
	m.clampCursor()
}

func (m *model) toggleTheme() {
	m.theme = m.theme.Toggle()
	m.styleInput()
	m.logger.Debug("theme changed", "theme", m.theme.Name)
}

func (m *model) styleInput() {
	m.input.PromptStyle = m.theme.Prompt
	m.input.TextStyle = m.theme.Text
	m.input.PlaceholderStyle = m.theme.Placeholder
	m.input.Cursor.Style = m.theme.Cursor
}

func (m *model) visible() []todo.Task {
	return todo.Visible(m.list.Tasks(), m.filter)
}

func (m *model) selected() (todo.Task, bool) {
	visible := m.visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return todo.Task{}, false
	}
	return visible[m.cursor], true
}

func (m *model) clampCursor() {
	n := len(m.visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *model) layout() Layout {
	return LayoutFor(m.width, m.breakpoint)
}

func (m *model) View() string {
	var b strings.Builder
	m.writeHeader(&b)

	if m.showHelp {
		m.writeHelp(&b)
		return b.String()
	}

	b.WriteString(m.input.View() + "\n")
	m.writeRule(&b)
	tasks := m.list.Tasks()
	m.writeTasks(&b, todo.Visible(tasks, m.filter))
	m.writeRule(&b)
	m.writeFooter(&b, todo.Remaining(tasks))
	m.writeHints(&b)
	return b.String()
}

func (m *model) writeHeader(b *strings.Builder) {
	title := m.theme.Title.Render("TODO")
	b.WriteString(title + "  " + m.theme.Muted.Render(m.theme.Icon+" "+m.theme.Name) + "\n\n")
}

func (m *model) writeRule(b *strings.Builder) {
	width := 40
	if m.width > 0 && m.width < width {
		width = m.width
	}
	b.WriteString(m.theme.Rule.Render(strings.Repeat("─", width)) + "\n")
}

func (m *model) writeTasks(b *strings.Builder, visible []todo.Task) {
	if len(visible) == 0 {
		msg := "Nothing to do."
		if m.list.Len() > 0 {
			msg = fmt.Sprintf("No %s todos.", strings.ToLower(m.filter.Label()))
		}
		b.WriteString("  " + m.theme.Muted.Render(msg) + "\n")
		return
	}
	for i, task := range visible {
		b.WriteString(m.formatTask(task, m.mode == modeNavigate && i == m.cursor) + "\n")
	}
}

func (m *model) formatTask(task todo.Task, selected bool) string {
	pointer := "  "
	if selected {
		pointer = m.theme.Cursor.Render("> ")
	}
	if task.Completed {
		return pointer + m.theme.Check.Render("(✓)") + " " + m.theme.Done.Render(task.Name)
	}
	return pointer + m.theme.Muted.Render("( )") + " " + m.theme.Task.Render(task.Name)
}

func (m *model) filterBar() string {
	labels := make([]string, 0, len(todo.Filters))
	for i, f := range todo.Filters {
		label := fmt.Sprintf("%d %s", i+1, f.Label())
		if f == m.filter {
			labels = append(labels, m.theme.FilterActive.Render(label))
		} else {
			labels = append(labels, m.theme.FilterIdle.Render(label))
		}
	}
	return strings.Join(labels, "  ")
}

func (m *model) writeFooter(b *strings.Builder, remaining int) {
	left := m.theme.Muted.Render(todo.ItemsLeft(remaining))
	clearHint := m.theme.Muted.Render("c Clear Completed")

	if m.layout() == LayoutCompact {
		b.WriteString(left + "  " + clearHint + "\n")
		b.WriteString(m.filterBar() + "\n")
		return
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "   ", m.filterBar(), "   ", clearHint) + "\n")
}

func (m *model) writeHints(b *strings.Builder) {
	hint := "tab: select tasks | ctrl+t: theme | ctrl+c: quit"
	if m.mode == modeNavigate {
		hint = "space: toggle | d: delete | f: filter | ?: help | tab: type | q: quit"
	}
	b.WriteString("\n" + m.theme.Muted.Render(hint) + "\n")
}

func (m *model) writeHelp(b *strings.Builder) {
	b.WriteString(m.theme.Key.Render("Keyboard Shortcuts") + "\n\n")
	rows := [][2]string{
		{"enter", "Add the typed todo"},
		{"tab", "Switch between typing and the list"},
		{"esc, i, a", "Back to typing"},
		{"up/k, down/j", "Move the cursor"},
		{"space, x", "Toggle completed"},
		{"d, delete", "Delete the selected todo"},
		{"1, 2, 3", "Show All, Active, Completed"},
		{"f", "Next filter"},
		{"c", "Clear completed"},
		{"t, ctrl+t", "Toggle theme"},
		{"?", "Toggle this help screen"},
		{"q, ctrl+c", "Quit"},
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %-14s %s\n", row[0], row[1]))
	}
	b.WriteString("\n" + m.theme.Muted.Render("Press ? to go back") + "\n")
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
