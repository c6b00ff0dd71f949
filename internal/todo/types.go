// Package todo holds the task list store and its view projections.
package todo

import (
	"fmt"
	"strings"
)

// Task represents a single entry in the list.
type Task struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// Op names a store command.
type Op string

const (
	OpAdd            Op = "add"
	OpDelete         Op = "delete"
	OpToggle         Op = "toggle"
	OpClearCompleted Op = "clear_completed"
)

// Command is a state transition request applied to a List.
type Command struct {
	Op   Op     `json:"op"`
	Name string `json:"name,omitempty"`
	ID   int    `json:"id,omitempty"`
}

// Add returns an add command for name.
func Add(name string) Command {
	return Command{Op: OpAdd, Name: name}
}

// Delete returns a delete command for id.
func Delete(id int) Command {
	return Command{Op: OpDelete, ID: id}
}

// Toggle returns a toggle command for id.
func Toggle(id int) Command {
	return Command{Op: OpToggle, ID: id}
}

// ClearCompleted returns a clear_completed command.
func ClearCompleted() Command {
	return Command{Op: OpClearCompleted}
}

// Validate reports whether the command is well formed. It does not check
// whether the targeted id exists; missing ids are no-ops, not errors.
func (c Command) Validate() error {
	switch c.Op {
	case OpAdd, OpClearCompleted:
		return nil
	case OpDelete, OpToggle:
		if c.ID < 1 {
			return fmt.Errorf("%s: id must be positive, got %d", c.Op, c.ID)
		}
		return nil
	default:
		return fmt.Errorf("unknown op %q", c.Op)
	}
}

// String returns a compact form used in logs.
func (c Command) String() string {
	switch c.Op {
	case OpAdd:
		return fmt.Sprintf("add %q", c.Name)
	case OpDelete, OpToggle:
		return fmt.Sprintf("%s #%d", c.Op, c.ID)
	default:
		return string(c.Op)
	}
}

// List is the authoritative ordered task collection.
//
// A List is owned by a single event loop and is not safe for concurrent use.
// The zero value is an empty list ready to use.
type List struct {
	tasks  []Task
	lastID int
}

// NewList returns an empty list.
func NewList() *List {
	return &List{}
}

// Tasks returns a copy of the tasks in insertion order.
func (l *List) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

// Get returns the task with id, if present.
func (l *List) Get(id int) (Task, bool) {
	for _, task := range l.tasks {
		if task.ID == id {
			return task, true
		}
	}
	return Task{}, false
}

// Apply runs cmd against the list and reports whether the list changed.
// Each command derives a new task slice and replaces the old one whole.
func (l *List) Apply(cmd Command) bool {
	if cmd.Validate() != nil {
		return false
	}

	var next []Task
	switch cmd.Op {
	case OpAdd:
		next = l.add(cmd.Name)
	case OpDelete:
		next = l.remove(func(t Task) bool { return t.ID == cmd.ID })
	case OpToggle:
		next = l.toggle(cmd.ID)
	case OpClearCompleted:
		next = l.remove(func(t Task) bool { return t.Completed })
	}
	if next == nil {
		return false
	}

	if cmd.Op == OpAdd {
		l.lastID++
	}
	l.tasks = next
	return true
}

// Add appends a task named name and returns it. Blank names are ignored.
func (l *List) Add(name string) (Task, bool) {
	if !l.Apply(Add(name)) {
		return Task{}, false
	}
	return l.tasks[len(l.tasks)-1], true
}

// Delete removes the task with id.
func (l *List) Delete(id int) bool {
	return l.Apply(Delete(id))
}

// Toggle flips the completed flag of the task with id.
func (l *List) Toggle(id int) bool {
	return l.Apply(Toggle(id))
}

// ClearCompleted removes all completed tasks.
func (l *List) ClearCompleted() bool {
	return l.Apply(ClearCompleted())
}

// add returns the new slice, or nil when name is blank.
func (l *List) add(name string) []Task {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	next := make([]Task, len(l.tasks), len(l.tasks)+1)
	copy(next, l.tasks)
	return append(next, Task{ID: l.lastID + 1, Name: name})
}

// remove returns the slice without tasks matching drop, or nil when none match.
func (l *List) remove(drop func(Task) bool) []Task {
	next := make([]Task, 0, len(l.tasks))
	for _, task := range l.tasks {
		if drop(task) {
			continue
		}
		next = append(next, task)
	}
	if len(next) == len(l.tasks) {
		return nil
	}
	return next
}

// toggle returns the slice with id flipped, or nil when id is absent.
func (l *List) toggle(id int) []Task {
	found := false
	next := make([]Task, len(l.tasks))
	for i, task := range l.tasks {
		if task.ID == id {
			task.Completed = !task.Completed
			found = true
		}
		next[i] = task
	}
	if !found {
		return nil
	}
	return next
}
