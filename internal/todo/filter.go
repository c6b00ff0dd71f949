package todo

import (
	"fmt"
	"strings"
)

// Filter selects which tasks the view shows.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Filters lists the filters in display order.
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

// ParseFilter parses a filter name. An empty string means FilterAll.
func ParseFilter(s string) (Filter, error) {
	switch Filter(strings.ToLower(strings.TrimSpace(s))) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterActive:
		return FilterActive, nil
	case FilterCompleted:
		return FilterCompleted, nil
	default:
		return "", fmt.Errorf("invalid filter %q, must be one of: all, active, completed", s)
	}
}

// Label returns the capitalized name shown in the filter bar.
func (f Filter) Label() string {
	switch f {
	case FilterActive:
		return "Active"
	case FilterCompleted:
		return "Completed"
	default:
		return "All"
	}
}

// Next returns the filter after f, wrapping around.
func (f Filter) Next() Filter {
	for i, candidate := range Filters {
		if candidate == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return FilterAll
}

// Match reports whether task is visible under f.
func (f Filter) Match(task Task) bool {
	switch f {
	case FilterActive:
		return !task.Completed
	case FilterCompleted:
		return task.Completed
	default:
		return true
	}
}

// Visible returns the tasks shown under filter, in their original order.
// The input slice is not modified.
func Visible(tasks []Task, filter Filter) []Task {
	out := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if filter.Match(task) {
			out = append(out, task)
		}
	}
	return out
}

// Remaining counts tasks that are not completed, regardless of filter.
func Remaining(tasks []Task) int {
	n := 0
	for _, task := range tasks {
		if !task.Completed {
			n++
		}
	}
	return n
}

// ItemsLeft formats a remaining count for the footer.
func ItemsLeft(n int) string {
	if n == 1 {
		return "1 item left"
	}
	return fmt.Sprintf("%d items left", n)
}
