// Package todo holds the task list store, the view filter projection, and
// command scripts.
//
// A List is mutated only through four commands:
//
//	add              append a task with a fresh id (no-op for blank names)
//	delete           remove the task with the given id
//	toggle           flip the completed flag of the task with the given id
//	clear_completed  remove every completed task
//
// Commands that target a missing id are silent no-ops. Ids come from a
// counter kept next to the tasks and are never reused within a list, even
// after deletions.
//
// Filtering is read-only. Visible and Remaining compute a projection of the
// current tasks and never change the list.
//
// # Command Scripts
//
// A script is a JSON file with a sequence of steps replayed against a fresh
// list:
//
//	{
//	  "schema_version": 1,
//	  "filter": "all",
//	  "steps": [
//	    {"op": "add", "name": "buy milk"},
//	    {"op": "toggle", "id": 1},
//	    {"op": "set_filter", "filter": "completed"}
//	  ]
//	}
//
// Scripts are validated against an embedded JSON Schema (draft 2020-12).
// The set_filter step changes only the filter of the replay result.
package todo
