package todo

import (
	"math/rand"
	"testing"
)

func TestAddAppendsInOrder(t *testing.T) {
	l := NewList()

	if _, ok := l.Add("buy milk"); !ok {
		t.Fatal("Add(buy milk) was ignored")
	}
	if _, ok := l.Add("walk dog"); !ok {
		t.Fatal("Add(walk dog) was ignored")
	}

	tasks := l.Tasks()
	if len(tasks) != 2 {
		t.Fatalf("Tasks count: got %d, want 2", len(tasks))
	}
	want := []string{"buy milk", "walk dog"}
	for i, task := range tasks {
		if task.Name != want[i] {
			t.Errorf("tasks[%d].Name: got %q, want %q", i, task.Name, want[i])
		}
		if task.Completed {
			t.Errorf("tasks[%d].Completed: got true, want false", i)
		}
	}
	if tasks[0].ID == tasks[1].ID {
		t.Errorf("duplicate id %d", tasks[0].ID)
	}
}

func TestAddIgnoresBlankNames(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "spaces", input: "   "},
		{name: "tabs and newlines", input: "\t\n "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewList()
			l.Add("keep")
			before := l.Tasks()

			if l.Apply(Add(tt.input)) {
				t.Errorf("Apply(Add(%q)) reported a change", tt.input)
			}
			after := l.Tasks()
			if len(after) != len(before) {
				t.Fatalf("Len: got %d, want %d", len(after), len(before))
			}

			// The id counter must not advance on a rejected add.
			task, _ := l.Add("next")
			if task.ID != 2 {
				t.Errorf("next ID: got %d, want 2", task.ID)
			}
		})
	}
}

func TestAddTrimsName(t *testing.T) {
	l := NewList()
	task, ok := l.Add("  water plants \n")
	if !ok {
		t.Fatal("Add was ignored")
	}
	if task.Name != "water plants" {
		t.Errorf("Name: got %q, want %q", task.Name, "water plants")
	}
}

func TestIDsNotReusedAfterDelete(t *testing.T) {
	l := NewList()
	l.Add("a")
	l.Add("b")
	c, _ := l.Add("c")

	if !l.Delete(c.ID) {
		t.Fatalf("Delete(%d) reported no change", c.ID)
	}
	d, _ := l.Add("d")
	if d.ID == c.ID {
		t.Fatalf("id %d reused after delete", d.ID)
	}
	if d.ID != 4 {
		t.Errorf("ID: got %d, want 4", d.ID)
	}
}

func TestDeleteTwiceIsNoOp(t *testing.T) {
	l := NewList()
	a, _ := l.Add("a")
	l.Add("b")
	l.Add("c")

	if !l.Delete(a.ID) {
		t.Fatal("first Delete reported no change")
	}
	if l.Len() != 2 {
		t.Fatalf("Len after first delete: got %d, want 2", l.Len())
	}
	if l.Delete(a.ID) {
		t.Error("second Delete reported a change")
	}
	if l.Len() != 2 {
		t.Errorf("Len after second delete: got %d, want 2", l.Len())
	}

	tasks := l.Tasks()
	if tasks[0].Name != "b" || tasks[1].Name != "c" {
		t.Errorf("order after delete: got %v", tasks)
	}
	if tasks[0].ID != 2 || tasks[1].ID != 3 {
		t.Errorf("ids after delete: got %d,%d want 2,3", tasks[0].ID, tasks[1].ID)
	}
}

func TestToggleIsInvolution(t *testing.T) {
	l := NewList()
	a, _ := l.Add("a")
	b, _ := l.Add("b")

	if !l.Toggle(a.ID) {
		t.Fatal("Toggle reported no change")
	}
	got, _ := l.Get(a.ID)
	if !got.Completed {
		t.Fatal("task not completed after one toggle")
	}
	other, _ := l.Get(b.ID)
	if other.Completed {
		t.Error("untargeted task changed")
	}

	l.Toggle(a.ID)
	got, _ = l.Get(a.ID)
	if got.Completed {
		t.Error("task still completed after two toggles")
	}
}

func TestToggleMissingIsNoOp(t *testing.T) {
	l := NewList()
	l.Add("a")
	if l.Toggle(42) {
		t.Error("Toggle(42) reported a change")
	}
	if l.Delete(42) {
		t.Error("Delete(42) reported a change")
	}
}

func TestClearCompletedPreservesOrder(t *testing.T) {
	l := NewList()
	a, _ := l.Add("A")
	b, _ := l.Add("B")
	c, _ := l.Add("C")
	l.Toggle(b.ID)

	before := Remaining(l.Tasks())
	if !l.ClearCompleted() {
		t.Fatal("ClearCompleted reported no change")
	}
	tasks := l.Tasks()
	if len(tasks) != 2 || tasks[0].ID != a.ID || tasks[1].ID != c.ID {
		t.Fatalf("after clear: got %v, want [A C]", tasks)
	}
	if after := Remaining(tasks); after != before || after != 2 {
		t.Errorf("Remaining: before %d, after %d, want 2", before, after)
	}
	if l.ClearCompleted() {
		t.Error("second ClearCompleted reported a change")
	}
}

func TestTasksReturnsCopy(t *testing.T) {
	l := NewList()
	l.Add("a")
	tasks := l.Tasks()
	tasks[0].Name = "mutated"
	tasks[0].Completed = true

	got, _ := l.Get(1)
	if got.Name != "a" || got.Completed {
		t.Errorf("store mutated through Tasks(): %+v", got)
	}
}

func TestApplyRejectsInvalidCommands(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
	}{
		{name: "unknown op", cmd: Command{Op: "rename", ID: 1}},
		{name: "empty op", cmd: Command{}},
		{name: "toggle zero id", cmd: Command{Op: OpToggle}},
		{name: "delete negative id", cmd: Command{Op: OpDelete, ID: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewList()
			l.Add("a")
			if err := tt.cmd.Validate(); err == nil {
				t.Errorf("Validate(%+v): expected error", tt.cmd)
			}
			if l.Apply(tt.cmd) {
				t.Errorf("Apply(%+v) reported a change", tt.cmd)
			}
			if l.Len() != 1 {
				t.Errorf("Len: got %d, want 1", l.Len())
			}
		})
	}
}

func TestZeroValueList(t *testing.T) {
	var l List
	if l.Len() != 0 {
		t.Fatalf("Len: got %d, want 0", l.Len())
	}
	task, ok := l.Add("first")
	if !ok || task.ID != 1 {
		t.Errorf("Add on zero value: got %+v, %v", task, ok)
	}
}

func TestIDsUniqueUnderRandomCommands(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	l := NewList()
	names := []string{"a", "b", " ", "", "c"}

	for i := 0; i < 2000; i++ {
		var cmd Command
		switch rng.Intn(4) {
		case 0:
			cmd = Add(names[rng.Intn(len(names))])
		case 1:
			cmd = Delete(rng.Intn(40) + 1)
		case 2:
			cmd = Toggle(rng.Intn(40) + 1)
		case 3:
			cmd = ClearCompleted()
		}
		l.Apply(cmd)

		seen := make(map[int]bool, l.Len())
		lastID := 0
		for _, task := range l.Tasks() {
			if seen[task.ID] {
				t.Fatalf("step %d (%s): duplicate id %d", i, cmd, task.ID)
			}
			seen[task.ID] = true
			if task.ID <= lastID {
				t.Fatalf("step %d (%s): ids out of insertion order", i, cmd)
			}
			lastID = task.ID
		}
	}
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{cmd: Add("milk"), want: `add "milk"`},
		{cmd: Delete(3), want: "delete #3"},
		{cmd: Toggle(1), want: "toggle #1"},
		{cmd: ClearCompleted(), want: "clear_completed"},
	}
	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.want {
			t.Errorf("String(): got %q, want %q", got, tt.want)
		}
	}
}
