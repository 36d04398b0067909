package listops

import (
	"testing"

	"paneltasks/internal/model"
)

func task(id string, opts ...func(*model.Task)) model.Task {
	t := model.Task{Version: model.TaskSchemaVersion, ID: id, Name: id}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

func focused(t *model.Task) { t.IsFocused = true }

func inGroup(id string) func(*model.Task) {
	return func(t *model.Task) { t.GroupID = id }
}

func ids(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func assertOrder(t *testing.T, tasks []model.Task, want ...string) {
	t.Helper()
	got := ids(tasks)
	if len(got) != len(want) {
		t.Fatalf("expected order %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestInsertPosition(t *testing.T) {
	if pos := InsertPosition(nil); pos != 0 {
		t.Fatalf("empty list should insert at 0, got %d", pos)
	}
	plain := []model.Task{task("a"), task("b")}
	if pos := InsertPosition(plain); pos != 0 {
		t.Fatalf("unfocused front should insert at 0, got %d", pos)
	}
	pinned := []model.Task{task("a", focused), task("b")}
	if pos := InsertPosition(pinned); pos != 1 {
		t.Fatalf("focused front should push insert to 1, got %d", pos)
	}
}

func TestInsertClampsPosition(t *testing.T) {
	tasks := []model.Task{task("a")}
	out := Insert(tasks, task("b"), 99)
	assertOrder(t, out, "a", "b")
	out = Insert(tasks, task("c"), -1)
	assertOrder(t, out, "c", "a")
	assertOrder(t, tasks, "a")
}

func TestRemoveBounds(t *testing.T) {
	tasks := []model.Task{task("a"), task("b")}
	out, ok := Remove(tasks, 1)
	if !ok {
		t.Fatal("expected removal to succeed")
	}
	assertOrder(t, out, "a")

	if _, ok := Remove(tasks, 2); ok {
		t.Fatal("out-of-range removal must report false")
	}
	if _, ok := Remove(tasks, -1); ok {
		t.Fatal("negative index removal must report false")
	}
	if _, ok := Remove(nil, 0); ok {
		t.Fatal("removal from empty list must report false")
	}
}

func TestSwapToFrontIsAPureSwap(t *testing.T) {
	tasks := []model.Task{task("a"), task("b"), task("c"), task("d")}
	out := SwapToFront(tasks, 2)
	assertOrder(t, out, "c", "b", "a", "d")
	assertOrder(t, tasks, "a", "b", "c", "d")

	same := SwapToFront(tasks, 0)
	assertOrder(t, same, "a", "b", "c", "d")
}

func TestMoveToEndOfGroup(t *testing.T) {
	tasks := []model.Task{
		task("a", focused),
		task("b"),
		task("c"),
	}
	out, moved := MoveToEndOfGroup(tasks, 1)
	if !moved {
		t.Fatal("expected b to move")
	}
	assertOrder(t, out, "a", "c", "b")

	// Already last in its group: no-op.
	again, moved := MoveToEndOfGroup(out, 2)
	if moved {
		t.Fatal("moving the last group member must be a no-op")
	}
	assertOrder(t, again, "a", "c", "b")
}

func TestMoveToEndOfGroupScopesToGroup(t *testing.T) {
	tasks := []model.Task{
		task("w1", inGroup("work")),
		task("i1"),
		task("w2", inGroup("work")),
		task("i2"),
	}
	out, moved := MoveToEndOfGroup(tasks, 0)
	if !moved {
		t.Fatal("expected w1 to move after w2")
	}
	assertOrder(t, out, "i1", "w2", "w1", "i2")
}

func TestMoveToEndOfGroupIdempotent(t *testing.T) {
	tasks := []model.Task{task("a"), task("b"), task("c"), task("d")}
	once, _ := MoveToEndOfGroup(tasks, 1)
	// The moved task now sits last; a second move must change nothing.
	twice, moved := MoveToEndOfGroup(once, 3)
	if moved {
		t.Fatal("second move must be a no-op")
	}
	assertOrder(t, twice, ids(once)...)
}

func TestMoveToEndOfGroupOutOfRange(t *testing.T) {
	tasks := []model.Task{task("a")}
	if _, moved := MoveToEndOfGroup(tasks, 5); moved {
		t.Fatal("out-of-range move must report false")
	}
}

func TestReassignGroup(t *testing.T) {
	tasks := []model.Task{
		task("w1", inGroup("work")),
		task("i1"),
		task("w2", inGroup("work")),
	}
	out, changed := ReassignGroup(tasks, "work", model.InboxGroupID)
	if changed != 2 {
		t.Fatalf("expected 2 reassignments, got %d", changed)
	}
	for _, tk := range out {
		if tk.EffectiveGroup() != model.InboxGroupID {
			t.Fatalf("task %s not reassigned: %#v", tk.ID, tk)
		}
	}
	if tasks[0].GroupID != "work" {
		t.Fatal("input slice was mutated")
	}
}

func TestCountUndone(t *testing.T) {
	done := func(t *model.Task) { t.IsDone = true }
	tasks := []model.Task{
		task("a"),
		task("b", done),
		task("c", inGroup("work")),
		task("d", inGroup("work"), done),
	}
	if got := CountUndone(tasks, ""); got != 2 {
		t.Fatalf("expected 2 undone overall, got %d", got)
	}
	if got := CountUndone(tasks, "work"); got != 1 {
		t.Fatalf("expected 1 undone in work, got %d", got)
	}
	if got := CountUndone(tasks, model.InboxGroupID); got != 1 {
		t.Fatalf("expected 1 undone in inbox, got %d", got)
	}
}

func TestFilterByGroup(t *testing.T) {
	tasks := []model.Task{
		task("a"),
		task("b", inGroup("work")),
	}
	all := FilterByGroup(tasks, "")
	assertOrder(t, all, "a", "b")
	work := FilterByGroup(tasks, "work")
	assertOrder(t, work, "b")
	inbox := FilterByGroup(tasks, model.InboxGroupID)
	assertOrder(t, inbox, "a")
}

func TestFocusedIndex(t *testing.T) {
	if got := FocusedIndex([]model.Task{task("a"), task("b")}); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
	if got := FocusedIndex([]model.Task{task("a"), task("b", focused)}); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}
