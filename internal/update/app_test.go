package update

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"paneltasks/internal/manager"
	"paneltasks/internal/model"
	"paneltasks/internal/settings"
)

func setup(t *testing.T) (Model, *manager.Manager, *settings.MemoryStore) {
	t.Helper()
	store := settings.NewMemoryStore()
	mgr := manager.New(store, nil)
	return NewModel(mgr, store), mgr, store
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, m tea.Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = m.Update(keyMsg(k))
	}
	out, ok := m.(Model)
	if !ok {
		t.Fatalf("update returned %T, want Model", m)
	}
	return out
}

func TestQuickAddFlow(t *testing.T) {
	m, mgr, _ := setup(t)

	out := press(t, m, "a")
	if !out.CaptureMode {
		t.Fatal("pressing a must enter capture mode")
	}

	out = press(t, out, "buy milk", "enter")
	if out.CaptureMode {
		t.Fatal("enter must leave capture mode")
	}
	tasks := mgr.Tasks()
	if len(tasks) != 1 || tasks[0].Name != "buy milk" {
		t.Fatalf("unexpected tasks after quick add: %#v", tasks)
	}
	if tasks[0].EffectiveGroup() != model.InboxGroupID {
		t.Fatalf("quick add must land in the inbox, got %q", tasks[0].EffectiveGroup())
	}
}

func TestQuickAddEscapeCancels(t *testing.T) {
	m, mgr, _ := setup(t)

	out := press(t, m, "a", "never mind", "esc")
	if out.CaptureMode {
		t.Fatal("escape must leave capture mode")
	}
	if len(mgr.Tasks()) != 0 {
		t.Fatal("escape must not save a task")
	}
}

func TestToggleDoneAndFocusKeys(t *testing.T) {
	m, mgr, _ := setup(t)
	mgr.AddTask("write report", "")
	out := press(t, m, "space")
	if !mgr.Tasks()[0].IsDone {
		t.Fatal("space must toggle the selected task done")
	}

	out = press(t, out, "f")
	task := mgr.Tasks()[0]
	if !task.IsFocused {
		t.Fatal("f must focus the selected task")
	}
}

func TestFocusKeyRelocatesToFront(t *testing.T) {
	m, mgr, _ := setup(t)
	mgr.AddTask("first", "")
	mgr.AddTask("second", "")
	mgr.AddTask("third", "")
	// insertion at the front means order is third, second, first

	out := press(t, m, "j", "j", "f")
	_ = out
	tasks := mgr.Tasks()
	if tasks[0].Name != "first" || !tasks[0].IsFocused {
		t.Fatalf("focused task must move to the front, got %#v", tasks)
	}
}

func TestDeleteSelectedTask(t *testing.T) {
	m, mgr, _ := setup(t)
	mgr.AddTask("keep", "")
	mgr.AddTask("drop", "")

	press(t, m, "d")
	tasks := mgr.Tasks()
	if len(tasks) != 1 || tasks[0].Name != "keep" {
		t.Fatalf("d must delete the selected task, got %#v", tasks)
	}
}

func TestConfirmClear(t *testing.T) {
	m, mgr, _ := setup(t)
	mgr.AddTask("one", "")
	mgr.AddTask("two", "")

	out := press(t, m, "C")
	if !out.ConfirmClear {
		t.Fatal("C must ask for confirmation")
	}
	out = press(t, out, "n")
	if out.ConfirmClear || len(mgr.Tasks()) != 2 {
		t.Fatal("n must cancel the clear")
	}

	out = press(t, out, "C", "y")
	if out.ConfirmClear || len(mgr.Tasks()) != 0 {
		t.Fatalf("y must clear all tasks, %d left", len(mgr.Tasks()))
	}
}

func TestCycleFilter(t *testing.T) {
	m, mgr, _ := setup(t)
	if !mgr.AddGroup("Work", "#ff0000") {
		t.Fatal("add group")
	}

	// all -> inbox -> work -> all
	out := press(t, m, "tab")
	if mgr.FilterGroup() != model.InboxGroupID {
		t.Fatalf("first tab must filter the inbox, got %q", mgr.FilterGroup())
	}
	out = press(t, out, "tab")
	work := mgr.FilterGroup()
	if work == "" || work == model.InboxGroupID {
		t.Fatalf("second tab must filter the created group, got %q", work)
	}
	if mgr.LastSelectedGroup() != work {
		t.Fatal("filtering a group must remember it as the selection")
	}
	out = press(t, out, "tab")
	_ = out
	if mgr.FilterGroup() != "" {
		t.Fatalf("third tab must return to all, got %q", mgr.FilterGroup())
	}
}

func TestPaletteAddCommand(t *testing.T) {
	m, mgr, _ := setup(t)
	if !mgr.AddGroup("Work", "#ff0000") {
		t.Fatal("add group")
	}

	out := press(t, m, "/")
	if !out.Palette.Active {
		t.Fatal("/ must open the palette")
	}
	out = press(t, out, "add pay rent #work", "enter")
	if out.Palette.Active {
		t.Fatal("enter must close the palette")
	}
	tasks := mgr.Tasks()
	if len(tasks) != 1 || tasks[0].Name != "pay rent" {
		t.Fatalf("unexpected tasks: %#v", tasks)
	}
	if g, _ := mgr.Group(tasks[0].EffectiveGroup()); g.Name != "Work" {
		t.Fatalf("task must land in the named group, got %q", tasks[0].EffectiveGroup())
	}
}

func TestPaletteErrorSetsStatus(t *testing.T) {
	m, _, _ := setup(t)

	out := press(t, m, "/", "teleport home", "enter")
	if !out.Status.IsError || out.Status.Text == "" {
		t.Fatalf("unknown command must surface as an error status: %#v", out.Status)
	}
}

func TestGroupDeleteProtectsInbox(t *testing.T) {
	m, mgr, _ := setup(t)

	out := press(t, m, "2", "d")
	if !out.Status.IsError {
		t.Fatal("deleting the inbox must report an error")
	}
	if len(mgr.Groups()) != 1 {
		t.Fatal("the inbox must survive")
	}
}

func TestPrefsToggleHistory(t *testing.T) {
	m, _, store := setup(t)

	press(t, m, "3", "space")
	if !store.Bool(settings.KeyHistoryEnabled) {
		t.Fatal("space in prefs must enable the history log")
	}
}

func TestExternalWriteRefreshesList(t *testing.T) {
	m, mgr, store := setup(t)
	mgr.AddTask("seed", "")
	out := press(t, m, "j") // force a sync pass

	if err := store.SetStringArray(settings.KeyTasks, nil); err != nil {
		t.Fatalf("external write: %v", err)
	}
	out = press(t, out, "k")
	if len(out.taskList.Items()) != 0 {
		t.Fatalf("list must rebuild after an external write, %d items left", len(out.taskList.Items()))
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("PANELTASKS_DB", "/tmp/pt.db")
	t.Setenv("PANELTASKS_HISTORY", "/tmp/pt.jsonl")
	t.Setenv("PANELTASKS_HISTORY_ENABLED", "true")

	cfg := FromEnv()
	if cfg.DBPath != "/tmp/pt.db" || cfg.HistoryPath != "/tmp/pt.jsonl" || !cfg.HistoryEnabled {
		t.Fatalf("unexpected config: %#v", cfg)
	}
}
