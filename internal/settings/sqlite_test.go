package settings

import (
	"path/filepath"
	"testing"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "paneltasks-test.db")
	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStoreMissingKeysReadZero(t *testing.T) {
	store := setupStore(t)
	if got := store.StringArray(KeyTasks); len(got) != 0 {
		t.Fatalf("expected empty array, got %v", got)
	}
	if got := store.String(KeyLastSelectedGroup); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
	if store.Bool(KeyHistoryEnabled) {
		t.Fatal("expected false for missing bool")
	}
	if err := store.Err(); err != nil {
		t.Fatalf("missing keys must not record errors: %v", err)
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := setupStore(t)

	if err := store.SetStringArray(KeyTasks, []string{`{"name":"a"}`, `{"name":"b"}`}); err != nil {
		t.Fatalf("set array: %v", err)
	}
	got := store.StringArray(KeyTasks)
	if len(got) != 2 || got[0] != `{"name":"a"}` {
		t.Fatalf("unexpected array: %v", got)
	}

	// Whole-array replace, not append.
	if err := store.SetStringArray(KeyTasks, []string{`{"name":"c"}`}); err != nil {
		t.Fatalf("replace array: %v", err)
	}
	got = store.StringArray(KeyTasks)
	if len(got) != 1 || got[0] != `{"name":"c"}` {
		t.Fatalf("expected replaced array, got %v", got)
	}

	if err := store.SetString(KeyFilterGroup, "work"); err != nil {
		t.Fatalf("set string: %v", err)
	}
	if store.String(KeyFilterGroup) != "work" {
		t.Fatalf("unexpected string: %q", store.String(KeyFilterGroup))
	}

	if err := store.SetBool(KeyHistoryEnabled, true); err != nil {
		t.Fatalf("set bool: %v", err)
	}
	if !store.Bool(KeyHistoryEnabled) {
		t.Fatal("expected history-enabled true")
	}
}

func TestSQLiteStoreChangeSignal(t *testing.T) {
	store := setupStore(t)
	fired := 0
	store.OnChange(KeyTasks, func() { fired++ })
	store.OnChange(KeyGroups, func() { t.Fatal("groups listener must not fire") })

	if err := store.SetStringArray(KeyTasks, []string{"x"}); err != nil {
		t.Fatalf("set array: %v", err)
	}
	if fired != 1 {
		t.Fatalf("expected one change signal, got %d", fired)
	}
}

func TestSQLiteStorePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")
	first, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := first.SetString(KeyLastSelectedGroup, "work"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	second, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()
	if got := second.String(KeyLastSelectedGroup); got != "work" {
		t.Fatalf("expected persisted value, got %q", got)
	}
}

func TestMemoryStoreWriteCountAndSignals(t *testing.T) {
	store := NewMemoryStore()
	fired := 0
	store.OnChange(KeyTasks, func() { fired++ })

	if err := store.SetStringArray(KeyTasks, []string{"a"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.SetStringArray(KeyTasks, nil); err != nil {
		t.Fatalf("set: %v", err)
	}
	if store.WriteCount(KeyTasks) != 2 {
		t.Fatalf("expected 2 writes, got %d", store.WriteCount(KeyTasks))
	}
	if fired != 2 {
		t.Fatalf("expected 2 signals, got %d", fired)
	}

	arr := store.StringArray(KeyTasks)
	if len(arr) != 0 {
		t.Fatalf("expected cleared array, got %v", arr)
	}
}
