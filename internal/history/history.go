// Package history appends one JSON line per externally visible action.
// The log is best-effort: it never blocks or fails a mutation, and the
// file logger checks the history-enabled setting at call time so toggling
// the preference takes effect immediately.
package history

import (
	"encoding/json"
	"os"
	"time"

	"paneltasks/internal/settings"
)

type Action string

const (
	ActionAdded        Action = "added"
	ActionRemoved      Action = "removed"
	ActionCompleted    Action = "completed"
	ActionUncompleted  Action = "uncompleted"
	ActionFocused      Action = "focused"
	ActionUnfocused    Action = "unfocused"
	ActionRenamed      Action = "renamed"
	ActionClearedAll   Action = "cleared_all"
	ActionMovedGroup   Action = "moved_group"
	ActionMovedToEnd   Action = "moved_to_end"
	ActionGroupCreated Action = "group_created"
	ActionGroupRenamed Action = "group_renamed"
	ActionGroupDeleted Action = "group_deleted"
)

// Entry is the loosely typed field bag attached to an action.
type Entry struct {
	TaskID  string `json:"taskId,omitempty"`
	Task    string `json:"task,omitempty"`
	GroupID string `json:"groupId,omitempty"`
	Group   string `json:"group,omitempty"`
	OldName string `json:"oldName,omitempty"`
	NewName string `json:"newName,omitempty"`
	Details string `json:"details,omitempty"`
}

type record struct {
	Action Action `json:"action"`
	At     string `json:"at"`
	Entry
}

type Logger interface {
	Log(action Action, entry Entry)
}

type NopLogger struct{}

func (NopLogger) Log(Action, Entry) {}

// FileLogger appends JSONL records to path while the store's
// history-enabled boolean is true.
type FileLogger struct {
	path  string
	store settings.Store
	now   func() time.Time
}

func NewFileLogger(path string, store settings.Store) *FileLogger {
	return &FileLogger{path: path, store: store, now: time.Now}
}

func (l *FileLogger) Log(action Action, entry Entry) {
	if l.path == "" || l.store == nil || !l.store.Bool(settings.KeyHistoryEnabled) {
		return
	}
	line, err := json.Marshal(record{
		Action: action,
		At:     l.now().UTC().Format(time.RFC3339),
		Entry:  entry,
	})
	if err != nil {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = f.Write(append(line, '\n'))
}
