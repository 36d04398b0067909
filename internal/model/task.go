package model

import (
	"errors"
	"strings"
)

// InboxGroupID is the id of the permanent default group. A task whose
// GroupID is empty belongs to it.
const InboxGroupID = "inbox"

type Task struct {
	Version   int    `json:"version,omitempty"`
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	IsDone    bool   `json:"isDone"`
	IsFocused bool   `json:"isFocused,omitempty"`
	GroupID   string `json:"groupId,omitempty"`
}

// EffectiveGroup resolves the absent-group default.
func (t Task) EffectiveGroup() string {
	if t.GroupID == "" {
		return InboxGroupID
	}
	return t.GroupID
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("model: task name is required")
	}
	if t.Version <= 0 {
		return errors.New("model: task version is required")
	}
	return nil
}
