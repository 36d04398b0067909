package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidColor = errors.New("model: invalid group color")

type Group struct {
	Version int    `json:"version,omitempty"`
	ID      string `json:"id"`
	Name    string `json:"name"`
	Color   string `json:"color"`
}

// Inbox returns the well-known default group record.
func Inbox() Group {
	return Group{
		Version: GroupSchemaVersion,
		ID:      InboxGroupID,
		Name:    "Inbox",
		Color:   "#3584e4",
	}
}

func (g Group) Validate() error {
	if strings.TrimSpace(g.ID) == "" {
		return errors.New("model: group id is required")
	}
	if strings.TrimSpace(g.Name) == "" {
		return errors.New("model: group name is required")
	}
	if !IsHexColor(g.Color) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, g.Color)
	}
	return nil
}

// IsHexColor accepts #rgb and #rrggbb.
func IsHexColor(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	if s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
