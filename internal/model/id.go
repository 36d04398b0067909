package model

import "github.com/google/uuid"

// Ids are opaque; the prefix only helps when eyeballing the raw settings
// arrays. Older stores hold timestamp-based ids, which remain valid.

func NewTaskID() string {
	return "task-" + uuid.NewString()
}

func NewGroupID() string {
	return "group-" + uuid.NewString()
}
