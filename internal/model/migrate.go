package model

// Current schema versions stamped onto stored records. Records without a
// version field decode with Version == 0 and are treated as the oldest
// known schema.
const (
	TaskSchemaVersion  = 1
	GroupSchemaVersion = 1
)

// MigrateTask upgrades a legacy task record to the given schema version.
// The oldest task schema carried name/isDone/isFocused only, so migration
// assigns a fresh id and places the task in the inbox. Returns the record
// and whether it changed; already-current records pass through untouched.
func MigrateTask(t Task, version int) (Task, bool) {
	if t.Version >= version {
		return t, false
	}
	if t.ID == "" {
		t.ID = NewTaskID()
	}
	if t.GroupID == "" {
		t.GroupID = InboxGroupID
	}
	t.Version = version
	return t, true
}

// MigrateGroup stamps the schema version. Legacy groups already carried
// id/name/color, so nothing else changes.
func MigrateGroup(g Group, version int) (Group, bool) {
	if g.Version >= version {
		return g, false
	}
	g.Version = version
	return g, true
}
