// Package settings abstracts the typed key-value store the widget keeps
// its state in. Arrays are replaced whole on every write; readers never
// see a partially written sequence. Missing keys read as zero values, the
// way a desktop settings service hands out defaults.
package settings

// Well-known keys.
const (
	KeyTasks             = "todos"
	KeyGroups            = "groups"
	KeyLastSelectedGroup = "last-selected-group"
	KeyFilterGroup       = "filter-group"
	KeyHistoryEnabled    = "history-enabled"
	KeyHistoryFile       = "history-file"
)

// Store is the capability surface the manager needs. Change callbacks
// fire synchronously after a successful write of the subscribed key, on
// the writer's goroutine; there is no background delivery.
type Store interface {
	StringArray(key string) []string
	SetStringArray(key string, values []string) error
	String(key string) string
	SetString(key, value string) error
	Bool(key string) bool
	SetBool(key string, value bool) error
	OnChange(key string, fn func())
}
