// Package manager mediates every read and write of the task and group
// keys. It keeps lazily rebuilt caches over the parsed arrays, applies
// schema migration on read, and enforces the ordering invariants: the
// focused task holds index 0 and the inbox group always exists.
//
// Mutations perform exactly one whole-array write (group deletion: two,
// tasks then groups). Index arguments out of range degrade to silent
// no-ops; storage write failures surface through the store's own error
// channel, never here.
package manager

import (
	"fmt"

	"paneltasks/internal/history"
	"paneltasks/internal/listops"
	"paneltasks/internal/model"
	"paneltasks/internal/settings"
)

// MaxGroups caps the group collection, inbox included.
const MaxGroups = 10

type Manager struct {
	store settings.Store
	log   history.Logger

	tasks      []model.Task
	tasksValid bool
	// stored holds exactly what the groups key contains; derived is the
	// display view with the inbox synthesized in front when absent.
	storedGroups []model.Group
	groups       []model.Group
	groupsValid  bool
}

func New(store settings.Store, log history.Logger) *Manager {
	if log == nil {
		log = history.NopLogger{}
	}
	m := &Manager{store: store, log: log}
	store.OnChange(settings.KeyTasks, func() { m.tasksValid = false })
	store.OnChange(settings.KeyGroups, func() { m.groupsValid = false })
	return m
}

// Tasks returns the display-ordered task sequence.
func (m *Manager) Tasks() []model.Task {
	tasks := m.loadTasks()
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	return out
}

// Groups returns the display-ordered group sequence. The inbox group is
// synthesized in front when the stored array lacks it.
func (m *Manager) Groups() []model.Group {
	groups := m.loadGroups()
	out := make([]model.Group, len(groups))
	copy(out, groups)
	return out
}

func (m *Manager) CountUndone(groupID string) int {
	return listops.CountUndone(m.loadTasks(), groupID)
}

// AddTask creates and stores a new task. It lands at index 0 unless the
// current front task is focused, in which case it lands at index 1.
func (m *Manager) AddTask(name, groupID string) model.Task {
	tasks := m.loadTasks()
	task := model.Task{
		Version: model.TaskSchemaVersion,
		ID:      model.NewTaskID(),
		Name:    name,
		GroupID: groupID,
	}
	next := listops.Insert(tasks, task, listops.InsertPosition(tasks))
	m.writeTasks(next)
	m.log.Log(history.ActionAdded, history.Entry{
		TaskID:  task.ID,
		Task:    task.Name,
		GroupID: task.EffectiveGroup(),
	})
	return task
}

func (m *Manager) RemoveTask(index int) {
	tasks := m.loadTasks()
	if index < 0 || index >= len(tasks) {
		return
	}
	removed := tasks[index]
	next, _ := listops.Remove(tasks, index)
	m.writeTasks(next)
	m.log.Log(history.ActionRemoved, history.Entry{
		TaskID: removed.ID,
		Task:   removed.Name,
	})
}

// UpdateTask replaces the task at index. Setting IsFocused on a task away
// from the front relocates it there by swapping with the current front
// element; no other task is inspected or unfocused.
func (m *Manager) UpdateTask(index int, updated model.Task) {
	tasks := m.loadTasks()
	if index < 0 || index >= len(tasks) {
		return
	}
	old := tasks[index]
	next := listops.Replace(tasks, index, updated)
	if updated.IsFocused && index != 0 {
		next = listops.SwapToFront(next, index)
	}
	m.writeTasks(next)
	m.logTaskDiff(old, updated)
}

// MoveToEndOfGroup sends the task at index behind the last later task in
// its effective group. Already-last tasks and bad indexes are no-ops.
func (m *Manager) MoveToEndOfGroup(index int) {
	tasks := m.loadTasks()
	next, moved := listops.MoveToEndOfGroup(tasks, index)
	if !moved {
		return
	}
	task := tasks[index]
	m.writeTasks(next)
	m.log.Log(history.ActionMovedToEnd, history.Entry{
		TaskID:  task.ID,
		Task:    task.Name,
		GroupID: task.EffectiveGroup(),
	})
}

// ClearAllTasks empties the collection in a single write, regardless of
// size, so the store sees one change instead of N removals.
func (m *Manager) ClearAllTasks() {
	m.writeTasks(nil)
	m.log.Log(history.ActionClearedAll, history.Entry{})
}

// AddGroup appends a new group. Fails without writing on a malformed
// color, or once the stored collection holds MaxGroups records; the
// implicit inbox does not count unless it has been customized into the
// store.
func (m *Manager) AddGroup(name, color string) bool {
	if !model.IsHexColor(color) {
		return false
	}
	m.loadGroups()
	if len(m.storedGroups) >= MaxGroups {
		return false
	}
	group := model.Group{
		Version: model.GroupSchemaVersion,
		ID:      model.NewGroupID(),
		Name:    name,
		Color:   color,
	}
	m.writeGroups(append(m.storedGroups, group))
	m.log.Log(history.ActionGroupCreated, history.Entry{
		GroupID: group.ID,
		Group:   group.Name,
	})
	return true
}

// UpdateGroup replaces name and color in place, preserving the stored
// version. The rename event fires only when the name actually changed.
// Customizing the implicit inbox persists it as a record.
func (m *Manager) UpdateGroup(id, name, color string) bool {
	groups := m.loadGroups()
	index := -1
	for i, g := range groups {
		if g.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return false
	}
	oldName := groups[index].Name

	next := make([]model.Group, len(m.storedGroups))
	copy(next, m.storedGroups)
	storedIndex := -1
	for i, g := range next {
		if g.ID == id {
			storedIndex = i
			break
		}
	}
	if storedIndex < 0 {
		// The synthesized inbox: persist it at the front.
		inbox := model.Inbox()
		inbox.Name = name
		inbox.Color = color
		next = append([]model.Group{inbox}, next...)
	} else {
		next[storedIndex].Name = name
		next[storedIndex].Color = color
	}
	m.writeGroups(next)
	if oldName != name {
		m.log.Log(history.ActionGroupRenamed, history.Entry{
			GroupID: id,
			OldName: oldName,
			NewName: name,
		})
	}
	return true
}

// RemoveGroup deletes a group after reassigning its tasks to the inbox.
// The inbox itself cannot be removed. Two sequential writes: tasks, then
// groups.
func (m *Manager) RemoveGroup(id string) bool {
	if id == model.InboxGroupID {
		return false
	}
	m.loadGroups()
	index := -1
	for i, g := range m.storedGroups {
		if g.ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return false
	}
	stored := m.storedGroups
	removed := stored[index]

	reassigned, _ := listops.ReassignGroup(m.loadTasks(), id, model.InboxGroupID)
	m.writeTasks(reassigned)

	next := make([]model.Group, 0, len(stored)-1)
	next = append(next, stored[:index]...)
	next = append(next, stored[index+1:]...)
	m.writeGroups(next)

	m.log.Log(history.ActionGroupDeleted, history.Entry{
		GroupID: removed.ID,
		Group:   removed.Name,
	})
	return true
}

func (m *Manager) Group(id string) (model.Group, bool) {
	for _, g := range m.loadGroups() {
		if g.ID == id {
			return g, true
		}
	}
	return model.Group{}, false
}

// LastSelectedGroup defaults to the inbox.
func (m *Manager) LastSelectedGroup() string {
	if v := m.store.String(settings.KeyLastSelectedGroup); v != "" {
		return v
	}
	return model.InboxGroupID
}

func (m *Manager) SetLastSelectedGroup(id string) {
	_ = m.store.SetString(settings.KeyLastSelectedGroup, id)
}

// FilterGroup is empty when no filter is active.
func (m *Manager) FilterGroup() string {
	return m.store.String(settings.KeyFilterGroup)
}

func (m *Manager) SetFilterGroup(id string) {
	_ = m.store.SetString(settings.KeyFilterGroup, id)
}

func (m *Manager) loadTasks() []model.Task {
	if m.tasksValid {
		return m.tasks
	}
	raw := m.store.StringArray(settings.KeyTasks)
	tasks, _ := model.DecodeTasks(raw)
	migrated := false
	for i := range tasks {
		var changed bool
		tasks[i], changed = model.MigrateTask(tasks[i], model.TaskSchemaVersion)
		migrated = migrated || changed
	}
	if migrated {
		// One-shot upgrade: persist so later reads see current records.
		_ = m.store.SetStringArray(settings.KeyTasks, model.EncodeTasks(tasks))
	}
	m.tasks = tasks
	m.tasksValid = true
	return m.tasks
}

func (m *Manager) loadGroups() []model.Group {
	if m.groupsValid {
		return m.groups
	}
	raw := m.store.StringArray(settings.KeyGroups)
	stored, _ := model.DecodeGroups(raw)
	migrated := false
	for i := range stored {
		var changed bool
		stored[i], changed = model.MigrateGroup(stored[i], model.GroupSchemaVersion)
		migrated = migrated || changed
	}
	if migrated {
		_ = m.store.SetStringArray(settings.KeyGroups, model.EncodeGroups(stored))
	}
	hasInbox := false
	for _, g := range stored {
		if g.ID == model.InboxGroupID {
			hasInbox = true
			break
		}
	}
	groups := stored
	if !hasInbox {
		groups = append([]model.Group{model.Inbox()}, stored...)
	}
	m.storedGroups = stored
	m.groups = groups
	m.groupsValid = true
	return m.groups
}

func (m *Manager) writeTasks(tasks []model.Task) {
	// The change signal fired by the write invalidates the cache; the
	// next read re-derives from the store.
	_ = m.store.SetStringArray(settings.KeyTasks, model.EncodeTasks(tasks))
}

func (m *Manager) writeGroups(groups []model.Group) {
	_ = m.store.SetStringArray(settings.KeyGroups, model.EncodeGroups(groups))
}

func (m *Manager) logTaskDiff(old, updated model.Task) {
	if old.Name != updated.Name {
		m.log.Log(history.ActionRenamed, history.Entry{
			TaskID:  updated.ID,
			OldName: old.Name,
			NewName: updated.Name,
		})
	}
	if old.IsDone != updated.IsDone {
		action := history.ActionCompleted
		if !updated.IsDone {
			action = history.ActionUncompleted
		}
		m.log.Log(action, history.Entry{TaskID: updated.ID, Task: updated.Name})
	}
	if old.IsFocused != updated.IsFocused {
		action := history.ActionFocused
		if !updated.IsFocused {
			action = history.ActionUnfocused
		}
		m.log.Log(action, history.Entry{TaskID: updated.ID, Task: updated.Name})
	}
	if old.EffectiveGroup() != updated.EffectiveGroup() {
		m.log.Log(history.ActionMovedGroup, history.Entry{
			TaskID:  updated.ID,
			Task:    updated.Name,
			GroupID: updated.EffectiveGroup(),
			Details: fmt.Sprintf("%s -> %s", m.groupLabel(old.EffectiveGroup()), m.groupLabel(updated.EffectiveGroup())),
		})
	}
}

func (m *Manager) groupLabel(id string) string {
	if g, ok := m.Group(id); ok {
		return g.Name
	}
	return id
}
