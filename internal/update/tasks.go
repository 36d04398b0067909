package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleTaskKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "a", "i":
		m.CaptureMode = true
		m.quickAddInput.SetValue("")
		m.quickAddInput.Focus()
		return m, nil
	case " ":
		return m.toggleDone()
	case "f":
		return m.toggleFocus()
	case "e":
		if index := m.selectedTaskIndex(); index >= 0 {
			m.mgr.MoveToEndOfGroup(index)
			m.refreshIfDirty()
		}
		return m, nil
	case "d":
		return m.deleteSelected()
	case "C":
		m.ConfirmClear = true
		return m, nil
	case "tab":
		return m.cycleFilter()
	}

	var cmd tea.Cmd
	m.taskList, cmd = m.taskList.Update(msg)
	return m, cmd
}

func (m Model) handleCaptureKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.CaptureMode = false
		m.quickAddInput.Blur()
		return m, nil
	case tea.KeyEnter:
		name := strings.TrimSpace(m.quickAddInput.Value())
		m.CaptureMode = false
		m.quickAddInput.Blur()
		if name == "" {
			return m, nil
		}
		task := m.mgr.AddTask(name, m.mgr.LastSelectedGroup())
		m.refreshIfDirty()
		m.Status = StatusBar{Text: fmt.Sprintf("added %q", task.Name)}
		return m, nil
	}

	var cmd tea.Cmd
	m.quickAddInput, cmd = m.quickAddInput.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmClearKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		m.ConfirmClear = false
		m.mgr.ClearAllTasks()
		m.refreshIfDirty()
		m.Status = StatusBar{Text: "all tasks cleared"}
	case "n", "esc":
		m.ConfirmClear = false
	}
	return m, nil
}

func (m Model) toggleDone() (tea.Model, tea.Cmd) {
	index := m.selectedTaskIndex()
	if index < 0 {
		return m, nil
	}
	tasks := m.mgr.Tasks()
	task := tasks[index]
	task.IsDone = !task.IsDone
	m.mgr.UpdateTask(index, task)
	m.refreshIfDirty()
	return m, nil
}

func (m Model) toggleFocus() (tea.Model, tea.Cmd) {
	index := m.selectedTaskIndex()
	if index < 0 {
		return m, nil
	}
	tasks := m.mgr.Tasks()
	task := tasks[index]
	task.IsFocused = !task.IsFocused
	m.mgr.UpdateTask(index, task)
	m.refreshIfDirty()
	return m, nil
}

func (m Model) deleteSelected() (tea.Model, tea.Cmd) {
	index := m.selectedTaskIndex()
	if index < 0 {
		return m, nil
	}
	name := m.mgr.Tasks()[index].Name
	m.mgr.RemoveTask(index)
	m.refreshIfDirty()
	m.Status = StatusBar{Text: fmt.Sprintf("removed %q", name)}
	return m, nil
}

// cycleFilter advances the group filter through all -> each group -> all.
func (m Model) cycleFilter() (tea.Model, tea.Cmd) {
	groups := m.mgr.Groups()
	order := make([]string, 0, len(groups)+1)
	order = append(order, "")
	for _, g := range groups {
		order = append(order, g.ID)
	}

	current := 0
	for i, id := range order {
		if id == m.mgr.FilterGroup() {
			current = i
			break
		}
	}
	next := order[(current+1)%len(order)]

	m.mgr.SetFilterGroup(next)
	if next != "" {
		m.mgr.SetLastSelectedGroup(next)
	}
	m.rebuildTaskItems()
	m.Status = StatusBar{Text: "filter: " + m.filterLabel()}
	return m, nil
}
