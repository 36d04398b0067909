package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"paneltasks/internal/model"
	"paneltasks/internal/settings"
	"paneltasks/internal/views"
)

func (m Model) handleGroupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	groups := m.mgr.Groups()

	switch msg.String() {
	case "j", "down":
		if m.GroupCursor < len(groups)-1 {
			m.GroupCursor++
		}
		return m, nil
	case "k", "up":
		if m.GroupCursor > 0 {
			m.GroupCursor--
		}
		return m, nil
	case "enter":
		if m.GroupCursor < len(groups) {
			selected := groups[m.GroupCursor]
			m.mgr.SetFilterGroup(selected.ID)
			m.mgr.SetLastSelectedGroup(selected.ID)
			m.rebuildTaskItems()
			m.CurrentView = ViewTasks
			m.Status = StatusBar{Text: "filter: " + selected.Name}
		}
		return m, nil
	case "d":
		if m.GroupCursor < len(groups) {
			target := groups[m.GroupCursor]
			if !m.mgr.RemoveGroup(target.ID) {
				m.Status = StatusBar{Text: "the inbox cannot be removed", IsError: true}
				return m, nil
			}
			m.refreshIfDirty()
			m.Status = StatusBar{Text: fmt.Sprintf("removed group %q", target.Name)}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) groupPanelData() views.GroupPanelData {
	groups := m.mgr.Groups()
	rows := make([]views.GroupRowData, 0, len(groups))
	for i, g := range groups {
		rows = append(rows, views.GroupRowData{
			Name:      g.Name,
			Color:     g.Color,
			ID:        g.ID,
			Undone:    m.mgr.CountUndone(g.ID),
			IsInbox:   g.ID == model.InboxGroupID,
			IsCurrent: i == m.GroupCursor,
		})
	}
	return views.GroupPanelData{Rows: rows}
}

func (m Model) handlePrefsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ", "enter":
		enabled := !m.store.Bool(settings.KeyHistoryEnabled)
		if err := m.store.SetBool(settings.KeyHistoryEnabled, enabled); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		state := "disabled"
		if enabled {
			state = "enabled"
		}
		m.Status = StatusBar{Text: "history log " + state}
	}
	return m, nil
}

func (m Model) prefsPanelData() views.PrefsPanelData {
	return views.PrefsPanelData{
		HistoryEnabled: m.store.Bool(settings.KeyHistoryEnabled),
		HistoryPath:    m.store.String(settings.KeyHistoryFile),
	}
}
