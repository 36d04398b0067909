package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"paneltasks/internal/model"
	"paneltasks/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.refreshIfDirty()

	switch msg := msg.(type) {
	case SwitchViewMsg:
		m.CurrentView = msg.View
		m.Status = StatusBar{}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: msg.Text, IsError: msg.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case tea.WindowSizeMsg:
		m.taskList.SetSize(msg.Width-8, msg.Height-6)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.taskList, cmd = m.taskList.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.Quitting = true
		return m, tea.Quit
	}

	if m.Palette.Active {
		return m.handlePaletteKey(msg)
	}
	if m.CaptureMode {
		return m.handleCaptureKey(msg)
	}
	if m.ConfirmClear {
		return m.handleConfirmClearKey(msg)
	}

	switch msg.String() {
	case m.Keys.Quit, "esc":
		if m.HelpVisible {
			m.HelpVisible = false
			return m, nil
		}
		m.Quitting = true
		return m, tea.Quit
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case m.Keys.Tasks:
		return m.Update(SwitchViewMsg{View: ViewTasks})
	case m.Keys.Groups:
		return m.Update(SwitchViewMsg{View: ViewGroups})
	case m.Keys.Prefs:
		return m.Update(SwitchViewMsg{View: ViewPrefs})
	case "/":
		m.Palette.Active = true
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		return m, nil
	}

	switch m.CurrentView {
	case ViewTasks:
		return m.handleTaskKey(msg)
	case ViewGroups:
		return m.handleGroupKey(msg)
	case ViewPrefs:
		return m.handlePrefsKey(msg)
	}
	return m, nil
}

func (m Model) View() string {
	if m.Quitting {
		return "bye\n"
	}

	var body string
	switch m.CurrentView {
	case ViewTasks:
		body = views.RenderTaskPanel(views.TaskPanelData{
			QuickAddView: m.quickAddInput.View(),
			CaptureMode:  m.CaptureMode,
			ListView:     m.taskList.View(),
			FilterLabel:  m.filterLabel(),
			ConfirmClear: m.ConfirmClear,
		})
	case ViewGroups:
		body = views.RenderGroupPanel(m.groupPanelData())
	case ViewPrefs:
		body = views.RenderPrefsPanel(m.prefsPanelData())
	}

	side := views.RenderCommandPalette(m.Palette.Active, m.commandInput.View())
	if m.HelpVisible {
		side = views.RenderMarkdown(helpMarkdown)
	}

	status := m.Status.Text
	if m.Status.IsError && status != "" {
		status = "error: " + status
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("paneltasks (%d)", m.mgr.CountUndone(m.mgr.FilterGroup())),
		Body:       body,
		SidePane:   side,
		StatusLine: status,
		Footer:     "[1]tasks [2]groups [3]prefs [/]command [?]help [q]uit",
	})
}

func taskTitle(task model.Task) string {
	return views.TaskRowLabel(views.TaskRowData{
		Name:      task.Name,
		IsDone:    task.IsDone,
		IsFocused: task.IsFocused,
	})
}

const helpMarkdown = `# paneltasks

## Tasks

- ` + "`a`" + ` capture a new task, ` + "`enter`" + ` to save, ` + "`esc`" + ` to cancel
- ` + "`space`" + ` toggle done, ` + "`f`" + ` toggle focus, ` + "`e`" + ` send to end of its group
- ` + "`d`" + ` delete, ` + "`C`" + ` clear all (asks first)
- ` + "`tab`" + ` cycle the group filter

## Groups

- ` + "`j/k`" + ` move, ` + "`enter`" + ` filter by group, ` + "`d`" + ` delete

## Commands

Open the palette with ` + "`/`" + `. Commands: add, done, focus, rm,
group, filter, clear.
`
