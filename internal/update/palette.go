package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"paneltasks/internal/commands"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.Palette.Active = false
		m.commandInput.Blur()
		return m, nil
	case tea.KeyEnter:
		input := m.commandInput.Value()
		m.Palette.Active = false
		m.commandInput.Blur()
		return m.runCommand(input)
	}

	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	return m, cmd
}

func (m Model) runCommand(input string) (tea.Model, tea.Cmd) {
	cmd, err := commands.Parse(input)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	res, err := commands.Execute(cmd, m.commandHandlers())
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	m.refreshIfDirty()
	m.rebuildTaskItems()
	m.Status = StatusBar{Text: res.Message}
	return m, nil
}

func (m *Model) commandHandlers() commands.Handlers {
	return commands.Handlers{
		Add: func(args commands.AddArgs) (commands.Result, error) {
			groupID := m.mgr.LastSelectedGroup()
			if args.Group != "" {
				id, ok := m.resolveGroup(args.Group)
				if !ok {
					return commands.Result{}, &commands.CommandError{
						Code:    commands.ErrCodeInvalidArgument,
						Message: fmt.Sprintf("unknown group: %s", args.Group),
					}
				}
				groupID = id
			}
			task := m.mgr.AddTask(args.Name, groupID)
			return commands.Result{Message: fmt.Sprintf("added %q", task.Name)}, nil
		},
		Done: func(args commands.IndexArgs) (commands.Result, error) {
			tasks := m.mgr.Tasks()
			if args.Index >= len(tasks) {
				return commands.Result{}, indexError(args.Index)
			}
			task := tasks[args.Index]
			task.IsDone = !task.IsDone
			m.mgr.UpdateTask(args.Index, task)
			return commands.Result{Message: fmt.Sprintf("toggled %q", task.Name)}, nil
		},
		Focus: func(args commands.IndexArgs) (commands.Result, error) {
			tasks := m.mgr.Tasks()
			if args.Index >= len(tasks) {
				return commands.Result{}, indexError(args.Index)
			}
			task := tasks[args.Index]
			task.IsFocused = !task.IsFocused
			m.mgr.UpdateTask(args.Index, task)
			return commands.Result{Message: fmt.Sprintf("focus toggled on %q", task.Name)}, nil
		},
		Remove: func(args commands.IndexArgs) (commands.Result, error) {
			tasks := m.mgr.Tasks()
			if args.Index >= len(tasks) {
				return commands.Result{}, indexError(args.Index)
			}
			name := tasks[args.Index].Name
			m.mgr.RemoveTask(args.Index)
			return commands.Result{Message: fmt.Sprintf("removed %q", name)}, nil
		},
		Group: func(args commands.GroupArgs) (commands.Result, error) {
			if !m.mgr.AddGroup(args.Name, args.Color) {
				return commands.Result{}, &commands.CommandError{
					Code:    commands.ErrCodeInvalidArgument,
					Message: "group could not be created (limit reached or bad color)",
				}
			}
			return commands.Result{Message: fmt.Sprintf("created group %q", args.Name)}, nil
		},
		Filter: func(args commands.FilterArgs) (commands.Result, error) {
			if args.Group == "" {
				m.mgr.SetFilterGroup("")
				return commands.Result{Message: "filter: all"}, nil
			}
			id, ok := m.resolveGroup(args.Group)
			if !ok {
				return commands.Result{}, &commands.CommandError{
					Code:    commands.ErrCodeInvalidArgument,
					Message: fmt.Sprintf("unknown group: %s", args.Group),
				}
			}
			m.mgr.SetFilterGroup(id)
			m.mgr.SetLastSelectedGroup(id)
			return commands.Result{Message: "filter: " + m.groupLabel(id)}, nil
		},
		Clear: func() (commands.Result, error) {
			m.mgr.ClearAllTasks()
			return commands.Result{Message: "all tasks cleared"}, nil
		},
	}
}

// resolveGroup accepts a group id or a case-insensitive group name.
func (m Model) resolveGroup(ref string) (string, bool) {
	for _, g := range m.mgr.Groups() {
		if g.ID == ref || strings.EqualFold(g.Name, ref) {
			return g.ID, true
		}
	}
	return "", false
}

func indexError(index int) error {
	return &commands.CommandError{
		Code:    commands.ErrCodeInvalidArgument,
		Message: fmt.Sprintf("no task at position %d", index+1),
	}
}
