package update

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"

	"paneltasks/internal/manager"
	"paneltasks/internal/settings"
)

type View string

const (
	ViewTasks  View = "Tasks"
	ViewGroups View = "Groups"
	ViewPrefs  View = "Prefs"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type KeyMap struct {
	Tasks  string
	Groups string
	Prefs  string
	Help   string
	Quit   string
}

type CommandPaletteState struct {
	Active bool
}

// refreshFlag is shared by pointer across model copies so the store's
// change signal can mark the list stale. The rebuild itself waits for
// the next update tick; signals never render.
type refreshFlag struct {
	dirty bool
}

type listItem struct {
	title       string
	description string
}

func (i listItem) FilterValue() string { return i.title + " " + i.description }
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.description }

type Model struct {
	CurrentView  View
	Status       StatusBar
	Keys         KeyMap
	HelpVisible  bool
	Quitting     bool
	CaptureMode  bool
	ConfirmClear bool
	Palette      CommandPaletteState
	GroupCursor  int

	mgr   *manager.Manager
	store settings.Store
	flag  *refreshFlag

	taskList      list.Model
	quickAddInput textinput.Model
	commandInput  textinput.Model
	helpModel     help.Model
	// visible maps list positions to absolute task indexes under the
	// active filter.
	visible []int
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

func NewModel(mgr *manager.Manager, store settings.Store) Model {
	m := Model{
		CurrentView: ViewTasks,
		Keys: KeyMap{
			Tasks:  "1",
			Groups: "2",
			Prefs:  "3",
			Help:   "?",
			Quit:   "q",
		},
		mgr:   mgr,
		store: store,
		flag:  &refreshFlag{dirty: true},
	}
	store.OnChange(settings.KeyTasks, func() { m.flag.dirty = true })
	store.OnChange(settings.KeyGroups, func() { m.flag.dirty = true })

	m.taskList = list.New([]list.Item{}, list.NewDefaultDelegate(), 48, 14)
	m.taskList.Title = "Tasks"
	m.taskList.SetShowHelp(false)
	m.taskList.SetFilteringEnabled(false)

	m.quickAddInput = textinput.New()
	m.quickAddInput.Prompt = "add> "
	m.quickAddInput.CharLimit = 256
	m.quickAddInput.Width = 40

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 44

	m.helpModel = help.New()

	m.rebuildTaskItems()
	m.flag.dirty = false
	return m
}

func (m *Model) refreshIfDirty() {
	if !m.flag.dirty {
		return
	}
	m.rebuildTaskItems()
	m.flag.dirty = false
}

func (m *Model) rebuildTaskItems() {
	tasks := m.mgr.Tasks()
	filter := m.mgr.FilterGroup()
	items := make([]list.Item, 0, len(tasks))
	m.visible = m.visible[:0]
	for i, task := range tasks {
		if filter != "" && task.EffectiveGroup() != filter {
			continue
		}
		m.visible = append(m.visible, i)
		items = append(items, listItem{
			title:       taskTitle(task),
			description: m.groupLabel(task.EffectiveGroup()),
		})
	}
	m.taskList.SetItems(items)
	if m.taskList.Index() >= len(items) && len(items) > 0 {
		m.taskList.Select(len(items) - 1)
	}
	if m.GroupCursor >= len(m.mgr.Groups()) {
		m.GroupCursor = 0
	}
}

// selectedTaskIndex resolves the list cursor to an absolute index in the
// task sequence, or -1 with nothing visible.
func (m Model) selectedTaskIndex() int {
	if len(m.visible) == 0 {
		return -1
	}
	cursor := m.taskList.Index()
	if cursor < 0 || cursor >= len(m.visible) {
		return -1
	}
	return m.visible[cursor]
}

func (m Model) groupLabel(id string) string {
	if g, ok := m.mgr.Group(id); ok {
		return g.Name
	}
	return id
}

func (m Model) filterLabel() string {
	filter := m.mgr.FilterGroup()
	if filter == "" {
		return "all"
	}
	return m.groupLabel(filter)
}
