package views

import (
	"fmt"
	"strings"
)

type TaskRowData struct {
	Name      string
	IsDone    bool
	IsFocused bool
	Group     string
}

type TaskPanelData struct {
	QuickAddView string
	CaptureMode  bool
	ListView     string
	FilterLabel  string
	ConfirmClear bool
}

type GroupRowData struct {
	Name      string
	Color     string
	ID        string
	Undone    int
	IsInbox   bool
	IsCurrent bool
}

type GroupPanelData struct {
	Rows []GroupRowData
}

type PrefsPanelData struct {
	HistoryEnabled bool
	HistoryPath    string
}

func RenderTaskPanel(data TaskPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("tasks (%s):\n", data.FilterLabel))
	if data.CaptureMode {
		b.WriteString(data.QuickAddView + "\n")
	}
	b.WriteString("actions: [a]dd [space]done [f]ocus [e]nd-of-group [d]elete [tab]filter\n")
	b.WriteString(data.ListView)
	if data.ConfirmClear {
		b.WriteString("\n\nclear all tasks? [y]es / [n]o")
	}
	return strings.TrimSpace(b.String())
}

// TaskRowLabel is the one-line form of a task used as a list title.
func TaskRowLabel(row TaskRowData) string {
	box := "[ ]"
	if row.IsDone {
		box = "[x]"
	}
	label := fmt.Sprintf("%s %s", box, row.Name)
	if row.IsDone {
		label = fmt.Sprintf("%s %s", box, doneStyle.Render(row.Name))
	}
	if row.IsFocused {
		label = focusStyle.Render("* ") + label
	}
	return label
}

func RenderGroupPanel(data GroupPanelData) string {
	var b strings.Builder
	b.WriteString("groups:\n")
	b.WriteString("actions: [j/k]move [d]elete [enter]filter\n")
	for _, row := range data.Rows {
		cursor := " "
		if row.IsCurrent {
			cursor = ">"
		}
		marker := ""
		if row.IsInbox {
			marker = " (inbox)"
		}
		b.WriteString(fmt.Sprintf("%s %s%s - %d open\n", cursor, GroupSwatch(row.Name, row.Color), marker, row.Undone))
	}
	return strings.TrimSpace(b.String())
}

func RenderPrefsPanel(data PrefsPanelData) string {
	enabled := "off"
	if data.HistoryEnabled {
		enabled = "on"
	}
	var b strings.Builder
	b.WriteString("preferences:\n")
	b.WriteString("actions: [space]toggle\n")
	b.WriteString(fmt.Sprintf("history log: %s\n", enabled))
	if data.HistoryPath != "" {
		b.WriteString(fmt.Sprintf("history file: %s\n", data.HistoryPath))
	}
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return "command: " + inputView
}
