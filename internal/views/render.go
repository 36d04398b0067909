package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header     string
	Body       string
	SidePane   string
	StatusLine string
	Footer     string
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	focusStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	doneStyle   = lipgloss.NewStyle().Faint(true).Strikethrough(true)
)

func RenderApp(data AppData) string {
	body := panelStyle.Width(52).Render(data.Body)
	row := body
	if data.SidePane != "" {
		row = lipgloss.JoinHorizontal(lipgloss.Top, body, panelStyle.Width(40).Render(data.SidePane))
	}

	status := statusStyle.Render(data.StatusLine)
	if strings.Contains(strings.ToLower(data.StatusLine), "error") {
		status = errorStyle.Render(data.StatusLine)
	}

	lines := []string{
		headerStyle.Render(data.Header),
		row,
		status,
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}

// GroupSwatch renders the group name in its configured color.
func GroupSwatch(name, hexColor string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor)).Render(name)
}
