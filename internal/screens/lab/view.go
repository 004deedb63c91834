package lab

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/techskyline/academy/internal/ui/layout"
	"github.com/techskyline/academy/internal/ui/theme"
)

func (m *Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(m.lab.Title+"  "+theme.LabBadge.Render("LAB"), m.level, m.xp, m.width)
	footer := layout.RenderFooter(m.keyHints(), m.width)
	v.SetContent(layout.RenderFrame(header, m.content(), footer, m.width, m.height))
	return v
}

func (m *Model) keyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch editor"},
		{Key: "Ctrl+R", Description: "Run"},
		{Key: "Esc", Description: "Exit"},
	}
}

func (m *Model) content() string {
	editors := m.system.View() + "\n\n" + m.user.View()

	var outputPane string
	switch {
	case m.running:
		outputPane = theme.Hint.Render("Running...")
	case m.output != "":
		outputPane = theme.Subtitle.Render("Output") + "\n" +
			theme.Card.Width(min(m.width-8, 76)).Render(theme.Body.Render(m.output))
	default:
		outputPane = theme.Hint.Render(m.lab.Overview)
	}

	body := editors + "\n\n" + outputPane
	return lipgloss.NewStyle().Padding(1, 4).Render(body)
}
