package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/techskyline/academy/internal/ui/theme"
)

// PromptBox wraps bubbles/textarea for editing prompts in the lab.
type PromptBox struct {
	Label string
	Model textarea.Model
}

// NewPromptBox creates a labelled multi-line prompt editor.
func NewPromptBox(label, initial string, width, height int) PromptBox {
	ta := textarea.New()
	ta.SetValue(initial)
	ta.SetWidth(width)
	ta.SetHeight(height)
	return PromptBox{Label: label, Model: ta}
}

// Focus gives the editor keyboard focus.
func (p *PromptBox) Focus() tea.Cmd {
	return p.Model.Focus()
}

// Blur removes keyboard focus.
func (p *PromptBox) Blur() {
	p.Model.Blur()
}

// Focused reports whether the editor has focus.
func (p PromptBox) Focused() bool {
	return p.Model.Focused()
}

// Update handles messages.
func (p PromptBox) Update(msg tea.Msg) (PromptBox, tea.Cmd) {
	var cmd tea.Cmd
	p.Model, cmd = p.Model.Update(msg)
	return p, cmd
}

// View renders the label and editor.
func (p PromptBox) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true)
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
	if p.Focused() {
		border = border.BorderForeground(theme.Primary)
	}
	return labelStyle.Render(p.Label) + "\n" + border.Render(p.Model.View())
}

// Value returns the current text.
func (p PromptBox) Value() string {
	return p.Model.Value()
}
