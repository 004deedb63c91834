package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/techskyline/academy/internal/ui/theme"
)

// SkillMeter displays a named skill as a horizontal bar out of 100.
type SkillMeter struct {
	Name  string
	Value int
	Width int
}

// NewSkillMeter creates a skill meter. Value is clamped to [0, 100].
func NewSkillMeter(name string, value, width int) SkillMeter {
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}
	return SkillMeter{Name: name, Value: value, Width: width}
}

// View renders the meter.
func (s SkillMeter) View() string {
	label := lipgloss.NewStyle().Foreground(theme.Text).Render(s.Name)

	valueText := fmt.Sprintf("  %d/100", s.Value)
	barWidth := s.Width - lipgloss.Width(label) - len(valueText) - 2
	if barWidth < 4 {
		barWidth = 4
	}

	filled := barWidth * s.Value / 100
	if filled > barWidth {
		filled = barWidth
	}
	empty := barWidth - filled

	bar := lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().
			Background(theme.Border).
			Render(strings.Repeat(" ", empty))

	return label + "  " + bar + lipgloss.NewStyle().Foreground(theme.TextDim).Render(valueText)
}
