package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/techskyline/academy/internal/ui/theme"
)

var optionLabels = [...]string{"A", "B", "C", "D", "E", "F"}

// MultiChoice presents one quiz question with lettered answer options.
// After submission it locks and repaints the options as a verdict: the
// correct answer highlighted, a wrong pick marked in the error color.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
}

// NewMultiChoice creates a selector with the cursor on the first option.
func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

func (m MultiChoice) Init() tea.Cmd { return nil }

// Update moves the cursor and records the answer on enter. Input after
// submission is ignored so the verdict cannot be changed.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
		m.ChosenIndex = m.Selected
	}

	return m, nil
}

func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		cursor := "  "
		if i == m.Selected && !m.Submitted {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", cursor, optionLabel(i), opt)
		b.WriteString(m.optionStyle(i).Render(line))
		b.WriteByte('\n')
	}

	return b.String()
}

func (m MultiChoice) optionStyle(i int) lipgloss.Style {
	if m.Submitted {
		switch i {
		case m.CorrectIndex:
			return lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
		case m.ChosenIndex:
			return lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
		}
		return lipgloss.NewStyle().Foreground(theme.TextDim)
	}
	if i == m.Selected {
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(theme.Text)
}

func optionLabel(i int) string {
	return optionLabels[i%len(optionLabels)]
}

// IsCorrect reports whether the submitted answer was the right one.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenIndex == m.CorrectIndex
}
