package quizplay

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/techskyline/academy/internal/ui/theme"
)

func (m *Model) content() string {
	switch m.phase {
	case phaseLoading:
		return m.centered(theme.Hint.Render("Generating quiz questions..."))

	case phaseFailed:
		return m.centered(
			theme.Incorrect.Render("Quiz generation failed") + "\n\n" +
				theme.Hint.Render(m.errMsg),
		)

	case phaseQuestion, phaseFeedback:
		return m.renderQuestion()

	case phaseDone:
		return m.renderSummary()
	}
	return ""
}

func (m *Model) renderQuestion() string {
	counter := theme.Subtitle.Render(
		fmt.Sprintf("Question %d of %d", m.current+1, len(m.questions)))

	body := counter + "\n\n" + m.choice.View()

	if m.phase == phaseFeedback {
		q := m.questions[m.current]
		verdict := theme.Correct.Render("Correct!")
		if !m.choice.IsCorrect() {
			verdict = theme.Incorrect.Render("Not quite.")
		}
		body += "\n" + verdict + "\n" + theme.Body.Render(q.Explanation)
	}

	return m.centered(theme.Card.Width(min(m.width-8, 72)).Render(body))
}

func (m *Model) renderSummary() string {
	score := fmt.Sprintf("%d / %d correct", m.correct, len(m.questions))

	body := theme.Title.Render("Quiz complete") + "\n\n" +
		theme.Body.Render(score) + "\n\n" +
		theme.Hint.Render("Press any key to exit")

	return m.centered(theme.Card.Width(min(m.width-8, 48)).Render(body))
}

func (m *Model) centered(s string) string {
	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, s)
}

func (m *Model) contentHeight() int {
	h := m.height - 8
	if h < 4 {
		return 4
	}
	return h
}
