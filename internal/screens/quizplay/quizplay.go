// Package quizplay is the interactive quiz screen. It generates questions
// for a module, plays them one at a time, and reports the final score to
// the caller once the program exits.
package quizplay

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/techskyline/academy/internal/catalog"
	"github.com/techskyline/academy/internal/tutor"
	"github.com/techskyline/academy/internal/ui/components"
	"github.com/techskyline/academy/internal/ui/layout"
)

// questionsReadyMsg is sent when quiz generation completes.
type questionsReadyMsg struct {
	Questions []tutor.Question
	Err       error
}

// phase tracks where the quiz is in its lifecycle.
type phase int

const (
	phaseLoading phase = iota
	phaseQuestion
	phaseFeedback
	phaseDone
	phaseFailed
)

// Result is what the quiz reports back to the caller.
type Result struct {
	Completed bool
	Correct   int
	Total     int
}

var _ tea.Model = (*Model)(nil)

// Model is the Bubble Tea model for a quiz run.
type Model struct {
	tut    *tutor.Tutor
	module catalog.Module

	phase     phase
	questions []tutor.Question
	current   int
	correct   int
	choice    components.MultiChoice
	errMsg    string

	level  int
	xp     int
	width  int
	height int
}

// New creates a quiz screen for the given module. Level and xp are shown in
// the header only; the screen never mutates progress itself.
func New(tut *tutor.Tutor, module catalog.Module, level, xp int) *Model {
	return &Model{
		tut:    tut,
		module: module,
		phase:  phaseLoading,
		level:  level,
		xp:     xp,
		width:  layout.MinWidth,
		height: layout.MinHeight,
	}
}

// Result returns the final score. Completed is false if the learner quit
// early or generation failed.
func (m *Model) Result() Result {
	return Result{
		Completed: m.phase == phaseDone,
		Correct:   m.correct,
		Total:     len(m.questions),
	}
}

func (m *Model) Init() tea.Cmd {
	return m.generateQuestions()
}

func (m *Model) generateQuestions() tea.Cmd {
	return func() tea.Msg {
		questions, err := m.tut.GenerateQuiz(context.Background(), m.module.Title, m.module.Content)
		return questionsReadyMsg{Questions: questions, Err: err}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case questionsReadyMsg:
		if msg.Err != nil {
			m.phase = phaseFailed
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.questions = msg.Questions
		m.phase = phaseQuestion
		m.choice = newChoice(m.questions[0])
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" || key == "esc" {
		return m, tea.Quit
	}

	switch m.phase {
	case phaseFailed, phaseDone:
		return m, tea.Quit

	case phaseQuestion:
		var cmd tea.Cmd
		m.choice, cmd = m.choice.Update(msg)
		if m.choice.Submitted {
			if m.choice.IsCorrect() {
				m.correct++
			}
			m.phase = phaseFeedback
		}
		return m, cmd

	case phaseFeedback:
		if m.current+1 >= len(m.questions) {
			m.phase = phaseDone
			return m, nil
		}
		m.current++
		m.choice = newChoice(m.questions[m.current])
		m.phase = phaseQuestion
		return m, nil
	}

	return m, nil
}

func newChoice(q tutor.Question) components.MultiChoice {
	return components.NewMultiChoice(q.Question, q.Options, q.CorrectAnswer)
}

func (m *Model) View() tea.View {
	v := tea.NewView("")

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(fmt.Sprintf("Quiz: %s", m.module.Title), m.level, m.xp, m.width)
	footer := layout.RenderFooter(m.keyHints(), m.width)
	v.SetContent(layout.RenderFrame(header, m.content(), footer, m.width, m.height))
	return v
}

func (m *Model) keyHints() []layout.KeyHint {
	switch m.phase {
	case phaseQuestion:
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Select"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	default:
		return []layout.KeyHint{
			{Key: "any key", Description: "Exit"},
		}
	}
}
