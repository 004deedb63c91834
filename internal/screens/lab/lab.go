// Package lab is the interactive prompt-engineering playground. The learner
// edits a system prompt and a user prompt, runs them through the AI, and
// the lab counts as complete after the first run.
package lab

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/techskyline/academy/internal/catalog"
	"github.com/techskyline/academy/internal/tutor"
	"github.com/techskyline/academy/internal/ui/components"
	"github.com/techskyline/academy/internal/ui/layout"
)

// runDoneMsg is sent when a prompt run returns.
type runDoneMsg struct {
	Output string
}

// focus identifies which editor has keyboard focus.
type focus int

const (
	focusSystem focus = iota
	focusUser
)

// Result is what the lab reports back to the caller after the program
// exits.
type Result struct {
	Ran    bool
	Prompt string
	Output string
}

var _ tea.Model = (*Model)(nil)

// Model is the Bubble Tea model for a lab session.
type Model struct {
	tut *tutor.Tutor
	lab catalog.Lab

	system  components.PromptBox
	user    components.PromptBox
	focused focus
	running bool
	ran     bool
	output  string

	level  int
	xp     int
	width  int
	height int
}

// New creates a lab screen seeded with the lab's starting prompts. Level and
// xp are shown in the header only.
func New(tut *tutor.Tutor, lab catalog.Lab, level, xp int) *Model {
	boxWidth := layout.MinWidth - 12

	m := &Model{
		tut:     tut,
		lab:     lab,
		system:  components.NewPromptBox("System Prompt", lab.SystemPrompt, boxWidth, 4),
		user:    components.NewPromptBox("Your Prompt", lab.InitialPrompt, boxWidth, 6),
		focused: focusUser,
		level:   level,
		xp:      xp,
		width:   layout.MinWidth,
		height:  layout.MinHeight,
	}
	return m
}

// Result returns what happened in the session.
func (m *Model) Result() Result {
	return Result{
		Ran:    m.ran,
		Prompt: m.user.Value(),
		Output: m.output,
	}
}

func (m *Model) Init() tea.Cmd {
	return m.user.Focus()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case runDoneMsg:
		m.running = false
		m.ran = true
		m.output = msg.Output
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "tab":
		m.toggleFocus()
		return m, nil

	case "ctrl+r":
		if m.running {
			return m, nil
		}
		m.running = true
		return m, m.runPrompt()
	}

	if m.running {
		return m, nil
	}

	var cmd tea.Cmd
	if m.focused == focusSystem {
		m.system, cmd = m.system.Update(msg)
	} else {
		m.user, cmd = m.user.Update(msg)
	}
	return m, cmd
}

func (m *Model) toggleFocus() {
	if m.focused == focusSystem {
		m.focused = focusUser
		m.system.Blur()
		m.user.Focus()
		return
	}
	m.focused = focusSystem
	m.user.Blur()
	m.system.Focus()
}

func (m *Model) runPrompt() tea.Cmd {
	system := m.system.Value()
	user := m.user.Value()
	return func() tea.Msg {
		output := m.tut.RunPrompt(context.Background(), system, user)
		return runDoneMsg{Output: output}
	}
}
