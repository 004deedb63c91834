package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func choiceKey(s string) tea.KeyPressMsg {
	if s == "enter" {
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func TestMultiChoiceNavigationClampsAtEdges(t *testing.T) {
	m := NewMultiChoice("Pick one", []string{"a", "b", "c"}, 1)

	m, _ = m.Update(choiceKey("k"))
	if m.Selected != 0 {
		t.Errorf("Selected = %d after up at top, want 0", m.Selected)
	}

	for i := 0; i < 5; i++ {
		m, _ = m.Update(choiceKey("j"))
	}
	if m.Selected != 2 {
		t.Errorf("Selected = %d after overshooting down, want 2", m.Selected)
	}
}

func TestMultiChoiceSubmitLocksAnswer(t *testing.T) {
	m := NewMultiChoice("Pick one", []string{"a", "b", "c"}, 1)

	m, _ = m.Update(choiceKey("j"))
	m, _ = m.Update(choiceKey("enter"))

	if !m.Submitted || m.ChosenIndex != 1 {
		t.Fatalf("Submitted=%v ChosenIndex=%d, want submitted answer 1", m.Submitted, m.ChosenIndex)
	}
	if !m.IsCorrect() {
		t.Error("answer 1 should be correct")
	}

	m, _ = m.Update(choiceKey("j"))
	if m.ChosenIndex != 1 {
		t.Error("input after submission must not change the answer")
	}
}

func TestMultiChoiceViewLabelsWrapPastAlphabetEnd(t *testing.T) {
	options := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	m := NewMultiChoice("Long list", options, 0)

	view := m.View()
	for _, opt := range options {
		if !strings.Contains(view, opt) {
			t.Errorf("view missing option %q", opt)
		}
	}
	if optionLabel(6) != "A" {
		t.Errorf("optionLabel(6) = %q, want wraparound to A", optionLabel(6))
	}
}
