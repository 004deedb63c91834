// Package progress implements the learner progress ledger: an in-memory
// aggregate mutated only through Apply and persisted write-through after
// every mutation.
package progress

import (
	"fmt"
	"time"
)

// Kind classifies a progression event.
type Kind string

const (
	KindModule     Kind = "module"
	KindLab        Kind = "lab"
	KindQuiz       Kind = "quiz"
	KindEvaluation Kind = "evaluation"
)

// Valid reports whether k is a known event kind.
func (k Kind) Valid() bool {
	switch k {
	case KindModule, KindLab, KindQuiz, KindEvaluation:
		return true
	}
	return false
}

// Event is a single progression event. Immutable once recorded.
type Event struct {
	Timestamp   time.Time
	Kind        Kind
	SubjectID   string
	Action      string         // human-readable description for the activity log
	SkillDeltas map[string]int // optional, non-negative per-skill increments
}

// Awards maps event kind to the xp granted when the event is applied.
// Evaluation events grant no xp: they qualify for the activity log and may
// carry skill deltas, but experience comes from completing work, not from
// being graded on it. Tests pin this table down.
type Awards map[Kind]int

// DefaultAwards returns the standard xp table.
func DefaultAwards() Awards {
	return Awards{
		KindModule:     100,
		KindLab:        250,
		KindQuiz:       50,
		KindEvaluation: 0,
	}
}

// Activity is one entry in the bounded activity log, newest first.
type Activity struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Type      Kind      `json:"type"`
	ID        string    `json:"id"`
}

// activityFor derives the log entry for an applied event.
func activityFor(e Event) Activity {
	action := e.Action
	if action == "" {
		action = fmt.Sprintf("Completed %s %q", e.Kind, e.SubjectID)
	}
	return Activity{
		Timestamp: e.Timestamp,
		Action:    action,
		Type:      e.Kind,
		ID:        e.SubjectID,
	}
}
