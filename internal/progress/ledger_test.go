package progress

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

// memRepo is an in-memory Repo with an optional injected save failure.
type memRepo struct {
	saved   *State
	saveErr error
	loadErr error
	saves   int
}

func (r *memRepo) LoadState(ctx context.Context) (*State, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	if r.saved == nil {
		return nil, nil
	}
	s := r.saved.Clone()
	return &s, nil
}

func (r *memRepo) SaveState(ctx context.Context, state State) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	s := state.Clone()
	r.saved = &s
	r.saves++
	return nil
}

func newTestLedger(t *testing.T) (*Ledger, *memRepo) {
	t.Helper()
	repo := &memRepo{}
	l := NewLedger(repo)
	l.now = func() time.Time { return time.Date(2026, 5, 2, 12, 0, 0, 0, time.UTC) }
	if err := l.Load(t.Context()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return l, repo
}

func TestApplyModuleEvent(t *testing.T) {
	l, repo := newTestLedger(t)

	state, err := l.Apply(t.Context(), Event{Kind: KindModule, SubjectID: "m1"})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if state.XP != 100 {
		t.Errorf("xp = %d, want 100", state.XP)
	}
	if state.Level != 1 {
		t.Errorf("level = %d, want 1", state.Level)
	}
	if len(state.CompletedModules) != 1 || state.CompletedModules[0] != "m1" {
		t.Errorf("completedModules = %v, want [m1]", state.CompletedModules)
	}
	if repo.saves != 1 {
		t.Errorf("saves = %d, want 1 (write-through)", repo.saves)
	}
	if len(state.ActivityLog) != 1 || state.ActivityLog[0].ID != "m1" {
		t.Errorf("activity log = %v", state.ActivityLog)
	}
}

func TestApplyIsIdempotentPerSubject(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := t.Context()

	for i := 0; i < 3; i++ {
		if _, err := l.Apply(ctx, Event{Kind: KindModule, SubjectID: "m1"}); err != nil {
			t.Fatalf("apply %d: %v", i, err)
		}
	}
	if _, err := l.Apply(ctx, Event{Kind: KindLab, SubjectID: "l1"}); err != nil {
		t.Fatalf("apply lab: %v", err)
	}
	if _, err := l.Apply(ctx, Event{Kind: KindLab, SubjectID: "l1"}); err != nil {
		t.Fatalf("apply lab again: %v", err)
	}

	state := l.Snapshot()
	if len(state.CompletedModules) != 1 {
		t.Errorf("completedModules = %v, want one distinct id", state.CompletedModules)
	}
	if len(state.CompletedLabs) != 1 {
		t.Errorf("completedLabs = %v, want one distinct id", state.CompletedLabs)
	}
	// xp still accrues on repeats; only set membership is idempotent.
	if state.XP != 3*100+2*250 {
		t.Errorf("xp = %d, want %d", state.XP, 3*100+2*250)
	}
}

func TestLevelBoundariesAcrossApplies(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := t.Context()

	// Nine distinct modules: 900 xp, still level 1.
	for i := 1; i <= 9; i++ {
		state, err := l.Apply(ctx, Event{Kind: KindModule, SubjectID: fmt.Sprintf("m%d", i)})
		if err != nil {
			t.Fatalf("apply: %v", err)
		}
		if state.Level != LevelForXP(state.XP) {
			t.Fatalf("level %d inconsistent with xp %d", state.Level, state.XP)
		}
	}
	if s := l.Snapshot(); s.XP != 900 || s.Level != 1 {
		t.Fatalf("after 9 modules: xp=%d level=%d, want 900/1", s.XP, s.Level)
	}

	// Tenth module crosses the boundary.
	state, err := l.Apply(ctx, Event{Kind: KindModule, SubjectID: "m10"})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if state.XP != 1000 || state.Level != 2 {
		t.Errorf("after 10 modules: xp=%d level=%d, want 1000/2", state.XP, state.Level)
	}
}

func TestEvaluationEventGrantsNoXP(t *testing.T) {
	l, _ := newTestLedger(t)

	state, err := l.Apply(t.Context(), Event{
		Kind:        KindEvaluation,
		SubjectID:   "lab-prompt",
		SkillDeltas: map[string]int{"Prompt Design": 8},
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	if state.XP != 0 {
		t.Errorf("xp = %d, evaluation must not grant xp", state.XP)
	}
	if state.Skills["Prompt Design"] != 18 {
		t.Errorf("skill = %d, want 18", state.Skills["Prompt Design"])
	}
	if len(state.ActivityLog) != 1 {
		t.Error("evaluation must still be logged")
	}
}

func TestAwardsTable(t *testing.T) {
	awards := DefaultAwards()
	tests := []struct {
		kind Kind
		want int
	}{
		{KindModule, 100},
		{KindLab, 250},
		{KindQuiz, 50},
		{KindEvaluation, 0},
	}
	for _, tt := range tests {
		if awards[tt.kind] != tt.want {
			t.Errorf("award for %s = %d, want %d", tt.kind, awards[tt.kind], tt.want)
		}
	}
}

func TestActivityLogBounded(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := t.Context()

	for i := 1; i <= 60; i++ {
		_, err := l.Apply(ctx, Event{Kind: KindQuiz, SubjectID: fmt.Sprintf("q%d", i)})
		if err != nil {
			t.Fatalf("apply %d: %v", i, err)
		}
	}

	state := l.Snapshot()
	if len(state.ActivityLog) != ActivityLogCap {
		t.Fatalf("activity log len = %d, want %d", len(state.ActivityLog), ActivityLogCap)
	}
	// Newest first: q60 at the head, q11 at the tail.
	if state.ActivityLog[0].ID != "q60" {
		t.Errorf("head = %s, want q60", state.ActivityLog[0].ID)
	}
	if state.ActivityLog[ActivityLogCap-1].ID != "q11" {
		t.Errorf("tail = %s, want q11", state.ActivityLog[ActivityLogCap-1].ID)
	}
}

func TestApplyUnknownKindRejected(t *testing.T) {
	l, _ := newTestLedger(t)

	before := l.Snapshot()
	_, err := l.Apply(t.Context(), Event{Kind: "banana", SubjectID: "x"})
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}
	after := l.Snapshot()
	if after.XP != before.XP || len(after.ActivityLog) != len(before.ActivityLog) {
		t.Error("state changed on rejected event")
	}
}

func TestApplyRollsBackOnSaveFailure(t *testing.T) {
	l, repo := newTestLedger(t)
	ctx := t.Context()

	if _, err := l.Apply(ctx, Event{Kind: KindModule, SubjectID: "m1"}); err != nil {
		t.Fatalf("apply: %v", err)
	}

	repo.saveErr = errors.New("disk full")
	state, err := l.Apply(ctx, Event{Kind: KindModule, SubjectID: "m2"})
	if err == nil {
		t.Fatal("expected save failure to surface")
	}

	// The returned and the visible state are both the prior snapshot.
	if state.XP != 100 || len(state.CompletedModules) != 1 {
		t.Errorf("returned state advanced despite failed save: %+v", state)
	}
	if s := l.Snapshot(); s.XP != 100 || len(s.CompletedModules) != 1 {
		t.Errorf("visible state advanced despite failed save: %+v", s)
	}
}

func TestLoadFallsBackOnCorruption(t *testing.T) {
	repo := &memRepo{loadErr: errors.New("unexpected end of JSON input")}
	l := NewLedger(repo)

	if err := l.Load(t.Context()); err != nil {
		t.Fatalf("load must not fail on corruption: %v", err)
	}

	state := l.Snapshot()
	if state.XP != 0 || state.Level != 1 {
		t.Errorf("expected default state, got xp=%d level=%d", state.XP, state.Level)
	}
	if state.Skills["Prompt Design"] != 10 {
		t.Errorf("expected starter skill seed, got %v", state.Skills)
	}
}

func TestLoadPicksUpPersistedState(t *testing.T) {
	repo := &memRepo{}
	first := NewLedger(repo)
	if err := first.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := first.Apply(context.Background(), Event{Kind: KindLab, SubjectID: "lab-prompt"}); err != nil {
		t.Fatalf("apply: %v", err)
	}

	second := NewLedger(repo)
	if err := second.Load(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	state := second.Snapshot()
	if state.XP != 250 || !state.HasLab("lab-prompt") {
		t.Errorf("reloaded state = %+v", state)
	}
}

func TestAttachCertificateOnlyGrows(t *testing.T) {
	l, _ := newTestLedger(t)
	ctx := t.Context()

	if _, err := l.AttachCertificate(ctx, "cert-1"); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if _, err := l.AttachCertificate(ctx, "cert-1"); err != nil {
		t.Fatalf("attach repeat: %v", err)
	}
	state, err := l.AttachCertificate(ctx, "cert-2")
	if err != nil {
		t.Fatalf("attach: %v", err)
	}

	if len(state.Certificates) != 2 {
		t.Errorf("certificates = %v, want two distinct ids", state.Certificates)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	l, _ := newTestLedger(t)

	snap := l.Snapshot()
	snap.Skills["Prompt Design"] = 100
	snap.CompletedModules = append(snap.CompletedModules, "rogue")

	state := l.Snapshot()
	if state.Skills["Prompt Design"] != 10 || len(state.CompletedModules) != 0 {
		t.Error("snapshot mutation leaked into ledger state")
	}
}
