package progress

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"
)

// Repo is the persistence port for the progress document. LoadState returns
// (nil, nil) when no document has been written yet.
type Repo interface {
	LoadState(ctx context.Context) (*State, error)
	SaveState(ctx context.Context, state State) error
}

// Ledger owns the learner's progress state. All mutation goes through Apply
// (or the small explicit mutators below), and every mutation is persisted
// write-through before it becomes visible: if the save fails, the prior
// state remains in place.
type Ledger struct {
	repo   Repo
	awards Awards

	mu    sync.Mutex
	state State

	now func() time.Time
}

// NewLedger creates a ledger over the given persistence port with the
// standard xp table. The ledger starts from DefaultState; call Load to pick
// up persisted progress.
func NewLedger(repo Repo) *Ledger {
	return NewLedgerWithAwards(repo, DefaultAwards())
}

// NewLedgerWithAwards creates a ledger with a custom xp table.
func NewLedgerWithAwards(repo Repo, awards Awards) *Ledger {
	return &Ledger{
		repo:   repo,
		awards: awards,
		state:  DefaultState(),
		now:    time.Now,
	}
}

// Load initializes the ledger from the persisted snapshot. A missing or
// unreadable document falls back to DefaultState; corruption is reported on
// stderr but never fails startup.
func (l *Ledger) Load(ctx context.Context) error {
	loaded, err := l.repo.LoadState(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: progress document unreadable, starting fresh: %v\n", err)
		loaded = nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if loaded == nil {
		l.state = DefaultState()
		return nil
	}
	loaded.normalize()
	l.state = *loaded
	return nil
}

// Snapshot returns a read-only deep copy of the current state.
func (l *Ledger) Snapshot() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.Clone()
}

// Apply records a progression event: it updates the relevant completion set
// (idempotently), grants the kind's xp award, recomputes the level, accrues
// any skill deltas, and prepends an activity log entry. The new snapshot is
// persisted before it replaces the old one, so a failed save leaves the
// prior snapshot visible.
func (l *Ledger) Apply(ctx context.Context, e Event) (State, error) {
	if !e.Kind.Valid() {
		return l.Snapshot(), fmt.Errorf("unknown event kind %q", e.Kind)
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = l.now()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	next := l.state.Clone()

	switch e.Kind {
	case KindModule:
		next.CompletedModules = appendUnique(next.CompletedModules, e.SubjectID)
	case KindLab:
		next.CompletedLabs = appendUnique(next.CompletedLabs, e.SubjectID)
	}

	next.XP += l.awards[e.Kind]
	next.Level = LevelForXP(next.XP)

	if len(e.SkillDeltas) > 0 {
		next.Skills = Accrue(next.Skills, e.SkillDeltas)
	}

	next.ActivityLog = append([]Activity{activityFor(e)}, next.ActivityLog...)
	if len(next.ActivityLog) > ActivityLogCap {
		next.ActivityLog = next.ActivityLog[:ActivityLogCap]
	}

	if err := l.repo.SaveState(ctx, next); err != nil {
		return l.state.Clone(), fmt.Errorf("persist progress: %w", err)
	}

	l.state = next
	return next.Clone(), nil
}

// SetTrack declares the learner's career track.
func (l *Ledger) SetTrack(ctx context.Context, track string) (State, error) {
	return l.mutate(ctx, func(s *State) {
		s.Track = track
	})
}

// AttachCertificate records an issued certificate id on the progress record.
// Callers must have stored the certificate payload in the registry first, so
// a crash between the two writes leaves an orphaned certificate rather than
// a dangling id.
func (l *Ledger) AttachCertificate(ctx context.Context, id string) (State, error) {
	return l.mutate(ctx, func(s *State) {
		s.Certificates = appendUnique(s.Certificates, id)
	})
}

func (l *Ledger) mutate(ctx context.Context, fn func(*State)) (State, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := l.state.Clone()
	fn(&next)

	if err := l.repo.SaveState(ctx, next); err != nil {
		return l.state.Clone(), fmt.Errorf("persist progress: %w", err)
	}

	l.state = next
	return next.Clone(), nil
}
