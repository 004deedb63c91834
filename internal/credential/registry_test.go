package credential

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/techskyline/academy/internal/progress"
)

// memCertRepo is an in-memory Repo for tests.
type memCertRepo struct {
	certs     map[string]Certificate
	order     []string
	insertErr error
	getErr    error
}

func newMemCertRepo() *memCertRepo {
	return &memCertRepo{certs: make(map[string]Certificate)}
}

func (r *memCertRepo) Insert(ctx context.Context, cert Certificate) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	if _, ok := r.certs[cert.ID]; ok {
		return ErrDuplicateID
	}
	r.certs[cert.ID] = cert
	r.order = append(r.order, cert.ID)
	return nil
}

func (r *memCertRepo) Get(ctx context.Context, id string) (Certificate, error) {
	if r.getErr != nil {
		return Certificate{}, r.getErr
	}
	cert, ok := r.certs[id]
	if !ok {
		return Certificate{}, ErrNotFound
	}
	return cert, nil
}

func (r *memCertRepo) List(ctx context.Context) ([]Certificate, error) {
	out := make([]Certificate, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		out = append(out, r.certs[r.order[i]])
	}
	return out, nil
}

// memLedgerRepo satisfies progress.Repo.
type memLedgerRepo struct {
	saved *progress.State
}

func (r *memLedgerRepo) LoadState(ctx context.Context) (*progress.State, error) {
	return r.saved, nil
}

func (r *memLedgerRepo) SaveState(ctx context.Context, s progress.State) error {
	r.saved = &s
	return nil
}

func TestLookupEmptyRegistry(t *testing.T) {
	reg := NewRegistry(newMemCertRepo())

	_, err := reg.Lookup(t.Context(), "unknown-id")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestLookupMalformedID(t *testing.T) {
	reg := NewRegistry(newMemCertRepo())

	for _, id := range []string{"", "   ", "\t\n"} {
		if _, err := reg.Lookup(t.Context(), id); !errors.Is(err, ErrNotFound) {
			t.Errorf("Lookup(%q) = %v, want ErrNotFound", id, err)
		}
	}
}

func TestLookupDistinguishesIOErrors(t *testing.T) {
	repo := newMemCertRepo()
	repo.getErr = errors.New("database locked")
	reg := NewRegistry(repo)

	_, err := reg.Lookup(t.Context(), "TS-AI-2026-ABCDEF01")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want a transient error distinct from ErrNotFound", err)
	}
}

func TestStoreAndLookup(t *testing.T) {
	reg := NewRegistry(newMemCertRepo())
	ctx := t.Context()

	cert := Certificate{
		ID:       "TS-AI-2026-AAAA1111",
		Name:     "Grace Hopper",
		Track:    "AI Engineer",
		Skills:   []string{"Prompt Design"},
		IssuedAt: time.Now().UTC(),
	}
	if err := reg.Store(ctx, cert); err != nil {
		t.Fatalf("store: %v", err)
	}

	got, err := reg.Lookup(ctx, cert.ID)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got.Name != cert.Name || got.Track != cert.Track {
		t.Errorf("lookup returned %+v", got)
	}
}

func TestStoreRejectsDuplicate(t *testing.T) {
	reg := NewRegistry(newMemCertRepo())
	ctx := t.Context()

	cert := Certificate{ID: "TS-AI-2026-BBBB2222"}
	if err := reg.Store(ctx, cert); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := reg.Store(ctx, cert); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("second store = %v, want ErrDuplicateID", err)
	}
}

func TestIssueAndRecordOrdering(t *testing.T) {
	certRepo := newMemCertRepo()
	reg := NewRegistry(certRepo)
	issuer := NewIssuer(PolicyFullCatalog, 0)

	ledgerRepo := &memLedgerRepo{}
	ledger := progress.NewLedger(ledgerRepo)
	ctx := t.Context()
	if err := ledger.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	state := completedState(t)
	for _, id := range state.CompletedModules {
		if _, err := ledger.Apply(ctx, progress.Event{Kind: progress.KindModule, SubjectID: id}); err != nil {
			t.Fatalf("apply: %v", err)
		}
	}
	// Push a couple of skills over the cutoff.
	if _, err := ledger.Apply(ctx, progress.Event{
		Kind:        progress.KindEvaluation,
		SubjectID:   "lab-prompt",
		SkillDeltas: map[string]int{"Prompt Design": 80, "Agentic Logic": 60},
	}); err != nil {
		t.Fatalf("apply deltas: %v", err)
	}

	cert, err := IssueAndRecord(ctx, issuer, reg, ledger, Meta{
		OwnerID: "learner-1", Name: "Ada", ProjectTitle: "Final AI Project",
	})
	if err != nil {
		t.Fatalf("issue and record: %v", err)
	}

	stored, err := reg.Lookup(ctx, cert.ID)
	if err != nil {
		t.Fatalf("stored certificate missing: %v", err)
	}
	if len(stored.Skills) == 0 {
		t.Error("expected mastered skills on the certificate")
	}
	for _, name := range stored.Skills {
		if state.Skills[name] <= 50 && name != "Prompt Design" && name != "Agentic Logic" {
			t.Errorf("skill %q at or below cutoff made it onto the certificate", name)
		}
	}

	snap := ledger.Snapshot()
	if !snap.HasCertificate(cert.ID) {
		t.Error("certificate id not recorded on progress")
	}
}

func TestIssueAndRecordRerollsOnCollision(t *testing.T) {
	certRepo := newMemCertRepo()
	reg := NewRegistry(certRepo)
	issuer := NewIssuer(PolicyFullCatalog, 0)

	// Force the first two generated ids to collide.
	ids := []string{"TS-AI-2026-SAME0000", "TS-AI-2026-SAME0000", "TS-AI-2026-FRESH111"}
	calls := 0
	issuer.newID = func(time.Time) string {
		id := ids[calls%len(ids)]
		calls++
		return id
	}

	ledgerRepo := &memLedgerRepo{}
	ledger := progress.NewLedger(ledgerRepo)
	ctx := t.Context()
	if err := ledger.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	state := completedState(t)
	for _, id := range state.CompletedModules {
		if _, err := ledger.Apply(ctx, progress.Event{Kind: progress.KindModule, SubjectID: id}); err != nil {
			t.Fatalf("apply: %v", err)
		}
	}

	first, err := IssueAndRecord(ctx, issuer, reg, ledger, Meta{Name: "A"})
	if err != nil {
		t.Fatalf("first issuance: %v", err)
	}
	if first.ID != "TS-AI-2026-SAME0000" {
		t.Fatalf("first id = %s", first.ID)
	}

	second, err := IssueAndRecord(ctx, issuer, reg, ledger, Meta{Name: "B"})
	if err != nil {
		t.Fatalf("second issuance should re-roll past the collision: %v", err)
	}
	if second.ID != "TS-AI-2026-FRESH111" {
		t.Errorf("second id = %s, want the re-rolled id", second.ID)
	}
}

func TestIssueAndRecordExhaustsRetries(t *testing.T) {
	certRepo := newMemCertRepo()
	reg := NewRegistry(certRepo)
	issuer := NewIssuer(PolicyFullCatalog, 0)
	issuer.newID = func(time.Time) string { return "TS-AI-2026-STUCK000" }

	ledgerRepo := &memLedgerRepo{}
	ledger := progress.NewLedger(ledgerRepo)
	ctx := t.Context()
	if err := ledger.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	for i := 1; i <= 5; i++ {
		if _, err := ledger.Apply(ctx, progress.Event{Kind: progress.KindModule, SubjectID: moduleID(i)}); err != nil {
			t.Fatalf("apply: %v", err)
		}
	}

	if _, err := IssueAndRecord(ctx, issuer, reg, ledger, Meta{Name: "A"}); err != nil {
		t.Fatalf("first issuance: %v", err)
	}
	_, err := IssueAndRecord(ctx, issuer, reg, ledger, Meta{Name: "B"})
	if err == nil || !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("err = %v, want exhausted-retry duplicate error", err)
	}
}

func moduleID(i int) string {
	mods := []string{"ai-basics", "prompt-engineering", "ai-agents", "data-ai", "use-cases"}
	return mods[(i-1)%len(mods)]
}
