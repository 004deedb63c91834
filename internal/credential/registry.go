package credential

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/techskyline/academy/internal/progress"
)

// Repo is the persistence port for the certificate store.
type Repo interface {
	// Insert persists a new certificate. Returns ErrDuplicateID when the id
	// is already present.
	Insert(ctx context.Context, cert Certificate) error

	// Get returns the certificate with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (Certificate, error)

	// List returns all stored certificates, newest first.
	List(ctx context.Context) ([]Certificate, error)
}

// maxIssueAttempts bounds id re-rolls on store collisions. Exhausting the
// budget means something is badly wrong with the id source and is surfaced
// as a fatal error.
const maxIssueAttempts = 5

// Registry is the persisted store of issued certificates.
type Registry struct {
	repo Repo
}

// NewRegistry creates a registry over the given persistence port.
func NewRegistry(repo Repo) *Registry {
	return &Registry{repo: repo}
}

// Store persists a certificate write-through. Certificates are immutable:
// storing an id that already exists reports ErrDuplicateID and changes
// nothing.
func (r *Registry) Store(ctx context.Context, cert Certificate) error {
	if err := r.repo.Insert(ctx, cert); err != nil {
		return fmt.Errorf("store certificate %s: %w", cert.ID, err)
	}
	return nil
}

// Lookup returns the certificate for id. Unknown or malformed ids report
// ErrNotFound; transient storage failures surface as distinct wrapped
// errors.
func (r *Registry) Lookup(ctx context.Context, id string) (Certificate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Certificate{}, ErrNotFound
	}
	cert, err := r.repo.Get(ctx, id)
	if err != nil {
		return Certificate{}, err
	}
	return cert, nil
}

// List returns all issued certificates, newest first.
func (r *Registry) List(ctx context.Context) ([]Certificate, error) {
	return r.repo.List(ctx)
}

// IssueAndRecord runs the full issuance flow: eligibility check, certificate
// construction, registry store with collision re-roll, then recording the id
// on the progress ledger. The certificate payload is durably stored before
// the id lands in the progress document, so a crash between the two writes
// leaves an orphaned-but-harmless certificate rather than a dangling id.
func IssueAndRecord(ctx context.Context, issuer *Issuer, registry *Registry, ledger *progress.Ledger, meta Meta) (Certificate, error) {
	cert, err := issuer.Issue(ledger.Snapshot(), meta)
	if err != nil {
		return Certificate{}, err
	}

	for attempt := 0; ; attempt++ {
		err = registry.Store(ctx, cert)
		if err == nil {
			break
		}
		if !errors.Is(err, ErrDuplicateID) {
			return Certificate{}, err
		}
		if attempt == maxIssueAttempts-1 {
			return Certificate{}, fmt.Errorf("certificate id collisions exhausted %d attempts: %w", maxIssueAttempts, err)
		}
		cert = issuer.Reissue(cert)
	}

	if _, err := ledger.AttachCertificate(ctx, cert.ID); err != nil {
		// The certificate exists but the progress record missed the id. The
		// safe direction: report, leave the orphan for the next attempt.
		return cert, fmt.Errorf("certificate %s stored but not recorded on progress: %w", cert.ID, err)
	}

	return cert, nil
}
