package credential

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/techskyline/academy/internal/catalog"
	"github.com/techskyline/academy/internal/progress"
)

// Policy selects how eligibility is judged. The issuer's policy is the
// single source of truth; nothing else in the system decides eligibility.
type Policy string

const (
	// PolicyFullCatalog requires every module in the catalog to be complete.
	PolicyFullCatalog Policy = "full-catalog"
	// PolicyCreditThreshold requires the completed modules to carry at least
	// CreditThreshold credits.
	PolicyCreditThreshold Policy = "credit-threshold"
)

// DefaultCreditThreshold is the graduation credit requirement under
// PolicyCreditThreshold.
const DefaultCreditThreshold = 10

// skillCutoff is the minimum score (exclusive) for a skill to appear on a
// certificate.
const skillCutoff = 50

// Meta carries the issuance inputs that do not live on the progress record.
type Meta struct {
	OwnerID      string
	Name         string
	ProjectTitle string
}

// Issuer constructs certificates for eligible learners.
type Issuer struct {
	policy          Policy
	creditThreshold int

	now   func() time.Time
	newID func(t time.Time) string
}

// NewIssuer creates an issuer with the given policy. A zero creditThreshold
// falls back to DefaultCreditThreshold.
func NewIssuer(policy Policy, creditThreshold int) *Issuer {
	if creditThreshold <= 0 {
		creditThreshold = DefaultCreditThreshold
	}
	return &Issuer{
		policy:          policy,
		creditThreshold: creditThreshold,
		now:             time.Now,
		newID:           newCertificateID,
	}
}

// Eligible reports whether the state satisfies the configured policy.
func (i *Issuer) Eligible(state progress.State) bool {
	switch i.policy {
	case PolicyCreditThreshold:
		return catalog.CreditsFor(state.CompletedModules) >= i.creditThreshold
	default:
		return len(state.CompletedModules) >= catalog.Size()
	}
}

// Issue constructs an immutable certificate from the state. It does not
// mutate the state or touch storage; the caller stores the certificate and
// then records its id on the progress ledger, in that order.
//
// Returns ErrIneligible when called before Eligible holds.
func (i *Issuer) Issue(state progress.State, meta Meta) (Certificate, error) {
	if !i.Eligible(state) {
		return Certificate{}, fmt.Errorf("%w: completed %d of %d modules",
			ErrIneligible, len(state.CompletedModules), catalog.Size())
	}

	issuedAt := i.now().UTC()
	id := i.newID(issuedAt)

	return Certificate{
		ID:              id,
		OwnerID:         meta.OwnerID,
		Name:            meta.Name,
		Track:           state.Track,
		Skills:          masteredSkills(state.Skills),
		ProjectTitle:    meta.ProjectTitle,
		IssuedAt:        issuedAt,
		VerificationURL: VerificationPath(id),
	}, nil
}

// Reissue returns a copy of cert with a freshly generated id. Used to
// re-roll after a detected id collision.
func (i *Issuer) Reissue(cert Certificate) Certificate {
	id := i.newID(cert.IssuedAt)
	cert.ID = id
	cert.VerificationURL = VerificationPath(id)
	return cert
}

// VerificationPath returns the public lookup path for a certificate id.
func VerificationPath(id string) string {
	return "/verify/" + id
}

// masteredSkills selects the skill names scoring above the cutoff, sorted
// for a stable certificate payload.
func masteredSkills(skills map[string]int) []string {
	out := []string{}
	for name, score := range skills {
		if score > skillCutoff {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// newCertificateID builds an id of the shape TS-AI-<year>-<suffix>, the
// format printed on issued certificates. The suffix is random; collisions
// are detected at store time and re-rolled, not assumed away.
func newCertificateID(t time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("TS-AI-%d-%s", t.Year(), suffix)
}
