// Package credential issues and verifies completion certificates. A
// certificate is immutable once stored; the registry is the public lookup
// surface behind /verify/{id}.
package credential

import (
	"errors"
	"time"
)

// Certificate attests that a learner completed the program. The JSON field
// names match the persisted certificate documents of existing installs and
// the public verification payload; they must not change.
type Certificate struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"userId"`
	Name            string    `json:"name"`
	Track           string    `json:"track"`
	Skills          []string  `json:"skills"`
	ProjectTitle    string    `json:"projectTitle"`
	IssuedAt        time.Time `json:"issuedAt"`
	VerificationURL string    `json:"verificationUrl"`
}

// ErrNotFound reports a lookup miss: the id is unknown to the registry.
// Distinct from transient storage failures, which surface as wrapped I/O
// errors.
var ErrNotFound = errors.New("credential not found")

// ErrDuplicateID reports an insert conflict: a certificate with the same id
// already exists. Certificates are immutable, so the store never overwrites.
var ErrDuplicateID = errors.New("certificate id already exists")

// ErrIneligible reports an issuance attempt before the eligibility criteria
// are met. This is a caller contract violation, not a user-facing condition.
var ErrIneligible = errors.New("learner is not eligible for a certificate")
