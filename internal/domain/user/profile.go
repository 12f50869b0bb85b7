// Package user implements the user profile pure aggregate and its
// persistence-shaped entity wrapper: the wrapper projects to the pure
// aggregate, applies the operation, and rewraps.
package user

import (
	"github.com/vku007/objectapi/internal/apperr"
	"github.com/vku007/objectapi/internal/domain"
)

const (
	minNameLen = 2
	maxNameLen = 100
)

// Profile is the pure UserProfile aggregate: immutable, with no
// persistence concern. Every mutating operation returns a new Profile.
type Profile struct {
	ID         string
	Name       string
	ExternalID int
}

// New constructs a Profile, validating id, name length, and
// externalId >= 1.
func New(id, name string, externalID int) (Profile, error) {
	p := Profile{ID: id, Name: name, ExternalID: externalID}
	if err := p.validate(); err != nil {
		return Profile{}, err
	}

	return p, nil
}

func (p Profile) validate() error {
	if err := domain.ValidateID("id", p.ID); err != nil {
		return err
	}

	if l := len(p.Name); l < minNameLen || l > maxNameLen {
		return apperr.ValidationError{
			Code:    "invalid_name_length",
			Message: "name must be between 2 and 100 characters",
			Field:   "name",
		}
	}

	if p.ExternalID < 1 {
		return apperr.ValidationError{
			Code:    "invalid_external_id",
			Message: "externalId must be a positive integer",
			Field:   "externalId",
		}
	}

	return nil
}

// UpdateName returns a new Profile with name replaced. p is unchanged.
func (p Profile) UpdateName(name string) (Profile, error) {
	return New(p.ID, name, p.ExternalID)
}

// UpdateExternalID returns a new Profile with externalId replaced.
// p is unchanged.
func (p Profile) UpdateExternalID(externalID int) (Profile, error) {
	return New(p.ID, p.Name, externalID)
}
