// Package domain holds the value shared by every aggregate kind: the
// identifier format and entity metadata produced by the store.
package domain

import (
	"regexp"

	"github.com/vku007/objectapi/internal/apperr"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,128}$`)

// ValidID reports whether id matches the identifier grammar every
// persisted entity's id must satisfy.
func ValidID(id string) bool {
	return identifierPattern.MatchString(id)
}

// ValidateID returns a ValidationError naming field if id does not
// match the identifier grammar, or nil if it does.
func ValidateID(field, id string) error {
	if !ValidID(id) {
		return apperr.ValidationError{
			Code:    "invalid_identifier",
			Message: "id must match [A-Za-z0-9._-]{1,128}",
			Field:   field,
		}
	}

	return nil
}

// Metadata is the read-only information the object store produces for
// a persisted entity: its version token and size/modification facts.
type Metadata struct {
	ETag         string `json:"etag"`
	Size         int64  `json:"size"`
	LastModified string `json:"lastModified"`
}
