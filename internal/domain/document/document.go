// Package document implements the generic JSON document aggregate: an
// identifier plus an arbitrary JSON value, the simplest of the three
// kinds the core persists.
package document

import (
	"encoding/json"

	"github.com/vku007/objectapi/internal/apperr"
	"github.com/vku007/objectapi/internal/domain"
)

// Document is a pure aggregate: an id plus the arbitrary JSON value
// that is the store's authoritative representation of it. Documents
// carry no invariants beyond a well-formed id.
type Document struct {
	ID   string
	Data json.RawMessage
}

// New constructs a Document, validating id against the identifier
// grammar and data against being well-formed JSON.
func New(id string, data json.RawMessage) (Document, error) {
	if err := domain.ValidateID("id", id); err != nil {
		return Document{}, err
	}

	if len(data) == 0 {
		data = json.RawMessage("null")
	}

	if !json.Valid(data) {
		return Document{}, apperr.ValidationError{
			Code:    "invalid_json",
			Message: "data must be well-formed JSON",
			Field:   "data",
		}
	}

	return Document{ID: id, Data: append(json.RawMessage{}, data...)}, nil
}

// Replace returns a new Document with data replaced entirely.
func (d Document) Replace(data json.RawMessage) (Document, error) {
	return New(d.ID, data)
}

// ToJSON returns the data subtree persisted to the store. The id is
// never part of it — it is carried only in the object key.
func (d Document) ToJSON() (json.RawMessage, error) {
	return d.Data, nil
}

// FromJSON reconstructs a Document from the bytes read back from the
// store for the given id.
func FromJSON(id string, raw json.RawMessage) (Document, error) {
	return New(id, raw)
}
