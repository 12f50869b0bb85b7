package user

import (
	"encoding/json"

	"github.com/vku007/objectapi/internal/apperr"
	"github.com/vku007/objectapi/internal/domain"
)

// Entity is the persistence-shaped wrapper around a Profile. It owns a
// Document whose data is {name, externalId} and carries the store
// metadata (etag/size/lastModified) between load and save. Every
// mutating operation is implemented by projecting to Profile, applying
// the operation, and rewrapping the result with the same metadata —
// the caller must re-save to obtain fresh metadata.
type Entity struct {
	Profile Profile
	Meta    domain.Metadata
}

// NewEntity wraps a freshly constructed Profile with empty metadata,
// for use before the first save.
func NewEntity(p Profile) Entity {
	return Entity{Profile: p}
}

// WithMetadata returns a copy of e carrying the given metadata.
func (e Entity) WithMetadata(m domain.Metadata) Entity {
	e.Meta = m
	return e
}

// UpdateName delegates to Profile.UpdateName and rewraps, carrying e's
// current metadata forward.
func (e Entity) UpdateName(name string) (Entity, error) {
	p, err := e.Profile.UpdateName(name)
	if err != nil {
		return Entity{}, err
	}

	return Entity{Profile: p, Meta: e.Meta}, nil
}

// UpdateExternalID delegates to Profile.UpdateExternalID and rewraps.
func (e Entity) UpdateExternalID(externalID int) (Entity, error) {
	p, err := e.Profile.UpdateExternalID(externalID)
	if err != nil {
		return Entity{}, err
	}

	return Entity{Profile: p, Meta: e.Meta}, nil
}

// profileData is the wire shape persisted under the user's object key.
type profileData struct {
	Name       string `json:"name"`
	ExternalID int    `json:"externalId"`
}

// ToJSON serializes the {name, externalId} subtree that is persisted.
// The id is not part of it — it is carried only in the object key.
func (e Entity) ToJSON() (json.RawMessage, error) {
	return json.Marshal(profileData{Name: e.Profile.Name, ExternalID: e.Profile.ExternalID})
}

// FromJSON validates the shape of raw and constructs an Entity for id,
// the form used when loading from the store.
func FromJSON(id string, raw json.RawMessage) (Entity, error) {
	var data profileData
	if err := json.Unmarshal(raw, &data); err != nil {
		return Entity{}, apperr.ValidationError{
			Code:    "malformed_user_body",
			Message: "stored user data is not well-formed",
		}
	}

	p, err := New(id, data.Name, data.ExternalID)
	if err != nil {
		return Entity{}, err
	}

	return NewEntity(p), nil
}
