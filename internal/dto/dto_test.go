package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserCreateRequestValidation(t *testing.T) {
	bad := UserCreateRequest{ID: "bad id", Name: "Alice", ExternalID: 7}
	assert.Error(t, bad.Validate())

	shortName := UserCreateRequest{ID: "u1", Name: "A", ExternalID: 7}
	assert.Error(t, shortName.Validate())

	zeroExternal := UserCreateRequest{ID: "u1", Name: "Alice", ExternalID: 0}
	assert.Error(t, zeroExternal.Validate())

	ok := UserCreateRequest{ID: "u1", Name: "Alice", ExternalID: 7}
	assert.NoError(t, ok.Validate())
}

func TestUserMergeRequestAllowsPartial(t *testing.T) {
	empty := UserMergeRequest{}
	assert.NoError(t, empty.Validate())

	name := "Alicia"
	partial := UserMergeRequest{Name: &name}
	assert.NoError(t, partial.Validate())
}

func TestGameCreateRequestRejectsDuplicateUsers(t *testing.T) {
	dup := GameCreateRequest{ID: "g1", Type: "poker", UsersIDs: []string{"u1", "u1"}}
	err := dup.Validate()
	assert.Error(t, err)
}

func TestGameCreateRequestRejectsTooManyUsers(t *testing.T) {
	ids := make([]string, 11)
	for i := range ids {
		ids[i] = string(rune('a' + i))
	}

	many := GameCreateRequest{ID: "g1", Type: "poker", UsersIDs: ids}
	assert.Error(t, many.Validate())
}

func TestGameCreateRequestAccepted(t *testing.T) {
	ok := GameCreateRequest{ID: "g1", Type: "poker", UsersIDs: []string{"u1", "u2"}}
	assert.NoError(t, ok.Validate())
}

func TestDocumentCreateRequestRequiresIdentifier(t *testing.T) {
	bad := DocumentCreateRequest{ID: "bad id"}
	assert.Error(t, bad.Validate())

	ok := DocumentCreateRequest{ID: "doc1", Data: []byte(`{"a":1}`)}
	assert.NoError(t, ok.Validate())
}
