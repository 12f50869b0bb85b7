package user

import (
	"testing"

	"github.com/vku007/objectapi/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityJSONRoundTrip(t *testing.T) {
	p, err := New("u1", "Alice", 7)
	require.NoError(t, err)

	e := NewEntity(p).WithMetadata(domain.Metadata{ETag: `"E1"`})

	raw, err := e.ToJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Alice","externalId":7}`, string(raw))

	e2, err := FromJSON("u1", raw)
	require.NoError(t, err)
	assert.Equal(t, e.Profile, e2.Profile)
}

func TestEntityUpdateCarriesMetadataForward(t *testing.T) {
	p, err := New("u1", "Alice", 7)
	require.NoError(t, err)

	e := NewEntity(p).WithMetadata(domain.Metadata{ETag: `"E1"`})

	e2, err := e.UpdateName("Alicia")
	require.NoError(t, err)

	assert.Equal(t, `"E1"`, e2.Meta.ETag)
	assert.Equal(t, "Alicia", e2.Profile.Name)
	assert.Equal(t, "Alice", e.Profile.Name)
}

func TestFromJSONRejectsMalformed(t *testing.T) {
	_, err := FromJSON("u1", []byte(`not json`))
	assert.Error(t, err)
}
