package game

import (
	"testing"

	"github.com/vku007/objectapi/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityJSONRoundTrip(t *testing.T) {
	r, err := NewRound("r1", []Move{{ID: "m1", UserID: "u1", Value: 3, ValueDecorated: "3"}}, false, 1)
	require.NoError(t, err)

	g, err := New("g1", "poker", []string{"u1", "u2"}, []Round{r}, false)
	require.NoError(t, err)

	e := NewEntity(g).WithMetadata(domain.Metadata{ETag: `"E1"`})

	raw, err := e.ToJSON()
	require.NoError(t, err)

	e2, err := FromJSON("g1", raw)
	require.NoError(t, err)
	assert.Equal(t, e.Game, e2.Game)
}

func TestEntityAddMoveToRoundCarriesMetadataForward(t *testing.T) {
	r, err := NewRound("r1", nil, false, 1)
	require.NoError(t, err)

	g, err := New("g1", "poker", []string{"u1"}, []Round{r}, false)
	require.NoError(t, err)

	e := NewEntity(g).WithMetadata(domain.Metadata{ETag: `"E1"`})

	m, err := NewMove("m1", "u1", 1, "1")
	require.NoError(t, err)

	e2, err := e.AddMoveToRound("r1", m)
	require.NoError(t, err)

	assert.Equal(t, `"E1"`, e2.Meta.ETag)
	assert.Len(t, e2.Game.Rounds[0].Moves, 1)
	assert.Len(t, e.Game.Rounds[0].Moves, 0)
}

func TestFromJSONRejectsMalformed(t *testing.T) {
	_, err := FromJSON("g1", []byte(`not json`))
	assert.Error(t, err)
}

func TestFromJSONRejectsInvalidMoveSubtree(t *testing.T) {
	raw := []byte(`{"type":"poker","usersIds":["u1"],"isFinished":false,"rounds":[{"id":"r1","isFinished":false,"time":1,"moves":[{"id":"bad id","userId":"u1","value":1}]}]}`)

	_, err := FromJSON("g1", raw)
	assert.Error(t, err)
}
