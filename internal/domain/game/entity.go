package game

import (
	"encoding/json"

	"github.com/vku007/objectapi/internal/apperr"
	"github.com/vku007/objectapi/internal/domain"
)

// Entity wraps a pure Game with the store metadata needed to cite
// preconditions on the next save.
type Entity struct {
	Game Game
	Meta domain.Metadata
}

// NewEntity wraps g with empty metadata.
func NewEntity(g Game) Entity {
	return Entity{Game: g}
}

// WithMetadata returns a copy of e carrying m.
func (e Entity) WithMetadata(m domain.Metadata) Entity {
	e.Meta = m
	return e
}

func (e Entity) rewrap(g Game, err error) (Entity, error) {
	if err != nil {
		return Entity{}, err
	}

	return Entity{Game: g, Meta: e.Meta}, nil
}

// AddRound delegates to Game.AddRound, carrying e.Meta forward.
func (e Entity) AddRound(round Round) (Entity, error) {
	return e.rewrap(e.Game.AddRound(round))
}

// AddMoveToRound delegates to Game.AddMoveToRound, carrying e.Meta forward.
func (e Entity) AddMoveToRound(roundID string, move Move) (Entity, error) {
	return e.rewrap(e.Game.AddMoveToRound(roundID, move))
}

// FinishRound delegates to Game.FinishRound, carrying e.Meta forward.
func (e Entity) FinishRound(roundID string) (Entity, error) {
	return e.rewrap(e.Game.FinishRound(roundID))
}

// Finish delegates to Game.Finish, carrying e.Meta forward.
func (e Entity) Finish() (Entity, error) {
	return e.rewrap(e.Game.Finish())
}

type moveData struct {
	ID             string  `json:"id"`
	UserID         string  `json:"userId"`
	Value          float64 `json:"value"`
	ValueDecorated string  `json:"valueDecorated,omitempty"`
}

type roundData struct {
	ID         string     `json:"id"`
	Moves      []moveData `json:"moves"`
	IsFinished bool       `json:"isFinished"`
	Time       float64    `json:"time"`
}

type gameData struct {
	Type       string      `json:"type"`
	UsersIDs   []string    `json:"usersIds"`
	Rounds     []roundData `json:"rounds"`
	IsFinished bool        `json:"isFinished"`
}

func toMoveData(m Move) moveData {
	return moveData{ID: m.ID, UserID: m.UserID, Value: m.Value, ValueDecorated: m.ValueDecorated}
}

func toRoundData(r Round) roundData {
	moves := make([]moveData, len(r.Moves))
	for i, m := range r.Moves {
		moves[i] = toMoveData(m)
	}

	return roundData{ID: r.ID, Moves: moves, IsFinished: r.IsFinished, Time: r.Time}
}

// ToJSON marshals the game body (id is carried by the store key, not
// the body) as {type, usersIds, rounds, isFinished}.
func (e Entity) ToJSON() (json.RawMessage, error) {
	rounds := make([]roundData, len(e.Game.Rounds))
	for i, r := range e.Game.Rounds {
		rounds[i] = toRoundData(r)
	}

	data := gameData{
		Type:       e.Game.Type,
		UsersIDs:   e.Game.UsersIDs,
		Rounds:     rounds,
		IsFinished: e.Game.IsFinished,
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, apperr.InternalError{Err: err}
	}

	return raw, nil
}

func fromMoveData(d moveData) (Move, error) {
	return NewMove(d.ID, d.UserID, d.Value, d.ValueDecorated)
}

func fromRoundData(d roundData) (Round, error) {
	moves := make([]Move, len(d.Moves))
	for i, md := range d.Moves {
		m, err := fromMoveData(md)
		if err != nil {
			return Round{}, err
		}
		moves[i] = m
	}

	return NewRound(d.ID, moves, d.IsFinished, d.Time)
}

// FromJSON unmarshals raw into an Entity wrapping a fully-validated
// Game tree, rejecting malformed bodies and invalid round/move subtrees.
func FromJSON(id string, raw json.RawMessage) (Entity, error) {
	var data gameData
	if err := json.Unmarshal(raw, &data); err != nil {
		return Entity{}, apperr.ValidationError{
			Code:    "malformed_game_body",
			Message: "game body must be a JSON object matching {type, usersIds, rounds, isFinished}",
		}
	}

	rounds := make([]Round, len(data.Rounds))
	for i, rd := range data.Rounds {
		r, err := fromRoundData(rd)
		if err != nil {
			return Entity{}, err
		}
		rounds[i] = r
	}

	g, err := New(id, data.Type, data.UsersIDs, rounds, data.IsFinished)
	if err != nil {
		return Entity{}, err
	}

	return NewEntity(g), nil
}
