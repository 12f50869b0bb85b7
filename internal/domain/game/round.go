package game

import (
	"github.com/vku007/objectapi/internal/apperr"
)

// Round is an immutable value object: an ordered sequence of Moves
// within a Game.
type Round struct {
	ID         string
	Moves      []Move
	IsFinished bool
	Time       float64
}

// NewRound constructs a Round, validating id is non-empty.
func NewRound(id string, moves []Move, isFinished bool, t float64) (Round, error) {
	if id == "" {
		return Round{}, apperr.ValidationError{
			Code:    "empty_round_id",
			Message: "round id must not be empty",
			Field:   "id",
		}
	}

	return Round{ID: id, Moves: append([]Move{}, moves...), IsFinished: isFinished, Time: t}, nil
}

// AddMove returns a new Round with move appended. r is unchanged.
// Fails with Validation if r is already finished.
func (r Round) AddMove(move Move) (Round, error) {
	if r.IsFinished {
		return Round{}, apperr.ValidationError{
			Code:    "round_finished",
			Message: "cannot add a move to a finished round",
		}
	}

	moves := append(append([]Move{}, r.Moves...), move)

	return Round{ID: r.ID, Moves: moves, IsFinished: r.IsFinished, Time: r.Time}, nil
}

// Finish returns a new Round with isFinished set true. r is unchanged.
func (r Round) Finish() (Round, error) {
	if r.IsFinished {
		return Round{}, apperr.ValidationError{
			Code:    "round_finished",
			Message: "round is already finished",
		}
	}

	return Round{ID: r.ID, Moves: append([]Move{}, r.Moves...), IsFinished: true, Time: r.Time}, nil
}
