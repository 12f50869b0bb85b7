package game

import (
	"github.com/vku007/objectapi/internal/apperr"
	"github.com/vku007/objectapi/internal/domain"
)

const (
	maxTypeLen = 100
	minUsers   = 1
	maxUsers   = 10
)

// Game is the pure aggregate: an ordered sequence of Rounds played by
// a bounded, unique set of user ids. Every mutating operation returns
// a new Game; a finished Game rejects all of them.
type Game struct {
	ID         string
	Type       string
	UsersIDs   []string
	Rounds     []Round
	IsFinished bool
}

// New constructs a Game, validating id, type length, and that
// usersIds are unique identifiers bounded between 1 and 10.
func New(id, gameType string, usersIDs []string, rounds []Round, isFinished bool) (Game, error) {
	if err := domain.ValidateID("id", id); err != nil {
		return Game{}, err
	}

	if gameType == "" || len(gameType) > maxTypeLen {
		return Game{}, apperr.ValidationError{
			Code:    "invalid_type_length",
			Message: "type must be non-empty and at most 100 characters",
			Field:   "type",
		}
	}

	if err := validateUsersIDs(usersIDs); err != nil {
		return Game{}, err
	}

	return Game{
		ID:         id,
		Type:       gameType,
		UsersIDs:   append([]string{}, usersIDs...),
		Rounds:     append([]Round{}, rounds...),
		IsFinished: isFinished,
	}, nil
}

func validateUsersIDs(ids []string) error {
	if len(ids) < minUsers || len(ids) > maxUsers {
		return apperr.ValidationError{
			Code:    "invalid_users_count",
			Message: "usersIds must contain between 1 and 10 entries",
			Field:   "usersIds",
		}
	}

	seen := make(map[string]struct{}, len(ids))

	for _, id := range ids {
		if err := domain.ValidateID("usersIds", id); err != nil {
			return err
		}

		if _, dup := seen[id]; dup {
			return apperr.ValidationError{
				Code:    "duplicate_user_id",
				Message: "usersIds must not contain duplicate user ids",
				Field:   "usersIds",
			}
		}

		seen[id] = struct{}{}
	}

	return nil
}

func (g Game) requireOpen() error {
	if g.IsFinished {
		return apperr.ValidationError{
			Code:    "game_finished",
			Message: "cannot mutate a finished game",
		}
	}

	return nil
}

func (g Game) roundIndex(roundID string) (int, error) {
	for i, r := range g.Rounds {
		if r.ID == roundID {
			return i, nil
		}
	}

	return -1, apperr.ValidationError{
		Code:    "round_not_found",
		Message: "no round with the given id exists on this game",
		Field:   "roundId",
	}
}

// AddRound returns a new Game with round appended. g is unchanged.
func (g Game) AddRound(round Round) (Game, error) {
	if err := g.requireOpen(); err != nil {
		return Game{}, err
	}

	rounds := append(append([]Round{}, g.Rounds...), round)

	return Game{ID: g.ID, Type: g.Type, UsersIDs: g.UsersIDs, Rounds: rounds, IsFinished: g.IsFinished}, nil
}

// AddMoveToRound returns a new Game with the round identified by
// roundID replaced by round.AddMove(move). Fails with Validation when
// no round has that id, or the game is finished.
func (g Game) AddMoveToRound(roundID string, move Move) (Game, error) {
	if err := g.requireOpen(); err != nil {
		return Game{}, err
	}

	idx, err := g.roundIndex(roundID)
	if err != nil {
		return Game{}, err
	}

	newRound, err := g.Rounds[idx].AddMove(move)
	if err != nil {
		return Game{}, err
	}

	rounds := append([]Round{}, g.Rounds...)
	rounds[idx] = newRound

	return Game{ID: g.ID, Type: g.Type, UsersIDs: g.UsersIDs, Rounds: rounds, IsFinished: g.IsFinished}, nil
}

// FinishRound returns a new Game with the round identified by roundID
// finished. Fails with Validation when no round has that id, or the
// game is finished.
func (g Game) FinishRound(roundID string) (Game, error) {
	if err := g.requireOpen(); err != nil {
		return Game{}, err
	}

	idx, err := g.roundIndex(roundID)
	if err != nil {
		return Game{}, err
	}

	finished, err := g.Rounds[idx].Finish()
	if err != nil {
		return Game{}, err
	}

	rounds := append([]Round{}, g.Rounds...)
	rounds[idx] = finished

	return Game{ID: g.ID, Type: g.Type, UsersIDs: g.UsersIDs, Rounds: rounds, IsFinished: g.IsFinished}, nil
}

// Finish returns a new Game with isFinished set true.
func (g Game) Finish() (Game, error) {
	if err := g.requireOpen(); err != nil {
		return Game{}, err
	}

	return Game{ID: g.ID, Type: g.Type, UsersIDs: g.UsersIDs, Rounds: append([]Round{}, g.Rounds...), IsFinished: true}, nil
}
