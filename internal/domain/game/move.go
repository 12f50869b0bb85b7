// Package game implements the Game aggregate and its Round/Move value
// objects, plus the GameEntity persistence wrapper. It follows the
// same immutable, operation-returns-a-new-instance idiom as
// internal/domain/user, generalized from a single flat aggregate to a
// three-level Game -> Round -> Move tree.
package game

import (
	"math"

	"github.com/vku007/objectapi/internal/apperr"
	"github.com/vku007/objectapi/internal/domain"
)

// Move is an immutable value object: one play within a Round.
type Move struct {
	ID             string
	UserID         string
	Value          float64
	ValueDecorated string
}

// NewMove constructs a Move, validating id, userId, and that value is
// finite.
func NewMove(id, userID string, value float64, valueDecorated string) (Move, error) {
	if err := domain.ValidateID("id", id); err != nil {
		return Move{}, err
	}

	if err := domain.ValidateID("userId", userID); err != nil {
		return Move{}, err
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Move{}, apperr.ValidationError{
			Code:    "non_finite_value",
			Message: "value must be a finite number",
			Field:   "value",
		}
	}

	return Move{ID: id, UserID: userID, Value: value, ValueDecorated: valueDecorated}, nil
}
