package services

import (
	"github.com/vku007/objectapi/internal/domain/game"
	"github.com/vku007/objectapi/internal/dto"
	"github.com/vku007/objectapi/internal/repository"
)

// GameService orchestrates the game use cases, including the
// round/move sub-resource operations.
type GameService struct {
	repo           repository.GameRepository
	requireIfMatch bool
}

// NewGameService returns a GameService backed by repo.
func NewGameService(repo repository.GameRepository, requireIfMatchOnReplace bool) *GameService {
	return &GameService{repo: repo, requireIfMatch: requireIfMatchOnReplace}
}

func moveFromRequest(r dto.MoveRequest) (game.Move, error) {
	return game.NewMove(r.ID, r.UserID, r.Value, r.ValueDecorated)
}

func roundFromRequest(r dto.RoundRequest) (game.Round, error) {
	moves := make([]game.Move, len(r.Moves))

	for i, mr := range r.Moves {
		m, err := moveFromRequest(mr)
		if err != nil {
			return game.Round{}, err
		}

		moves[i] = m
	}

	return game.NewRound(r.ID, moves, r.IsFinished, r.Time)
}

func roundsFromRequests(rs []dto.RoundRequest) ([]game.Round, error) {
	rounds := make([]game.Round, len(rs))

	for i, rr := range rs {
		r, err := roundFromRequest(rr)
		if err != nil {
			return nil, err
		}

		rounds[i] = r
	}

	return rounds, nil
}

func gameResponse(g game.Game) dto.GameResponse {
	rounds := make([]dto.RoundResponse, len(g.Rounds))

	for i, r := range g.Rounds {
		moves := make([]dto.MoveResponse, len(r.Moves))
		for j, m := range r.Moves {
			moves[j] = dto.MoveResponse{ID: m.ID, UserID: m.UserID, Value: m.Value, ValueDecorated: m.ValueDecorated}
		}

		rounds[i] = dto.RoundResponse{ID: r.ID, Moves: moves, IsFinished: r.IsFinished, Time: r.Time}
	}

	return dto.GameResponse{
		ID:         g.ID,
		Type:       g.Type,
		UsersIDs:   g.UsersIDs,
		Rounds:     rounds,
		IsFinished: g.IsFinished,
	}
}
