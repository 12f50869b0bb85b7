package services

import (
	"context"

	"github.com/vku007/objectapi/internal/domain"
	"github.com/vku007/objectapi/internal/domain/game"
	"github.com/vku007/objectapi/internal/dto"
	"github.com/vku007/objectapi/internal/repository"
)

// Create persists a new game, failing with Conflict if one with the
// same id already exists.
func (s *GameService) Create(ctx context.Context, req dto.GameCreateRequest) (dto.GameResponse, domain.Metadata, error) {
	if err := req.Validate(); err != nil {
		return dto.GameResponse{}, domain.Metadata{}, err
	}

	rounds, err := roundsFromRequests(req.Rounds)
	if err != nil {
		return dto.GameResponse{}, domain.Metadata{}, err
	}

	g, err := game.New(req.ID, req.Type, req.UsersIDs, rounds, req.IsFinished)
	if err != nil {
		return dto.GameResponse{}, domain.Metadata{}, err
	}

	saved, err := s.repo.Save(ctx, game.NewEntity(g), repository.AccessOptions{IfNoneMatch: "*"})
	if err != nil {
		return dto.GameResponse{}, domain.Metadata{}, err
	}

	return gameResponse(saved.Game), saved.Meta, nil
}
