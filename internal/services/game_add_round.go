package services

import (
	"context"

	"github.com/vku007/objectapi/internal/domain"
	"github.com/vku007/objectapi/internal/dto"
	"github.com/vku007/objectapi/internal/repository"
)

// AddRound appends a round to the game: load, mutate via the
// aggregate, save with If-Match when the caller supplied one.
func (s *GameService) AddRound(ctx context.Context, gameID string, req dto.RoundRequest, ifMatch string) (dto.GameResponse, domain.Metadata, error) {
	if err := req.Validate(); err != nil {
		return dto.GameResponse{}, domain.Metadata{}, err
	}

	entity, err := s.load(ctx, gameID)
	if err != nil {
		return dto.GameResponse{}, domain.Metadata{}, err
	}

	round, err := roundFromRequest(req)
	if err != nil {
		return dto.GameResponse{}, domain.Metadata{}, err
	}

	updated, err := entity.AddRound(round)
	if err != nil {
		return dto.GameResponse{}, domain.Metadata{}, err
	}

	saved, err := s.repo.Save(ctx, updated, repository.AccessOptions{IfMatch: ifMatch})
	if err != nil {
		return dto.GameResponse{}, domain.Metadata{}, err
	}

	return gameResponse(saved.Game), saved.Meta, nil
}
