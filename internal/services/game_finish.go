package services

import (
	"context"

	"github.com/vku007/objectapi/internal/domain"
	"github.com/vku007/objectapi/internal/dto"
	"github.com/vku007/objectapi/internal/repository"
)

// Finish marks the game finished; finished is terminal, so a second
// call fails with Validation.
func (s *GameService) Finish(ctx context.Context, gameID, ifMatch string) (dto.GameResponse, domain.Metadata, error) {
	entity, err := s.load(ctx, gameID)
	if err != nil {
		return dto.GameResponse{}, domain.Metadata{}, err
	}

	updated, err := entity.Finish()
	if err != nil {
		return dto.GameResponse{}, domain.Metadata{}, err
	}

	saved, err := s.repo.Save(ctx, updated, repository.AccessOptions{IfMatch: ifMatch})
	if err != nil {
		return dto.GameResponse{}, domain.Metadata{}, err
	}

	return gameResponse(saved.Game), saved.Meta, nil
}
