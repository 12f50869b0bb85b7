package services

import (
	"context"

	"github.com/vku007/objectapi/internal/domain"
	"github.com/vku007/objectapi/internal/dto"
	"github.com/vku007/objectapi/internal/repository"
)

// FinishRound marks the identified round finished, failing with
// Validation when the game has no round with that id.
func (s *GameService) FinishRound(ctx context.Context, gameID, roundID, ifMatch string) (dto.GameResponse, domain.Metadata, error) {
	entity, err := s.load(ctx, gameID)
	if err != nil {
		return dto.GameResponse{}, domain.Metadata{}, err
	}

	updated, err := entity.FinishRound(roundID)
	if err != nil {
		return dto.GameResponse{}, domain.Metadata{}, err
	}

	saved, err := s.repo.Save(ctx, updated, repository.AccessOptions{IfMatch: ifMatch})
	if err != nil {
		return dto.GameResponse{}, domain.Metadata{}, err
	}

	return gameResponse(saved.Game), saved.Meta, nil
}
