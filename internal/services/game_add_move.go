package services

import (
	"context"

	"github.com/vku007/objectapi/internal/domain"
	"github.com/vku007/objectapi/internal/dto"
	"github.com/vku007/objectapi/internal/repository"
)

// AddMove appends a move to the identified round, failing with
// Validation when the game has no round with that id.
func (s *GameService) AddMove(ctx context.Context, gameID, roundID string, req dto.MoveRequest, ifMatch string) (dto.GameResponse, domain.Metadata, error) {
	if err := req.Validate(); err != nil {
		return dto.GameResponse{}, domain.Metadata{}, err
	}

	entity, err := s.load(ctx, gameID)
	if err != nil {
		return dto.GameResponse{}, domain.Metadata{}, err
	}

	move, err := moveFromRequest(req)
	if err != nil {
		return dto.GameResponse{}, domain.Metadata{}, err
	}

	updated, err := entity.AddMoveToRound(roundID, move)
	if err != nil {
		return dto.GameResponse{}, domain.Metadata{}, err
	}

	saved, err := s.repo.Save(ctx, updated, repository.AccessOptions{IfMatch: ifMatch})
	if err != nil {
		return dto.GameResponse{}, domain.Metadata{}, err
	}

	return gameResponse(saved.Game), saved.Meta, nil
}
