package services

import (
	"context"

	"github.com/vku007/objectapi/internal/apperr"
	"github.com/vku007/objectapi/internal/domain"
	"github.com/vku007/objectapi/internal/domain/game"
	"github.com/vku007/objectapi/internal/dto"
	"github.com/vku007/objectapi/internal/repository"
)

// GetByID loads a game, signaling NotModified when ifNoneMatch equals
// the current etag.
func (s *GameService) GetByID(ctx context.Context, id, ifNoneMatch string) (dto.GameResponse, domain.Metadata, error) {
	if err := domain.ValidateID("id", id); err != nil {
		return dto.GameResponse{}, domain.Metadata{}, err
	}

	entity, found, err := s.repo.FindByID(ctx, id, repository.AccessOptions{IfNoneMatch: ifNoneMatch})
	if err != nil {
		return dto.GameResponse{}, domain.Metadata{}, err
	}

	if !found {
		return dto.GameResponse{}, domain.Metadata{}, apperr.NotFoundError{EntityType: "game", ID: id}
	}

	return gameResponse(entity.Game), entity.Meta, nil
}

// load fetches the game for a mutating sub-resource operation,
// translating a clean miss into NotFound.
func (s *GameService) load(ctx context.Context, id string) (game.Entity, error) {
	if err := domain.ValidateID("id", id); err != nil {
		return game.Entity{}, err
	}

	entity, found, err := s.repo.FindByID(ctx, id, repository.AccessOptions{})
	if err != nil {
		return game.Entity{}, err
	}

	if !found {
		return game.Entity{}, apperr.NotFoundError{EntityType: "game", ID: id}
	}

	return entity, nil
}
