package services

import (
	"context"

	"github.com/vku007/objectapi/internal/apperr"
	"github.com/vku007/objectapi/internal/domain"
	"github.com/vku007/objectapi/internal/domain/game"
	"github.com/vku007/objectapi/internal/dto"
	"github.com/vku007/objectapi/internal/repository"
)

// Replace overwrites a game's full state, honoring the caller's
// If-Match precondition and the optional PreconditionRequired policy.
func (s *GameService) Replace(ctx context.Context, id string, req dto.GameReplaceRequest, ifMatch string) (dto.GameResponse, domain.Metadata, error) {
	if err := domain.ValidateID("id", id); err != nil {
		return dto.GameResponse{}, domain.Metadata{}, err
	}

	if err := req.Validate(); err != nil {
		return dto.GameResponse{}, domain.Metadata{}, err
	}

	if s.requireIfMatch && ifMatch == "" {
		return dto.GameResponse{}, domain.Metadata{}, apperr.PreconditionRequiredError{}
	}

	current, err := s.load(ctx, id)
	if err != nil {
		return dto.GameResponse{}, domain.Metadata{}, err
	}

	rounds, err := roundsFromRequests(req.Rounds)
	if err != nil {
		return dto.GameResponse{}, domain.Metadata{}, err
	}

	g, err := game.New(id, req.Type, req.UsersIDs, rounds, req.IsFinished)
	if err != nil {
		return dto.GameResponse{}, domain.Metadata{}, err
	}

	saved, err := s.repo.Save(ctx, game.NewEntity(g).WithMetadata(current.Meta), repository.AccessOptions{IfMatch: ifMatch})
	if err != nil {
		return dto.GameResponse{}, domain.Metadata{}, err
	}

	return gameResponse(saved.Game), saved.Meta, nil
}
