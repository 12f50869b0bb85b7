package services

import (
	"context"

	"github.com/vku007/objectapi/internal/domain"
	"github.com/vku007/objectapi/internal/domain/game"
	"github.com/vku007/objectapi/internal/dto"
	"github.com/vku007/objectapi/internal/repository"
)

// Merge applies a shallow merge: only the fields the request carries
// overwrite the stored game, the rest keep their current values.
func (s *GameService) Merge(ctx context.Context, id string, req dto.GameMergeRequest, ifMatch string) (dto.GameResponse, domain.Metadata, error) {
	if err := req.Validate(); err != nil {
		return dto.GameResponse{}, domain.Metadata{}, err
	}

	current, err := s.load(ctx, id)
	if err != nil {
		return dto.GameResponse{}, domain.Metadata{}, err
	}

	gameType := current.Game.Type
	if req.Type != nil {
		gameType = *req.Type
	}

	usersIDs := current.Game.UsersIDs
	if req.UsersIDs != nil {
		usersIDs = req.UsersIDs
	}

	rounds := current.Game.Rounds

	if req.Rounds != nil {
		rounds, err = roundsFromRequests(req.Rounds)
		if err != nil {
			return dto.GameResponse{}, domain.Metadata{}, err
		}
	}

	isFinished := current.Game.IsFinished
	if req.IsFinished != nil {
		isFinished = *req.IsFinished
	}

	g, err := game.New(id, gameType, usersIDs, rounds, isFinished)
	if err != nil {
		return dto.GameResponse{}, domain.Metadata{}, err
	}

	saved, err := s.repo.Save(ctx, game.NewEntity(g).WithMetadata(current.Meta), repository.AccessOptions{IfMatch: ifMatch})
	if err != nil {
		return dto.GameResponse{}, domain.Metadata{}, err
	}

	return gameResponse(saved.Game), saved.Meta, nil
}
