package services

import (
	"context"

	"github.com/vku007/objectapi/internal/dto"
	"github.com/vku007/objectapi/internal/repository"
)

// List pages through games under the kind's prefix, returning full
// items and an opaque cursor for the next page.
func (s *GameService) List(ctx context.Context, prefix, cursor string, limit int) (dto.GameListResponse, error) {
	result, err := s.repo.FindAll(ctx, repository.ListOptions{Prefix: prefix, Limit: limit, Cursor: cursor})
	if err != nil {
		return dto.GameListResponse{}, err
	}

	items := make([]dto.GameResponse, len(result.Items))
	for i, entity := range result.Items {
		items[i] = gameResponse(entity.Game)
	}

	return dto.GameListResponse{Items: items, NextCursor: result.NextCursor}, nil
}
