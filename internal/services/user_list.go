package services

import (
	"context"

	"github.com/vku007/objectapi/internal/dto"
	"github.com/vku007/objectapi/internal/repository"
)

// List pages through user profiles under the kind's prefix. The user
// listing surfaces object names (ids) only, not full items.
func (s *UserService) List(ctx context.Context, prefix, cursor string, limit int) (dto.UserListResponse, error) {
	result, err := s.repo.FindAll(ctx, repository.ListOptions{Prefix: prefix, Limit: limit, Cursor: cursor})
	if err != nil {
		return dto.UserListResponse{}, err
	}

	names := make([]string, len(result.Items))
	for i, entity := range result.Items {
		names[i] = entity.Profile.ID
	}

	return dto.UserListResponse{Names: names, NextCursor: result.NextCursor}, nil
}
