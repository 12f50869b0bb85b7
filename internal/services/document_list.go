package services

import (
	"context"

	"github.com/vku007/objectapi/internal/dto"
	"github.com/vku007/objectapi/internal/repository"
)

// List pages through documents under the kind's prefix, returning full
// items and an opaque cursor for the next page.
func (s *DocumentService) List(ctx context.Context, prefix, cursor string, limit int) (dto.DocumentListResponse, error) {
	result, err := s.repo.FindAll(ctx, repository.ListOptions{Prefix: prefix, Limit: limit, Cursor: cursor})
	if err != nil {
		return dto.DocumentListResponse{}, err
	}

	items := make([]dto.DocumentResponse, len(result.Items))
	for i, doc := range result.Items {
		items[i] = documentResponse(doc)
	}

	return dto.DocumentListResponse{Items: items, NextCursor: result.NextCursor}, nil
}
