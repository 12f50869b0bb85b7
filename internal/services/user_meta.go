package services

import (
	"context"

	"github.com/vku007/objectapi/internal/domain"
	"github.com/vku007/objectapi/internal/dto"
)

// GetMetadata head-probes a user profile, returning its store metadata.
func (s *UserService) GetMetadata(ctx context.Context, id string) (dto.MetadataResponse, error) {
	if err := domain.ValidateID("id", id); err != nil {
		return dto.MetadataResponse{}, err
	}

	meta, err := s.repo.GetMetadata(ctx, id)
	if err != nil {
		return dto.MetadataResponse{}, err
	}

	return metadataResponse(meta), nil
}
