package services

import (
	"context"

	"github.com/vku007/objectapi/internal/apperr"
	"github.com/vku007/objectapi/internal/domain"
	"github.com/vku007/objectapi/internal/dto"
	"github.com/vku007/objectapi/internal/repository"
)

// GetByID loads a user profile, signaling NotModified when ifNoneMatch
// equals the current etag.
func (s *UserService) GetByID(ctx context.Context, id, ifNoneMatch string) (dto.UserResponse, domain.Metadata, error) {
	if err := domain.ValidateID("id", id); err != nil {
		return dto.UserResponse{}, domain.Metadata{}, err
	}

	entity, found, err := s.repo.FindByID(ctx, id, repository.AccessOptions{IfNoneMatch: ifNoneMatch})
	if err != nil {
		return dto.UserResponse{}, domain.Metadata{}, err
	}

	if !found {
		return dto.UserResponse{}, domain.Metadata{}, apperr.NotFoundError{EntityType: "user", ID: id}
	}

	return userResponse(entity), entity.Meta, nil
}
