package services

import (
	"context"
	"errors"

	"github.com/vku007/objectapi/internal/apperr"
	"github.com/vku007/objectapi/internal/domain"
	"github.com/vku007/objectapi/internal/domain/user"
	"github.com/vku007/objectapi/internal/dto"
	"github.com/vku007/objectapi/internal/repository"
)

// Create persists a new user profile, failing with Conflict if one
// with the same id already exists. The existence check runs before the
// body is validated, so any body posted for a taken id yields Conflict.
func (s *UserService) Create(ctx context.Context, req dto.UserCreateRequest) (dto.UserResponse, domain.Metadata, error) {
	_, err := s.repo.GetMetadata(ctx, req.ID)
	if err == nil {
		return dto.UserResponse{}, domain.Metadata{}, apperr.ConflictError{EntityType: "user", Code: "already_exists", Message: "a user with this id already exists"}
	}

	var notFound apperr.NotFoundError
	if !errors.As(err, &notFound) {
		return dto.UserResponse{}, domain.Metadata{}, err
	}

	if err := req.Validate(); err != nil {
		return dto.UserResponse{}, domain.Metadata{}, err
	}

	profile, err := user.New(req.ID, req.Name, req.ExternalID)
	if err != nil {
		return dto.UserResponse{}, domain.Metadata{}, err
	}

	saved, err := s.repo.Save(ctx, user.NewEntity(profile), repository.AccessOptions{IfNoneMatch: "*"})
	if err != nil {
		return dto.UserResponse{}, domain.Metadata{}, err
	}

	return userResponse(saved), saved.Meta, nil
}
