package services

import (
	"context"

	"github.com/vku007/objectapi/internal/apperr"
	"github.com/vku007/objectapi/internal/domain"
	"github.com/vku007/objectapi/internal/domain/user"
	"github.com/vku007/objectapi/internal/dto"
	"github.com/vku007/objectapi/internal/repository"
)

// Replace overwrites a user profile's full state, honoring the
// caller's If-Match precondition and the optional PreconditionRequired
// policy.
func (s *UserService) Replace(ctx context.Context, id string, req dto.UserReplaceRequest, ifMatch string) (dto.UserResponse, domain.Metadata, error) {
	if err := domain.ValidateID("id", id); err != nil {
		return dto.UserResponse{}, domain.Metadata{}, err
	}

	if err := req.Validate(); err != nil {
		return dto.UserResponse{}, domain.Metadata{}, err
	}

	if s.requireIfMatch && ifMatch == "" {
		return dto.UserResponse{}, domain.Metadata{}, apperr.PreconditionRequiredError{}
	}

	current, found, err := s.repo.FindByID(ctx, id, repository.AccessOptions{})
	if err != nil {
		return dto.UserResponse{}, domain.Metadata{}, err
	}

	if !found {
		return dto.UserResponse{}, domain.Metadata{}, apperr.NotFoundError{EntityType: "user", ID: id}
	}

	profile, err := user.New(id, req.Name, req.ExternalID)
	if err != nil {
		return dto.UserResponse{}, domain.Metadata{}, err
	}

	saved, err := s.repo.Save(ctx, user.NewEntity(profile).WithMetadata(current.Meta), repository.AccessOptions{IfMatch: ifMatch})
	if err != nil {
		return dto.UserResponse{}, domain.Metadata{}, err
	}

	return userResponse(saved), saved.Meta, nil
}
