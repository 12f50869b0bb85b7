package services

import (
	"context"

	"github.com/vku007/objectapi/internal/apperr"
	"github.com/vku007/objectapi/internal/domain"
	"github.com/vku007/objectapi/internal/domain/user"
	"github.com/vku007/objectapi/internal/dto"
	"github.com/vku007/objectapi/internal/repository"
)

// Merge applies a shallow merge: only the fields the request carries
// overwrite the stored profile, the rest keep their current values.
func (s *UserService) Merge(ctx context.Context, id string, req dto.UserMergeRequest, ifMatch string) (dto.UserResponse, domain.Metadata, error) {
	if err := domain.ValidateID("id", id); err != nil {
		return dto.UserResponse{}, domain.Metadata{}, err
	}

	if err := req.Validate(); err != nil {
		return dto.UserResponse{}, domain.Metadata{}, err
	}

	current, found, err := s.repo.FindByID(ctx, id, repository.AccessOptions{})
	if err != nil {
		return dto.UserResponse{}, domain.Metadata{}, err
	}

	if !found {
		return dto.UserResponse{}, domain.Metadata{}, apperr.NotFoundError{EntityType: "user", ID: id}
	}

	name := current.Profile.Name
	if req.Name != nil {
		name = *req.Name
	}

	externalID := current.Profile.ExternalID
	if req.ExternalID != nil {
		externalID = *req.ExternalID
	}

	profile, err := user.New(id, name, externalID)
	if err != nil {
		return dto.UserResponse{}, domain.Metadata{}, err
	}

	saved, err := s.repo.Save(ctx, user.NewEntity(profile).WithMetadata(current.Meta), repository.AccessOptions{IfMatch: ifMatch})
	if err != nil {
		return dto.UserResponse{}, domain.Metadata{}, err
	}

	return userResponse(saved), saved.Meta, nil
}
