package services

import (
	"github.com/vku007/objectapi/internal/domain/user"
	"github.com/vku007/objectapi/internal/dto"
	"github.com/vku007/objectapi/internal/repository"
)

// UserService orchestrates the user-profile use cases.
type UserService struct {
	repo           repository.UserRepository
	requireIfMatch bool
}

// NewUserService returns a UserService backed by repo.
func NewUserService(repo repository.UserRepository, requireIfMatchOnReplace bool) *UserService {
	return &UserService{repo: repo, requireIfMatch: requireIfMatchOnReplace}
}

func userResponse(e user.Entity) dto.UserResponse {
	return dto.UserResponse{ID: e.Profile.ID, Name: e.Profile.Name, ExternalID: e.Profile.ExternalID}
}
