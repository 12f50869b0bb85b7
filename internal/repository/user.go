package repository

import (
	"context"

	"github.com/vku007/objectapi/internal/domain"
	"github.com/vku007/objectapi/internal/domain/user"
)

// UserList is the result of a user listing.
type UserList struct {
	Items      []user.Entity
	NextCursor string
}

// UserRepository persists UserEntity wrappers under the user kind's
// key sub-prefix.
//
//go:generate mockgen --destination=user.mock.go --package=repository . UserRepository
type UserRepository interface {
	FindByID(ctx context.Context, id string, opts AccessOptions) (entity user.Entity, found bool, err error)
	Save(ctx context.Context, entity user.Entity, opts AccessOptions) (user.Entity, error)
	Delete(ctx context.Context, id string, opts AccessOptions) error
	FindAll(ctx context.Context, opts ListOptions) (UserList, error)
	GetMetadata(ctx context.Context, id string) (domain.Metadata, error)
}
