package repository

import (
	"context"

	"github.com/vku007/objectapi/internal/domain"
	"github.com/vku007/objectapi/internal/domain/game"
)

// GameList is the result of a game listing.
type GameList struct {
	Items      []game.Entity
	NextCursor string
}

// GameRepository persists GameEntity wrappers under the game kind's
// key sub-prefix.
//
//go:generate mockgen --destination=game.mock.go --package=repository . GameRepository
type GameRepository interface {
	FindByID(ctx context.Context, id string, opts AccessOptions) (entity game.Entity, found bool, err error)
	Save(ctx context.Context, entity game.Entity, opts AccessOptions) (game.Entity, error)
	Delete(ctx context.Context, id string, opts AccessOptions) error
	FindAll(ctx context.Context, opts ListOptions) (GameList, error)
	GetMetadata(ctx context.Context, id string) (domain.Metadata, error)
}
