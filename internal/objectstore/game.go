package objectstore

import (
	"context"

	"github.com/vku007/objectapi/internal/domain"
	"github.com/vku007/objectapi/internal/domain/game"
	"github.com/vku007/objectapi/internal/mlog"
	"github.com/vku007/objectapi/internal/repository"
)

// GameRepository is the S3-backed repository.GameRepository.
type GameRepository struct {
	store     store
	subPrefix string
}

// NewGameRepository returns a GameRepository rooted at prefix+"games/".
func NewGameRepository(client API, bucket, prefix string, logger mlog.Logger) *GameRepository {
	return &GameRepository{store: newStore(client, bucket, logger), subPrefix: prefix + "games/"}
}

func (r *GameRepository) key(id string) string {
	return objectKey(r.subPrefix, id)
}

// FindByID implements repository.GameRepository.
func (r *GameRepository) FindByID(ctx context.Context, id string, opts repository.AccessOptions) (game.Entity, bool, error) {
	body, meta, found, err := r.store.get(ctx, r.key(id), opts.IfNoneMatch)
	if err != nil || !found {
		return game.Entity{}, found, err
	}

	entity, err := game.FromJSON(id, body)
	if err != nil {
		return game.Entity{}, false, err
	}

	return entity.WithMetadata(meta), true, nil
}

// Save implements repository.GameRepository.
func (r *GameRepository) Save(ctx context.Context, entity game.Entity, opts repository.AccessOptions) (game.Entity, error) {
	body, err := entity.ToJSON()
	if err != nil {
		return game.Entity{}, err
	}

	meta, err := r.store.put(ctx, r.key(entity.Game.ID), body, opts.IfMatch, opts.IfNoneMatch)
	if err != nil {
		return game.Entity{}, err
	}

	return entity.WithMetadata(meta), nil
}

// Delete implements repository.GameRepository.
func (r *GameRepository) Delete(ctx context.Context, id string, opts repository.AccessOptions) error {
	return r.store.delete(ctx, r.key(id), opts.IfMatch)
}

// FindAll implements repository.GameRepository.
func (r *GameRepository) FindAll(ctx context.Context, opts repository.ListOptions) (repository.GameList, error) {
	prefix := r.subPrefix + opts.Prefix

	keys, nextCursor, err := r.store.list(ctx, prefix, opts.Limit, opts.Cursor)
	if err != nil {
		return repository.GameList{}, err
	}

	items := make([]game.Entity, 0, len(keys))

	for _, key := range keys {
		id, err := idFromKey(r.subPrefix, key)
		if err != nil {
			continue
		}

		entity, found, err := r.FindByID(ctx, id, repository.AccessOptions{})
		if err != nil || !found {
			continue
		}

		items = append(items, entity)
	}

	return repository.GameList{Items: items, NextCursor: nextCursor}, nil
}

// GetMetadata implements repository.GameRepository.
func (r *GameRepository) GetMetadata(ctx context.Context, id string) (domain.Metadata, error) {
	meta, found, err := r.store.probe(ctx, r.key(id))
	if err != nil {
		return domain.Metadata{}, err
	}

	if !found {
		return domain.Metadata{}, notFoundErr("game", id)
	}

	return meta, nil
}
