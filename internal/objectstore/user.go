package objectstore

import (
	"context"

	"github.com/vku007/objectapi/internal/domain"
	"github.com/vku007/objectapi/internal/domain/user"
	"github.com/vku007/objectapi/internal/mlog"
	"github.com/vku007/objectapi/internal/repository"
)

// UserRepository is the S3-backed repository.UserRepository.
type UserRepository struct {
	store     store
	subPrefix string
}

// NewUserRepository returns a UserRepository rooted at prefix+"users/".
func NewUserRepository(client API, bucket, prefix string, logger mlog.Logger) *UserRepository {
	return &UserRepository{store: newStore(client, bucket, logger), subPrefix: prefix + "users/"}
}

func (r *UserRepository) key(id string) string {
	return objectKey(r.subPrefix, id)
}

// FindByID implements repository.UserRepository.
func (r *UserRepository) FindByID(ctx context.Context, id string, opts repository.AccessOptions) (user.Entity, bool, error) {
	body, meta, found, err := r.store.get(ctx, r.key(id), opts.IfNoneMatch)
	if err != nil || !found {
		return user.Entity{}, found, err
	}

	entity, err := user.FromJSON(id, body)
	if err != nil {
		return user.Entity{}, false, err
	}

	return entity.WithMetadata(meta), true, nil
}

// Save implements repository.UserRepository.
func (r *UserRepository) Save(ctx context.Context, entity user.Entity, opts repository.AccessOptions) (user.Entity, error) {
	body, err := entity.ToJSON()
	if err != nil {
		return user.Entity{}, err
	}

	meta, err := r.store.put(ctx, r.key(entity.Profile.ID), body, opts.IfMatch, opts.IfNoneMatch)
	if err != nil {
		return user.Entity{}, err
	}

	return entity.WithMetadata(meta), nil
}

// Delete implements repository.UserRepository.
func (r *UserRepository) Delete(ctx context.Context, id string, opts repository.AccessOptions) error {
	return r.store.delete(ctx, r.key(id), opts.IfMatch)
}

// FindAll implements repository.UserRepository.
func (r *UserRepository) FindAll(ctx context.Context, opts repository.ListOptions) (repository.UserList, error) {
	prefix := r.subPrefix + opts.Prefix

	keys, nextCursor, err := r.store.list(ctx, prefix, opts.Limit, opts.Cursor)
	if err != nil {
		return repository.UserList{}, err
	}

	items := make([]user.Entity, 0, len(keys))

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

	return repository.UserList{Items: items, NextCursor: nextCursor}, nil
}

// GetMetadata implements repository.UserRepository.
func (r *UserRepository) GetMetadata(ctx context.Context, id string) (domain.Metadata, error) {
	meta, found, err := r.store.probe(ctx, r.key(id))
	if err != nil {
		return domain.Metadata{}, err
	}

	if !found {
		return domain.Metadata{}, notFoundErr("user", id)
	}

	return meta, nil
}
