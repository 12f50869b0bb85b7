package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/vku007/objectapi/internal/apperr"
	"github.com/vku007/objectapi/internal/domain"
	"github.com/vku007/objectapi/internal/domain/document"
	"github.com/vku007/objectapi/internal/domain/game"
	"github.com/vku007/objectapi/internal/domain/user"
	"github.com/vku007/objectapi/internal/repository"
)

// conditionalStore implements the precondition protocol shared by the
// three fake repositories: versioned entries keyed by id, with the
// same If-Match / If-None-Match semantics the object store enforces.
type conditionalStore struct {
	etags   map[string]string
	version int
}

func newConditionalStore() *conditionalStore {
	return &conditionalStore{etags: map[string]string{}}
}

func (s *conditionalStore) checkWrite(id string, opts repository.AccessOptions) error {
	etag, exists := s.etags[id]

	switch {
	case opts.IfNoneMatch == "*" && exists:
		return apperr.ConflictError{EntityType: id, Code: "already_exists", Message: "an object with this id already exists"}
	case opts.IfMatch != "" && !exists:
		return apperr.NotFoundError{EntityType: "object", ID: id}
	case opts.IfMatch != "" && etag != opts.IfMatch:
		return apperr.PreconditionFailedError{EntityType: id, Code: "etag_mismatch", Message: "if-match precondition failed"}
	}

	return nil
}

func (s *conditionalStore) assign(id string) domain.Metadata {
	s.version++
	meta := domain.Metadata{ETag: fmt.Sprintf(`"v%d"`, s.version), Size: 1, LastModified: "2026-01-01T00:00:00Z"}
	s.etags[id] = meta.ETag

	return meta
}

func (s *conditionalStore) checkRead(id string, opts repository.AccessOptions) (domain.Metadata, bool, error) {
	etag, exists := s.etags[id]
	if !exists {
		return domain.Metadata{}, false, nil
	}

	if opts.IfNoneMatch != "" && opts.IfNoneMatch == etag {
		return domain.Metadata{}, true, apperr.NotModifiedError{ETag: etag}
	}

	return domain.Metadata{ETag: etag, Size: 1, LastModified: "2026-01-01T00:00:00Z"}, true, nil
}

func (s *conditionalStore) checkDelete(id string, opts repository.AccessOptions) error {
	etag, exists := s.etags[id]
	if !exists {
		return apperr.NotFoundError{EntityType: "object", ID: id}
	}

	if opts.IfMatch != "" && etag != opts.IfMatch {
		return apperr.PreconditionFailedError{EntityType: id, Code: "etag_mismatch", Message: "if-match precondition failed"}
	}

	delete(s.etags, id)

	return nil
}

// page applies limit/cursor over the sorted ids, mirroring the
// opaque-cursor listing contract.
func (s *conditionalStore) page(opts repository.ListOptions) (ids []string, nextCursor string) {
	all := make([]string, 0, len(s.etags))
	for id := range s.etags {
		all = append(all, id)
	}

	sort.Strings(all)

	start := 0
	if opts.Cursor != "" {
		start, _ = strconv.Atoi(opts.Cursor)
	}

	if start >= len(all) {
		return nil, ""
	}

	end := len(all)
	if opts.Limit > 0 && start+opts.Limit < end {
		end = start + opts.Limit
		nextCursor = strconv.Itoa(end)
	}

	return all[start:end], nextCursor
}

type fakeUserRepo struct {
	store    *conditionalStore
	profiles map[string]user.Profile
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{store: newConditionalStore(), profiles: map[string]user.Profile{}}
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string, opts repository.AccessOptions) (user.Entity, bool, error) {
	meta, found, err := r.store.checkRead(id, opts)
	if err != nil || !found {
		return user.Entity{}, found, err
	}

	return user.NewEntity(r.profiles[id]).WithMetadata(meta), true, nil
}

func (r *fakeUserRepo) Save(ctx context.Context, entity user.Entity, opts repository.AccessOptions) (user.Entity, error) {
	id := entity.Profile.ID

	if err := r.store.checkWrite(id, opts); err != nil {
		return user.Entity{}, err
	}

	r.profiles[id] = entity.Profile

	return entity.WithMetadata(r.store.assign(id)), nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string, opts repository.AccessOptions) error {
	if err := r.store.checkDelete(id, opts); err != nil {
		return err
	}

	delete(r.profiles, id)

	return nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context, opts repository.ListOptions) (repository.UserList, error) {
	ids, next := r.store.page(opts)

	items := make([]user.Entity, len(ids))
	for i, id := range ids {
		items[i] = user.NewEntity(r.profiles[id])
	}

	return repository.UserList{Items: items, NextCursor: next}, nil
}

func (r *fakeUserRepo) GetMetadata(ctx context.Context, id string) (domain.Metadata, error) {
	meta, found, err := r.store.checkRead(id, repository.AccessOptions{})
	if err != nil {
		return domain.Metadata{}, err
	}

	if !found {
		return domain.Metadata{}, apperr.NotFoundError{EntityType: "user", ID: id}
	}

	return meta, nil
}

type fakeGameRepo struct {
	store *conditionalStore
	games map[string]game.Game
}

func newFakeGameRepo() *fakeGameRepo {
	return &fakeGameRepo{store: newConditionalStore(), games: map[string]game.Game{}}
}

func (r *fakeGameRepo) FindByID(ctx context.Context, id string, opts repository.AccessOptions) (game.Entity, bool, error) {
	meta, found, err := r.store.checkRead(id, opts)
	if err != nil || !found {
		return game.Entity{}, found, err
	}

	return game.NewEntity(r.games[id]).WithMetadata(meta), true, nil
}

func (r *fakeGameRepo) Save(ctx context.Context, entity game.Entity, opts repository.AccessOptions) (game.Entity, error) {
	id := entity.Game.ID

	if err := r.store.checkWrite(id, opts); err != nil {
		return game.Entity{}, err
	}

	r.games[id] = entity.Game

	return entity.WithMetadata(r.store.assign(id)), nil
}

func (r *fakeGameRepo) Delete(ctx context.Context, id string, opts repository.AccessOptions) error {
	if err := r.store.checkDelete(id, opts); err != nil {
		return err
	}

	delete(r.games, id)

	return nil
}

func (r *fakeGameRepo) FindAll(ctx context.Context, opts repository.ListOptions) (repository.GameList, error) {
	ids, next := r.store.page(opts)

	items := make([]game.Entity, len(ids))
	for i, id := range ids {
		items[i] = game.NewEntity(r.games[id])
	}

	return repository.GameList{Items: items, NextCursor: next}, nil
}

func (r *fakeGameRepo) GetMetadata(ctx context.Context, id string) (domain.Metadata, error) {
	meta, found, err := r.store.checkRead(id, repository.AccessOptions{})
	if err != nil {
		return domain.Metadata{}, err
	}

	if !found {
		return domain.Metadata{}, apperr.NotFoundError{EntityType: "game", ID: id}
	}

	return meta, nil
}

type fakeDocumentRepo struct {
	store *conditionalStore
	docs  map[string]document.Document
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{store: newConditionalStore(), docs: map[string]document.Document{}}
}

func (r *fakeDocumentRepo) FindByID(ctx context.Context, id string, opts repository.AccessOptions) (document.Document, domain.Metadata, bool, error) {
	meta, found, err := r.store.checkRead(id, opts)
	if err != nil || !found {
		return document.Document{}, domain.Metadata{}, found, err
	}

	return r.docs[id], meta, true, nil
}

func (r *fakeDocumentRepo) Save(ctx context.Context, doc document.Document, opts repository.AccessOptions) (domain.Metadata, error) {
	if err := r.store.checkWrite(doc.ID, opts); err != nil {
		return domain.Metadata{}, err
	}

	r.docs[doc.ID] = doc

	return r.store.assign(doc.ID), nil
}

func (r *fakeDocumentRepo) Delete(ctx context.Context, id string, opts repository.AccessOptions) error {
	if err := r.store.checkDelete(id, opts); err != nil {
		return err
	}

	delete(r.docs, id)

	return nil
}

func (r *fakeDocumentRepo) FindAll(ctx context.Context, opts repository.ListOptions) (repository.DocumentList, error) {
	ids, next := r.store.page(opts)

	items := make([]document.Document, len(ids))
	for i, id := range ids {
		items[i] = r.docs[id]
	}

	return repository.DocumentList{Items: items, NextCursor: next}, nil
}

func (r *fakeDocumentRepo) GetMetadata(ctx context.Context, id string) (domain.Metadata, error) {
	meta, found, err := r.store.checkRead(id, repository.AccessOptions{})
	if err != nil {
		return domain.Metadata{}, err
	}

	if !found {
		return domain.Metadata{}, apperr.NotFoundError{EntityType: "document", ID: id}
	}

	return meta, nil
}
