package objectstore

import (
	"context"

	"github.com/vku007/objectapi/internal/domain"
	"github.com/vku007/objectapi/internal/domain/document"
	"github.com/vku007/objectapi/internal/mlog"
	"github.com/vku007/objectapi/internal/repository"
)

// DocumentRepository is the S3-backed repository.DocumentRepository.
type DocumentRepository struct {
	store     store
	subPrefix string
}

// NewDocumentRepository returns a DocumentRepository rooted at prefix
// (documents live directly at the kind's prefix, with no further
// sub-directory).
func NewDocumentRepository(client API, bucket, prefix string, logger mlog.Logger) *DocumentRepository {
	return &DocumentRepository{store: newStore(client, bucket, logger), subPrefix: prefix}
}

func (r *DocumentRepository) key(id string) string {
	return objectKey(r.subPrefix, id)
}

// FindByID implements repository.DocumentRepository.
func (r *DocumentRepository) FindByID(ctx context.Context, id string, opts repository.AccessOptions) (document.Document, domain.Metadata, bool, error) {
	body, meta, found, err := r.store.get(ctx, r.key(id), opts.IfNoneMatch)
	if err != nil || !found {
		return document.Document{}, domain.Metadata{}, found, err
	}

	doc, err := document.FromJSON(id, body)
	if err != nil {
		return document.Document{}, domain.Metadata{}, false, err
	}

	return doc, meta, true, nil
}

// Save implements repository.DocumentRepository.
func (r *DocumentRepository) Save(ctx context.Context, doc document.Document, opts repository.AccessOptions) (domain.Metadata, error) {
	body, err := doc.ToJSON()
	if err != nil {
		return domain.Metadata{}, err
	}

	return r.store.put(ctx, r.key(doc.ID), body, opts.IfMatch, opts.IfNoneMatch)
}

// Delete implements repository.DocumentRepository.
func (r *DocumentRepository) Delete(ctx context.Context, id string, opts repository.AccessOptions) error {
	return r.store.delete(ctx, r.key(id), opts.IfMatch)
}

// FindAll implements repository.DocumentRepository.
func (r *DocumentRepository) FindAll(ctx context.Context, opts repository.ListOptions) (repository.DocumentList, error) {
	prefix := r.subPrefix + opts.Prefix

	keys, nextCursor, err := r.store.list(ctx, prefix, opts.Limit, opts.Cursor)
	if err != nil {
		return repository.DocumentList{}, err
	}

	items := make([]document.Document, 0, len(keys))

	for _, key := range keys {
		id, err := idFromKey(r.subPrefix, key)
		if err != nil {
			continue
		}

		doc, _, found, err := r.FindByID(ctx, id, repository.AccessOptions{})
		if err != nil || !found {
			continue
		}

		items = append(items, doc)
	}

	return repository.DocumentList{Items: items, NextCursor: nextCursor}, nil
}

// GetMetadata implements repository.DocumentRepository.
func (r *DocumentRepository) GetMetadata(ctx context.Context, id string) (domain.Metadata, error) {
	meta, found, err := r.store.probe(ctx, r.key(id))
	if err != nil {
		return domain.Metadata{}, err
	}

	if !found {
		return domain.Metadata{}, notFoundErr("document", id)
	}

	return meta, nil
}
