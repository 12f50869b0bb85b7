package repository

import (
	"context"

	"github.com/vku007/objectapi/internal/domain"
	"github.com/vku007/objectapi/internal/domain/document"
)

// DocumentList is the result of a document listing.
type DocumentList struct {
	Items      []document.Document
	NextCursor string
}

// DocumentRepository persists generic JSON documents under the
// document kind's key sub-prefix.
//
//go:generate mockgen --destination=document.mock.go --package=repository . DocumentRepository
type DocumentRepository interface {
	// FindByID returns (doc, meta, nil) on a hit, (Document{}, Metadata{}, nil)
	// with found=false on a clean miss, or a NotModified error when
	// opts.IfNoneMatch equals the current etag.
	FindByID(ctx context.Context, id string, opts AccessOptions) (doc document.Document, meta domain.Metadata, found bool, err error)

	// Save writes doc and returns the store-assigned metadata.
	Save(ctx context.Context, doc document.Document, opts AccessOptions) (domain.Metadata, error)

	// Delete removes the document identified by id.
	Delete(ctx context.Context, id string, opts AccessOptions) error

	// FindAll lists documents under the kind's prefix.
	FindAll(ctx context.Context, opts ListOptions) (DocumentList, error)

	// GetMetadata head-probes the document identified by id.
	GetMetadata(ctx context.Context, id string) (domain.Metadata, error)
}
