package services

import (
	"context"

	"github.com/vku007/objectapi/internal/apperr"
	"github.com/vku007/objectapi/internal/domain"
	"github.com/vku007/objectapi/internal/dto"
	"github.com/vku007/objectapi/internal/repository"
)

// GetByID loads a document, signaling NotModified when ifNoneMatch
// equals the current etag.
func (s *DocumentService) GetByID(ctx context.Context, id, ifNoneMatch string) (dto.DocumentResponse, domain.Metadata, error) {
	if err := domain.ValidateID("id", id); err != nil {
		return dto.DocumentResponse{}, domain.Metadata{}, err
	}

	doc, meta, found, err := s.repo.FindByID(ctx, id, repository.AccessOptions{IfNoneMatch: ifNoneMatch})
	if err != nil {
		return dto.DocumentResponse{}, domain.Metadata{}, err
	}

	if !found {
		return dto.DocumentResponse{}, domain.Metadata{}, apperr.NotFoundError{EntityType: "document", ID: id}
	}

	return documentResponse(doc), meta, nil
}
