package services

import (
	"context"

	"github.com/vku007/objectapi/internal/domain"
	"github.com/vku007/objectapi/internal/domain/document"
	"github.com/vku007/objectapi/internal/dto"
	"github.com/vku007/objectapi/internal/repository"
)

// Create persists a new document, failing with Conflict if one with
// the same id already exists.
func (s *DocumentService) Create(ctx context.Context, req dto.DocumentCreateRequest) (dto.DocumentResponse, domain.Metadata, error) {
	if err := req.Validate(); err != nil {
		return dto.DocumentResponse{}, domain.Metadata{}, err
	}

	doc, err := document.New(req.ID, req.Data)
	if err != nil {
		return dto.DocumentResponse{}, domain.Metadata{}, err
	}

	meta, err := s.repo.Save(ctx, doc, repository.AccessOptions{IfNoneMatch: "*"})
	if err != nil {
		return dto.DocumentResponse{}, domain.Metadata{}, err
	}

	return documentResponse(doc), meta, nil
}
