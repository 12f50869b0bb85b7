package services

import (
	"context"

	"github.com/vku007/objectapi/internal/apperr"
	"github.com/vku007/objectapi/internal/domain"
	"github.com/vku007/objectapi/internal/dto"
	"github.com/vku007/objectapi/internal/repository"
)

// Replace overwrites a document's data entirely, honoring the caller's
// If-Match precondition and the optional PreconditionRequired policy.
func (s *DocumentService) Replace(ctx context.Context, id string, req dto.DocumentReplaceRequest, ifMatch string) (dto.DocumentResponse, domain.Metadata, error) {
	if err := domain.ValidateID("id", id); err != nil {
		return dto.DocumentResponse{}, domain.Metadata{}, err
	}

	if err := req.Validate(); err != nil {
		return dto.DocumentResponse{}, domain.Metadata{}, err
	}

	if s.requireIfMatch && ifMatch == "" {
		return dto.DocumentResponse{}, domain.Metadata{}, apperr.PreconditionRequiredError{}
	}

	current, _, found, err := s.repo.FindByID(ctx, id, repository.AccessOptions{})
	if err != nil {
		return dto.DocumentResponse{}, domain.Metadata{}, err
	}

	if !found {
		return dto.DocumentResponse{}, domain.Metadata{}, apperr.NotFoundError{EntityType: "document", ID: id}
	}

	doc, err := current.Replace(req.Data)
	if err != nil {
		return dto.DocumentResponse{}, domain.Metadata{}, err
	}

	meta, err := s.repo.Save(ctx, doc, repository.AccessOptions{IfMatch: ifMatch})
	if err != nil {
		return dto.DocumentResponse{}, domain.Metadata{}, err
	}

	return documentResponse(doc), meta, nil
}
