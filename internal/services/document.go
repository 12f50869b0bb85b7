package services

import (
	"github.com/vku007/objectapi/internal/domain/document"
	"github.com/vku007/objectapi/internal/dto"
	"github.com/vku007/objectapi/internal/repository"
)

// DocumentService orchestrates the generic-document use cases.
type DocumentService struct {
	repo           repository.DocumentRepository
	requireIfMatch bool
}

// NewDocumentService returns a DocumentService backed by repo.
// requireIfMatchOnReplace enables the PreconditionRequired policy for
// full replaces.
func NewDocumentService(repo repository.DocumentRepository, requireIfMatchOnReplace bool) *DocumentService {
	return &DocumentService{repo: repo, requireIfMatch: requireIfMatchOnReplace}
}

func documentResponse(doc document.Document) dto.DocumentResponse {
	return dto.DocumentResponse{ID: doc.ID, Data: doc.Data}
}
