package services

import (
	"context"

	"github.com/vku007/objectapi/internal/domain"
	"github.com/vku007/objectapi/internal/repository"
)

// Delete removes a document, honoring the caller's If-Match
// precondition when supplied.
func (s *DocumentService) Delete(ctx context.Context, id, ifMatch string) error {
	if err := domain.ValidateID("id", id); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id, repository.AccessOptions{IfMatch: ifMatch})
}
