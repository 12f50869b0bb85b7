package services

import (
	"context"
	"encoding/json"

	"github.com/vku007/objectapi/internal/apperr"
	"github.com/vku007/objectapi/internal/domain"
	"github.com/vku007/objectapi/internal/dto"
	"github.com/vku007/objectapi/internal/repository"
)

// Merge shallow-merges the request's data into the stored document:
// when both are JSON objects the provided top-level keys overwrite and
// the rest are preserved; otherwise the provided value replaces the
// stored one wholesale. An absent data field leaves the document as is.
func (s *DocumentService) Merge(ctx context.Context, id string, req dto.DocumentMergeRequest, ifMatch string) (dto.DocumentResponse, domain.Metadata, error) {
	if err := domain.ValidateID("id", id); err != nil {
		return dto.DocumentResponse{}, domain.Metadata{}, err
	}

	if err := req.Validate(); err != nil {
		return dto.DocumentResponse{}, domain.Metadata{}, err
	}

	current, _, found, err := s.repo.FindByID(ctx, id, repository.AccessOptions{})
	if err != nil {
		return dto.DocumentResponse{}, domain.Metadata{}, err
	}

	if !found {
		return dto.DocumentResponse{}, domain.Metadata{}, apperr.NotFoundError{EntityType: "document", ID: id}
	}

	merged := current.Data
	if len(req.Data) > 0 {
		merged = mergeJSON(current.Data, req.Data)
	}

	doc, err := current.Replace(merged)
	if err != nil {
		return dto.DocumentResponse{}, domain.Metadata{}, err
	}

	meta, err := s.repo.Save(ctx, doc, repository.AccessOptions{IfMatch: ifMatch})
	if err != nil {
		return dto.DocumentResponse{}, domain.Metadata{}, err
	}

	return documentResponse(doc), meta, nil
}

// mergeJSON overlays patch's top-level keys onto current when both are
// objects; any other combination of shapes resolves to patch.
func mergeJSON(current, patch json.RawMessage) json.RawMessage {
	var base map[string]json.RawMessage
	if err := json.Unmarshal(current, &base); err != nil {
		return patch
	}

	var overlay map[string]json.RawMessage
	if err := json.Unmarshal(patch, &overlay); err != nil {
		return patch
	}

	if base == nil {
		base = map[string]json.RawMessage{}
	}

	for k, v := range overlay {
		base[k] = v
	}

	out, err := json.Marshal(base)
	if err != nil {
		return patch
	}

	return out
}
