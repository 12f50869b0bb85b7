// Package services orchestrates the use cases of the three kinds:
// each use case composes repository calls with the optimistic-
// concurrency preconditions the caller supplied and translates between
// wire DTOs and domain aggregates. One file per use case per kind.
package services

import (
	"github.com/vku007/objectapi/internal/domain"
	"github.com/vku007/objectapi/internal/dto"
)

func metadataResponse(m domain.Metadata) dto.MetadataResponse {
	return dto.MetadataResponse{ETag: m.ETag, Size: m.Size, LastModified: m.LastModified}
}
