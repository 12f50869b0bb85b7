package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vku007/objectapi/internal/apperr"
	"github.com/vku007/objectapi/internal/dto"
)

func TestDocumentCreateThenGet(t *testing.T) {
	svc := NewDocumentService(newFakeDocumentRepo(), false)
	ctx := context.Background()

	created, meta, err := svc.Create(ctx, dto.DocumentCreateRequest{ID: "d1", Data: json.RawMessage(`{"a":1}`)})
	require.NoError(t, err)
	assert.NotEmpty(t, meta.ETag)

	got, _, err := svc.GetByID(ctx, "d1", "")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(got.Data))
	assert.Equal(t, created.ID, got.ID)
}

func TestDocumentCreateDuplicateConflicts(t *testing.T) {
	svc := NewDocumentService(newFakeDocumentRepo(), false)
	ctx := context.Background()

	_, _, err := svc.Create(ctx, dto.DocumentCreateRequest{ID: "d1", Data: json.RawMessage(`1`)})
	require.NoError(t, err)

	_, _, err = svc.Create(ctx, dto.DocumentCreateRequest{ID: "d1", Data: json.RawMessage(`2`)})
	assert.IsType(t, apperr.ConflictError{}, err)
}

func TestDocumentMergeOverlaysTopLevelKeys(t *testing.T) {
	svc := NewDocumentService(newFakeDocumentRepo(), false)
	ctx := context.Background()

	_, _, err := svc.Create(ctx, dto.DocumentCreateRequest{ID: "d1", Data: json.RawMessage(`{"a":1,"b":2}`)})
	require.NoError(t, err)

	merged, _, err := svc.Merge(ctx, "d1", dto.DocumentMergeRequest{Data: json.RawMessage(`{"b":3,"c":4}`)}, "")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1,"b":3,"c":4}`, string(merged.Data))
}

func TestDocumentMergeWithoutDataLeavesDocumentUnchanged(t *testing.T) {
	svc := NewDocumentService(newFakeDocumentRepo(), false)
	ctx := context.Background()

	_, _, err := svc.Create(ctx, dto.DocumentCreateRequest{ID: "d1", Data: json.RawMessage(`{"a":1}`)})
	require.NoError(t, err)

	merged, _, err := svc.Merge(ctx, "d1", dto.DocumentMergeRequest{}, "")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(merged.Data))
}

func TestDocumentMergeNonObjectReplaces(t *testing.T) {
	svc := NewDocumentService(newFakeDocumentRepo(), false)
	ctx := context.Background()

	_, _, err := svc.Create(ctx, dto.DocumentCreateRequest{ID: "d1", Data: json.RawMessage(`[1,2]`)})
	require.NoError(t, err)

	merged, _, err := svc.Merge(ctx, "d1", dto.DocumentMergeRequest{Data: json.RawMessage(`{"a":1}`)}, "")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(merged.Data))
}

func TestDocumentReplaceWithStaleIfMatchFails(t *testing.T) {
	svc := NewDocumentService(newFakeDocumentRepo(), false)
	ctx := context.Background()

	_, _, err := svc.Create(ctx, dto.DocumentCreateRequest{ID: "d1", Data: json.RawMessage(`1`)})
	require.NoError(t, err)

	_, _, err = svc.Replace(ctx, "d1", dto.DocumentReplaceRequest{Data: json.RawMessage(`2`)}, `"stale"`)
	assert.IsType(t, apperr.PreconditionFailedError{}, err)
}

func TestDocumentReplaceMissingIsNotFound(t *testing.T) {
	svc := NewDocumentService(newFakeDocumentRepo(), false)

	_, _, err := svc.Replace(context.Background(), "absent", dto.DocumentReplaceRequest{Data: json.RawMessage(`1`)}, "")
	assert.IsType(t, apperr.NotFoundError{}, err)
}

func TestDocumentGetMetadataAfterSaveMatchesETag(t *testing.T) {
	svc := NewDocumentService(newFakeDocumentRepo(), false)
	ctx := context.Background()

	_, meta, err := svc.Create(ctx, dto.DocumentCreateRequest{ID: "d1", Data: json.RawMessage(`1`)})
	require.NoError(t, err)

	probe, err := svc.GetMetadata(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, meta.ETag, probe.ETag)
}

func TestDocumentListReturnsItems(t *testing.T) {
	svc := NewDocumentService(newFakeDocumentRepo(), false)
	ctx := context.Background()

	for _, id := range []string{"d1", "d2"} {
		_, _, err := svc.Create(ctx, dto.DocumentCreateRequest{ID: id, Data: json.RawMessage(`{"k":"` + id + `"}`)})
		require.NoError(t, err)
	}

	result, err := svc.List(ctx, "", "", 0)
	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "d1", result.Items[0].ID)
}
