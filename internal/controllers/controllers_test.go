package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vku007/objectapi/internal/apperr"
	"github.com/vku007/objectapi/internal/httpapi"
)

func TestDecodeRejectsEmptyBody(t *testing.T) {
	var dst map[string]any

	err := decode(nil, &dst)
	assert.IsType(t, apperr.ValidationError{}, err)
}

func TestDecodeRejectsMalformedBody(t *testing.T) {
	var dst map[string]any

	err := decode([]byte(`{"broken`), &dst)
	assert.IsType(t, apperr.ValidationError{}, err)
}

func TestRespondTurnsNotModifiedIntoBare304(t *testing.T) {
	req := &httpapi.Request{Path: "/apiv2/internal/users/u1"}

	resp := respond(apperr.NotModifiedError{ETag: `"v1"`}, req)

	assert.Equal(t, 304, resp.StatusCode)
	assert.Empty(t, resp.Body)
	assert.Equal(t, `"v1"`, resp.Headers["ETag"])
}

func TestRespondBuildsProblemForDomainError(t *testing.T) {
	req := &httpapi.Request{Path: "/apiv2/internal/users/u1"}

	resp := respond(apperr.NotFoundError{EntityType: "user", ID: "u1"}, req)

	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Headers["Content-Type"])
	assert.Contains(t, string(resp.Body), `"title":"NotFoundError"`)
	assert.Contains(t, string(resp.Body), `"instance":"/apiv2/internal/users/u1"`)
}

func TestListParamsParsesQuery(t *testing.T) {
	req := &httpapi.Request{Query: map[string]string{"prefix": "a", "limit": "25", "cursor": "abc"}}

	prefix, cursor, limit, err := listParams(req)
	require.NoError(t, err)
	assert.Equal(t, "a", prefix)
	assert.Equal(t, "abc", cursor)
	assert.Equal(t, 25, limit)
}

func TestListParamsRejectsBadLimit(t *testing.T) {
	req := &httpapi.Request{Query: map[string]string{"limit": "zero"}}

	_, _, _, err := listParams(req)
	assert.IsType(t, apperr.ValidationError{}, err)
}
