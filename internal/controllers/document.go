package controllers

import (
	"github.com/vku007/objectapi/internal/dto"
	"github.com/vku007/objectapi/internal/httpapi"
	"github.com/vku007/objectapi/internal/services"
)

// DocumentController serves the /internal/files endpoints.
type DocumentController struct {
	svc      *services.DocumentService
	basePath string
}

// NewDocumentController returns a DocumentController mounted at
// basePath (e.g. "/apiv2/internal/files").
func NewDocumentController(svc *services.DocumentService, basePath string) *DocumentController {
	return &DocumentController{svc: svc, basePath: basePath}
}

// List handles GET <basePath>.
func (c *DocumentController) List(req *httpapi.Request) (*httpapi.Response, error) {
	prefix, cursor, limit, err := listParams(req)
	if err != nil {
		return respond(err, req), nil
	}

	result, err := c.svc.List(req.Context(), prefix, cursor, limit)
	if err != nil {
		return respond(err, req), nil
	}

	return httpapi.OK(result), nil
}

// Create handles POST <basePath>.
func (c *DocumentController) Create(req *httpapi.Request) (*httpapi.Response, error) {
	var body dto.DocumentCreateRequest
	if err := decode(req.Body, &body); err != nil {
		return respond(err, req), nil
	}

	result, meta, err := c.svc.Create(req.Context(), body)
	if err != nil {
		return respond(err, req), nil
	}

	return httpapi.Created(result).
		WithLocation(c.basePath + "/" + result.ID).
		WithETag(meta.ETag), nil
}

// Get handles GET <basePath>/{id}.
func (c *DocumentController) Get(req *httpapi.Request) (*httpapi.Response, error) {
	result, meta, err := c.svc.GetByID(req.Context(), req.Param("id"), req.Header("If-None-Match"))
	if err != nil {
		return respond(err, req), nil
	}

	return httpapi.OK(result).WithETag(meta.ETag).WithCacheControl(cacheControl), nil
}

// Meta handles GET <basePath>/{id}/meta.
func (c *DocumentController) Meta(req *httpapi.Request) (*httpapi.Response, error) {
	result, err := c.svc.GetMetadata(req.Context(), req.Param("id"))
	if err != nil {
		return respond(err, req), nil
	}

	return httpapi.OK(result).WithETag(result.ETag), nil
}

// Replace handles PUT <basePath>/{id}.
func (c *DocumentController) Replace(req *httpapi.Request) (*httpapi.Response, error) {
	var body dto.DocumentReplaceRequest
	if err := decode(req.Body, &body); err != nil {
		return respond(err, req), nil
	}

	result, meta, err := c.svc.Replace(req.Context(), req.Param("id"), body, req.Header("If-Match"))
	if err != nil {
		return respond(err, req), nil
	}

	return httpapi.OK(result).WithETag(meta.ETag), nil
}

// Merge handles PATCH <basePath>/{id}.
func (c *DocumentController) Merge(req *httpapi.Request) (*httpapi.Response, error) {
	var body dto.DocumentMergeRequest
	if err := decode(req.Body, &body); err != nil {
		return respond(err, req), nil
	}

	result, meta, err := c.svc.Merge(req.Context(), req.Param("id"), body, req.Header("If-Match"))
	if err != nil {
		return respond(err, req), nil
	}

	return httpapi.OK(result).WithETag(meta.ETag), nil
}

// Delete handles DELETE <basePath>/{id}.
func (c *DocumentController) Delete(req *httpapi.Request) (*httpapi.Response, error) {
	if err := c.svc.Delete(req.Context(), req.Param("id"), req.Header("If-Match")); err != nil {
		return respond(err, req), nil
	}

	return httpapi.NoContent(), nil
}
