package controllers

import (
	"github.com/vku007/objectapi/internal/dto"
	"github.com/vku007/objectapi/internal/httpapi"
	"github.com/vku007/objectapi/internal/services"
)

// GameController serves the /internal/games endpoints, including the
// round/move sub-resources.
type GameController struct {
	svc      *services.GameService
	basePath string
}

// NewGameController returns a GameController mounted at basePath.
func NewGameController(svc *services.GameService, basePath string) *GameController {
	return &GameController{svc: svc, basePath: basePath}
}

// List handles GET <basePath>.
func (c *GameController) List(req *httpapi.Request) (*httpapi.Response, error) {
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
func (c *GameController) Create(req *httpapi.Request) (*httpapi.Response, error) {
	var body dto.GameCreateRequest
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
func (c *GameController) Get(req *httpapi.Request) (*httpapi.Response, error) {
	result, meta, err := c.svc.GetByID(req.Context(), req.Param("id"), req.Header("If-None-Match"))
	if err != nil {
		return respond(err, req), nil
	}

	return httpapi.OK(result).WithETag(meta.ETag).WithCacheControl(cacheControl), nil
}

// Meta handles GET <basePath>/{id}/meta.
func (c *GameController) Meta(req *httpapi.Request) (*httpapi.Response, error) {
	result, err := c.svc.GetMetadata(req.Context(), req.Param("id"))
	if err != nil {
		return respond(err, req), nil
	}

	return httpapi.OK(result).WithETag(result.ETag), nil
}

// Replace handles PUT <basePath>/{id}.
func (c *GameController) Replace(req *httpapi.Request) (*httpapi.Response, error) {
	var body dto.GameReplaceRequest
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
func (c *GameController) Merge(req *httpapi.Request) (*httpapi.Response, error) {
	var body dto.GameMergeRequest
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
func (c *GameController) Delete(req *httpapi.Request) (*httpapi.Response, error) {
	if err := c.svc.Delete(req.Context(), req.Param("id"), req.Header("If-Match")); err != nil {
		return respond(err, req), nil
	}

	return httpapi.NoContent(), nil
}

// AddRound handles POST <basePath>/{id}/rounds.
func (c *GameController) AddRound(req *httpapi.Request) (*httpapi.Response, error) {
	var body dto.RoundRequest
	if err := decode(req.Body, &body); err != nil {
		return respond(err, req), nil
	}

	result, meta, err := c.svc.AddRound(req.Context(), req.Param("id"), body, req.Header("If-Match"))
	if err != nil {
		return respond(err, req), nil
	}

	return httpapi.Created(result).WithETag(meta.ETag), nil
}

// AddMove handles POST <basePath>/{gameId}/rounds/{roundId}/moves.
func (c *GameController) AddMove(req *httpapi.Request) (*httpapi.Response, error) {
	var body dto.MoveRequest
	if err := decode(req.Body, &body); err != nil {
		return respond(err, req), nil
	}

	result, meta, err := c.svc.AddMove(req.Context(), req.Params["gameId"], req.Params["roundId"], body, req.Header("If-Match"))
	if err != nil {
		return respond(err, req), nil
	}

	return httpapi.Created(result).WithETag(meta.ETag), nil
}

// FinishRound handles PATCH <basePath>/{gameId}/rounds/{roundId}/finish.
func (c *GameController) FinishRound(req *httpapi.Request) (*httpapi.Response, error) {
	result, meta, err := c.svc.FinishRound(req.Context(), req.Params["gameId"], req.Params["roundId"], req.Header("If-Match"))
	if err != nil {
		return respond(err, req), nil
	}

	return httpapi.OK(result).WithETag(meta.ETag), nil
}

// FinishGame handles PATCH <basePath>/{id}/finish.
func (c *GameController) FinishGame(req *httpapi.Request) (*httpapi.Response, error) {
	result, meta, err := c.svc.Finish(req.Context(), req.Param("id"), req.Header("If-Match"))
	if err != nil {
		return respond(err, req), nil
	}

	return httpapi.OK(result).WithETag(meta.ETag), nil
}
