package controllers

import (
	"github.com/vku007/objectapi/internal/apperr"
	"github.com/vku007/objectapi/internal/httpapi"
	"github.com/vku007/objectapi/internal/services"
)

// ExternalController serves GET /apiv2/external/me: the user entity
// matching the authenticated token's subject, for any role.
type ExternalController struct {
	users *services.UserService
}

// NewExternalController returns an ExternalController backed by the
// user service.
func NewExternalController(users *services.UserService) *ExternalController {
	return &ExternalController{users: users}
}

// Me handles GET /apiv2/external/me. 404 when no user entity matches
// the token's subject.
func (c *ExternalController) Me(req *httpapi.Request) (*httpapi.Response, error) {
	if req.User == nil {
		return respond(apperr.UnauthorizedError{Code: "missing_user", Message: "no authenticated user on request"}, req), nil
	}

	result, meta, err := c.users.GetByID(req.Context(), req.User.ID, req.Header("If-None-Match"))
	if err != nil {
		return respond(err, req), nil
	}

	return httpapi.OK(result).WithETag(meta.ETag).WithCacheControl(cacheControl), nil
}
