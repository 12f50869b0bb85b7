package middleware

import (
	"github.com/vku007/objectapi/internal/apperr"
	"github.com/vku007/objectapi/internal/httpapi"
)

// RequireRole rejects requests whose authenticated user's role is not
// in allowed.
func RequireRole(allowed ...string) httpapi.Middleware {
	set := make(map[string]bool, len(allowed))
	for _, r := range allowed {
		set[r] = true
	}

	return func(next httpapi.Handler) httpapi.Handler {
		return func(req *httpapi.Request) (*httpapi.Response, error) {
			if req.User == nil || !set[req.User.Role] {
				return httpapi.ProblemFromError(apperr.ForbiddenError{Code: "role_not_allowed", Message: "role not permitted for this resource"}, req.Path), nil
			}

			return next(req)
		}
	}
}
