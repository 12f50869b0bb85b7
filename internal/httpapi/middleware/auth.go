package middleware

import (
	"github.com/vku007/objectapi/internal/auth"
	"github.com/vku007/objectapi/internal/httpapi"
)

// Authenticate extracts and verifies the bearer token, attaching the
// derived user to the request on success.
func Authenticate(verifier *auth.Verifier, cookieName string) httpapi.Middleware {
	return func(next httpapi.Handler) httpapi.Handler {
		return func(req *httpapi.Request) (*httpapi.Response, error) {
			token := auth.ExtractToken(req.Header("Authorization"), req.Cookies, cookieName)

			user, err := verifier.Verify(req.Context(), token)
			if err != nil {
				return httpapi.ProblemFromError(err, req.Path), nil
			}

			req.User = &user

			return next(req)
		}
	}
}
