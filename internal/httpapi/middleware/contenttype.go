package middleware

import (
	"strings"

	"github.com/vku007/objectapi/internal/apperr"
	"github.com/vku007/objectapi/internal/httpapi"
)

var mutatingMethods = map[string]bool{"POST": true, "PUT": true, "PATCH": true}

// ContentType requires application/json on mutating methods and
// rejects bodies larger than maxBodyBytes.
func ContentType(maxBodyBytes int) httpapi.Middleware {
	return func(next httpapi.Handler) httpapi.Handler {
		return func(req *httpapi.Request) (*httpapi.Response, error) {
			if mutatingMethods[req.Method] {
				mediaType := mediaTypeOf(req.Header("Content-Type"))
				if mediaType != "application/json" {
					return httpapi.ProblemFromError(apperr.UnsupportedMediaTypeError{ContentType: req.Header("Content-Type")}, req.Path), nil
				}
			}

			if len(req.Body) > maxBodyBytes {
				return httpapi.ProblemFromError(apperr.PayloadTooLargeError{MaxBytes: maxBodyBytes}, req.Path), nil
			}

			return next(req)
		}
	}
}

func mediaTypeOf(contentType string) string {
	return strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0])
}
