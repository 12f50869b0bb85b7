// Package httpapi declares the framework-agnostic request/response
// types the router, middleware, and controllers operate on, so the
// request-processing core has no dependency on any specific HTTP
// framework or the Lambda event shape.
package httpapi

import (
	"context"
	"strings"

	"github.com/vku007/objectapi/internal/auth"
)

// Headers is a case-insensitive header map.
type Headers map[string]string

// Get looks up name case-insensitively.
func (h Headers) Get(name string) string {
	if h == nil {
		return ""
	}

	lower := strings.ToLower(name)

	for k, v := range h {
		if strings.ToLower(k) == lower {
			return v
		}
	}

	return ""
}

// Request is the framework-agnostic inbound request passed through
// the middleware chain to the terminal handler.
type Request struct {
	Method    string
	Path      string
	Headers   Headers
	Query     map[string]string
	Params    map[string]string
	Body      []byte
	RequestID string
	User      *auth.User
	Cookies   map[string]string
	Ctx       context.Context
}

// Context returns the invocation context attached by the entry point,
// so store calls and the JWKS fetch inherit the runtime's deadline.
func (r *Request) Context() context.Context {
	if r.Ctx != nil {
		return r.Ctx
	}

	return context.Background()
}

// Header is shorthand for r.Headers.Get(name).
func (r *Request) Header(name string) string {
	return r.Headers.Get(name)
}

// Param reads a bound path parameter, falling back to a compound
// proxy parameter (e.g. "proxy" carrying "users/u1") when name isn't
// directly bound, for compatibility with single-pattern registrations.
func (r *Request) Param(name string) string {
	if v, ok := r.Params[name]; ok {
		return v
	}

	if proxy, ok := r.Params["proxy"]; ok {
		segments := strings.Split(proxy, "/")
		if len(segments) > 0 {
			return segments[len(segments)-1]
		}
	}

	return ""
}
