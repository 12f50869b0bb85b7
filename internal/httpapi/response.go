package httpapi

import (
	"encoding/json"
	"strings"
)

// Response is the framework-agnostic outbound response a handler
// builds; the gateway adapter translates it into the provider's event
// response shape.
type Response struct {
	StatusCode int
	Body       []byte
	Headers    Headers
}

// NewResponse starts a response at status with an empty body.
func NewResponse(status int) *Response {
	return &Response{StatusCode: status, Headers: Headers{}}
}

// WithJSON marshals v as the body and sets the JSON content type.
func (r *Response) WithJSON(v any) *Response {
	body, err := json.Marshal(v)
	if err != nil {
		return NewProblem(500, "InternalError", "failed to serialize response", "", "")
	}

	r.Body = body
	r.Headers["Content-Type"] = "application/json"

	return r
}

// WithETag sets the ETag header, quoting the value if it isn't
// already a quoted opaque string.
func (r *Response) WithETag(etag string) *Response {
	if etag == "" {
		return r
	}

	if !strings.HasPrefix(etag, `"`) {
		etag = `"` + etag + `"`
	}

	r.Headers["ETag"] = etag

	return r
}

// WithLocation sets the Location header.
func (r *Response) WithLocation(path string) *Response {
	r.Headers["Location"] = path
	return r
}

// WithCacheControl sets the Cache-Control header.
func (r *Response) WithCacheControl(directive string) *Response {
	r.Headers["Cache-Control"] = directive
	return r
}

// WithHeader sets an arbitrary header.
func (r *Response) WithHeader(name, value string) *Response {
	r.Headers[name] = value
	return r
}

// OK builds a 200 response carrying v as JSON.
func OK(v any) *Response { return NewResponse(200).WithJSON(v) }

// Created builds a 201 response carrying v as JSON.
func Created(v any) *Response { return NewResponse(201).WithJSON(v) }

// NoContent builds a 204 response with no body.
func NoContent() *Response { return NewResponse(204) }

// NotModified builds a 304 response with no body.
func NotModified() *Response { return NewResponse(304) }
