// Package controllers owns the per-endpoint HTTP behavior: decoding
// DTOs from the request body, reading conditional headers, calling the
// service, and shaping the response status and headers. Domain errors
// are reshaped into RFC 7807 problem bodies here; NotModified is the
// one non-failure kind and becomes a bare 304 carrying the etag.
package controllers

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/vku007/objectapi/internal/apperr"
	"github.com/vku007/objectapi/internal/httpapi"
)

// cacheControl is attached to every single-entity GET response.
const cacheControl = "private, max-age=300"

// decode unmarshals the request body into dst, reporting an empty or
// malformed body as a validation failure.
func decode(body []byte, dst any) error {
	if len(body) == 0 {
		return apperr.ValidationError{Code: "empty_body", Message: "request body must be a JSON object"}
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return apperr.ValidationError{Code: "malformed_body", Message: "request body is not well-formed JSON"}
	}

	return nil
}

// respond builds the error response for err: a 304 echoing the current
// etag for NotModified, a problem body for everything else.
func respond(err error, req *httpapi.Request) *httpapi.Response {
	var notModified apperr.NotModifiedError
	if errors.As(err, &notModified) {
		return httpapi.NotModified().WithETag(notModified.ETag)
	}

	return httpapi.ProblemFromError(err, req.Path)
}

// listParams reads the prefix/limit/cursor listing query parameters.
func listParams(req *httpapi.Request) (prefix, cursor string, limit int, err error) {
	prefix = req.Query["prefix"]
	cursor = req.Query["cursor"]

	if raw := req.Query["limit"]; raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return "", "", 0, apperr.ValidationError{
				Code:    "invalid_limit",
				Message: "limit must be a positive integer",
				Field:   "limit",
			}
		}
	}

	return prefix, cursor, limit, nil
}
