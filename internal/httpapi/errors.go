package httpapi

import "github.com/vku007/objectapi/internal/apperr"

func notFoundError(path string) error {
	return apperr.NotFoundError{EntityType: "route", ID: path, Message: "no route matches " + path}
}

func methodNotAllowedError(method, path string) error {
	return apperr.MethodNotAllowedError{Method: method, Path: path}
}
