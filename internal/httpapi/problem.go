package httpapi

import (
	"encoding/json"

	"github.com/vku007/objectapi/internal/apperr"
)

// Problem is the RFC 7807 problem-details body used for every
// non-success response.
type Problem struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
	Field    string `json:"field,omitempty"`
}

// NewProblem builds a Response carrying a Problem body with content
// type application/problem+json.
func NewProblem(status int, title, detail, instance, field string) *Response {
	p := Problem{Type: "about:blank", Title: title, Status: status, Detail: detail, Instance: instance, Field: field}

	body, _ := json.Marshal(p)

	return &Response{
		StatusCode: status,
		Body:       body,
		Headers:    Headers{"Content-Type": "application/problem+json"},
	}
}

// ProblemFromError builds the problem response for err using its
// mapped status, apperr.Title, and apperr.Field.
func ProblemFromError(err error, instance string) *Response {
	status := apperr.Status(err)

	return NewProblem(status, apperr.Title(err), err.Error(), instance, apperr.Field(err))
}
