package dto

import "encoding/json"

// DocumentCreateRequest is the POST body for creating a document.
type DocumentCreateRequest struct {
	ID   string          `json:"id" validate:"required,identifier"`
	Data json.RawMessage `json:"data"`
}

// Validate runs struct-level validation over r.
func (r DocumentCreateRequest) Validate() error {
	return validateStruct(r)
}

// DocumentReplaceRequest is the PUT body for a full document replace.
// Data is required: replace always supplies the full state.
type DocumentReplaceRequest struct {
	Data json.RawMessage `json:"data" validate:"required"`
}

// Validate runs struct-level validation over r.
func (r DocumentReplaceRequest) Validate() error {
	return validateStruct(r)
}

// DocumentMergeRequest is the PATCH body for a shallow document merge.
// Data is optional: an absent field leaves the current data untouched.
type DocumentMergeRequest struct {
	Data json.RawMessage `json:"data,omitempty"`
}

// Validate runs struct-level validation over r.
func (r DocumentMergeRequest) Validate() error {
	return validateStruct(r)
}

// DocumentResponse is the wire shape returned for a single document.
type DocumentResponse struct {
	ID   string          `json:"id"`
	Data json.RawMessage `json:"data"`
}

// DocumentListResponse is the wire shape for GET /internal/files.
type DocumentListResponse struct {
	Items      []DocumentResponse `json:"items"`
	NextCursor string              `json:"nextCursor,omitempty"`
}
