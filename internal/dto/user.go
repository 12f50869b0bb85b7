package dto

// UserCreateRequest is the POST body for creating a user profile.
type UserCreateRequest struct {
	ID         string `json:"id" validate:"required,identifier"`
	Name       string `json:"name" validate:"required,min=2,max=100"`
	ExternalID int    `json:"externalId" validate:"required,min=1"`
}

// Validate runs struct-level validation over r.
func (r UserCreateRequest) Validate() error {
	return validateStruct(r)
}

// UserReplaceRequest is the PUT body for a full user profile replace.
type UserReplaceRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=100"`
	ExternalID int    `json:"externalId" validate:"required,min=1"`
}

// Validate runs struct-level validation over r.
func (r UserReplaceRequest) Validate() error {
	return validateStruct(r)
}

// UserMergeRequest is the PATCH body for a shallow user profile merge.
// Both fields are optional; an absent field preserves the current value.
type UserMergeRequest struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	ExternalID *int    `json:"externalId,omitempty" validate:"omitempty,min=1"`
}

// Validate runs struct-level validation over r.
func (r UserMergeRequest) Validate() error {
	return validateStruct(r)
}

// UserResponse is the wire shape returned for a single user.
type UserResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ExternalID int    `json:"externalId"`
}

// UserListResponse is the wire shape for GET /internal/users: names
// only, per the per-kind listing choice recorded for this repo.
type UserListResponse struct {
	Names      []string `json:"names"`
	NextCursor string   `json:"nextCursor,omitempty"`
}
