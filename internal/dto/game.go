package dto

// MoveRequest is the wire shape of a Move, embedded in round/game
// bodies and used standalone as the add-move request body.
type MoveRequest struct {
	ID             string  `json:"id" validate:"required,identifier"`
	UserID         string  `json:"userId" validate:"required,identifier"`
	Value          float64 `json:"value"`
	ValueDecorated string  `json:"valueDecorated,omitempty"`
}

// Validate runs struct-level validation over r.
func (r MoveRequest) Validate() error {
	return validateStruct(r)
}

// RoundRequest is the wire shape of a Round, embedded in game bodies
// and used standalone as the add-round request body.
type RoundRequest struct {
	ID         string        `json:"id" validate:"required"`
	Moves      []MoveRequest `json:"moves"`
	IsFinished bool          `json:"isFinished"`
	Time       float64       `json:"time"`
}

// Validate runs struct-level validation over r.
func (r RoundRequest) Validate() error {
	return validateStruct(r)
}

// GameCreateRequest is the POST body for creating a game.
type GameCreateRequest struct {
	ID         string         `json:"id" validate:"required,identifier"`
	Type       string         `json:"type" validate:"required,max=100"`
	UsersIDs   []string       `json:"usersIds" validate:"required,dedupids"`
	Rounds     []RoundRequest `json:"rounds"`
	IsFinished bool           `json:"isFinished"`
}

// Validate runs struct-level validation over r.
func (r GameCreateRequest) Validate() error {
	return validateStruct(r)
}

// GameReplaceRequest is the PUT body for a full game replace.
type GameReplaceRequest struct {
	Type       string         `json:"type" validate:"required,max=100"`
	UsersIDs   []string       `json:"usersIds" validate:"required,dedupids"`
	Rounds     []RoundRequest `json:"rounds"`
	IsFinished bool           `json:"isFinished"`
}

// Validate runs struct-level validation over r.
func (r GameReplaceRequest) Validate() error {
	return validateStruct(r)
}

// GameMergeRequest is the PATCH body for a shallow game merge. Every
// field is optional; an absent field preserves the current value.
type GameMergeRequest struct {
	Type       *string        `json:"type,omitempty" validate:"omitempty,max=100"`
	UsersIDs   []string       `json:"usersIds,omitempty" validate:"omitempty,dedupids"`
	Rounds     []RoundRequest `json:"rounds,omitempty"`
	IsFinished *bool          `json:"isFinished,omitempty"`
}

// Validate runs struct-level validation over r.
func (r GameMergeRequest) Validate() error {
	return validateStruct(r)
}

// MoveResponse is the wire shape of a Move in a game/round response.
type MoveResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"userId"`
	Value          float64 `json:"value"`
	ValueDecorated string  `json:"valueDecorated,omitempty"`
}

// RoundResponse is the wire shape of a Round in a game response.
type RoundResponse struct {
	ID         string         `json:"id"`
	Moves      []MoveResponse `json:"moves"`
	IsFinished bool           `json:"isFinished"`
	Time       float64        `json:"time"`
}

// GameResponse is the wire shape returned for a single game.
type GameResponse struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	UsersIDs   []string        `json:"usersIds"`
	Rounds     []RoundResponse `json:"rounds"`
	IsFinished bool            `json:"isFinished"`
}

// GameListResponse is the wire shape for GET /internal/games.
type GameListResponse struct {
	Items      []GameResponse `json:"items"`
	NextCursor string         `json:"nextCursor,omitempty"`
}
