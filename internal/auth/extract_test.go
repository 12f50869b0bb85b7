package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTokenPrefersBearerHeader(t *testing.T) {
	tok := ExtractToken("Bearer abc.def.ghi", map[string]string{"session": "cookie-token"}, "session")
	assert.Equal(t, "abc.def.ghi", tok)
}

func TestExtractTokenFallsBackToCookie(t *testing.T) {
	tok := ExtractToken("", map[string]string{"session": "cookie-token"}, "session")
	assert.Equal(t, "cookie-token", tok)
}

func TestExtractTokenEmptyWhenNeitherPresent(t *testing.T) {
	tok := ExtractToken("", nil, "session")
	assert.Equal(t, "", tok)
}

func TestDeriveRolePrecedence(t *testing.T) {
	assert.Equal(t, "admin", deriveRole(map[string]any{"role": "admin", "custom:role": "other"}))
	assert.Equal(t, "editor", deriveRole(map[string]any{"custom:role": "editor"}))
	assert.Equal(t, "ops", deriveRole(map[string]any{"cognito:groups": []any{"ops", "extra"}}))
	assert.Equal(t, "user", deriveRole(map[string]any{}))
}
