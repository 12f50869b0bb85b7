package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vku007/objectapi/internal/apperr"
)

// User is the authenticated identity attached to the request after a
// successful token verification.
type User struct {
	ID    string
	Email string
	Role  string
}

const defaultRole = "user"

// Verifier checks a bearer token's signature against the configured
// JWKS and validates its standard claims.
type Verifier struct {
	Provider *JWKProvider
	Issuer   string
	Audience string
}

// Verify parses and validates tokenString, returning the derived User
// on success or an UnauthorizedError otherwise.
func (v *Verifier) Verify(ctx context.Context, tokenString string) (User, error) {
	if tokenString == "" {
		return User{}, apperr.UnauthorizedError{Code: "missing_token", Message: "no bearer token supplied"}
	}

	keySet, err := v.Provider.Fetch(ctx)
	if err != nil {
		return User{}, apperr.UnauthorizedError{Code: "jwks_unavailable", Message: "could not load signing keys"}
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		kid, ok := t.Header["kid"].(string)
		if !ok {
			return nil, errors.New("kid header not found")
		}

		key, ok := keySet.LookupKeyID(kid)
		if !ok {
			return nil, fmt.Errorf("no key found for kid %q", kid)
		}

		var raw any
		if err := key.Raw(&raw); err != nil {
			return nil, err
		}

		return raw, nil
	},
		jwt.WithIssuer(v.Issuer),
		jwt.WithAudience(v.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return User{}, apperr.UnauthorizedError{Code: "invalid_token", Message: err.Error()}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return User{}, apperr.UnauthorizedError{Code: "invalid_token", Message: "unreadable claims"}
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return User{}, apperr.UnauthorizedError{Code: "invalid_token", Message: "missing sub claim"}
	}

	email, _ := claims["email"].(string)

	return User{ID: sub, Email: email, Role: deriveRole(claims)}, nil
}

// deriveRole picks the role claim in order of preference: role,
// custom:role, the first entry of cognito:groups, defaulting to "user".
func deriveRole(claims jwt.MapClaims) string {
	if role, ok := claims["role"].(string); ok && role != "" {
		return role
	}

	if role, ok := claims["custom:role"].(string); ok && role != "" {
		return role
	}

	if groups, ok := claims["cognito:groups"].([]any); ok && len(groups) > 0 {
		if first, ok := groups[0].(string); ok && first != "" {
			return first
		}
	}

	return defaultRole
}
