// Package models defines the payload shapes exchanged with the trip-journal
// backend. JSON tags carry the backend's snake_case field names.
package models

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthToken is the bearer credential issued by /register and /token.
type AuthToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthTokenKeys are the fields a /register or /token response must carry.
var AuthTokenKeys = []string{"access_token", "token_type"}

// IsZero reports whether t carries no access token.
func (t AuthToken) IsZero() bool {
	return t.AccessToken == ""
}

// Credentials is the /register request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenClaims is the subset of JWT claims shown to the user.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}

var ErrNotJWT = errors.New("access token is not a JWT")

// Claims decodes the access token's JWT payload without verifying the
// signature. The client cannot verify it and only uses the result for
// display; session state never depends on it.
func (t AuthToken) Claims() (TokenClaims, error) {
	var rc jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(t.AccessToken, &rc); err != nil {
		return TokenClaims{}, errors.Join(ErrNotJWT, err)
	}

	c := TokenClaims{Subject: rc.Subject}
	if rc.ExpiresAt != nil {
		c.ExpiresAt = rc.ExpiresAt.Time
	}
	return c, nil
}
