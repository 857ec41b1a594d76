// Package session inspects the stored access token for display purposes.
//
// The backend signs its tokens; the client has no key and performs no
// verification. Claims parsed here feed "who am I" output only; login
// state is decided by the token store's presence check, never by anything
// in this package.
package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the subset of token claims the apps display.
type Claims struct {
	UserID    int64
	Email     string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type tokenClaims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

var errNotJWT = errors.New("token is not a parseable JWT")

// Parse extracts display claims from an access token without verifying the
// signature.
func Parse(token string) (Claims, error) {
	var tc tokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &tc); err != nil {
		return Claims{}, errNotJWT
	}
	c := Claims{UserID: tc.UserID, Email: tc.Email, Role: tc.Role}
	if tc.IssuedAt != nil {
		c.IssuedAt = tc.IssuedAt.Time
	}
	if tc.ExpiresAt != nil {
		c.ExpiresAt = tc.ExpiresAt.Time
	}
	return c, nil
}
