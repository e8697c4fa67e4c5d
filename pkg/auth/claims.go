package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the typed JWT issued to clients. The subject carries the username;
// everything else is registered-claim bookkeeping.
type Claims struct {
	jwt.RegisteredClaims
}

// Subject returns the username the token was minted for.
func (c *Claims) Subject() string {
	if c == nil {
		return ""
	}
	return c.RegisteredClaims.Subject
}
