package model

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the payload of the browser session cookie. The subject is
// the session record id; the upstream credential never leaves the server.
type SessionClaims struct {
	jwt.RegisteredClaims
}
