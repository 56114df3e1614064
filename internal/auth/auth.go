package auth

import (
	"errors"
	"time"
)

var (
	ErrMissingToken = errors.New("session token missing")
	ErrExpiredToken = errors.New("session token expired")
)

// Claims is what the dashboard can learn about a platform-issued token
// without holding the platform's signing secret.
type Claims struct {
	Subject   string
	Role      string
	ExpiresAt time.Time // zero when the token carries no exp
	Opaque    bool      // not a JWT; accepted as-is and left to the platform
}

// Inspector decides whether a session token is still worth presenting.
type Inspector interface {
	Inspect(token string, now time.Time) (*Claims, error)
}
