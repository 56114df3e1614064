package backend

import (
	"strings"
	"time"

	"sportdesk/internal/auth"
)

// Session is the operator's credential for the platform API. It is built once
// per incoming request and handed to every Client call.
type Session struct {
	Token string
}

// SessionFromHeader reads "Authorization: Bearer <token>".
func SessionFromHeader(h string) Session {
	h = strings.TrimSpace(h)
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		h = h[7:]
	}
	return Session{Token: strings.TrimSpace(h)}
}

// check fails with ErrUnauthenticated before any network call when the token
// is missing or already expired.
func (s Session) check(in auth.Inspector, now time.Time) error {
	if _, err := in.Inspect(s.Token, now); err != nil {
		return unauthenticated(err)
	}
	return nil
}
