package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTInspector reads platform JWTs unverified: the signature is the platform's
// business, only the expiry is checked here to fail fast before a round trip.
type JWTInspector struct {
	parser *jwt.Parser
}

func NewJWTInspector() *JWTInspector {
	return &JWTInspector{parser: jwt.NewParser()}
}

func (i *JWTInspector) Inspect(token string, now time.Time) (*Claims, error) {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
	if token == "" {
		return nil, ErrMissingToken
	}

	claims := jwt.MapClaims{}
	if _, _, err := i.parser.ParseUnverified(token, claims); err != nil {
		return &Claims{Opaque: true}, nil
	}

	out := &Claims{}
	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	if out.Subject == "" {
		// the platform issues numeric subjects
		if v, ok := claims["sub"].(float64); ok {
			out.Subject = fmt.Sprintf("%.0f", v)
		}
	}
	if role, ok := claims["role"].(string); ok {
		out.Role = role
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable exp: %v", ErrExpiredToken, err)
	}
	if exp != nil {
		out.ExpiresAt = exp.Time
		if !now.Before(exp.Time) {
			return nil, ErrExpiredToken
		}
	}
	return out, nil
}
