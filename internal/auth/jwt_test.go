package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte("platform-secret"))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestInspect(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	in := NewJWTInspector()

	valid := sign(t, jwt.MapClaims{"sub": 42, "role": "admin", "exp": now.Add(time.Hour).Unix()})
	expired := sign(t, jwt.MapClaims{"sub": 42, "exp": now.Add(-time.Minute).Unix()})
	noExp := sign(t, jwt.MapClaims{"sub": "7"})

	tests := []struct {
		name    string
		token   string
		wantErr error
		subject string
		opaque  bool
	}{
		{"empty", "  ", ErrMissingToken, "", false},
		{"valid", valid, nil, "42", false},
		{"bearer prefix", "Bearer " + valid, nil, "42", false},
		{"expired", expired, ErrExpiredToken, "", false},
		{"no exp", noExp, nil, "7", false},
		{"opaque", "d6f1c0e2a9", nil, "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := in.Inspect(tc.token, now)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("err %v want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if c.Subject != tc.subject || c.Opaque != tc.opaque {
				t.Fatalf("unexpected claims %+v", c)
			}
		})
	}
}
