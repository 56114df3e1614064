package main

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"sportdesk/internal/backend"

	"golang.org/x/crypto/bcrypt"
)

type sessionKey string

const sessionCtx sessionKey = "session"

func (app *application) BasicAuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// read the auth header
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				app.unauthorizedBasicErrorResponse(w, r, fmt.Errorf("authorization header is missing"))
				return
			}

			// parse it -> get the base64
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Basic" {
				app.unauthorizedBasicErrorResponse(w, r, fmt.Errorf("authorization header is malformed"))
				return
			}

			// decode it
			decoded, err := base64.StdEncoding.DecodeString(parts[1])
			if err != nil {
				app.unauthorizedBasicErrorResponse(w, r, err)
				return
			}

			// check the credentials against the configured bcrypt hash
			username := app.config.auth.basic.user
			hash := app.config.auth.basic.passHash

			creds := strings.SplitN(string(decoded), ":", 2)
			if len(creds) != 2 || username == "" || creds[0] != username {
				app.unauthorizedBasicErrorResponse(w, r, fmt.Errorf("invalid credentials"))
				return
			}
			if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(creds[1])); err != nil {
				app.unauthorizedBasicErrorResponse(w, r, fmt.Errorf("invalid credentials"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// SessionMiddleware extracts the operator's platform token once per request.
// Expiry is checked by the backend client before any call leaves.
func (app *application) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := backend.SessionFromHeader(r.Header.Get("Authorization"))
		if session.Token == "" {
			app.unauthorizedErrorResponse(w, r, errors.New("authorization header is missing"))
			return
		}

		ctx := context.WithValue(r.Context(), sessionCtx, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getSession(r *http.Request) backend.Session {
	s, _ := r.Context().Value(sessionCtx).(backend.Session)
	return s
}

func (app *application) RateLimiterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.config.rateLimiter.Enabled {
			if allow, retryAfter := app.rateLimiter.Allow(clientKey(r)); !allow {
				app.rateLimitExceededResponse(w, r, retryAfter)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// clientKey is the remote IP; chi's RealIP has already applied proxy headers.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
