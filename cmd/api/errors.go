package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"sportdesk/internal/backend"
)

const loginPath = "/login"

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())
	writeJSONError(w, http.StatusInternalServerError, "the server encountered a problem")
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err.Error())
	writeJSONError(w, http.StatusBadRequest, err.Error())
}

func (app *application) conflictResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("conflict", "method", r.Method, "path", r.URL.Path, "error", err.Error())
	writeJSONError(w, http.StatusConflict, err.Error())
}

func (app *application) unprocessableResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("unprocessable", "method", r.Method, "path", r.URL.Path, "error", err.Error())
	writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
}

// unauthorizedErrorResponse sends the operator back to the login flow.
func (app *application) unauthorizedErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("unauthorized", "method", r.Method, "path", r.URL.Path, "error", err.Error())
	writeJSONRedirect(w, http.StatusUnauthorized, "unauthorized", loginPath)
}

func (app *application) unauthorizedBasicErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("unauthorized basic error", "method", r.Method, "path", r.URL.Path, "error", err.Error())
	w.Header().Set("WWW-Authenticate", `Basic realm="restricted", charset="UTF-8"`)
	writeJSONError(w, http.StatusUnauthorized, "unauthorized")
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter time.Duration) {
	app.logger.Warnw("rate limit exceeded", "method", r.Method, "path", r.URL.Path)
	w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds()+0.5)))
	writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded, retry after: "+retryAfter.String())
}

// backendErrorResponse maps a failed platform call. The platform's message is
// passed through verbatim; 5xx and transport failures become 502.
func (app *application) backendErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, backend.ErrUnauthenticated) {
		app.unauthorizedErrorResponse(w, r, err)
		return
	}

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		app.logger.Warnw("backend error", "method", r.Method, "path", r.URL.Path, "status", apiErr.Status, "error", apiErr.Message)
		status := apiErr.Status
		if status >= 500 || status < 400 {
			status = http.StatusBadGateway
		}
		writeJSONError(w, status, apiErr.Message)
		return
	}

	app.logger.Errorw("backend unavailable", "method", r.Method, "path", r.URL.Path, "error", err.Error())
	writeJSONError(w, http.StatusBadGateway, "backend unavailable")
}

// detailFetchFailed answers a failed single-record load by pointing the
// client back at the parent list.
func (app *application) detailFetchFailed(w http.ResponseWriter, r *http.Request, err error, parent string) {
	if errors.Is(err, backend.ErrUnauthenticated) {
		app.unauthorizedErrorResponse(w, r, err)
		return
	}

	status := http.StatusBadGateway
	message := "could not load the record"
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		message = apiErr.Message
	}
	if errors.Is(err, backend.ErrNotFound) {
		status = http.StatusNotFound
	}
	app.logger.Warnw("detail fetch failed", "method", r.Method, "path", r.URL.Path, "status", status, "error", err.Error())
	writeJSONRedirect(w, status, message, parent)
}

// notice turns a swallowed list/stats failure into an operator-facing message.
func notice(what string, err error) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("Không thể tải %s: %s", what, apiErr.Message)
	}
	return fmt.Sprintf("Không thể tải %s", what)
}
