package main

import (
	"context"
	"net/http"
	"time"

	"sportdesk/internal/backend"
	"sportdesk/internal/domain/resources"
)

// lookup serves one select-box collection. A failed fetch still answers 200
// with an empty list and a notice.
func lookup[T any](app *application, w http.ResponseWriter, r *http.Request, what string,
	fetch func(context.Context, backend.Session) ([]T, error)) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := fetch(ctx, getSession(r))
	resp := LookupResponse[T]{Items: items, Notices: []string{}}
	if err != nil {
		if isUnauthenticated(err) {
			app.unauthorizedErrorResponse(w, r, err)
			return
		}
		app.logger.Warnw("lookup failed", "path", r.URL.Path, "error", err.Error())
		resp.Items = []T{}
		resp.Notices = append(resp.Notices, notice(what, err))
	}
	_ = app.jsonResponse(w, http.StatusOK, resp)
}

// listCourtsHandler godoc
//
//	@Summary		Courts for selects
//	@Tags			lookups
//	@Produce		json
//	@Success		200	{object}	LookupResponse[resources.Court]
//	@Security		ApiKeyAuth
//	@Router			/courts [get]
func (app *application) listCourtsHandler(w http.ResponseWriter, r *http.Request) {
	lookup[resources.Court](app, w, r, "danh sách sân", app.backend.ListCourts)
}

func (app *application) listEquipmentHandler(w http.ResponseWriter, r *http.Request) {
	lookup[resources.Equipment](app, w, r, "danh sách thiết bị", app.backend.ListEquipment)
}

func (app *application) listUsersHandler(w http.ResponseWriter, r *http.Request) {
	lookup[resources.User](app, w, r, "danh sách người dùng", app.backend.ListUsers)
}

func (app *application) listVenuesHandler(w http.ResponseWriter, r *http.Request) {
	lookup[resources.Venue](app, w, r, "danh sách cơ sở", app.backend.ListVenues)
}
