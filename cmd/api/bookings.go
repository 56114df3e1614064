package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"sportdesk/internal/domain/bookings"
	"sportdesk/internal/export"
	"sportdesk/internal/listview"
	"sportdesk/internal/params"

	"github.com/shopspring/decimal"
)

const bookingsPath = "/bookings"

type statusRequest struct {
	Status string `json:"status"`
	Action string `json:"action"`
}

type paymentRequest struct {
	PaymentStatus string `json:"payment_status"`
	Action        string `json:"action"`
}

type EstimateResponse struct {
	Estimate  decimal.Decimal `json:"estimate"`
	Formatted string          `json:"formatted"`
}

// listBookingsHandler godoc
//
//	@Summary		List bookings
//	@Description	Filtered, paginated bookings with a revenue summary. A failed fetch yields an empty list and a notice.
//	@Tags			bookings
//	@Produce		json
//	@Param			search			query		string	false	"Customer name, username, email, id or court name"
//	@Param			status			query		string	false	"pending|confirmed|completed|cancelled|all"
//	@Param			payment_status	query		string	false	"unpaid|partial|paid|refunded|all"
//	@Param			resource_id		query		string	false	"Court id or all"
//	@Param			date			query		string	false	"YYYY-MM-DD"
//	@Param			page			query		int		false	"Page number"	default(1)
//	@Param			prev_total		query		int		false	"Filtered total the client saw last"
//	@Success		200				{object}	ListResponse[BookingRow]
//	@Failure		401				{object}	error
//	@Security		ApiKeyAuth
//	@Router			/bookings [get]
func (app *application) listBookingsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	q := r.URL.Query()
	criteria, err := listview.ParseCriteria(q)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	p := params.ParsePagination(q)

	var notices []string
	items, err := app.backend.ListBookings(ctx, getSession(r))
	if err != nil {
		if isUnauthenticated(err) {
			app.unauthorizedErrorResponse(w, r, err)
			return
		}
		app.logger.Warnw("list bookings failed", "error", err.Error())
		notices = append(notices, notice("danh sách đặt sân", err))
		items = []bookings.Booking{}
	}

	resp := pageOf(items, criteria, p, bookingRow)
	if notices != nil {
		resp.Notices = notices
	}
	_ = app.jsonResponse(w, http.StatusOK, resp)
}

// getBookingHandler godoc
//
//	@Summary		Booking detail
//	@Description	A failed load answers with redirect "/bookings".
//	@Tags			bookings
//	@Produce		json
//	@Param			bookingID	path		int	true	"Booking ID"
//	@Success		200			{object}	BookingRow
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/bookings/{bookingID} [get]
func (app *application) getBookingHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "bookingID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	b, err := app.backend.GetBooking(ctx, getSession(r), id)
	if err != nil {
		app.detailFetchFailed(w, r, err, bookingsPath)
		return
	}
	_ = app.jsonResponse(w, http.StatusOK, bookingRow(b))
}

func readBookingInput(w http.ResponseWriter, r *http.Request) (bookings.Input, error) {
	var in bookings.Input
	if err := readJSON(w, r, &in); err != nil {
		return in, err
	}
	if err := Validate.Struct(in); err != nil {
		return in, err
	}
	return in, in.Check()
}

// createBookingHandler godoc
//
//	@Summary		Create booking
//	@Tags			bookings
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		bookings.Input	true	"Booking"
//	@Success		201		{object}	BookingRow
//	@Failure		400		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/bookings [post]
func (app *application) createBookingHandler(w http.ResponseWriter, r *http.Request) {
	in, err := readBookingInput(w, r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	b, err := app.backend.CreateBooking(ctx, getSession(r), in)
	if err != nil {
		app.backendErrorResponse(w, r, err)
		return
	}
	app.logger.Infow("booking created", "booking_id", b.ID)
	_ = app.jsonResponse(w, http.StatusCreated, bookingRow(b))
}

func (app *application) updateBookingHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "bookingID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	in, err := readBookingInput(w, r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	s := getSession(r)
	if _, err := app.backend.UpdateBooking(ctx, s, id, in); err != nil {
		app.backendErrorResponse(w, r, err)
		return
	}
	b, err := app.backend.GetBooking(ctx, s, id)
	if err != nil {
		app.backendErrorResponse(w, r, err)
		return
	}
	_ = app.jsonResponse(w, http.StatusOK, bookingRow(b))
}

// updateBookingStatusHandler godoc
//
//	@Summary		Change booking status
//	@Description	Accepts {"status": "..."} or a quick action {"action": "confirm|complete|cancel"}. Illegal transitions answer 409 without contacting the platform.
//	@Tags			bookings
//	@Accept			json
//	@Produce		json
//	@Param			bookingID	path		int				true	"Booking ID"
//	@Param			payload		body		statusRequest	true	"Target"
//	@Success		200			{object}	BookingRow
//	@Failure		409			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/bookings/{bookingID}/status [patch]
func (app *application) updateBookingStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "bookingID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	var req statusRequest
	if err := readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	to := bookings.Status(req.Status)
	if req.Action != "" {
		target, ok := bookings.ActionTarget(bookings.Action(req.Action))
		if !ok {
			app.badRequestResponse(w, r, fmt.Errorf("unknown action %q", req.Action))
			return
		}
		to = target
	}
	if !to.Valid() {
		app.badRequestResponse(w, r, fmt.Errorf("invalid status %q", req.Status))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	s := getSession(r)
	current, err := app.backend.GetBooking(ctx, s, id)
	if err != nil {
		app.detailFetchFailed(w, r, err, bookingsPath)
		return
	}
	if err := bookings.CheckStatus(current, to); err != nil {
		app.conflictResponse(w, r, err)
		return
	}

	if err := app.backend.PatchBooking(ctx, s, id, map[string]any{"status": to}); err != nil {
		app.backendErrorResponse(w, r, err)
		return
	}
	app.logger.Infow("booking status changed", "booking_id", id, "from", current.Status, "to", to)

	app.respondBooking(ctx, w, r, id)
}

func (app *application) updateBookingPaymentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "bookingID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	var req paymentRequest
	if err := readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	to := bookings.PaymentStatus(req.PaymentStatus)
	switch bookings.Action(req.Action) {
	case "":
	case bookings.ActionMarkPaid:
		to = bookings.PaymentPaid
	default:
		app.badRequestResponse(w, r, fmt.Errorf("unknown action %q", req.Action))
		return
	}
	if !to.Valid() {
		app.badRequestResponse(w, r, fmt.Errorf("invalid payment status %q", req.PaymentStatus))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	s := getSession(r)
	current, err := app.backend.GetBooking(ctx, s, id)
	if err != nil {
		app.detailFetchFailed(w, r, err, bookingsPath)
		return
	}
	if err := bookings.CheckPayment(current, to); err != nil {
		app.conflictResponse(w, r, err)
		return
	}

	if err := app.backend.PatchBooking(ctx, s, id, map[string]any{"payment_status": to}); err != nil {
		app.backendErrorResponse(w, r, err)
		return
	}
	app.logger.Infow("booking payment changed", "booking_id", id, "from", current.PaymentStatus, "to", to)

	app.respondBooking(ctx, w, r, id)
}

// respondBooking re-fetches after a mutation; the platform owns the record.
func (app *application) respondBooking(ctx context.Context, w http.ResponseWriter, r *http.Request, id int64) {
	b, err := app.backend.GetBooking(ctx, getSession(r), id)
	if err != nil {
		app.backendErrorResponse(w, r, err)
		return
	}
	_ = app.jsonResponse(w, http.StatusOK, bookingRow(b))
}

// deleteBookingHandler godoc
//
//	@Summary		Delete booking
//	@Tags			bookings
//	@Param			bookingID	path	int		true	"Booking ID"
//	@Param			confirm		query	bool	true	"Must be true"
//	@Success		204
//	@Failure		400	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/bookings/{bookingID} [delete]
func (app *application) deleteBookingHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "bookingID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	if !confirmed(r) {
		app.badRequestResponse(w, r, errConfirmationRequired)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := app.backend.DeleteBooking(ctx, getSession(r), id); err != nil {
		app.backendErrorResponse(w, r, err)
		return
	}
	app.logger.Infow("booking deleted", "booking_id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (app *application) estimateBookingHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	courtID, err := strconv.ParseInt(q.Get("court_id"), 10, 64)
	if err != nil || courtID <= 0 {
		app.badRequestResponse(w, r, errors.New("invalid court_id"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	court, err := app.backend.GetCourt(ctx, getSession(r), courtID)
	if err != nil {
		app.backendErrorResponse(w, r, err)
		return
	}

	total, err := bookings.EstimateTotal(court.HourlyRate, q.Get("start_time"), q.Get("end_time"))
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	_ = app.jsonResponse(w, http.StatusOK, EstimateResponse{
		Estimate:  total,
		Formatted: app.config.export.money.Format(total),
	})
}

// exportBookingsHandler godoc
//
//	@Summary		Export bookings
//	@Description	The filtered collection (all pages) as an xlsx workbook. 422 when nothing matches.
//	@Tags			bookings
//	@Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
//	@Success		200
//	@Failure		422	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/bookings/export [get]
func (app *application) exportBookingsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	criteria, err := listview.ParseCriteria(r.URL.Query())
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	items, err := app.backend.ListBookings(ctx, getSession(r))
	if err != nil {
		app.backendErrorResponse(w, r, err)
		return
	}
	filtered := listview.Filter(items, criteria)

	subtitle := describeCriteria(criteria,
		func(s string) string { return bookings.Status(s).Label() },
		func(s string) string { return bookings.PaymentStatus(s).Label() },
	)
	wb, err := export.BookingsWorkbook(filtered, app.exportMeta(subtitle))
	app.sendWorkbook(w, r, wb, err, len(filtered))
}
