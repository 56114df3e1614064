package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"sportdesk/internal/backend"
	"sportdesk/internal/domain/rentals"
	"sportdesk/internal/export"
	"sportdesk/internal/listview"
	"sportdesk/internal/params"
)

const rentalsPath = "/rentals"

// listRentalsHandler godoc
//
//	@Summary		List rentals
//	@Tags			rentals
//	@Produce		json
//	@Param			search			query		string	false	"Customer name, username, email, id or equipment name"
//	@Param			status			query		string	false	"pending|approved|active|returned|cancelled|overdue|all"
//	@Param			payment_status	query		string	false	"pending|paid|refunded|all"
//	@Param			resource_id		query		string	false	"Equipment id or all"
//	@Param			date			query		string	false	"Start date YYYY-MM-DD"
//	@Param			page			query		int		false	"Page number"	default(1)
//	@Success		200				{object}	ListResponse[RentalRow]
//	@Security		ApiKeyAuth
//	@Router			/rentals [get]
func (app *application) listRentalsHandler(w http.ResponseWriter, r *http.Request) {
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
	items, err := app.backend.ListRentals(ctx, getSession(r))
	if err != nil {
		if isUnauthenticated(err) {
			app.unauthorizedErrorResponse(w, r, err)
			return
		}
		app.logger.Warnw("list rentals failed", "error", err.Error())
		notices = append(notices, notice("danh sách thuê thiết bị", err))
		items = []rentals.Rental{}
	}

	resp := pageOf(items, criteria, p, rentalRow)
	if notices != nil {
		resp.Notices = notices
	}
	_ = app.jsonResponse(w, http.StatusOK, resp)
}

func (app *application) getRentalHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "rentalID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	rt, err := app.backend.GetRental(ctx, getSession(r), id)
	if err != nil {
		app.detailFetchFailed(w, r, err, rentalsPath)
		return
	}
	_ = app.jsonResponse(w, http.StatusOK, rentalRow(rt))
}

// readRentalInput decodes and validates a rental form. When editing, the
// quantity current already holds on the same equipment counts as available.
func (app *application) readRentalInput(ctx context.Context, w http.ResponseWriter, r *http.Request, current *rentals.Rental) (rentals.Input, error) {
	var in rentals.Input
	if err := readJSON(w, r, &in); err != nil {
		return in, err
	}
	if err := Validate.Struct(in); err != nil {
		return in, err
	}

	eq, err := app.backend.GetEquipment(ctx, getSession(r), in.EquipmentID)
	if err != nil {
		return in, err
	}
	available := eq.AvailableQuantity
	if current != nil && current.EquipmentID == in.EquipmentID {
		available += current.Quantity
	}
	return in, in.Check(available)
}

// inputFailed separates form problems (400) from platform failures.
func (app *application) inputFailed(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *backend.APIError
	if isUnauthenticated(err) || errors.As(err, &apiErr) {
		app.backendErrorResponse(w, r, err)
		return
	}
	app.badRequestResponse(w, r, err)
}

// createRentalHandler godoc
//
//	@Summary		Create rental
//	@Description	Quantity is checked against the equipment's available stock.
//	@Tags			rentals
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		rentals.Input	true	"Rental"
//	@Success		201		{object}	RentalRow
//	@Failure		400		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/rentals [post]
func (app *application) createRentalHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	in, err := app.readRentalInput(ctx, w, r, nil)
	if err != nil {
		app.inputFailed(w, r, err)
		return
	}

	rt, err := app.backend.CreateRental(ctx, getSession(r), in)
	if err != nil {
		app.backendErrorResponse(w, r, err)
		return
	}
	app.logger.Infow("rental created", "rental_id", rt.ID)
	_ = app.jsonResponse(w, http.StatusCreated, rentalRow(rt))
}

func (app *application) updateRentalHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "rentalID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	s := getSession(r)
	current, err := app.backend.GetRental(ctx, s, id)
	if err != nil {
		app.detailFetchFailed(w, r, err, rentalsPath)
		return
	}
	in, err := app.readRentalInput(ctx, w, r, &current)
	if err != nil {
		app.inputFailed(w, r, err)
		return
	}

	if _, err := app.backend.UpdateRental(ctx, s, id, in); err != nil {
		app.backendErrorResponse(w, r, err)
		return
	}
	app.respondRental(ctx, w, r, id)
}

// updateRentalStatusHandler godoc
//
//	@Summary		Change rental status
//	@Description	Accepts {"status": "..."} or {"action": "approve|activate|return|mark_overdue|cancel"}.
//	@Tags			rentals
//	@Accept			json
//	@Produce		json
//	@Param			rentalID	path		int				true	"Rental ID"
//	@Param			payload		body		statusRequest	true	"Target"
//	@Success		200			{object}	RentalRow
//	@Failure		409			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/rentals/{rentalID}/status [patch]
func (app *application) updateRentalStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "rentalID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	var req statusRequest
	if err := readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	to := rentals.Status(req.Status)
	if req.Action != "" {
		target, ok := rentals.ActionTarget(rentals.Action(req.Action))
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
	current, err := app.backend.GetRental(ctx, s, id)
	if err != nil {
		app.detailFetchFailed(w, r, err, rentalsPath)
		return
	}
	if err := rentals.CheckStatus(current, to); err != nil {
		app.conflictResponse(w, r, err)
		return
	}

	if err := app.backend.PatchRental(ctx, s, id, map[string]any{"status": to}); err != nil {
		app.backendErrorResponse(w, r, err)
		return
	}
	app.logger.Infow("rental status changed", "rental_id", id, "from", current.Status, "to", to)

	app.respondRental(ctx, w, r, id)
}

func (app *application) updateRentalPaymentHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "rentalID")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	var req paymentRequest
	if err := readJSON(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	to := rentals.PaymentStatus(req.PaymentStatus)
	switch rentals.Action(req.Action) {
	case "":
	case rentals.ActionMarkPaid:
		to = rentals.PaymentPaid
	case rentals.ActionRefund:
		to = rentals.PaymentRefunded
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
	current, err := app.backend.GetRental(ctx, s, id)
	if err != nil {
		app.detailFetchFailed(w, r, err, rentalsPath)
		return
	}
	if err := rentals.CheckPayment(current, to); err != nil {
		app.conflictResponse(w, r, err)
		return
	}

	if err := app.backend.PatchRental(ctx, s, id, map[string]any{"payment_status": to}); err != nil {
		app.backendErrorResponse(w, r, err)
		return
	}
	app.logger.Infow("rental payment changed", "rental_id", id, "from", current.PaymentStatus, "to", to)

	app.respondRental(ctx, w, r, id)
}

func (app *application) respondRental(ctx context.Context, w http.ResponseWriter, r *http.Request, id int64) {
	rt, err := app.backend.GetRental(ctx, getSession(r), id)
	if err != nil {
		app.backendErrorResponse(w, r, err)
		return
	}
	_ = app.jsonResponse(w, http.StatusOK, rentalRow(rt))
}

func (app *application) deleteRentalHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "rentalID")
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

	if err := app.backend.DeleteRental(ctx, getSession(r), id); err != nil {
		app.backendErrorResponse(w, r, err)
		return
	}
	app.logger.Infow("rental deleted", "rental_id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (app *application) estimateRentalHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	equipmentID, err := strconv.ParseInt(q.Get("equipment_id"), 10, 64)
	if err != nil || equipmentID <= 0 {
		app.badRequestResponse(w, r, errors.New("invalid equipment_id"))
		return
	}
	quantity := 1
	if v := q.Get("quantity"); v != "" {
		if quantity, err = strconv.Atoi(v); err != nil || quantity < 1 {
			app.badRequestResponse(w, r, errors.New("invalid quantity"))
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	eq, err := app.backend.GetEquipment(ctx, getSession(r), equipmentID)
	if err != nil {
		app.backendErrorResponse(w, r, err)
		return
	}

	total, err := rentals.EstimateTotal(eq.RentalFee, q.Get("start_date"), q.Get("end_date"), quantity)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	_ = app.jsonResponse(w, http.StatusOK, EstimateResponse{
		Estimate:  total,
		Formatted: app.config.export.money.Format(total),
	})
}

func (app *application) exportRentalsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	criteria, err := listview.ParseCriteria(r.URL.Query())
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	items, err := app.backend.ListRentals(ctx, getSession(r))
	if err != nil {
		app.backendErrorResponse(w, r, err)
		return
	}
	filtered := listview.Filter(items, criteria)

	subtitle := describeCriteria(criteria,
		func(s string) string { return rentals.Status(s).Label() },
		func(s string) string { return rentals.PaymentStatus(s).Label() },
	)
	wb, err := export.RentalsWorkbook(filtered, app.exportMeta(subtitle))
	app.sendWorkbook(w, r, wb, err, len(filtered))
}
