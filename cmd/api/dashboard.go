package main

import (
	"context"
	"net/http"
	"time"

	"sportdesk/internal/domain/bookings"
	"sportdesk/internal/domain/rentals"
	"sportdesk/internal/domain/resources"
	"sportdesk/internal/domain/stats"
	"sportdesk/internal/listview"
	"sportdesk/internal/params"

	"golang.org/x/sync/errgroup"
)

type BookingsDashboard struct {
	List    ListResponse[BookingRow] `json:"list"`
	Stats   stats.BookingStats       `json:"stats"`
	Courts  []resources.Court        `json:"courts"`
	Notices []string                 `json:"notices"`
}

type RentalsDashboard struct {
	List      ListResponse[RentalRow] `json:"list"`
	Stats     stats.RentalStats       `json:"stats"`
	Equipment []resources.Equipment   `json:"equipment"`
	Notices   []string                `json:"notices"`
}

// firstUnauthenticated returns the first session failure among errs.
func firstUnauthenticated(errs ...error) error {
	for _, err := range errs {
		if err != nil && isUnauthenticated(err) {
			return err
		}
	}
	return nil
}

// bookingsDashboardHandler godoc
//
//	@Summary		Bookings dashboard
//	@Description	Initial load: list, stat cards and courts fetched concurrently. Each part fails on its own and adds a notice.
//	@Tags			dashboard
//	@Produce		json
//	@Success		200	{object}	BookingsDashboard
//	@Failure		401	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/dashboard/bookings [get]
func (app *application) bookingsDashboardHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	q := r.URL.Query()
	criteria, err := listview.ParseCriteria(q)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	s := getSession(r)
	var (
		items        []bookings.Booking
		bookingStats stats.BookingStats
		courts       []resources.Court

		listErr, statsErr, courtsErr error
	)

	// Branches never return their error so one failure cannot cancel the rest.
	var g errgroup.Group
	g.Go(func() error {
		items, listErr = app.backend.ListBookings(ctx, s)
		return nil
	})
	g.Go(func() error {
		bookingStats, statsErr = app.backend.BookingStats(ctx, s)
		return nil
	})
	g.Go(func() error {
		courts, courtsErr = app.backend.ListCourts(ctx, s)
		return nil
	})
	_ = g.Wait()

	if err := firstUnauthenticated(listErr, statsErr, courtsErr); err != nil {
		app.unauthorizedErrorResponse(w, r, err)
		return
	}

	notices := []string{}
	if listErr != nil {
		app.logger.Warnw("dashboard bookings failed", "error", listErr.Error())
		notices = append(notices, notice("danh sách đặt sân", listErr))
		items = []bookings.Booking{}
	}
	if statsErr != nil {
		app.logger.Warnw("dashboard booking stats failed", "error", statsErr.Error())
		notices = append(notices, notice("thống kê đặt sân", statsErr))
		bookingStats = stats.BookingStats{}
	}
	if courtsErr != nil {
		app.logger.Warnw("dashboard courts failed", "error", courtsErr.Error())
		notices = append(notices, notice("danh sách sân", courtsErr))
		courts = []resources.Court{}
	}

	_ = app.jsonResponse(w, http.StatusOK, BookingsDashboard{
		List:    pageOf(items, criteria, params.ParsePagination(q), bookingRow),
		Stats:   bookingStats,
		Courts:  courts,
		Notices: notices,
	})
}

func (app *application) rentalsDashboardHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	q := r.URL.Query()
	criteria, err := listview.ParseCriteria(q)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	s := getSession(r)
	var (
		items       []rentals.Rental
		rentalStats stats.RentalStats
		equipment   []resources.Equipment

		listErr, statsErr, equipmentErr error
	)

	var g errgroup.Group
	g.Go(func() error {
		items, listErr = app.backend.ListRentals(ctx, s)
		return nil
	})
	g.Go(func() error {
		rentalStats, statsErr = app.backend.RentalStats(ctx, s)
		return nil
	})
	g.Go(func() error {
		equipment, equipmentErr = app.backend.ListEquipment(ctx, s)
		return nil
	})
	_ = g.Wait()

	if err := firstUnauthenticated(listErr, statsErr, equipmentErr); err != nil {
		app.unauthorizedErrorResponse(w, r, err)
		return
	}

	notices := []string{}
	if listErr != nil {
		app.logger.Warnw("dashboard rentals failed", "error", listErr.Error())
		notices = append(notices, notice("danh sách thuê thiết bị", listErr))
		items = []rentals.Rental{}
	}
	if statsErr != nil {
		app.logger.Warnw("dashboard rental stats failed", "error", statsErr.Error())
		notices = append(notices, notice("thống kê thuê thiết bị", statsErr))
		rentalStats = stats.RentalStats{}
	}
	if equipmentErr != nil {
		app.logger.Warnw("dashboard equipment failed", "error", equipmentErr.Error())
		notices = append(notices, notice("danh sách thiết bị", equipmentErr))
		equipment = []resources.Equipment{}
	}

	_ = app.jsonResponse(w, http.StatusOK, RentalsDashboard{
		List:      pageOf(items, criteria, params.ParsePagination(q), rentalRow),
		Stats:     rentalStats,
		Equipment: equipment,
		Notices:   notices,
	})
}
