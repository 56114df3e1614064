package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"sportdesk/internal/domain/bookings"
	"sportdesk/internal/domain/rentals"
	"sportdesk/internal/listview"
	"sportdesk/internal/params"

	"github.com/go-chi/chi/v5"
)

type rowActions[A any] struct {
	Status  []A `json:"status"`
	Payment []A `json:"payment"`
}

// BookingRow is a booking as one table row: labels resolved and the quick
// actions that are legal right now.
type BookingRow struct {
	bookings.Booking
	Reference          string                      `json:"code"`
	StatusLabel        string                      `json:"status_label"`
	PaymentStatusLabel string                      `json:"payment_status_label"`
	Actions            rowActions[bookings.Action] `json:"actions"`
}

func bookingRow(b bookings.Booking) BookingRow {
	return BookingRow{
		Booking:            b,
		Reference:          b.Code(),
		StatusLabel:        b.Status.Label(),
		PaymentStatusLabel: b.PaymentStatus.Label(),
		Actions: rowActions[bookings.Action]{
			Status:  bookings.StatusActions(b),
			Payment: bookings.PaymentActions(b),
		},
	}
}

type RentalRow struct {
	rentals.Rental
	Reference          string                     `json:"code"`
	StatusLabel        string                     `json:"status_label"`
	PaymentStatusLabel string                     `json:"payment_status_label"`
	Actions            rowActions[rentals.Action] `json:"actions"`
}

func rentalRow(r rentals.Rental) RentalRow {
	return RentalRow{
		Rental:             r,
		Reference:          r.Code(),
		StatusLabel:        r.Status.Label(),
		PaymentStatusLabel: r.PaymentStatus.Label(),
		Actions: rowActions[rentals.Action]{
			Status:  rentals.StatusActions(r),
			Payment: rentals.PaymentActions(r),
		},
	}
}

func mapRows[T, R any](items []T, f func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, it := range items {
		out = append(out, f(it))
	}
	return out
}

// ListResponse is one page of a filtered list view.
type ListResponse[R any] struct {
	Items      []R               `json:"items"`
	Pagination params.Pagination `json:"pagination"`
	Summary    listview.Summary  `json:"summary"`
	Filters    listview.Criteria `json:"filters"`
	Notices    []string          `json:"notices"`
}

// pageOf filters, paginates and summarizes one collection.
func pageOf[T listview.Record, R any](items []T, c listview.Criteria, p params.Pagination, row func(T) R) ListResponse[R] {
	filtered := listview.Filter(items, c)
	p.ComputeMeta(len(filtered))
	return ListResponse[R]{
		Items:      mapRows(params.Slice(filtered, p), row),
		Pagination: p,
		Summary:    listview.Summarize(filtered),
		Filters:    c,
		Notices:    []string{},
	}
}

type LookupResponse[T any] struct {
	Items   []T      `json:"items"`
	Notices []string `json:"notices"`
}

func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

// describeCriteria renders the active filters for the export subtitle.
func describeCriteria(c listview.Criteria, statusLabel, paymentLabel func(string) string) string {
	var parts []string
	if c.Search != "" {
		parts = append(parts, fmt.Sprintf("Tìm kiếm: %q", c.Search))
	}
	if c.Status != "" && c.Status != listview.All {
		parts = append(parts, "Trạng thái: "+statusLabel(c.Status))
	}
	if c.PaymentStatus != "" && c.PaymentStatus != listview.All {
		parts = append(parts, "Thanh toán: "+paymentLabel(c.PaymentStatus))
	}
	if c.ResourceID != "" && c.ResourceID != listview.All {
		parts = append(parts, "Mã tài nguyên: "+c.ResourceID)
	}
	if c.Date != "" {
		parts = append(parts, "Ngày: "+c.Date)
	}
	if len(parts) == 0 {
		return "Bộ lọc: tất cả"
	}
	return "Bộ lọc: " + strings.Join(parts, "; ")
}
