package bookings

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidInput = errors.New("invalid booking input")

// Input is the create/edit form. Totals are never sent; the platform computes
// the authoritative amount.
type Input struct {
	CourtID       int64         `json:"court_id" validate:"required,gt=0"`
	UserID        *int64        `json:"user_id,omitempty" validate:"omitempty,gt=0"`
	GuestName     string        `json:"guest_name,omitempty" validate:"omitempty,max=120"`
	GuestPhone    string        `json:"guest_phone,omitempty" validate:"omitempty,vnphone"`
	GuestEmail    string        `json:"guest_email,omitempty" validate:"omitempty,email"`
	BookingDate   string        `json:"booking_date" validate:"required,datetime=2006-01-02"`
	StartTime     string        `json:"start_time" validate:"required,datetime=15:04"`
	EndTime       string        `json:"end_time" validate:"required,datetime=15:04"`
	Notes         string        `json:"notes,omitempty" validate:"max=1000"`
	Status        Status        `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	PaymentStatus PaymentStatus `json:"payment_status,omitempty" validate:"omitempty,oneof=unpaid partial paid refunded"`
}

// Check enforces the cross-field rules the struct tags cannot express.
func (in Input) Check() error {
	start, err := parseClock(in.StartTime)
	if err != nil {
		return fmt.Errorf("%w: start_time: %v", ErrInvalidInput, err)
	}
	end, err := parseClock(in.EndTime)
	if err != nil {
		return fmt.Errorf("%w: end_time: %v", ErrInvalidInput, err)
	}
	if !end.After(start) {
		return fmt.Errorf("%w: end_time must be after start_time", ErrInvalidInput)
	}

	guest := strings.TrimSpace(in.GuestName) != ""
	switch {
	case in.UserID != nil && guest:
		return fmt.Errorf("%w: choose a registered user or guest details, not both", ErrInvalidInput)
	case in.UserID == nil && (!guest || strings.TrimSpace(in.GuestPhone) == ""):
		return fmt.Errorf("%w: guest name and phone are required without a registered user", ErrInvalidInput)
	}
	return nil
}

// Payload renders the input with the platform's field names.
func (in Input) Payload() map[string]any {
	p := map[string]any{
		"court_id":     in.CourtID,
		"booking_date": in.BookingDate,
		"start_time":   in.StartTime,
		"end_time":     in.EndTime,
		"notes":        in.Notes,
	}
	if in.UserID != nil {
		p["user_id"] = *in.UserID
	} else {
		p["guest_name"] = strings.TrimSpace(in.GuestName)
		p["guest_phone"] = strings.TrimSpace(in.GuestPhone)
		p["guest_email"] = strings.TrimSpace(in.GuestEmail)
	}
	if in.Status != "" {
		p["status"] = in.Status
	}
	if in.PaymentStatus != "" {
		p["payment_status"] = in.PaymentStatus
	}
	return p
}

// EstimateTotal is the display-only estimate: hourly rate times duration.
func EstimateTotal(hourlyRate decimal.Decimal, startTime, endTime string) (decimal.Decimal, error) {
	start, err := parseClock(startTime)
	if err != nil {
		return decimal.Zero, err
	}
	end, err := parseClock(endTime)
	if err != nil {
		return decimal.Zero, err
	}
	if !end.After(start) {
		return decimal.Zero, fmt.Errorf("%w: end_time must be after start_time", ErrInvalidInput)
	}
	minutes := decimal.NewFromFloat(end.Sub(start).Minutes())
	return hourlyRate.Mul(minutes).Div(decimal.NewFromInt(60)).Round(0), nil
}

func parseClock(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q", s)
}
