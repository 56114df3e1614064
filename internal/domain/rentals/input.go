package rentals

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidInput = errors.New("invalid rental input")

type Input struct {
	EquipmentID int64   `json:"equipment_id" validate:"required,gt=0"`
	UserID      *int64  `json:"user_id,omitempty" validate:"omitempty,gt=0"`
	GuestName   string  `json:"guest_name,omitempty" validate:"omitempty,max=120"`
	GuestPhone  string  `json:"guest_phone,omitempty" validate:"omitempty,vnphone"`
	GuestEmail  string  `json:"guest_email,omitempty" validate:"omitempty,email"`
	Quantity    int     `json:"quantity" validate:"required,gte=1"`
	StartDate   string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	Notes       string  `json:"notes,omitempty" validate:"max=1000"`
	Status      *Status `json:"status,omitempty" validate:"omitempty,oneof=pending approved active returned cancelled overdue"`
}

// Check enforces date ordering, a single customer identity and that the
// requested quantity fits what the equipment currently has available.
func (in Input) Check(available int) error {
	start, err := parseDate(in.StartDate)
	if err != nil {
		return fmt.Errorf("%w: start_date: %v", ErrInvalidInput, err)
	}
	end, err := parseDate(in.EndDate)
	if err != nil {
		return fmt.Errorf("%w: end_date: %v", ErrInvalidInput, err)
	}
	if !end.After(start) {
		return fmt.Errorf("%w: end_date must be after start_date", ErrInvalidInput)
	}
	if in.Status != nil && !in.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *in.Status)
	}
	if in.Quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", ErrInvalidInput)
	}
	if in.Quantity > available {
		return fmt.Errorf("%w: only %d available, requested %d", ErrInvalidInput, available, in.Quantity)
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

func (in Input) Payload() map[string]any {
	p := map[string]any{
		"equipment_id": in.EquipmentID,
		"quantity":     in.Quantity,
		"start_date":   in.StartDate,
		"end_date":     in.EndDate,
		"notes":        in.Notes,
	}
	if in.UserID != nil {
		p["user_id"] = *in.UserID
	} else {
		p["guest_name"] = strings.TrimSpace(in.GuestName)
		p["guest_phone"] = strings.TrimSpace(in.GuestPhone)
		p["guest_email"] = strings.TrimSpace(in.GuestEmail)
	}
	if in.Status != nil {
		p["status"] = *in.Status
	}
	return p
}

// RentalDays counts billable days between two dates, at least one.
func RentalDays(startDate, endDate string) (int, error) {
	start, err := parseDate(startDate)
	if err != nil {
		return 0, err
	}
	end, err := parseDate(endDate)
	if err != nil {
		return 0, err
	}
	if !end.After(start) {
		return 0, fmt.Errorf("%w: end_date must be after start_date", ErrInvalidInput)
	}
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	return max(days, 1), nil
}

// EstimateTotal is display-only: daily fee x days x quantity.
func EstimateTotal(dailyFee decimal.Decimal, startDate, endDate string, quantity int) (decimal.Decimal, error) {
	days, err := RentalDays(startDate, endDate)
	if err != nil {
		return decimal.Zero, err
	}
	if quantity < 1 {
		quantity = 1
	}
	return dailyFee.Mul(decimal.NewFromInt(int64(days * quantity))), nil
}

// parseDate accepts YYYY-MM-DD or anything starting with it (RFC3339).
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) > 10 {
		s = s[:10]
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t, nil
}
