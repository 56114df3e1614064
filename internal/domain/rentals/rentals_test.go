package rentals

import (
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"testing"

	"sportdesk/internal/coalesce"

	"github.com/shopspring/decimal"
)

func decodeRaw(t *testing.T, s string) coalesce.Raw {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var m coalesce.Raw
	if err := dec.Decode(&m); err != nil {
		t.Fatal(err)
	}
	return m
}

func TestNormalize(t *testing.T) {
	r := Normalize(decodeRaw(t, `{
		"id": 45,
		"rental_date": "2024-03-15",
		"return_date": "2024-03-17",
		"total_price": 300000,
		"quantity": 3,
		"status": "active",
		"payment_status": "paid",
		"equipment": {"id": 8, "name": "Vợt Yonex", "code": "VY-01"},
		"user": {"id": 2, "username": "binh", "full_name": "Lê Bình"}
	}`))
	if r.StartDate != "2024-03-15" || r.EndDate != "2024-03-17" {
		t.Errorf("dates: %q %q", r.StartDate, r.EndDate)
	}
	if r.EquipmentID != 8 || r.Equipment.Code != "VY-01" {
		t.Errorf("equipment: %+v", r.Equipment)
	}
	if r.Customer.Guest || r.Customer.DisplayName != "Lê Bình" {
		t.Errorf("customer: %+v", r.Customer)
	}
	if r.Code() != "RT000045" || r.Quantity != 3 {
		t.Errorf("code/qty: %s %d", r.Code(), r.Quantity)
	}
}

func TestNormalizeDefaultsQuantity(t *testing.T) {
	if r := Normalize(decodeRaw(t, `{"id":1}`)); r.Quantity != 1 {
		t.Fatalf("expected default quantity 1, got %d", r.Quantity)
	}
}

func TestStatusActions(t *testing.T) {
	tests := []struct {
		status Status
		want   []Action
	}{
		{StatusPending, []Action{ActionApprove, ActionCancel}},
		{StatusApproved, []Action{ActionActivate, ActionCancel}},
		{StatusActive, []Action{ActionReturn, ActionMarkOverdue}},
		{StatusReturned, []Action{}},
		{StatusCancelled, []Action{}},
	}
	for _, tc := range tests {
		got := StatusActions(Rental{Status: tc.status})
		if !slices.Equal(got, tc.want) {
			t.Errorf("%s: got %v want %v", tc.status, got, tc.want)
		}
	}
}

func TestPaymentActions(t *testing.T) {
	tests := []struct {
		r    Rental
		want []Action
	}{
		{Rental{Status: StatusPending, PaymentStatus: PaymentPending}, []Action{ActionMarkPaid}},
		{Rental{Status: StatusCancelled, PaymentStatus: PaymentPending}, []Action{}},
		{Rental{Status: StatusCancelled, PaymentStatus: PaymentPaid}, []Action{ActionRefund}},
		{Rental{Status: StatusActive, PaymentStatus: PaymentPaid}, []Action{}},
		{Rental{Status: StatusCancelled, PaymentStatus: PaymentRefunded}, []Action{}},
	}
	for _, tc := range tests {
		got := PaymentActions(tc.r)
		if !slices.Equal(got, tc.want) {
			t.Errorf("%+v: got %v want %v", tc.r, got, tc.want)
		}
	}
}

func TestCheckStatus(t *testing.T) {
	if err := CheckStatus(Rental{Status: StatusReturned}, StatusActive); !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("expected illegal transition, got %v", err)
	}
	if err := CheckStatus(Rental{Status: StatusApproved}, StatusActive); err != nil {
		t.Fatalf("unexpected %v", err)
	}
	if to, ok := ActionTarget(ActionMarkOverdue); !ok || to != StatusOverdue {
		t.Fatalf("unexpected target %q", to)
	}
}

func TestInputCheck(t *testing.T) {
	uid := int64(1)
	base := Input{EquipmentID: 1, UserID: &uid, Quantity: 2, StartDate: "2024-03-15", EndDate: "2024-03-16"}

	if err := base.Check(5); err != nil {
		t.Fatalf("unexpected %v", err)
	}
	over := base
	over.Quantity = 6
	if err := over.Check(5); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected quantity error, got %v", err)
	}
	inverted := base
	inverted.EndDate = "2024-03-14"
	if err := inverted.Check(5); err == nil {
		t.Fatal("expected date order error")
	}
	guest := base
	guest.UserID = nil
	guest.GuestName = "An"
	if err := guest.Check(5); err == nil {
		t.Fatal("expected missing phone error")
	}
	unknown := base
	bogus := Status("teleported")
	unknown.Status = &bogus
	if err := unknown.Check(5); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected unknown status error, got %v", err)
	}
	returned := base
	ok := StatusReturned
	returned.Status = &ok
	if err := returned.Check(5); err != nil {
		t.Fatalf("known status rejected: %v", err)
	}
}

func TestEstimateTotal(t *testing.T) {
	got, err := EstimateTotal(decimal.NewFromInt(50000), "2024-03-15", "2024-03-18", 2)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(decimal.NewFromInt(300000)) {
		t.Fatalf("got %s", got)
	}
	if _, err := RentalDays("2024-03-15", "2024-03-15"); err == nil {
		t.Fatal("same-day range must be rejected")
	}
}
