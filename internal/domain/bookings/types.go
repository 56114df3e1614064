package bookings

import (
	"fmt"
	"strconv"

	"sportdesk/internal/domain/resources"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var statusLabels = map[Status]string{
	StatusPending:   "Chờ xác nhận",
	StatusConfirmed: "Đã xác nhận",
	StatusCompleted: "Hoàn thành",
	StatusCancelled: "Đã hủy",
}

// Label returns the operator-facing label, or the raw value when unknown.
func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPartial  PaymentStatus = "partial"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

var paymentLabels = map[PaymentStatus]string{
	PaymentUnpaid:   "Chưa thanh toán",
	PaymentPartial:  "Thanh toán một phần",
	PaymentPaid:     "Đã thanh toán",
	PaymentRefunded: "Đã hoàn tiền",
}

func (p PaymentStatus) Label() string {
	if l, ok := paymentLabels[p]; ok {
		return l
	}
	return string(p)
}

func (p PaymentStatus) Valid() bool {
	_, ok := paymentLabels[p]
	return ok
}

// Booking is the canonical court booking. Alternate platform field names never
// reach this type; see Normalize.
type Booking struct {
	ID            int64              `json:"id"`
	CourtID       int64              `json:"court_id"`
	Date          string             `json:"date"`
	StartTime     string             `json:"start_time"`
	EndTime       string             `json:"end_time"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	Status        Status             `json:"status"`
	PaymentStatus PaymentStatus      `json:"payment_status"`
	Customer      resources.Customer `json:"customer"`
	Court         resources.Court    `json:"court"`
	Notes         string             `json:"notes,omitempty"`
	CreatedAt     string             `json:"created_at"`
	UpdatedAt     string             `json:"updated_at"`
}

// Code is the human-readable booking reference used in exports.
func (b Booking) Code() string {
	return fmt.Sprintf("BK%06d", b.ID)
}

func (b Booking) SearchFields() []string {
	return []string{
		b.Customer.DisplayName,
		b.Customer.Username,
		b.Customer.Email,
		strconv.FormatInt(b.ID, 10),
		b.Court.Name,
	}
}

func (b Booking) StatusValue() string        { return string(b.Status) }
func (b Booking) PaymentStatusValue() string { return string(b.PaymentStatus) }
func (b Booking) ResourceKey() string        { return strconv.FormatInt(b.CourtID, 10) }
func (b Booking) PrimaryDate() string        { return b.Date }
func (b Booking) Amount() decimal.Decimal    { return b.TotalAmount }
