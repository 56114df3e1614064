package rentals

import (
	"fmt"
	"strconv"

	"sportdesk/internal/domain/resources"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusActive    Status = "active"
	StatusReturned  Status = "returned"
	StatusCancelled Status = "cancelled"
	StatusOverdue   Status = "overdue"
)

var statusLabels = map[Status]string{
	StatusPending:   "Chờ duyệt",
	StatusApproved:  "Đã duyệt",
	StatusActive:    "Đang thuê",
	StatusReturned:  "Đã trả",
	StatusCancelled: "Đã hủy",
	StatusOverdue:   "Quá hạn",
}

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

// PaymentStatus is deliberately its own type: rentals have no unpaid/partial.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

var paymentLabels = map[PaymentStatus]string{
	PaymentPending:  "Chờ thanh toán",
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

// Rental is the canonical equipment rental.
type Rental struct {
	ID            int64               `json:"id"`
	EquipmentID   int64               `json:"equipment_id"`
	Quantity      int                 `json:"quantity"`
	StartDate     string              `json:"start_date"`
	EndDate       string              `json:"end_date"`
	TotalAmount   decimal.Decimal     `json:"total_amount"`
	Status        Status              `json:"status"`
	PaymentStatus PaymentStatus       `json:"payment_status"`
	Customer      resources.Customer  `json:"customer"`
	Equipment     resources.Equipment `json:"equipment"`
	Notes         string              `json:"notes,omitempty"`
	CreatedAt     string              `json:"created_at"`
	UpdatedAt     string              `json:"updated_at"`
}

func (r Rental) Code() string {
	return fmt.Sprintf("RT%06d", r.ID)
}

func (r Rental) SearchFields() []string {
	return []string{
		r.Customer.DisplayName,
		r.Customer.Username,
		r.Customer.Email,
		strconv.FormatInt(r.ID, 10),
		r.Equipment.Name,
	}
}

func (r Rental) StatusValue() string        { return string(r.Status) }
func (r Rental) PaymentStatusValue() string { return string(r.PaymentStatus) }
func (r Rental) ResourceKey() string        { return strconv.FormatInt(r.EquipmentID, 10) }
func (r Rental) PrimaryDate() string        { return r.StartDate }
func (r Rental) Amount() decimal.Decimal    { return r.TotalAmount }
