package bookings

import (
	"sportdesk/internal/coalesce"
	"sportdesk/internal/domain/resources"

	"github.com/shopspring/decimal"
)

// Normalize maps one platform booking object onto the canonical Booking.
func Normalize(raw coalesce.Raw) Booking {
	b := Booking{
		ID:            coalesce.Int(raw, "id", "booking_id"),
		CourtID:       coalesce.Int(raw, "court_id"),
		Date:          coalesce.String(raw, "booking_date", "date"),
		StartTime:     coalesce.String(raw, "start_time"),
		EndTime:       coalesce.String(raw, "end_time"),
		TotalAmount:   coalesce.Decimal(raw, "total_amount", "total_price", "amount"),
		Status:        Status(coalesce.String(raw, "status")),
		PaymentStatus: PaymentStatus(coalesce.String(raw, "payment_status")),
		Customer:      resources.NormalizeCustomer(raw),
		Notes:         coalesce.String(raw, "notes", "note"),
		CreatedAt:     coalesce.String(raw, "created_at"),
		UpdatedAt:     coalesce.String(raw, "updated_at"),
	}

	if court := coalesce.Object(raw, "court"); court != nil {
		b.Court = resources.NormalizeCourt(court)
	} else {
		b.Court = resources.Court{
			ID:   b.CourtID,
			Name: coalesce.String(raw, "court_name"),
			Type: coalesce.String(raw, "court_type"),
		}
	}
	if b.CourtID == 0 {
		b.CourtID = b.Court.ID
	}
	if b.TotalAmount.IsNegative() {
		b.TotalAmount = decimal.Zero
	}
	return b
}

func NormalizeAll(raws []coalesce.Raw) []Booking {
	out := make([]Booking, 0, len(raws))
	for _, r := range raws {
		out = append(out, Normalize(r))
	}
	return out
}
