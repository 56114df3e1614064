package rentals

import (
	"sportdesk/internal/coalesce"
	"sportdesk/internal/domain/resources"

	"github.com/shopspring/decimal"
)

// Normalize maps one platform rental object onto the canonical Rental.
func Normalize(raw coalesce.Raw) Rental {
	r := Rental{
		ID:            coalesce.Int(raw, "id", "rental_id"),
		EquipmentID:   coalesce.Int(raw, "equipment_id"),
		Quantity:      int(coalesce.Int(raw, "quantity", "qty")),
		StartDate:     coalesce.String(raw, "start_date", "rental_date"),
		EndDate:       coalesce.String(raw, "end_date", "return_date"),
		TotalAmount:   coalesce.Decimal(raw, "total_amount", "total_price"),
		Status:        Status(coalesce.String(raw, "status")),
		PaymentStatus: PaymentStatus(coalesce.String(raw, "payment_status")),
		Customer:      resources.NormalizeCustomer(raw),
		Notes:         coalesce.String(raw, "notes", "note"),
		CreatedAt:     coalesce.String(raw, "created_at"),
		UpdatedAt:     coalesce.String(raw, "updated_at"),
	}

	if eq := coalesce.Object(raw, "equipment"); eq != nil {
		r.Equipment = resources.NormalizeEquipment(eq)
	} else {
		r.Equipment = resources.Equipment{
			ID:   r.EquipmentID,
			Name: coalesce.String(raw, "equipment_name"),
			Code: coalesce.String(raw, "equipment_code"),
		}
	}
	if r.EquipmentID == 0 {
		r.EquipmentID = r.Equipment.ID
	}
	if r.Quantity == 0 {
		r.Quantity = 1
	}
	if r.TotalAmount.IsNegative() {
		r.TotalAmount = decimal.Zero
	}
	return r
}

func NormalizeAll(raws []coalesce.Raw) []Rental {
	out := make([]Rental, 0, len(raws))
	for _, r := range raws {
		out = append(out, Normalize(r))
	}
	return out
}
