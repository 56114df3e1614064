package export

import (
	"fmt"

	"sportdesk/internal/domain/rentals"

	"github.com/shopspring/decimal"
)

var rentalColumns = []column{
	{"STT", 6},
	{"Mã thuê", 12},
	{"Khách hàng", 24},
	{"Email", 28},
	{"Số điện thoại", 15},
	{"Thiết bị", 22},
	{"Danh mục", 14},
	{"Số lượng", 10},
	{"Ngày bắt đầu", 14},
	{"Ngày kết thúc", 14},
	{"Tổng tiền", 16},
	{"Trạng thái", 14},
	{"Thanh toán", 16},
	{"Ngày tạo", 18},
	{"Ghi chú", 30},
}

func RentalsWorkbook(items []rentals.Rental, meta Meta) (*Workbook, error) {
	if len(items) == 0 {
		return nil, ErrNoData
	}
	if meta.Label == "" {
		meta.Label = "thue-thiet-bi"
	}
	if meta.Title == "" {
		meta.Title = "DANH SÁCH THUÊ THIẾT BỊ"
	}

	total := decimal.Zero
	quantity := 0
	rows := make([][]any, 0, len(items))
	for i, r := range items {
		total = total.Add(r.TotalAmount)
		quantity += r.Quantity
		customer := r.Customer.DisplayName
		if r.Customer.Guest {
			customer += " (khách)"
		}
		rows = append(rows, []any{
			i + 1,
			r.Code(),
			customer,
			r.Customer.Email,
			r.Customer.Phone,
			r.Equipment.Name,
			r.Equipment.Category,
			r.Quantity,
			displayDate(r.StartDate),
			displayDate(r.EndDate),
			meta.Money.Format(r.TotalAmount),
			r.Status.Label(),
			r.PaymentStatus.Label(),
			displayTimestamp(r.CreatedAt, meta.Location),
			r.Notes,
		})
	}

	footer := make([]any, len(rentalColumns))
	footer[0] = "Tổng cộng"
	footer[2] = fmt.Sprintf("%d lượt thuê", len(items))
	footer[7] = quantity
	footer[10] = meta.Money.Format(total)

	return build(meta, []sheet{{
		name:    "Thuê thiết bị",
		columns: rentalColumns,
		rows:    rows,
		footer:  footer,
	}})
}
