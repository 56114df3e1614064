package export

import (
	"fmt"
	"strings"
	"time"

	"sportdesk/internal/domain/bookings"

	"github.com/shopspring/decimal"
)

var bookingColumns = []column{
	{"STT", 6},
	{"Mã đặt sân", 12},
	{"Khách hàng", 24},
	{"Email", 28},
	{"Số điện thoại", 15},
	{"Sân", 18},
	{"Loại sân", 14},
	{"Ngày", 12},
	{"Bắt đầu", 10},
	{"Kết thúc", 10},
	{"Tổng tiền", 16},
	{"Trạng thái", 16},
	{"Thanh toán", 20},
	{"Ngày tạo", 18},
	{"Ghi chú", 30},
}

// BookingsWorkbook exports the (already filtered) bookings in display order.
func BookingsWorkbook(items []bookings.Booking, meta Meta) (*Workbook, error) {
	if len(items) == 0 {
		return nil, ErrNoData
	}
	if meta.Label == "" {
		meta.Label = "dat-san"
	}
	if meta.Title == "" {
		meta.Title = "DANH SÁCH ĐẶT SÂN"
	}

	total := decimal.Zero
	rows := make([][]any, 0, len(items))
	for i, b := range items {
		total = total.Add(b.TotalAmount)
		customer := b.Customer.DisplayName
		if b.Customer.Guest {
			customer += " (khách)"
		}
		rows = append(rows, []any{
			i + 1,
			b.Code(),
			customer,
			b.Customer.Email,
			b.Customer.Phone,
			b.Court.Name,
			b.Court.Type,
			displayDate(b.Date),
			clock(b.StartTime),
			clock(b.EndTime),
			meta.Money.Format(b.TotalAmount),
			b.Status.Label(),
			b.PaymentStatus.Label(),
			displayTimestamp(b.CreatedAt, meta.Location),
			b.Notes,
		})
	}

	footer := make([]any, len(bookingColumns))
	footer[0] = "Tổng cộng"
	footer[2] = fmt.Sprintf("%d lượt đặt", len(items))
	footer[10] = meta.Money.Format(total)

	return build(meta, []sheet{{
		name:    "Đặt sân",
		columns: bookingColumns,
		rows:    rows,
		footer:  footer,
	}})
}

// displayDate renders a YYYY-MM-DD prefix as dd/MM/yyyy, else the raw value.
func displayDate(s string) string {
	if len(s) >= 10 {
		if t, err := time.Parse("2006-01-02", s[:10]); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return s
}

func displayTimestamp(s string, loc *time.Location) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return displayDate(s)
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format("02/01/2006 15:04")
}

// clock trims seconds from HH:MM:SS.
func clock(s string) string {
	if len(s) == 8 && strings.Count(s, ":") == 2 {
		return s[:5]
	}
	return s
}
