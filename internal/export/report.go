package export

import (
	"fmt"

	"sportdesk/internal/domain/stats"

	"github.com/shopspring/decimal"
)

// ReportWorkbook builds the multi-sheet statistics report. Sheets whose source
// array is missing carry a single "no data" row.
func ReportWorkbook(r stats.Report, meta Meta) (*Workbook, error) {
	if r.Empty() {
		return nil, ErrNoData
	}
	if meta.Label == "" {
		meta.Label = "bao-cao"
	}
	if meta.Title == "" {
		meta.Title = "BÁO CÁO THỐNG KÊ"
	}

	sheets := []sheet{
		overviewSheet(r, meta.Money),
		customersSheet(r.TopCustomers, meta.Money),
		resourceSheet("Sân", "DOANH THU THEO SÂN", "Sân", "Lượt đặt", r.Courts, meta.Money),
		resourceSheet("Thiết bị", "DOANH THU THEO THIẾT BỊ", "Thiết bị", "Lượt thuê", r.Equipment, meta.Money),
		trendSheet(r.Trend, meta.Money),
	}
	return build(meta, sheets)
}

func overviewSheet(r stats.Report, m Money) sheet {
	b, rt := r.Bookings, r.Rentals
	rows := [][]any{
		{"Tổng lượt đặt sân", b.Total},
		{"Đặt sân hôm nay", b.Today},
		{"Chờ xác nhận", b.Pending},
		{"Đã xác nhận", b.Confirmed},
		{"Hoàn thành", b.Completed},
		{"Đã hủy", b.Cancelled},
		{"Tỷ lệ hoàn thành", fmt.Sprintf("%.1f%%", b.CompletionRate)},
		{"Doanh thu đặt sân", m.Format(b.TotalRevenue)},
		{"Doanh thu đặt sân hôm nay", m.Format(b.TodayRevenue)},
		{"Tổng lượt thuê thiết bị", rt.Total},
		{"Thuê chờ duyệt", rt.Pending},
		{"Đang thuê", rt.Active},
		{"Quá hạn", rt.Overdue},
		{"Đã trả", rt.Returned},
		{"Doanh thu thuê thiết bị", m.Format(rt.TotalRevenue)},
		{"Doanh thu thuê tháng này", m.Format(rt.MonthRevenue)},
	}
	return sheet{
		name:    "Tổng quan",
		title:   "TỔNG QUAN",
		columns: []column{{"Chỉ số", 34}, {"Giá trị", 22}},
		rows:    rows,
		footer:  []any{"Tổng doanh thu", m.Format(b.TotalRevenue.Add(rt.TotalRevenue))},
	}
}

func customersSheet(items []stats.TopCustomer, m Money) sheet {
	rows := make([][]any, 0, len(items))
	var count int64
	total := decimal.Zero
	for i, c := range items {
		count += c.Count
		total = total.Add(c.Total)
		rows = append(rows, []any{i + 1, c.Name, c.Email, c.Phone, c.Count, m.Format(c.Total)})
	}
	s := sheet{
		name:  "Khách hàng",
		title: "KHÁCH HÀNG NỔI BẬT",
		columns: []column{
			{"STT", 6}, {"Khách hàng", 26}, {"Email", 28}, {"Số điện thoại", 15},
			{"Số lượt", 10}, {"Tổng chi tiêu", 18},
		},
		rows: rows,
	}
	if len(items) > 0 {
		s.footer = []any{"Tổng cộng", nil, nil, nil, count, m.Format(total)}
	}
	return s
}

func resourceSheet(name, title, resourceHeader, countHeader string, items []stats.ResourceStat, m Money) sheet {
	rows := make([][]any, 0, len(items))
	var count int64
	total := decimal.Zero
	for i, it := range items {
		count += it.Count
		total = total.Add(it.Revenue)
		rows = append(rows, []any{i + 1, it.Name, it.Kind, it.Count, m.Format(it.Revenue)})
	}
	s := sheet{
		name:  name,
		title: title,
		columns: []column{
			{"STT", 6}, {resourceHeader, 26}, {"Loại", 16}, {countHeader, 12}, {"Doanh thu", 18},
		},
		rows: rows,
	}
	if len(items) > 0 {
		s.footer = []any{"Tổng cộng", nil, nil, count, m.Format(total)}
	}
	return s
}

func trendSheet(items []stats.TrendPoint, m Money) sheet {
	rows := make([][]any, 0, len(items))
	var bookings, rentals int64
	bookingRev, rentalRev := decimal.Zero, decimal.Zero
	for _, p := range items {
		bookings += p.Bookings
		rentals += p.Rentals
		bookingRev = bookingRev.Add(p.BookingRevenue)
		rentalRev = rentalRev.Add(p.RentalRevenue)
		rows = append(rows, []any{
			displayDate(p.Period),
			p.Bookings,
			m.Format(p.BookingRevenue),
			p.Rentals,
			m.Format(p.RentalRevenue),
			m.Format(p.BookingRevenue.Add(p.RentalRevenue)),
		})
	}
	s := sheet{
		name:  "Xu hướng",
		title: "XU HƯỚNG THEO NGÀY",
		columns: []column{
			{"Kỳ", 14}, {"Lượt đặt", 10}, {"Doanh thu đặt sân", 20},
			{"Lượt thuê", 10}, {"Doanh thu thuê", 18}, {"Tổng doanh thu", 18},
		},
		rows: rows,
	}
	if len(items) > 0 {
		s.footer = []any{
			"Tổng cộng", bookings, m.Format(bookingRev),
			rentals, m.Format(rentalRev), m.Format(bookingRev.Add(rentalRev)),
		}
	}
	return s
}
