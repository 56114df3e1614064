package export

import (
	"bytes"
	"errors"
	"slices"
	"strconv"
	"testing"
	"time"

	"sportdesk/internal/domain/bookings"
	"sportdesk/internal/domain/rentals"
	"sportdesk/internal/domain/resources"
	"sportdesk/internal/domain/stats"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

var fixedNow = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

func open(t *testing.T, wb *Workbook) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(wb.Bytes()))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func cell(t *testing.T, f *excelize.File, sheet, ref string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, ref)
	if err != nil {
		t.Fatalf("read %s!%s: %v", sheet, ref, err)
	}
	return v
}

func sampleBookings() []bookings.Booking {
	uid := int64(7)
	return []bookings.Booking{
		{
			ID: 123, CourtID: 1, Date: "2024-03-15", StartTime: "08:00:00", EndTime: "10:00",
			TotalAmount: decimal.NewFromInt(300000), Status: bookings.StatusConfirmed,
			PaymentStatus: bookings.PaymentPaid,
			Customer:      resources.Customer{UserID: &uid, DisplayName: "Nguyễn Văn An", Email: "an@example.com"},
			Court:         resources.Court{ID: 1, Name: "Sân 1", Type: "badminton"},
			CreatedAt:     "2024-03-10T02:00:00Z",
		},
		{
			ID: 124, CourtID: 2, Date: "2024-03-16", StartTime: "18:00", EndTime: "19:30",
			TotalAmount: decimal.NewFromInt(225000), Status: "on_hold",
			PaymentStatus: bookings.PaymentUnpaid,
			Customer:      resources.Customer{DisplayName: "Lan", Phone: "0912345678", Guest: true},
			Court:         resources.Court{ID: 2, Name: "Sân 2"},
		},
	}
}

func TestBookingsWorkbookLayout(t *testing.T) {
	wb, err := BookingsWorkbook(sampleBookings(), Meta{Subtitle: "Bộ lọc: tất cả", Now: fixedNow, Money: NewMoney("vi", "₫")})
	if err != nil {
		t.Fatal(err)
	}
	if wb.Filename != "dat-san_15-03-2024.xlsx" {
		t.Fatalf("filename %q", wb.Filename)
	}

	f := open(t, wb)
	sheet := "Đặt sân"
	if got := f.GetSheetList(); !slices.Equal(got, []string{sheet}) {
		t.Fatalf("sheets %v", got)
	}

	checks := map[string]string{
		"A1":  "DANH SÁCH ĐẶT SÂN",
		"A2":  "Bộ lọc: tất cả",
		"A3":  "Ngày xuất: 15/03/2024 09:30",
		"A5":  "STT",
		"B5":  "Mã đặt sân",
		"B6":  "BK000123",
		"C7":  "Lan (khách)",
		"H6":  "15/03/2024",
		"I6":  "08:00",
		"L6":  "Đã xác nhận",
		"L7":  "on_hold", // unknown status keeps its raw value
		"M7":  "Chưa thanh toán",
		"N6":  "10/03/2024 02:00",
		"A8":  "Tổng cộng",
		"C8":  "2 lượt đặt",
		"K8":  "525.000 ₫",
		"K6":  "300.000 ₫",
		"B10": "",
	}
	for ref, want := range checks {
		if got := cell(t, f, sheet, ref); got != want {
			t.Errorf("%s = %q want %q", ref, got, want)
		}
	}

	merged, err := f.GetMergeCells(sheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(merged) != 3 {
		t.Fatalf("expected 3 merged title rows, got %d", len(merged))
	}
}

func TestBandingAlternatesEveryFiveRows(t *testing.T) {
	items := make([]bookings.Booking, 12)
	for i := range items {
		items[i] = bookings.Booking{ID: int64(i + 1), Status: bookings.StatusPending}
	}
	wb, err := BookingsWorkbook(items, Meta{Now: fixedNow})
	if err != nil {
		t.Fatal(err)
	}
	f := open(t, wb)
	sheet := "Đặt sân"

	styleAt := func(row int) int {
		id, err := f.GetCellStyle(sheet, "A"+strconv.Itoa(row))
		if err != nil {
			t.Fatal(err)
		}
		return id
	}
	first := styleAt(6)
	for i := 0; i < 12; i++ {
		got := styleAt(6 + i)
		banded := (i/5)%2 == 1
		if banded == (got == first) {
			t.Errorf("data row %d: style %d (first band %d)", i, got, first)
		}
	}
}

func TestEmptyInputIsNoData(t *testing.T) {
	if _, err := BookingsWorkbook(nil, Meta{}); !errors.Is(err, ErrNoData) {
		t.Fatalf("bookings: %v", err)
	}
	if _, err := RentalsWorkbook([]rentals.Rental{}, Meta{}); !errors.Is(err, ErrNoData) {
		t.Fatalf("rentals: %v", err)
	}
	if _, err := ReportWorkbook(stats.Report{}, Meta{}); !errors.Is(err, ErrNoData) {
		t.Fatalf("report: %v", err)
	}
}

func TestRentalsWorkbookFooter(t *testing.T) {
	items := []rentals.Rental{
		{ID: 45, Quantity: 2, StartDate: "2024-03-15", EndDate: "2024-03-17", TotalAmount: decimal.NewFromInt(80000),
			Status: rentals.StatusActive, PaymentStatus: rentals.PaymentPending,
			Equipment: resources.Equipment{Name: "Vợt Yonex", Category: "racket"}},
		{ID: 46, Quantity: 3, StartDate: "2024-03-16", EndDate: "2024-03-17", TotalAmount: decimal.NewFromInt(30000),
			Status: rentals.StatusReturned, PaymentStatus: rentals.PaymentPaid},
	}
	wb, err := RentalsWorkbook(items, Meta{Label: "thue", Now: fixedNow})
	if err != nil {
		t.Fatal(err)
	}
	if wb.Filename != "thue_15-03-2024.xlsx" {
		t.Fatalf("filename %q", wb.Filename)
	}
	f := open(t, wb)
	sheet := "Thuê thiết bị"
	for ref, want := range map[string]string{
		"B6": "RT000045",
		"L6": "Đang thuê",
		"M6": "Chờ thanh toán",
		"H8": "5",
		"K8": "110.000 ₫",
	} {
		if got := cell(t, f, sheet, ref); got != want {
			t.Errorf("%s = %q want %q", ref, got, want)
		}
	}
}

func TestReportWorkbookSheets(t *testing.T) {
	r := stats.Report{
		Bookings: stats.BookingStats{Total: 10, Completed: 4, TotalRevenue: decimal.NewFromInt(1500000)},
		Rentals:  stats.RentalStats{Total: 3, TotalRevenue: decimal.NewFromInt(500000)},
		Courts: []stats.ResourceStat{
			{Name: "Sân 1", Count: 6, Revenue: decimal.NewFromInt(900000)},
			{Name: "Sân 2", Count: 4, Revenue: decimal.NewFromInt(600000)},
		},
	}
	wb, err := ReportWorkbook(r, Meta{Now: fixedNow})
	if err != nil {
		t.Fatal(err)
	}
	if wb.Filename != "bao-cao_15-03-2024.xlsx" {
		t.Fatalf("filename %q", wb.Filename)
	}
	f := open(t, wb)

	want := []string{"Tổng quan", "Khách hàng", "Sân", "Thiết bị", "Xu hướng"}
	if got := f.GetSheetList(); !slices.Equal(got, want) {
		t.Fatalf("sheets %v", got)
	}
	if got := cell(t, f, "Tổng quan", "B22"); got != "2.000.000 ₫" {
		t.Errorf("overview total %q", got)
	}
	if got := cell(t, f, "Sân", "D8"); got != "10" {
		t.Errorf("court count footer %q", got)
	}
	if got := cell(t, f, "Sân", "E8"); got != "1.500.000 ₫" {
		t.Errorf("court revenue footer %q", got)
	}
	for _, name := range []string{"Khách hàng", "Thiết bị", "Xu hướng"} {
		if got := cell(t, f, name, "A6"); got != "Không có dữ liệu" {
			t.Errorf("%s: empty marker %q", name, got)
		}
	}
}

func TestMoneyFormat(t *testing.T) {
	tests := []struct {
		m    Money
		in   decimal.Decimal
		want string
	}{
		{NewMoney("vi", ""), decimal.NewFromInt(1500000), "1.500.000 ₫"},
		{Money{}, decimal.NewFromInt(0), "0 ₫"},
		{NewMoney("en", "VND"), decimal.NewFromInt(1500000), "1,500,000 VND"},
		{NewMoney("vi", "₫"), decimal.RequireFromString("99999.6"), "100.000 ₫"},
	}
	for _, tc := range tests {
		if got := tc.m.Format(tc.in); got != tc.want {
			t.Errorf("Format(%s) = %q want %q", tc.in, got, tc.want)
		}
	}
}

func TestWorkbooksHaveDistinctIDs(t *testing.T) {
	a, err := BookingsWorkbook(sampleBookings(), Meta{Now: fixedNow})
	if err != nil {
		t.Fatal(err)
	}
	b, err := BookingsWorkbook(sampleBookings(), Meta{Now: fixedNow})
	if err != nil {
		t.Fatal(err)
	}
	if a.ID == b.ID {
		t.Fatal("export ids must differ")
	}
}
