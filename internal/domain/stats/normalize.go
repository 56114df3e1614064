package stats

import (
	"sportdesk/internal/coalesce"
)

func NormalizeBookingStats(raw coalesce.Raw) BookingStats {
	return BookingStats{
		Total:          coalesce.Int(raw, "total", "total_bookings"),
		Today:          coalesce.Int(raw, "today", "today_bookings"),
		Pending:        coalesce.Int(raw, "pending", "pending_bookings"),
		Confirmed:      coalesce.Int(raw, "confirmed", "confirmed_bookings"),
		Completed:      coalesce.Int(raw, "completed", "completed_bookings"),
		Cancelled:      coalesce.Int(raw, "cancelled", "cancelled_bookings"),
		TotalRevenue:   coalesce.Decimal(raw, "total_revenue", "revenue"),
		TodayRevenue:   coalesce.Decimal(raw, "today_revenue"),
		CompletionRate: coalesce.Float(raw, "completion_rate"),
	}
}

func NormalizeRentalStats(raw coalesce.Raw) RentalStats {
	return RentalStats{
		Total:        coalesce.Int(raw, "total", "total_rentals"),
		Pending:      coalesce.Int(raw, "pending", "pending_rentals"),
		Active:       coalesce.Int(raw, "active", "active_rentals"),
		Overdue:      coalesce.Int(raw, "overdue", "overdue_rentals"),
		Returned:     coalesce.Int(raw, "returned", "returned_rentals"),
		TotalRevenue: coalesce.Decimal(raw, "total_revenue", "revenue"),
		MonthRevenue: coalesce.Decimal(raw, "month_revenue", "monthly_revenue"),
	}
}

// BuildReport assembles report sheets from the two stats payloads. Either
// payload may be nil when its fetch failed.
func BuildReport(bookingRaw, rentalRaw coalesce.Raw) Report {
	r := Report{
		Bookings: NormalizeBookingStats(bookingRaw),
		Rentals:  NormalizeRentalStats(rentalRaw),
	}

	customers := coalesce.Array(bookingRaw, "top_customers", "customers")
	if len(customers) == 0 {
		customers = coalesce.Array(rentalRaw, "top_customers", "customers")
	}
	for _, c := range customers {
		r.TopCustomers = append(r.TopCustomers, TopCustomer{
			Name:  coalesce.String(c, "fullname", "full_name", "name", "username"),
			Email: coalesce.String(c, "email"),
			Phone: coalesce.String(c, "phone"),
			Count: coalesce.Int(c, "count", "total_bookings", "bookings"),
			Total: coalesce.Decimal(c, "total_amount", "total_spent", "total"),
		})
	}

	for _, c := range coalesce.Array(bookingRaw, "by_court", "court_stats", "courts") {
		r.Courts = append(r.Courts, ResourceStat{
			Name:    coalesce.String(c, "court_name", "name"),
			Kind:    coalesce.String(c, "court_type", "type"),
			Count:   coalesce.Int(c, "count", "total_bookings", "bookings"),
			Revenue: coalesce.Decimal(c, "revenue", "total_revenue", "total_amount"),
		})
	}

	for _, e := range coalesce.Array(rentalRaw, "by_equipment", "equipment_stats", "equipment") {
		r.Equipment = append(r.Equipment, ResourceStat{
			Name:    coalesce.String(e, "equipment_name", "name"),
			Kind:    coalesce.String(e, "category", "category_name"),
			Count:   coalesce.Int(e, "count", "total_rentals", "rentals"),
			Revenue: coalesce.Decimal(e, "revenue", "total_revenue", "total_amount"),
		})
	}

	r.Trend = mergeTrend(
		coalesce.Array(bookingRaw, "trend", "daily", "revenue_trend"),
		coalesce.Array(rentalRaw, "trend", "daily", "revenue_trend"),
	)
	return r
}

// mergeTrend joins both series on period, keeping first-seen period order.
func mergeTrend(bookingSeries, rentalSeries []coalesce.Raw) []TrendPoint {
	var out []TrendPoint
	index := map[string]int{}

	point := func(period string) *TrendPoint {
		if i, ok := index[period]; ok {
			return &out[i]
		}
		index[period] = len(out)
		out = append(out, TrendPoint{Period: period})
		return &out[len(out)-1]
	}

	for _, p := range bookingSeries {
		tp := point(coalesce.String(p, "period", "date", "month"))
		tp.Bookings += coalesce.Int(p, "count", "bookings")
		tp.BookingRevenue = tp.BookingRevenue.Add(coalesce.Decimal(p, "revenue", "total_amount"))
	}
	for _, p := range rentalSeries {
		tp := point(coalesce.String(p, "period", "date", "month"))
		tp.Rentals += coalesce.Int(p, "count", "rentals")
		tp.RentalRevenue = tp.RentalRevenue.Add(coalesce.Decimal(p, "revenue", "total_amount"))
	}
	return out
}
