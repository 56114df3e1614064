package stats

import "github.com/shopspring/decimal"

// BookingStats are the platform's pre-aggregated booking figures for the
// dashboard cards. The zero value is what the cards show when the fetch fails.
type BookingStats struct {
	Total          int64           `json:"total"`
	Today          int64           `json:"today"`
	Pending        int64           `json:"pending"`
	Confirmed      int64           `json:"confirmed"`
	Completed      int64           `json:"completed"`
	Cancelled      int64           `json:"cancelled"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TodayRevenue   decimal.Decimal `json:"today_revenue"`
	CompletionRate float64         `json:"completion_rate"` // percent
}

type RentalStats struct {
	Total        int64           `json:"total"`
	Pending      int64           `json:"pending"`
	Active       int64           `json:"active"`
	Overdue      int64           `json:"overdue"`
	Returned     int64           `json:"returned"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	MonthRevenue decimal.Decimal `json:"month_revenue"`
}

type TopCustomer struct {
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Phone string          `json:"phone"`
	Count int64           `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// ResourceStat is one court's or one equipment item's totals.
type ResourceStat struct {
	Name    string          `json:"name"`
	Kind    string          `json:"kind"`
	Count   int64           `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}

// TrendPoint merges bookings and rentals for one period (usually a day).
type TrendPoint struct {
	Period         string          `json:"period"`
	Bookings       int64           `json:"bookings"`
	BookingRevenue decimal.Decimal `json:"booking_revenue"`
	Rentals        int64           `json:"rentals"`
	RentalRevenue  decimal.Decimal `json:"rental_revenue"`
}

// Report is everything the multi-sheet report workbook needs.
type Report struct {
	Bookings     BookingStats   `json:"bookings"`
	Rentals      RentalStats    `json:"rentals"`
	TopCustomers []TopCustomer  `json:"top_customers"`
	Courts       []ResourceStat `json:"courts"`
	Equipment    []ResourceStat `json:"equipment"`
	Trend        []TrendPoint   `json:"trend"`
}

// Empty reports whether there is nothing worth exporting.
func (r Report) Empty() bool {
	return r.Bookings.Total == 0 && r.Rentals.Total == 0 &&
		len(r.TopCustomers) == 0 && len(r.Courts) == 0 &&
		len(r.Equipment) == 0 && len(r.Trend) == 0
}
