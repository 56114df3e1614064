package listview

import "github.com/shopspring/decimal"

// Summary is the "results" line under a filtered table.
type Summary struct {
	Count        int             `json:"count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// Summarize adds up the amounts of items. Amounts are decimals parsed with a
// zero fallback at normalization, so the sum is always a finite number.
func Summarize[T Record](items []T) Summary {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Amount())
	}
	return Summary{Count: len(items), TotalRevenue: total}
}
