package params

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	PageSize   = 10 // rows per table page
	WindowSize = 5  // page-number buttons shown at once
)

// URL: /v1/bookings?status=pending&page=2&prev_total=37
// → ParsePagination() → Pagination{Limit:10, Page:2}
// → filter the fetched collection → ComputeMeta(len(filtered))
// → Slice(filtered, p) → rows of page 2
// Pagination holds pagination info and computed metadata.
type Pagination struct {
	Limit      int   `json:"limit"`       // items per page
	Offset     int   `json:"offset"`      // index of the first item on the page
	Page       int   `json:"page"`        // current page, 1-indexed
	Total      int   `json:"total"`       // filtered items
	TotalPages int   `json:"total_pages"` // ceil(Total / Limit)
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
	Window     []int `json:"window"` // page-number buttons

	prevTotal int
}

// ParsePagination parses ?page=...&prev_total=... safely. prev_total is the
// total the client saw last; when it differs from the new total the page resets.
func ParsePagination(q url.Values) Pagination {
	p := Pagination{
		Limit:     PageSize,
		Page:      1,
		prevTotal: -1,
	}

	if pageStr := strings.TrimSpace(q.Get("page")); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page > 0 {
			p.Page = page
		}
	}

	if prevStr := strings.TrimSpace(q.Get("prev_total")); prevStr != "" {
		if prev, err := strconv.Atoi(prevStr); err == nil && prev >= 0 {
			p.prevTotal = prev
		}
	}

	p.Offset = (p.Page - 1) * p.Limit
	return p
}

// ComputeMeta updates pagination once the filtered total is known. The page is
// reset to 1 when the total changed and clamped into the valid range.
func (p *Pagination) ComputeMeta(total int) {
	seen := p.prevTotal
	if seen < 0 {
		seen = total
	}
	s := restorePageState(p.Page, seen, p.Limit)
	s.Sync(total)
	*p = s.Pagination()
}

// PageWindow returns at most WindowSize page numbers around current:
// all pages when there are few, the first five near the start, the last five
// near the end, otherwise current-2..current+2.
func PageWindow(current, totalPages int) []int {
	if totalPages <= 0 {
		return []int{}
	}

	var start, end int
	switch {
	case totalPages <= WindowSize:
		start, end = 1, totalPages
	case current <= 3:
		start, end = 1, WindowSize
	case current >= totalPages-2:
		start, end = totalPages-WindowSize+1, totalPages
	default:
		start, end = current-2, current+2
	}

	out := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		out = append(out, i)
	}
	return out
}

// Slice returns the items on p's page. Call ComputeMeta first.
func Slice[T any](items []T, p Pagination) []T {
	if p.Offset >= len(items) || p.Offset < 0 {
		return []T{}
	}
	end := min(p.Offset+p.Limit, len(items))
	return items[p.Offset:end]
}
