package listview

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// All disables an enum or resource filter.
const All = "all"

// Criteria is the ephemeral filter state of one list screen.
type Criteria struct {
	Search        string `json:"search"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	ResourceID    string `json:"resource_id"`
	Date          string `json:"date"` // YYYY-MM-DD, empty when unset
}

var ErrInvalidDate = errors.New("invalid date filter")

// ParseCriteria reads search, status, payment_status, resource_id and date.
// Missing enum values become All; the date is reduced to its calendar day. A
// date in any other format is rejected rather than dropped.
func ParseCriteria(q url.Values) (Criteria, error) {
	c := Criteria{
		Search:        strings.TrimSpace(q.Get("search")),
		Status:        enumOrAll(q.Get("status")),
		PaymentStatus: enumOrAll(q.Get("payment_status")),
		ResourceID:    enumOrAll(q.Get("resource_id")),
		Date:          DayOf(q.Get("date")),
	}
	if raw := strings.TrimSpace(q.Get("date")); raw != "" && c.Date == "" {
		return c, fmt.Errorf("%w %q: use YYYY-MM-DD", ErrInvalidDate, raw)
	}
	return c, nil
}

// DayOf formats s as YYYY-MM-DD. It accepts a bare day or an RFC3339 stamp
// and returns "" for anything else.
func DayOf(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format("2006-01-02")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format("2006-01-02")
	}
	return ""
}

func enumOrAll(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return All
	}
	return s
}

func active(v string) bool {
	return v != "" && v != All
}

// Active reports whether any filter constrains the collection.
func (c Criteria) Active() bool {
	return c.Search != "" || active(c.Status) || active(c.PaymentStatus) ||
		active(c.ResourceID) || c.Date != ""
}
