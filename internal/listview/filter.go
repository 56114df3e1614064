// Package listview derives the visible subset of a fetched collection from the
// current filter criteria and summarises it.
package listview

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// Record is what a list row must expose to be filtered and summarised.
type Record interface {
	SearchFields() []string
	StatusValue() string
	PaymentStatusValue() string
	ResourceKey() string
	PrimaryDate() string
	Amount() decimal.Decimal
}

// Filter returns the records matching every active criterion, in input order.
// It never returns nil.
func Filter[T Record](items []T, c Criteria) []T {
	out := make([]T, 0, len(items))
	m := newMatcher(c)
	for _, it := range items {
		if m.match(it) {
			out = append(out, it)
		}
	}
	return out
}

type matcher struct {
	c      Criteria
	fold   cases.Caser
	needle string
}

func newMatcher(c Criteria) *matcher {
	m := &matcher{c: c, fold: cases.Fold()}
	if s := strings.TrimSpace(c.Search); s != "" {
		m.needle = m.fold.String(s)
	}
	return m
}

func (m *matcher) match(r Record) bool {
	if m.needle != "" && !m.matchSearch(r) {
		return false
	}
	if active(m.c.Status) && r.StatusValue() != m.c.Status {
		return false
	}
	if active(m.c.PaymentStatus) && r.PaymentStatusValue() != m.c.PaymentStatus {
		return false
	}
	if active(m.c.ResourceID) && r.ResourceKey() != m.c.ResourceID {
		return false
	}
	// string prefix on purpose: the platform's dates are compared as written,
	// without timezone conversion
	if m.c.Date != "" && !strings.HasPrefix(r.PrimaryDate(), m.c.Date) {
		return false
	}
	return true
}

func (m *matcher) matchSearch(r Record) bool {
	for _, f := range r.SearchFields() {
		if f == "" {
			continue
		}
		if strings.Contains(m.fold.String(f), m.needle) {
			return true
		}
	}
	return false
}
