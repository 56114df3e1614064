// Package coalesce reads loosely shaped JSON objects coming from the platform API.
//
// The platform renamed several fields over time (date vs booking_date, total_amount
// vs total_price, fullname vs name). Every accessor takes the candidate keys in
// priority order and returns the first non-empty value, or the zero value when none
// of the keys carries one. Objects are expected to be decoded with UseNumber so
// integers survive untouched.
package coalesce

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Raw is a single decoded JSON object.
type Raw = map[string]any

// String returns the first non-blank value under keys rendered as a string.
func String(raw Raw, keys ...string) string {
	for _, k := range keys {
		if s, ok := asString(raw[k]); ok {
			return s
		}
	}
	return ""
}

// Int returns the first value under keys that parses as an integer.
func Int(raw Raw, keys ...string) int64 {
	if v := IntPtr(raw, keys...); v != nil {
		return *v
	}
	return 0
}

// IntPtr is Int but reports absence as nil. Zero counts as absent since the
// platform uses 0 and null interchangeably for missing foreign keys.
func IntPtr(raw Raw, keys ...string) *int64 {
	for _, k := range keys {
		s, ok := asString(raw[k])
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			f, ferr := strconv.ParseFloat(s, 64)
			if ferr != nil {
				continue
			}
			n = int64(f)
		}
		if n == 0 {
			continue
		}
		return &n
	}
	return nil
}

// Decimal returns the first non-empty value under keys as a decimal. A value that
// is present but not numeric yields zero rather than falling through.
func Decimal(raw Raw, keys ...string) decimal.Decimal {
	for _, k := range keys {
		s, ok := asString(raw[k])
		if !ok {
			continue
		}
		d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
		if err != nil {
			return decimal.Zero
		}
		return d
	}
	return decimal.Zero
}

// Float returns the first numeric value under keys, zero otherwise.
func Float(raw Raw, keys ...string) float64 {
	for _, k := range keys {
		s, ok := asString(raw[k])
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

// Object returns the first nested object under keys, nil otherwise.
func Object(raw Raw, keys ...string) Raw {
	for _, k := range keys {
		if m, ok := raw[k].(map[string]any); ok && len(m) > 0 {
			return m
		}
	}
	return nil
}

// Array returns the objects of the first non-empty array under keys. Non-object
// elements are skipped.
func Array(raw Raw, keys ...string) []Raw {
	for _, k := range keys {
		items, ok := raw[k].([]any)
		if !ok || len(items) == 0 {
			continue
		}
		out := make([]Raw, 0, len(items))
		for _, it := range items {
			if m, ok := it.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	}
	return nil
}

func asString(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		s := strings.TrimSpace(t)
		return s, s != ""
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}
