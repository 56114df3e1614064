package coalesce

import (
	"encoding/json"
	"strings"
	"testing"
)

func decode(t *testing.T, s string) Raw {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var raw Raw
	if err := dec.Decode(&raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return raw
}

func TestStringPriority(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"first key wins", `{"booking_date":"2024-03-15","date":"2024-01-01"}`, "2024-03-15"},
		{"falls back", `{"date":"2024-01-01"}`, "2024-01-01"},
		{"blank skipped", `{"booking_date":"  ","date":"2024-01-01"}`, "2024-01-01"},
		{"null skipped", `{"booking_date":null,"date":"2024-01-01"}`, "2024-01-01"},
		{"none", `{}`, ""},
		{"number rendered", `{"booking_date":20240315}`, "20240315"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := String(decode(t, tc.json), "booking_date", "date")
			if got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestDecimal(t *testing.T) {
	tests := []struct {
		json string
		want string
	}{
		{`{"total_amount":"150000.50"}`, "150000.5"},
		{`{"total_price":200000}`, "200000"},
		{`{"total_amount":"abc","total_price":5}`, "0"},
		{`{"total_amount":"1,500,000"}`, "1500000"},
		{`{}`, "0"},
	}
	for _, tc := range tests {
		got := Decimal(decode(t, tc.json), "total_amount", "total_price")
		if got.String() != tc.want {
			t.Errorf("%s: got %s want %s", tc.json, got, tc.want)
		}
	}
}

func TestIntPtr(t *testing.T) {
	raw := decode(t, `{"user_id":0,"uid":"42","x":"nope"}`)
	if v := IntPtr(raw, "user_id"); v != nil {
		t.Fatalf("zero should be absent, got %d", *v)
	}
	if v := IntPtr(raw, "x", "user_id", "uid"); v == nil || *v != 42 {
		t.Fatalf("expected 42, got %v", v)
	}
	if Int(raw, "missing") != 0 {
		t.Fatal("missing key should be zero")
	}
}

func TestObjectAndArray(t *testing.T) {
	raw := decode(t, `{"user":{},"customer":{"name":"An"},"trend":[],"daily":[{"p":1},2,{"p":3}]}`)
	obj := Object(raw, "user", "customer")
	if String(obj, "name") != "An" {
		t.Fatalf("unexpected object %v", obj)
	}
	arr := Array(raw, "trend", "daily")
	if len(arr) != 2 {
		t.Fatalf("expected 2 objects, got %d", len(arr))
	}
}
