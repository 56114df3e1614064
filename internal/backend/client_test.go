package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"sportdesk/internal/domain/bookings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
)

const token = "opaque-session-token"

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if got := r.Header.Get("Authorization"); got != "Bearer "+token {
			t.Errorf("authorization header %q", got)
		}
		h(w, r)
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, srv.Client(), nil), &calls
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func TestListBookingsNormalizesEnvelopes(t *testing.T) {
	rows := []map[string]any{
		{"id": 1, "booking_date": "2024-03-15", "total_price": "150000", "status": "pending", "payment_status": "unpaid", "guest_name": "An", "guest_phone": "0912345678"},
		{"id": 2, "date": "2024-03-16T00:00:00Z", "total_amount": 200000, "status": "confirmed", "payment_status": "paid"},
	}
	envelopes := map[string]any{
		"bare":    rows,
		"data":    map[string]any{"data": rows},
		"items":   map[string]any{"items": rows},
		"results": map[string]any{"results": rows},
		"nested":  map[string]any{"data": map[string]any{"items": rows}},
	}

	for name, body := range envelopes {
		t.Run(name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/bookings" {
					t.Errorf("path %s", r.URL.Path)
				}
				writeJSON(w, http.StatusOK, body)
			})
			got, err := c.ListBookings(context.Background(), Session{Token: token})
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
				t.Fatalf("unexpected %+v", got)
			}
			if got[0].Date != "2024-03-15" || !got[0].TotalAmount.Equal(decimal.NewFromInt(150000)) {
				t.Fatalf("first booking not normalized: %+v", got[0])
			}
			if got[1].Date != "2024-03-16T00:00:00Z" || !got[1].TotalAmount.Equal(decimal.NewFromInt(200000)) {
				t.Fatalf("second booking not normalized: %+v", got[1])
			}
		})
	}
}

func TestMissingOrExpiredSessionNeverHitsNetwork(t *testing.T) {
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []any{})
	})

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": 1,
		"exp": time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte("x"))
	if err != nil {
		t.Fatal(err)
	}

	for _, s := range []Session{{}, {Token: expired}} {
		if _, err := c.ListBookings(context.Background(), s); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	}
	if calls.Load() != 0 {
		t.Fatalf("expected no requests, got %d", calls.Load())
	}
}

func TestPlatform401IsUnauthenticated(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "token revoked"})
	})
	_, err := c.ListRentals(context.Background(), Session{Token: token})
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAPIErrorCarriesBackendMessage(t *testing.T) {
	tests := []struct {
		status   int
		body     any
		want     string
		notFound bool
	}{
		{http.StatusBadRequest, map[string]any{"message": "Sân đã được đặt"}, "Sân đã được đặt", false},
		{http.StatusConflict, map[string]any{"error": "slot taken"}, "slot taken", false},
		{http.StatusUnprocessableEntity, map[string]any{"detail": "bad quantity"}, "bad quantity", false},
		{http.StatusInternalServerError, "oops", "backend request failed with status 500", false},
		{http.StatusNotFound, map[string]any{"message": "Booking not found"}, "Booking not found", true},
	}
	for _, tc := range tests {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, tc.status, tc.body)
		})
		_, err := c.GetBooking(context.Background(), Session{Token: token}, 9)

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("status %d: expected *APIError, got %v", tc.status, err)
		}
		if apiErr.Status != tc.status || apiErr.Message != tc.want {
			t.Errorf("status %d: got %+v", tc.status, apiErr)
		}
		if errors.Is(err, ErrNotFound) != tc.notFound {
			t.Errorf("status %d: ErrNotFound match mismatch", tc.status)
		}
	}
}

func TestPatchAndCreateSendJSON(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]any
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		b, _ := io.ReadAll(r.Body)
		gotBody = map[string]any{}
		json.Unmarshal(b, &gotBody)
		if r.Method == http.MethodPatch {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"data": map[string]any{"id": 77, "booking_date": "2024-03-20", "status": "pending"}})
	})
	s := Session{Token: token}

	if err := c.PatchBooking(context.Background(), s, 5, map[string]any{"status": "confirmed"}); err != nil {
		t.Fatal(err)
	}
	if gotMethod != http.MethodPatch || gotPath != "/bookings/5" || gotBody["status"] != "confirmed" {
		t.Fatalf("patch sent %s %s %v", gotMethod, gotPath, gotBody)
	}

	in := bookings.Input{CourtID: 1, GuestName: "An", GuestPhone: "0912345678", BookingDate: "2024-03-20", StartTime: "08:00", EndTime: "09:00"}
	b, err := c.CreateBooking(context.Background(), s, in)
	if err != nil {
		t.Fatal(err)
	}
	if b.ID != 77 || b.Date != "2024-03-20" {
		t.Fatalf("unexpected created booking %+v", b)
	}
	if gotMethod != http.MethodPost || gotBody["guest_name"] != "An" {
		t.Fatalf("create sent %s %v", gotMethod, gotBody)
	}
	if _, ok := gotBody["total_amount"]; ok {
		t.Fatal("client must not send totals")
	}
}

func TestReportCombinesBothStatsPayloads(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/bookings/stats":
			writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{
				"total": 12, "total_revenue": "1800000",
				"by_court": []any{map[string]any{"court_name": "Sân 1", "count": 12, "revenue": 1800000}},
				"trend":    []any{map[string]any{"date": "2024-03-15", "count": 2, "revenue": 300000}},
			}})
		case "/rentals/stats":
			writeJSON(w, http.StatusOK, map[string]any{
				"total": 3,
				"trend": []any{map[string]any{"date": "2024-03-15", "count": 1, "revenue": 40000}},
			})
		default:
			http.NotFound(w, r)
		}
	})

	r, err := c.Report(context.Background(), Session{Token: token})
	if err != nil {
		t.Fatal(err)
	}
	if r.Bookings.Total != 12 || r.Rentals.Total != 3 || len(r.Courts) != 1 {
		t.Fatalf("unexpected report %+v", r)
	}
	if len(r.Trend) != 1 || r.Trend[0].Bookings != 2 || r.Trend[0].Rentals != 1 {
		t.Fatalf("trend not merged: %+v", r.Trend)
	}
}
