package resources

import (
	"encoding/json"
	"strings"
	"testing"

	"sportdesk/internal/coalesce"
)

func raw(t *testing.T, s string) coalesce.Raw {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var m coalesce.Raw
	if err := dec.Decode(&m); err != nil {
		t.Fatal(err)
	}
	return m
}

func TestNormalizeCustomerRegisteredWins(t *testing.T) {
	c := NormalizeCustomer(raw(t, `{
		"user_id": 7,
		"user": {"username":"an.nguyen","email":"an@example.com","fullname":"Nguyễn Văn An"},
		"guest_name": "Ignored Guest"
	}`))
	if c.Guest {
		t.Fatal("registered user must not be marked guest")
	}
	if c.DisplayName != "Nguyễn Văn An" || c.Username != "an.nguyen" {
		t.Fatalf("unexpected customer %+v", c)
	}
	if c.UserID == nil || *c.UserID != 7 {
		t.Fatalf("unexpected user id %v", c.UserID)
	}
}

func TestNormalizeCustomerGuest(t *testing.T) {
	c := NormalizeCustomer(raw(t, `{"user_id":null,"guest_name":"Trần Bình","guest_phone":"0901234567"}`))
	if !c.Guest || c.DisplayName != "Trần Bình" || c.Phone != "0901234567" {
		t.Fatalf("unexpected guest %+v", c)
	}
}

func TestNormalizeCustomerNestedUserOnly(t *testing.T) {
	c := NormalizeCustomer(raw(t, `{"user":{"id":3,"username":"binh"}}`))
	if c.Guest || c.UserID == nil || *c.UserID != 3 || c.DisplayName != "binh" {
		t.Fatalf("unexpected customer %+v", c)
	}
}

func TestNormalizeCourtVenueObject(t *testing.T) {
	c := NormalizeCourt(raw(t, `{"id":2,"name":"Sân 2","court_type":"badminton","venue":{"id":9,"name":"CLB Hòa Bình"},"price_per_hour":"120000"}`))
	if c.VenueID != 9 || c.VenueName != "CLB Hòa Bình" || c.Type != "badminton" {
		t.Fatalf("unexpected court %+v", c)
	}
	if c.HourlyRate.String() != "120000" {
		t.Fatalf("unexpected rate %s", c.HourlyRate)
	}
}

func TestNormalizeEquipmentCategoryObject(t *testing.T) {
	e := NormalizeEquipment(raw(t, `{"id":4,"name":"Vợt Yonex","code":"VY-01","category":{"name":"Vợt"},"rental_fee":50000,"available_quantity":"6"}`))
	if e.Category != "Vợt" || e.AvailableQuantity != 6 || e.Code != "VY-01" {
		t.Fatalf("unexpected equipment %+v", e)
	}
}
