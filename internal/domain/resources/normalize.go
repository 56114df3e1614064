package resources

import (
	"sportdesk/internal/coalesce"
)

func NormalizeCourt(raw coalesce.Raw) Court {
	venue := coalesce.Object(raw, "venue")
	c := Court{
		ID:         coalesce.Int(raw, "id", "court_id"),
		Name:       coalesce.String(raw, "name", "court_name"),
		Type:       coalesce.String(raw, "type", "court_type", "sport_type"),
		VenueID:    coalesce.Int(raw, "venue_id"),
		VenueName:  coalesce.String(raw, "venue_name"),
		HourlyRate: coalesce.Decimal(raw, "hourly_rate", "price_per_hour", "price"),
	}
	if venue != nil {
		if c.VenueID == 0 {
			c.VenueID = coalesce.Int(venue, "id")
		}
		if c.VenueName == "" {
			c.VenueName = coalesce.String(venue, "name")
		}
	}
	return c
}

func NormalizeEquipment(raw coalesce.Raw) Equipment {
	e := Equipment{
		ID:                coalesce.Int(raw, "id", "equipment_id"),
		Name:              coalesce.String(raw, "name", "equipment_name"),
		Code:              coalesce.String(raw, "code", "equipment_code"),
		Category:          coalesce.String(raw, "category_name", "category"),
		RentalFee:         coalesce.Decimal(raw, "rental_fee", "daily_rate", "price"),
		AvailableQuantity: int(coalesce.Int(raw, "available_quantity", "quantity_available", "stock")),
	}
	// category sometimes arrives as an object
	if cat := coalesce.Object(raw, "category"); cat != nil {
		e.Category = coalesce.String(cat, "name")
	}
	return e
}

func NormalizeUser(raw coalesce.Raw) User {
	return User{
		ID:       coalesce.Int(raw, "id", "user_id"),
		Username: coalesce.String(raw, "username"),
		Email:    coalesce.String(raw, "email"),
		Phone:    coalesce.String(raw, "phone", "phone_number"),
		FullName: coalesce.String(raw, "fullname", "full_name", "name"),
	}
}

func NormalizeVenue(raw coalesce.Raw) Venue {
	return Venue{
		ID:      coalesce.Int(raw, "id", "venue_id"),
		Name:    coalesce.String(raw, "name", "venue_name"),
		Address: coalesce.String(raw, "address", "location"),
	}
}

// NormalizeCustomer resolves the effective customer of a record. The nested
// user object (under "user" or "customer") or a user_id marks a registered
// customer; otherwise the guest_* / customer_* fields are used.
func NormalizeCustomer(raw coalesce.Raw) Customer {
	userObj := coalesce.Object(raw, "user", "customer")
	userID := coalesce.IntPtr(raw, "user_id", "customer_id")
	if userObj != nil && userID == nil {
		userID = coalesce.IntPtr(userObj, "id")
	}

	if userID != nil {
		u := User{ID: *userID}
		if userObj != nil {
			u = NormalizeUser(userObj)
			u.ID = *userID
		}
		return Customer{
			UserID:      userID,
			Username:    u.Username,
			Email:       u.Email,
			Phone:       u.Phone,
			DisplayName: u.DisplayName(),
		}
	}

	return Customer{
		DisplayName: coalesce.String(raw, "guest_name", "customer_name"),
		Phone:       coalesce.String(raw, "guest_phone", "customer_phone"),
		Email:       coalesce.String(raw, "guest_email", "customer_email"),
		Guest:       true,
	}
}
