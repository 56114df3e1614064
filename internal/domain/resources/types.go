package resources

import "github.com/shopspring/decimal"

// Court is the read-only snapshot of a bookable court.
type Court struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Type       string          `json:"type"`
	VenueID    int64           `json:"venue_id"`
	VenueName  string          `json:"venue_name"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
}

// Equipment is the read-only snapshot of a rentable item.
type Equipment struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	Code              string          `json:"code"`
	Category          string          `json:"category"`
	RentalFee         decimal.Decimal `json:"rental_fee"` // per day
	AvailableQuantity int             `json:"available_quantity"`
}

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	FullName string `json:"full_name"`
}

// DisplayName prefers the full name and falls back to the username.
func (u User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

type Venue struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Customer is the effective identity behind a booking or rental. A registered
// user always wins over inline guest fields.
type Customer struct {
	UserID      *int64 `json:"user_id,omitempty"`
	Username    string `json:"username,omitempty"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DisplayName string `json:"name"`
	Guest       bool   `json:"guest"`
}
