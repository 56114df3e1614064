package backend

import (
	"context"
	"fmt"
	"net/http"

	"sportdesk/internal/domain/bookings"
)

func (c *Client) ListBookings(ctx context.Context, s Session) ([]bookings.Booking, error) {
	raws, err := c.getList(ctx, s, "/bookings")
	if err != nil {
		return nil, err
	}
	return bookings.NormalizeAll(raws), nil
}

func (c *Client) GetBooking(ctx context.Context, s Session, id int64) (bookings.Booking, error) {
	raw, err := c.getObject(ctx, s, http.MethodGet, fmt.Sprintf("/bookings/%d", id), nil)
	if err != nil {
		return bookings.Booking{}, err
	}
	return bookings.Normalize(raw), nil
}

func (c *Client) CreateBooking(ctx context.Context, s Session, in bookings.Input) (bookings.Booking, error) {
	raw, err := c.getObject(ctx, s, http.MethodPost, "/bookings", in.Payload())
	if err != nil {
		return bookings.Booking{}, err
	}
	return bookings.Normalize(raw), nil
}

func (c *Client) UpdateBooking(ctx context.Context, s Session, id int64, in bookings.Input) (bookings.Booking, error) {
	raw, err := c.getObject(ctx, s, http.MethodPut, fmt.Sprintf("/bookings/%d", id), in.Payload())
	if err != nil {
		return bookings.Booking{}, err
	}
	return bookings.Normalize(raw), nil
}

// PatchBooking sends a partial update such as {"status": "confirmed"}. The
// answer body is ignored; callers re-fetch the record.
func (c *Client) PatchBooking(ctx context.Context, s Session, id int64, fields map[string]any) error {
	_, err := c.do(ctx, s, http.MethodPatch, fmt.Sprintf("/bookings/%d", id), fields)
	return err
}

func (c *Client) DeleteBooking(ctx context.Context, s Session, id int64) error {
	_, err := c.do(ctx, s, http.MethodDelete, fmt.Sprintf("/bookings/%d", id), nil)
	return err
}
