package backend

import (
	"context"
	"fmt"
	"net/http"

	"sportdesk/internal/domain/rentals"
)

func (c *Client) ListRentals(ctx context.Context, s Session) ([]rentals.Rental, error) {
	raws, err := c.getList(ctx, s, "/rentals")
	if err != nil {
		return nil, err
	}
	return rentals.NormalizeAll(raws), nil
}

func (c *Client) GetRental(ctx context.Context, s Session, id int64) (rentals.Rental, error) {
	raw, err := c.getObject(ctx, s, http.MethodGet, fmt.Sprintf("/rentals/%d", id), nil)
	if err != nil {
		return rentals.Rental{}, err
	}
	return rentals.Normalize(raw), nil
}

func (c *Client) CreateRental(ctx context.Context, s Session, in rentals.Input) (rentals.Rental, error) {
	raw, err := c.getObject(ctx, s, http.MethodPost, "/rentals", in.Payload())
	if err != nil {
		return rentals.Rental{}, err
	}
	return rentals.Normalize(raw), nil
}

func (c *Client) UpdateRental(ctx context.Context, s Session, id int64, in rentals.Input) (rentals.Rental, error) {
	raw, err := c.getObject(ctx, s, http.MethodPut, fmt.Sprintf("/rentals/%d", id), in.Payload())
	if err != nil {
		return rentals.Rental{}, err
	}
	return rentals.Normalize(raw), nil
}

func (c *Client) PatchRental(ctx context.Context, s Session, id int64, fields map[string]any) error {
	_, err := c.do(ctx, s, http.MethodPatch, fmt.Sprintf("/rentals/%d", id), fields)
	return err
}

func (c *Client) DeleteRental(ctx context.Context, s Session, id int64) error {
	_, err := c.do(ctx, s, http.MethodDelete, fmt.Sprintf("/rentals/%d", id), nil)
	return err
}
