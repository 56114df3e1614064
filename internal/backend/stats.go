package backend

import (
	"context"
	"net/http"

	"sportdesk/internal/coalesce"
	"sportdesk/internal/domain/stats"

	"golang.org/x/sync/errgroup"
)

func (c *Client) BookingStats(ctx context.Context, s Session) (stats.BookingStats, error) {
	raw, err := c.getObject(ctx, s, http.MethodGet, "/bookings/stats", nil)
	if err != nil {
		return stats.BookingStats{}, err
	}
	return stats.NormalizeBookingStats(raw), nil
}

func (c *Client) RentalStats(ctx context.Context, s Session) (stats.RentalStats, error) {
	raw, err := c.getObject(ctx, s, http.MethodGet, "/rentals/stats", nil)
	if err != nil {
		return stats.RentalStats{}, err
	}
	return stats.NormalizeRentalStats(raw), nil
}

// Report fetches both stats payloads concurrently; either failing fails the
// report since a half-empty workbook would misstate revenue.
func (c *Client) Report(ctx context.Context, s Session) (stats.Report, error) {
	var bookingRaw, rentalRaw coalesce.Raw

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		raw, err := c.getObject(gctx, s, http.MethodGet, "/bookings/stats", nil)
		bookingRaw = raw
		return err
	})
	g.Go(func() error {
		raw, err := c.getObject(gctx, s, http.MethodGet, "/rentals/stats", nil)
		rentalRaw = raw
		return err
	})
	if err := g.Wait(); err != nil {
		return stats.Report{}, err
	}
	return stats.BuildReport(bookingRaw, rentalRaw), nil
}
