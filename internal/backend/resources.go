package backend

import (
	"context"
	"fmt"
	"net/http"

	"sportdesk/internal/coalesce"
	"sportdesk/internal/domain/resources"
)

func listOf[T any](raws []coalesce.Raw, normalize func(coalesce.Raw) T) []T {
	out := make([]T, 0, len(raws))
	for _, r := range raws {
		out = append(out, normalize(r))
	}
	return out
}

func (c *Client) ListCourts(ctx context.Context, s Session) ([]resources.Court, error) {
	raws, err := c.getList(ctx, s, "/courts")
	if err != nil {
		return nil, err
	}
	return listOf(raws, resources.NormalizeCourt), nil
}

func (c *Client) GetCourt(ctx context.Context, s Session, id int64) (resources.Court, error) {
	raw, err := c.getObject(ctx, s, http.MethodGet, fmt.Sprintf("/courts/%d", id), nil)
	if err != nil {
		return resources.Court{}, err
	}
	return resources.NormalizeCourt(raw), nil
}

func (c *Client) ListEquipment(ctx context.Context, s Session) ([]resources.Equipment, error) {
	raws, err := c.getList(ctx, s, "/equipment")
	if err != nil {
		return nil, err
	}
	return listOf(raws, resources.NormalizeEquipment), nil
}

func (c *Client) GetEquipment(ctx context.Context, s Session, id int64) (resources.Equipment, error) {
	raw, err := c.getObject(ctx, s, http.MethodGet, fmt.Sprintf("/equipment/%d", id), nil)
	if err != nil {
		return resources.Equipment{}, err
	}
	return resources.NormalizeEquipment(raw), nil
}

func (c *Client) ListUsers(ctx context.Context, s Session) ([]resources.User, error) {
	raws, err := c.getList(ctx, s, "/users")
	if err != nil {
		return nil, err
	}
	return listOf(raws, resources.NormalizeUser), nil
}

func (c *Client) ListVenues(ctx context.Context, s Session) ([]resources.Venue, error) {
	raws, err := c.getList(ctx, s, "/venues")
	if err != nil {
		return nil, err
	}
	return listOf(raws, resources.NormalizeVenue), nil
}
