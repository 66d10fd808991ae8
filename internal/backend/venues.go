package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"eventease/internal/models"
)

func (c *Client) ListVenues(ctx context.Context, token, query string) ([]models.Venue, error) {
	path := "/api/venues"
	if query != "" {
		path += "?q=" + url.QueryEscape(query)
	}

	var venues []models.Venue
	if err := c.do(ctx, token, http.MethodGet, path, nil, &venues); err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}
	return venues, nil
}

func (c *Client) CreateVenue(ctx context.Context, token string, req *models.VenueRequest) error {
	return c.do(ctx, token, http.MethodPost, "/api/venues", req, nil)
}

func (c *Client) UpdateVenue(ctx context.Context, token string, id int64, req *models.VenueRequest) error {
	return c.do(ctx, token, http.MethodPut, fmt.Sprintf("/api/venues/%d", id), req, nil)
}

func (c *Client) ApproveVenue(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodPatch, fmt.Sprintf("/api/venues/%d/approve", id), nil, nil)
}

func (c *Client) DeleteVenue(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/api/venues/%d", id), nil, nil)
}
