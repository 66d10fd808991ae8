package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"eventease/internal/models"
)

func (c *Client) ListVendors(ctx context.Context, token, query string) ([]models.Vendor, error) {
	path := "/api/vendors"
	if query != "" {
		path += "?q=" + url.QueryEscape(query)
	}

	var vendors []models.Vendor
	if err := c.do(ctx, token, http.MethodGet, path, nil, &vendors); err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	return vendors, nil
}

func (c *Client) CreateVendor(ctx context.Context, token string, req *models.VendorRequest) error {
	return c.do(ctx, token, http.MethodPost, "/api/vendors", req, nil)
}

func (c *Client) UpdateVendor(ctx context.Context, token string, id int64, req *models.VendorRequest) error {
	return c.do(ctx, token, http.MethodPut, fmt.Sprintf("/api/vendors/%d", id), req, nil)
}

// ApproveVendor is gated to ADMIN on the backend side.
func (c *Client) ApproveVendor(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodPatch, fmt.Sprintf("/api/vendors/%d/approve", id), nil, nil)
}

func (c *Client) DeleteVendor(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/api/vendors/%d", id), nil, nil)
}
