package backend

import (
	"context"
	"fmt"
	"net/http"

	"eventease/internal/models"
)

func (c *Client) MyBookings(ctx context.Context, token string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := c.do(ctx, token, http.MethodGet, "/api/bookings/mine", nil, &bookings); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (c *Client) CreateBooking(ctx context.Context, token string, req *models.BookingRequest) error {
	return c.do(ctx, token, http.MethodPost, "/api/bookings", req, nil)
}

func (c *Client) UpdateBooking(ctx context.Context, token string, id int64, req *models.BookingRequest) error {
	return c.do(ctx, token, http.MethodPut, fmt.Sprintf("/api/bookings/%d", id), req, nil)
}

func (c *Client) DeleteBooking(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/api/bookings/%d", id), nil, nil)
}

// EventBookings lists bookings for one of the organizer's events.
func (c *Client) EventBookings(ctx context.Context, token string, eventID int64) ([]models.Booking, error) {
	var bookings []models.Booking
	path := fmt.Sprintf("/api/events/%d/bookings", eventID)
	if err := c.do(ctx, token, http.MethodGet, path, nil, &bookings); err != nil {
		return nil, fmt.Errorf("failed to list event bookings: %w", err)
	}
	return bookings, nil
}
