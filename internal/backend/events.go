package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"eventease/internal/models"
)

// EventQuery mirrors the list parameters the backend accepts. Scope is
// "upcoming", "past" or empty.
type EventQuery struct {
	Query string
	Scope string
	Page  int
	Size  int
}

func (c *Client) ListEvents(ctx context.Context, token string, q EventQuery) (*models.Page[models.Event], error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	size := q.Size
	if size == 0 {
		size = 10
	}
	params.Set("size", strconv.Itoa(size))
	if q.Query != "" {
		params.Set("q", q.Query)
	}
	if q.Scope != "" {
		params.Set("scope", q.Scope)
	}

	var page models.Page[models.Event]
	if err := c.do(ctx, token, http.MethodGet, "/api/events?"+params.Encode(), nil, &page); err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return &page, nil
}

func (c *Client) MyEvents(ctx context.Context, token string) ([]models.Event, error) {
	var events []models.Event
	if err := c.do(ctx, token, http.MethodGet, "/api/events/mine", nil, &events); err != nil {
		return nil, fmt.Errorf("failed to list own events: %w", err)
	}
	return events, nil
}

func (c *Client) CreateEvent(ctx context.Context, token string, req *models.EventRequest) error {
	return c.do(ctx, token, http.MethodPost, "/api/events", req, nil)
}

func (c *Client) UpdateEvent(ctx context.Context, token string, id int64, req *models.EventRequest) error {
	return c.do(ctx, token, http.MethodPut, fmt.Sprintf("/api/events/%d", id), req, nil)
}

func (c *Client) DeleteEvent(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/api/events/%d", id), nil, nil)
}

func (c *Client) PublishEvent(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodPatch, fmt.Sprintf("/api/events/%d/publish", id), nil, nil)
}

func (c *Client) CancelEvent(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodPatch, fmt.Sprintf("/api/events/%d/cancel", id), nil, nil)
}

// Ticket types are nested under their event.

func (c *Client) ListTicketTypes(ctx context.Context, token string, eventID int64) ([]models.TicketType, error) {
	var types []models.TicketType
	path := fmt.Sprintf("/api/events/%d/ticket-types", eventID)
	if err := c.do(ctx, token, http.MethodGet, path, nil, &types); err != nil {
		return nil, fmt.Errorf("failed to list ticket types: %w", err)
	}
	return types, nil
}

func (c *Client) CreateTicketType(ctx context.Context, token string, eventID int64, req *models.TicketTypeRequest) error {
	path := fmt.Sprintf("/api/events/%d/ticket-types", eventID)
	return c.do(ctx, token, http.MethodPost, path, req, nil)
}

func (c *Client) DeleteTicketType(ctx context.Context, token string, eventID, ticketTypeID int64) error {
	path := fmt.Sprintf("/api/events/%d/ticket-types/%d", eventID, ticketTypeID)
	return c.do(ctx, token, http.MethodDelete, path, nil, nil)
}
