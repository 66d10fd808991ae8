package backend

import (
	"context"
	"fmt"
	"net/http"

	"eventease/internal/models"
)

func (c *Client) EventReviews(ctx context.Context, token string, eventID int64) ([]models.Review, error) {
	var reviews []models.Review
	path := fmt.Sprintf("/api/reviews/event/%d", eventID)
	if err := c.do(ctx, token, http.MethodGet, path, nil, &reviews); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

func (c *Client) CreateReview(ctx context.Context, token string, req *models.ReviewRequest) error {
	return c.do(ctx, token, http.MethodPost, "/api/reviews", req, nil)
}

func (c *Client) UpdateReview(ctx context.Context, token string, id int64, req *models.ReviewRequest) error {
	return c.do(ctx, token, http.MethodPut, fmt.Sprintf("/api/reviews/%d", id), req, nil)
}

func (c *Client) DeleteReview(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/api/reviews/%d", id), nil, nil)
}
