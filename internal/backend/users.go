package backend

import (
	"context"
	"fmt"
	"net/http"

	"eventease/internal/models"
)

func (c *Client) ListUsers(ctx context.Context, token string) (*models.Page[models.User], error) {
	var page models.Page[models.User]
	if err := c.do(ctx, token, http.MethodGet, "/api/users", nil, &page); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return &page, nil
}

// SimpleUsers returns the id/username pairs used by assignment dropdowns.
func (c *Client) SimpleUsers(ctx context.Context, token string) ([]models.SimpleUser, error) {
	var users []models.SimpleUser
	if err := c.do(ctx, token, http.MethodGet, "/api/users/simple", nil, &users); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (c *Client) Me(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, token, http.MethodGet, "/api/users/me", nil, &user); err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return &user, nil
}

// UpdateMe changes the caller's email; self-service is limited to that and
// the password.
func (c *Client) UpdateMe(ctx context.Context, token, email string) error {
	return c.do(ctx, token, http.MethodPut, "/api/users/me", map[string]string{"email": email}, nil)
}

func (c *Client) ChangePassword(ctx context.Context, token, oldPassword, newPassword string) error {
	body := map[string]string{"oldPassword": oldPassword, "newPassword": newPassword}
	return c.do(ctx, token, http.MethodPut, "/api/users/me/password", body, nil)
}

func (c *Client) UpdateUserRole(ctx context.Context, token string, id int64, role string) error {
	return c.do(ctx, token, http.MethodPut, fmt.Sprintf("/api/users/%d", id), map[string]string{"role": role}, nil)
}

func (c *Client) DeleteUser(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/api/users/%d", id), nil, nil)
}
