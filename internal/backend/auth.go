package backend

import (
	"context"
	"net/http"

	"eventease/internal/models"
)

func (c *Client) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	req := models.LoginRequest{Username: username, Password: password}

	var resp models.LoginResponse
	if err := c.do(ctx, "", http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new account. The backend exposes this as user creation
// rather than a dedicated auth endpoint.
func (c *Client) Register(ctx context.Context, req *models.RegisterRequest) error {
	return c.do(ctx, "", http.MethodPost, "/api/users", req, nil)
}

func (c *Client) ForgotPassword(ctx context.Context, email string) (*models.ForgotPasswordResponse, error) {
	var resp models.ForgotPasswordResponse
	err := c.do(ctx, "", http.MethodPost, "/api/auth/forgot-password", map[string]string{"email": email}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	body := map[string]string{"token": token, "newPassword": newPassword}
	return c.do(ctx, "", http.MethodPost, "/api/auth/reset-password", body, nil)
}
