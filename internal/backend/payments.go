package backend

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"eventease/internal/models"
)

// ListPayments returns all payments, optionally narrowed by status.
// Admin-only on the backend side.
func (c *Client) ListPayments(ctx context.Context, token, status string) ([]models.Payment, error) {
	path := "/api/payments"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}

	var payments []models.Payment
	if err := c.do(ctx, token, http.MethodGet, path, nil, &payments); err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

func (c *Client) MyPayments(ctx context.Context, token string) ([]models.Payment, error) {
	var payments []models.Payment
	if err := c.do(ctx, token, http.MethodGet, "/api/payments/me", nil, &payments); err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

func (c *Client) CreatePayment(ctx context.Context, token string, req *models.PaymentRequest) error {
	return c.do(ctx, token, http.MethodPost, "/api/payments", req, nil)
}

// Status transitions live on dedicated endpoints rather than a generic update.

func (c *Client) MarkPaymentSuccess(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodPatch, fmt.Sprintf("/api/payments/%d/success", id), nil, nil)
}

func (c *Client) MarkPaymentFail(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodPatch, fmt.Sprintf("/api/payments/%d/fail", id), nil, nil)
}

// ApprovePayment and RejectPayment review bank-transfer payments.
func (c *Client) ApprovePayment(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodPost, fmt.Sprintf("/api/payments/%d/approve", id), nil, nil)
}

func (c *Client) RejectPayment(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodPost, fmt.Sprintf("/api/payments/%d/reject", id), nil, nil)
}

func (c *Client) DeletePayment(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/api/payments/%d", id), nil, nil)
}

// UploadSlip forwards a bank-transfer slip for a booking. The dashboard does
// not store the file; it streams it through to the backend.
func (c *Client) UploadSlip(ctx context.Context, token string, bookingID int64, fileName string, file io.Reader) error {
	path := fmt.Sprintf("/api/payments/bookings/%d/bank-transfer", bookingID)
	return c.upload(ctx, token, path, "file", fileName, file, nil)
}
