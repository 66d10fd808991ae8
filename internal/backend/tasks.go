package backend

import (
	"context"
	"fmt"
	"net/http"

	"eventease/internal/models"
)

func (c *Client) MyTasks(ctx context.Context, token string) ([]models.Task, error) {
	var tasks []models.Task
	if err := c.do(ctx, token, http.MethodGet, "/api/tasks/mine", nil, &tasks); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// AllTasks is the admin view across every event.
func (c *Client) AllTasks(ctx context.Context, token string) ([]models.Task, error) {
	var tasks []models.Task
	if err := c.do(ctx, token, http.MethodGet, "/api/tasks/all", nil, &tasks); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (c *Client) EventTasks(ctx context.Context, token string, eventID int64) ([]models.Task, error) {
	var tasks []models.Task
	path := fmt.Sprintf("/api/tasks/event/%d", eventID)
	if err := c.do(ctx, token, http.MethodGet, path, nil, &tasks); err != nil {
		return nil, fmt.Errorf("failed to list event tasks: %w", err)
	}
	return tasks, nil
}

func (c *Client) CreateTask(ctx context.Context, token string, req *models.TaskRequest) error {
	return c.do(ctx, token, http.MethodPost, "/api/tasks", req, nil)
}

func (c *Client) UpdateTask(ctx context.Context, token string, id int64, req *models.TaskRequest) error {
	return c.do(ctx, token, http.MethodPut, fmt.Sprintf("/api/tasks/%d", id), req, nil)
}

func (c *Client) DeleteTask(ctx context.Context, token string, id int64) error {
	return c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", id), nil, nil)
}

// UpdateTaskStatus is the assignee's only write path.
func (c *Client) UpdateTaskStatus(ctx context.Context, token string, id int64, status string) error {
	body := map[string]string{"status": status}
	return c.do(ctx, token, http.MethodPatch, fmt.Sprintf("/api/tasks/%d/status", id), body, nil)
}
