// Package api is the HTTP client for the order and task backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"podash/pkg/models"
	"podash/pkg/utils"
)

// APIError is returned for any non-2xx response
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: unexpected status %d", e.StatusCode)
}

// Message returns the server supplied message carried by err, or fallback
// when there is none.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// Client talks to the backend REST API
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// NewClient returns a client for baseURL authenticating with token
func NewClient(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		utils.Logger.Debugw("request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	utils.Logger.Debugw("request done", "method", method, "path", path, "request_id", requestID,
		"status", resp.StatusCode, "elapsed", time.Since(start))

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var eb errorBody
		if json.Unmarshal(data, &eb) == nil {
			apiErr.Message = eb.Message
			if apiErr.Message == "" {
				apiErr.Message = eb.Error
			}
		}
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// TasksForUser lists the tasks assigned to userID
func (c *Client) TasksForUser(ctx context.Context, userID string) ([]models.Task, error) {
	var resp struct {
		Data json.RawMessage `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/task/api/user/"+url.PathEscape(userID), nil, &resp); err != nil {
		return nil, err
	}
	return decodeTaskList(resp.Data)
}

// The endpoint answers with a bare object when only one task is assigned
func decodeTaskList(raw json.RawMessage) ([]models.Task, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []models.Task{}, nil
	}
	if raw[0] == '[' {
		var tasks []models.Task
		if err := json.Unmarshal(raw, &tasks); err != nil {
			return nil, fmt.Errorf("decoding tasks: %w", err)
		}
		return tasks, nil
	}
	var task models.Task
	if err := json.Unmarshal(raw, &task); err != nil {
		return nil, fmt.Errorf("decoding task: %w", err)
	}
	return []models.Task{task}, nil
}

// UpdateUserTaskStatus sets the assignee status of a task
func (c *Client) UpdateUserTaskStatus(ctx context.Context, taskID string, status models.TaskStatus) (models.Task, error) {
	var resp struct {
		Task models.Task `json:"task"`
	}
	body := map[string]models.TaskStatus{"status": status}
	if err := c.do(ctx, http.MethodPatch, "/task/api/tasks/user-status/"+url.PathEscape(taskID), body, &resp); err != nil {
		return models.Task{}, err
	}
	return resp.Task, nil
}

// GetOrder fetches an order by id
func (c *Client) GetOrder(ctx context.Context, orderID string) (models.Order, error) {
	var resp struct {
		Data models.Order `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/order/api/orders/"+url.PathEscape(orderID), nil, &resp); err != nil {
		return models.Order{}, err
	}
	return resp.Data, nil
}

// UpdateOrder replaces the editable fields of an order
func (c *Client) UpdateOrder(ctx context.Context, orderID string, payload models.OrderPayload) (models.Order, error) {
	var resp struct {
		Data models.Order `json:"data"`
	}
	if err := c.do(ctx, http.MethodPut, "/order/api/orders/"+url.PathEscape(orderID), payload, &resp); err != nil {
		return models.Order{}, err
	}
	return resp.Data, nil
}

// DeleteOrderProduct removes one product from an order
func (c *Client) DeleteOrderProduct(ctx context.Context, orderID, productID string) error {
	path := fmt.Sprintf("/order/api/orders/%s/products/%s", url.PathEscape(orderID), url.PathEscape(productID))
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
