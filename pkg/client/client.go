// Package client is the HTTP client for the txwatch server API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/model"
)

const defaultTimeout = 30 * time.Second

// APIError is returned when the server answers with an unexpected status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Message)
}

// Client talks to a txwatch server.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client for the server at baseURL. A nil httpClient gets
// a default with a 30s timeout, which does not apply to Stream.
func NewClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger.Named("client"),
	}
}

// Track starts tracking txid on the server.
func (c *Client) Track(ctx context.Context, txid string) (model.StatusSnapshot, error) {
	var out model.StatusSnapshot
	err := c.do(ctx, http.MethodPost, "/api/v1/track", map[string]string{"txid": txid}, http.StatusAccepted, &out)
	return out, err
}

// StopTracking stops the current poll loop.
func (c *Client) StopTracking(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/track", nil, http.StatusNoContent, nil)
}

// Status returns the current status snapshot.
func (c *Client) Status(ctx context.Context) (model.StatusSnapshot, error) {
	var out model.StatusSnapshot
	err := c.do(ctx, http.MethodGet, "/api/v1/status", nil, http.StatusOK, &out)
	return out, err
}

// Refresh asks the server to poll immediately.
func (c *Client) Refresh(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/v1/refresh", nil, http.StatusAccepted, nil)
}

// LatestUnconfirmed returns the newest mempool transaction seen upstream.
func (c *Client) LatestUnconfirmed(ctx context.Context) (model.UnconfirmedTransaction, error) {
	var out model.UnconfirmedTransaction
	err := c.do(ctx, http.MethodGet, "/api/v1/transactions/latest-unconfirmed", nil, http.StatusOK, &out)
	return out, err
}

// Transaction returns the derived summary of txid.
func (c *Client) Transaction(ctx context.Context, txid string) (model.TransactionSummary, error) {
	var out model.TransactionSummary
	err := c.do(ctx, http.MethodGet, "/api/v1/transactions/"+url.PathEscape(txid), nil, http.StatusOK, &out)
	return out, err
}

func (c *Client) Settings(ctx context.Context) (model.NotificationPreferences, error) {
	var out model.NotificationPreferences
	err := c.do(ctx, http.MethodGet, "/api/v1/settings", nil, http.StatusOK, &out)
	return out, err
}

func (c *Client) UpdateSettings(ctx context.Context, prefs model.NotificationPreferences) (model.NotificationPreferences, error) {
	var out model.NotificationPreferences
	err := c.do(ctx, http.MethodPut, "/api/v1/settings", prefs, http.StatusOK, &out)
	return out, err
}

// Toggle flips the "visual" or "audio" channel.
func (c *Client) Toggle(ctx context.Context, channel string) (model.NotificationPreferences, error) {
	var out model.NotificationPreferences
	path := "/api/v1/settings/" + url.PathEscape(channel) + "/toggle"
	err := c.do(ctx, http.MethodPost, path, nil, http.StatusOK, &out)
	return out, err
}

func (c *Client) Notifications(ctx context.Context) ([]model.NotificationRecord, error) {
	var out []model.NotificationRecord
	err := c.do(ctx, http.MethodGet, "/api/v1/notifications", nil, http.StatusOK, &out)
	return out, err
}

func (c *Client) ClearNotifications(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/notifications", nil, http.StatusNoContent, nil)
}

// Snapshots returns stored poll results for txid, newest first. A zero limit
// uses the server default.
func (c *Client) Snapshots(ctx context.Context, txid string, limit uint64) ([]model.SnapshotEntry, error) {
	path := "/api/v1/snapshots/" + url.PathEscape(txid)
	if limit > 0 {
		path += "?limit=" + strconv.FormatUint(limit, 10)
	}
	var out []model.SnapshotEntry
	err := c.do(ctx, http.MethodGet, path, nil, http.StatusOK, &out)
	return out, err
}

// Command runs a named command and returns its raw JSON result, which is
// empty for commands without one.
func (c *Client) Command(ctx context.Context, name string, payload any) (json.RawMessage, error) {
	resp, err := c.send(ctx, http.MethodPost, "/api/v1/commands/"+url.PathEscape(name), payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent:
		return nil, nil
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response: %w", err)
		}
		return body, nil
	default:
		return nil, c.parseErrorResponse(resp)
	}
}

func (c *Client) do(ctx context.Context, method, path string, in any, want int, out any) error {
	resp, err := c.send(ctx, method, path, in)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		return c.parseErrorResponse(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, in any) (*http.Response, error) {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	c.logger.Debug("request", zap.String("method", method), zap.String("path", path), zap.Int("status", resp.StatusCode))
	return resp, nil
}

// parseErrorResponse attempts to parse an error response from the server.
func (c *Client) parseErrorResponse(resp *http.Response) error {
	var errResp struct {
		Error string `json:"error"`
	}

	body, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error == "" {
		return &APIError{StatusCode: resp.StatusCode, Message: string(bytes.TrimSpace(body))}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
}
