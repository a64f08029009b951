// Package blockchaininfo is a client for the blockchain.info data API.
package blockchaininfo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-txwatch/internal/model"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL             = "https://blockchain.info"
	DefaultTimeout             = 30 * time.Second
	DefaultLatestBlockInterval = 2000 * time.Millisecond
	DefaultRetryAfter          = 5000 * time.Millisecond

	maxResponseBytes = 8 << 20
	userAgent        = "txwatch/1.0"
)

// Client fetches transactions and chain height over HTTP. Calls to the
// latest block endpoint are spaced by at least the configured interval.
type Client struct {
	baseURL             string
	httpClient          *http.Client
	latestBlockInterval time.Duration
	retryAfter          time.Duration
	limiter             *rate.Limiter
	sleep               func(context.Context, time.Duration) error
	metrics             Metrics
	logger              *zap.Logger
}

// ClientOption configures Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithLatestBlockInterval sets the minimum spacing between latest block requests.
func WithLatestBlockInterval(d time.Duration) ClientOption {
	return func(c *Client) {
		c.latestBlockInterval = d
	}
}

// WithRetryAfter sets how long to wait before retrying a rate limited request.
func WithRetryAfter(d time.Duration) ClientOption {
	return func(c *Client) {
		c.retryAfter = d
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m Metrics) ClientOption {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client for baseURL, or DefaultBaseURL when empty.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:             baseURL,
		httpClient:          &http.Client{Timeout: DefaultTimeout},
		latestBlockInterval: DefaultLatestBlockInterval,
		retryAfter:          DefaultRetryAfter,
		sleep:               clock.SleepWithContext,
		metrics:             nopMetrics{},
		logger:              zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.limiter = rate.NewLimiter(rate.Every(c.latestBlockInterval), 1)
	return c
}

// Transaction fetches a transaction by id.
func (c *Client) Transaction(ctx context.Context, id string) (tx *model.Transaction, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("raw_tx", err, started)
	}()

	var raw rawTx
	if err = c.getJSON(ctx, "/rawtx/"+url.PathEscape(id), nil, &raw); err != nil {
		return nil, fmt.Errorf("fetch transaction %s: %w", id, err)
	}
	return raw.toModel(), nil
}

// LatestBlockHeight returns the chain tip height. A 429 response is retried
// once after the retry window; a second 429 yields ErrRateLimited.
func (c *Client) LatestBlockHeight(ctx context.Context) (height uint64, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("latest_block", err, started)
	}()

	var block latestBlock
	for attempt := 0; ; attempt++ {
		// A canceled wait gives its slot back to the next caller.
		if err = c.limiter.Wait(ctx); err != nil {
			return 0, fmt.Errorf("wait for latest block slot: %w", err)
		}
		err = c.getJSON(ctx, "/latestblock", nil, &block)
		if err == nil {
			return block.Height, nil
		}
		if !errors.Is(err, ErrRateLimited) {
			return 0, fmt.Errorf("fetch latest block: %w", err)
		}
		c.metrics.ObserveRateLimited("latest_block")
		if attempt > 0 {
			return 0, fmt.Errorf("fetch latest block: %w", err)
		}
		c.logger.Warn("latest block rate limited, retrying", zap.Duration("after", c.retryAfter))
		if err = c.sleep(ctx, c.retryAfter); err != nil {
			return 0, err
		}
	}
}

// LatestUnconfirmedTransaction returns the first entry of the unconfirmed listing.
func (c *Client) LatestUnconfirmedTransaction(ctx context.Context) (tx *model.UnconfirmedTransaction, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("unconfirmed_transactions", err, started)
	}()

	var listing unconfirmedListing
	query := url.Values{"format": []string{"json"}}
	if err = c.getJSON(ctx, "/unconfirmed-transactions", query, &listing); err != nil {
		return nil, fmt.Errorf("fetch unconfirmed transactions: %w", err)
	}
	if len(listing.Txs) == 0 || listing.Txs[0].Hash == "" {
		err = ErrEmptyListing
		return nil, err
	}
	return listing.Txs[0].toModel(), nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %w", ErrNotFoundOrNetwork, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return &StatusError{Path: path, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

type nopMetrics struct{}

func (nopMetrics) Observe(string, error, time.Time) {}
func (nopMetrics) ObserveRateLimited(string)       {}
