// Package midgard fetches interval history from a THORChain Midgard v2 API.
package midgard

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"thorchainStore/internal/model"
)

// MaxCount is the largest number of intervals Midgard returns per request.
const MaxCount = 400

// DefaultURL is the public Midgard endpoint.
const DefaultURL = "https://midgard.ninerealms.com"

// Query selects a window of history. With To set the window is paged in
// PageSize steps until an interval ending at or after To is returned;
// without it a single page starting at From is fetched.
type Query struct {
	Interval string
	From     int64
	To       int64
	PageSize int
}

// Client is a minimal Midgard HTTP client.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the client logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a client for the Midgard instance at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid midgard url %q", baseURL)
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Depths returns depth and price history for pool.
func (c *Client) Depths(ctx context.Context, pool string, q Query) ([]model.DepthInterval, error) {
	if pool == "" {
		return nil, fmt.Errorf("pool is required for depth history")
	}
	return fetchAll(ctx, c, "/v2/history/depths/"+url.PathEscape(pool), q,
		func(d model.DepthInterval) int64 { return d.EndTime })
}

// Swaps returns network wide swap history.
func (c *Client) Swaps(ctx context.Context, q Query) ([]model.SwapsInterval, error) {
	return fetchAll(ctx, c, "/v2/history/swaps", q,
		func(d model.SwapsInterval) int64 { return d.EndTime })
}

// Earnings returns network earnings history including the per-pool split.
func (c *Client) Earnings(ctx context.Context, q Query) ([]model.EarningInterval, error) {
	return fetchAll(ctx, c, "/v2/history/earnings", q,
		func(d model.EarningInterval) int64 { return d.EndTime })
}

// RunePool returns RUNEPool membership history.
func (c *Client) RunePool(ctx context.Context, q Query) ([]model.RunePoolInterval, error) {
	return fetchAll(ctx, c, "/v2/history/runepool", q,
		func(d model.RunePoolInterval) int64 { return d.EndTime })
}

func fetchAll[T any](ctx context.Context, c *Client, path string, q Query, endOf func(T) int64) ([]T, error) {
	size := q.PageSize
	if size <= 0 || size > MaxCount {
		size = MaxCount
	}

	var out []T
	from := q.From
	for {
		page, err := fetchPage[T](ctx, c, path, q.Interval, from, size)
		if err != nil {
			return nil, err
		}
		out = append(out, page...)

		if q.To == 0 || len(page) < size {
			return out, nil
		}
		last := endOf(page[len(page)-1])
		if last >= q.To || last <= from {
			return out, nil
		}
		from = last
	}
}

type historyResponse struct {
	Intervals []json.RawMessage `json:"intervals"`
}

func fetchPage[T any](ctx context.Context, c *Client, path, interval string, from int64, count int) ([]T, error) {
	params := url.Values{}
	if interval != "" {
		params.Set("interval", interval)
	}
	params.Set("count", strconv.Itoa(count))
	if from > 0 {
		params.Set("from", strconv.FormatInt(from, 10))
	}
	endpoint := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Path: path, Code: resp.StatusCode, Body: truncate(string(body), 256)}
	}

	var envelope historyResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	out := make([]T, 0, len(envelope.Intervals))
	for i, raw := range envelope.Intervals {
		v, err := decodeInterval[T](raw)
		if err != nil {
			return nil, fmt.Errorf("decode %s interval %d: %w", path, i, err)
		}
		out = append(out, v)
	}

	c.logger.Debug("midgard page fetched",
		zap.String("path", path),
		zap.Int64("from", from),
		zap.Int("intervals", len(out)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return out, nil
}

// StatusError is returned for non-200 responses.
type StatusError struct {
	Path string
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("midgard %s: http %d: %s", e.Path, e.Code, e.Body)
}

// Temporary reports whether the request is worth retrying.
func (e *StatusError) Temporary() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= 500
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
