package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client talks to a PostgREST-style data store, one endpoint per table.
// Construct it explicitly and inject it; there is no package-level instance.
type Client struct {
	baseURL    string
	key        string
	secretKey  string
	elevated   bool
	httpClient *http.Client
}

// APIError is returned for any response with status >= 400. The raw body is
// carried verbatim so callers can surface it as-is.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("store: http %d: %s", e.Status, e.Body)
}

// Op is the comparator of a Select filter.
type Op string

const (
	OpEq Op = "eq"
	OpLt Op = "lt"
)

// Filter is a single column comparison. Select supports at most one.
type Filter struct {
	Column string
	Op     Op
	Value  string
}

// SelectQuery describes one read against a table.
type SelectQuery struct {
	Table   string
	Columns string  // defaults to "*"
	Filter  *Filter // optional, at most one
	Order   string  // e.g. "date.asc,time.asc"

	// Optional result window, sent as a Range header. Both bounds are
	// inclusive; RangeTo < 0 means no window.
	RangeFrom int
	RangeTo   int
}

func NewClient(baseURL, key, secretKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		key:        key,
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// AsAdmin returns a view of the client that authenticates with the elevated
// (service) key instead of the standard one.
func (c *Client) AsAdmin() *Client {
	clone := *c
	clone.elevated = true
	return &clone
}

// Select reads rows from a table. The returned payload is the undecoded JSON
// array; decode it at the boundary with Rows or Row.
func (c *Client) Select(ctx context.Context, q SelectQuery) (json.RawMessage, error) {
	endpoint, err := url.Parse(c.tableURL(q.Table))
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	cols := q.Columns
	if cols == "" {
		cols = "*"
	}
	params.Set("select", cols)
	if q.Filter != nil {
		op := q.Filter.Op
		if op == "" {
			op = OpEq
		}
		params.Set(q.Filter.Column, fmt.Sprintf("%s.%s", op, q.Filter.Value))
	}
	if q.Order != "" {
		params.Set("order", q.Order)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), http.NoBody)
	if err != nil {
		return nil, err
	}
	if q.RangeTo >= 0 && (q.RangeFrom > 0 || q.RangeTo > 0) {
		req.Header.Set("Range", fmt.Sprintf("%d-%d", q.RangeFrom, q.RangeTo))
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return json.RawMessage("[]"), nil
	}
	return json.RawMessage(body), nil
}

// Insert writes one row. The store is asked to return the inserted
// representation, so the payload holds the created row(s) when the call
// succeeds.
func (c *Client) Insert(ctx context.Context, table string, row any) (json.RawMessage, error) {
	data, err := json.Marshal(row)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tableURL(table), bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Prefer", "return=representation")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	return json.RawMessage(body), nil
}

// Update patches the row with the given id.
func (c *Client) Update(ctx context.Context, table, id string, patch any) (json.RawMessage, error) {
	data, err := json.Marshal(patch)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s?id=eq.%s", c.tableURL(table), url.QueryEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	return json.RawMessage(body), nil
}

// Delete removes the row with the given id.
func (c *Client) Delete(ctx context.Context, table, id string) error {
	endpoint := fmt.Sprintf("%s?id=eq.%s", c.tableURL(table), url.QueryEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, http.NoBody)
	if err != nil {
		return err
	}

	_, err = c.do(req)
	return err
}

func (c *Client) tableURL(table string) string {
	return fmt.Sprintf("%s/rest/v1/%s", c.baseURL, table)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	key := c.key
	if c.elevated {
		key = c.secretKey
	}
	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", "Bearer "+key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, &APIError{Status: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
