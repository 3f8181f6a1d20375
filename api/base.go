package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/chinmay1088/odyssey-gateway/util"
)

// ProviderError is a non-2xx answer from a backend. Body is the backend's
// payload unchanged so the gateway can mirror it.
type ProviderError struct {
	StatusCode int
	Body       json.RawMessage
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider responded with status %d: %s", e.StatusCode, string(e.Body))
}

// NewProviderError wraps a status and raw body. A body that is not JSON is
// carried as {"message": body}.
func NewProviderError(status int, body []byte) *ProviderError {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || !json.Valid(body) {
		msg := string(body)
		if msg == "" {
			msg = http.StatusText(status)
		}
		body, _ = json.Marshal(map[string]string{"message": msg})
	}
	return &ProviderError{StatusCode: status, Body: body}
}

// TransportError is a failure to get any usable answer: dial, timeout,
// broken connection, unreadable body.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Client is the HTTP core every provider client is built on
type Client struct {
	httpClient *http.Client
	baseURL    string
	headers    map[string]string
	timeout    time.Duration
}

// NewClient creates a client for baseURL sending headers on every call.
// timeout bounds each call individually.
func NewClient(baseURL string, headers map[string]string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		headers:    headers,
		timeout:    timeout,
	}
}

// BaseURL returns the host this client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do sends one request and returns the raw 2xx body
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload interface{}) ([]byte, error) {
	op := method + " " + path
	log := util.LogFromContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal payload: %w", err)
		}
		body = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("op", op).Msg("Provider unreachable")
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	log.Debug().Str("op", op).Int("status", resp.StatusCode).Dur("latency", time.Since(start)).Msg("Provider call")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn().Str("op", op).Int("status", resp.StatusCode).Msg("Provider returned error")
		return nil, NewProviderError(resp.StatusCode, respBody)
	}

	return respBody, nil
}

// getJSON issues a GET and decodes the body into out (skipped when out is nil)
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	body, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return decode(body, out)
}

// postJSON issues a POST with a JSON payload and decodes the body into out
func (c *Client) postJSON(ctx context.Context, path string, payload, out interface{}) error {
	body, err := c.do(ctx, http.MethodPost, path, nil, payload)
	if err != nil {
		return err
	}
	return decode(body, out)
}

func decode(body []byte, out interface{}) error {
	if out == nil {
		return nil
	}
	if raw, ok := out.(*json.RawMessage); ok {
		if !json.Valid(body) {
			return fmt.Errorf("failed to parse response: body is not JSON")
		}
		*raw = append((*raw)[:0], body...)
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
