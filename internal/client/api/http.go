package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultTimeout bounds a single request unless configured otherwise.
const DefaultTimeout = 10 * time.Second

// HTTPClient is the Client implementation speaking JSON over HTTP.
type HTTPClient struct {
	baseURL string
	timeout time.Duration
	hc      *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the API rooted at baseURL. A non-positive
// timeout falls back to DefaultTimeout.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		hc:      &http.Client{},
	}
}

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) error {
	_, err := c.postJSON(ctx, "/register", registerRequest{
		Username: username,
		Email:    email,
		Password: password,
	}, nil)
	return err
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	raw, err := c.postJSON(ctx, "/login", loginRequest{
		Username: username,
		Password: password,
	}, nil)
	if err != nil {
		return nil, err
	}

	var res LoginResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, ErrInvalidResponse
	}
	return &res, nil
}

// postJSON performs a POST with a JSON body and normalizes the outcome:
// timeout expiry aborts the in-flight request and yields ErrTimeout, an
// unparseable body yields ErrInvalidResponse regardless of status, and a
// non-2xx status yields an *APIError. Extra headers are merged over the
// JSON content type.
func (c *HTTPClient) postJSON(ctx context.Context, path string, payload any, extra http.Header) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, vv := range extra {
		for _, v := range vv {
			req.Header.Set(k, v)
		}
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.hc.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s", ErrTimeout, c.timeout)
		}
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s", ErrTimeout, c.timeout)
		}
		return nil, fmt.Errorf("read response: %w", err)
	}

	if !json.Valid(data) {
		return nil, ErrInvalidResponse
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var eb errorBody
		_ = json.Unmarshal(data, &eb)
		return nil, newAPIError(resp.StatusCode, eb)
	}

	return json.RawMessage(data), nil
}
