// Package manage reads checks from the healthchecks.io management API.
package manage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hamed0406/healthchecks/internal/version"
	"github.com/hamed0406/healthchecks/pkg/ping"
)

const DefaultBaseURL = "https://healthchecks.io/api/v1"

var ErrMissingToken = errors.New("api token is required")

// StatusError is returned when the API answers with a non-200 status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("healthchecks api returned %d", e.StatusCode)
	}
	return fmt.Sprintf("healthchecks api returned %d: %s", e.StatusCode, e.Body)
}

// Doer sends a single HTTP request. *http.Client satisfies it.
type Doer = ping.Doer

// Client calls the management API with one project's API key.
type Client struct {
	token     string
	userAgent string
	baseURL   string
	client    Doer
}

// Option customises a Client at construction.
type Option func(*Client)

func WithHTTPClient(d Doer) Option {
	return func(c *Client) {
		if d != nil {
			c.client = d
		}
	}
}

func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// New returns a Client for token. An empty userAgent selects the default.
func New(token, userAgent string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrMissingToken
	}
	if userAgent == "" {
		userAgent = version.UserAgent()
	}
	c := &Client{
		token:     token,
		userAgent: userAgent,
		baseURL:   DefaultBaseURL,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type checksResponse struct {
	Checks []Check `json:"checks"`
}

// Checks lists every check visible to the API key.
func (c *Client) Checks(ctx context.Context) ([]Check, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/checks/", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", c.token)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list checks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	var out checksResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode checks: %w", err)
	}
	return out.Checks, nil
}
