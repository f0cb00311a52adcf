// Package ping reports job status to healthchecks.io.
//
// A Client wraps one check's UUID. ReportSuccess, ReportFailure and
// StartTimer each issue a single GET and return true only when the
// service answers 200. Nothing is retried or logged here; callers that
// need to know why a ping failed use Send and inspect the Result.
package ping

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hamed0406/healthchecks/internal/version"
)

// DefaultBaseURL is the public ping host.
const DefaultBaseURL = "https://hc-ping.com"

// maxDrain caps how much of a response body is read before closing it.
const maxDrain = 4 << 10

// Client holds one check's identifier and the User-Agent it reports
// with. It is immutable after New and safe to reuse across calls.
type Client struct {
	uuid      string
	userAgent string
	baseURL   string
	client    Doer
}

// Option customises a Client at construction.
type Option func(*Client)

// WithHTTPClient replaces the default *http.Client.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) {
		if d != nil {
			c.client = d
		}
	}
}

// WithBaseURL points the client at another ping host, such as a
// self-hosted instance.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// New validates id as a UUID and returns a Client for it.
//
// An empty userAgent is treated as not supplied and selects the library
// default (see UserAgent). There is no way to send an empty header.
func New(id, userAgent string, opts ...Option) (*Client, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidUUID, id)
	}
	if userAgent == "" {
		userAgent = version.UserAgent()
	}
	c := &Client{
		uuid:      id,
		userAgent: userAgent,
		baseURL:   DefaultBaseURL,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// UUID returns the identifier exactly as passed to New.
func (c *Client) UUID() string { return c.uuid }

// UserAgent returns the header value sent with every ping.
func (c *Client) UserAgent() string { return c.userAgent }

// URL returns the endpoint a signal is sent to.
func (c *Client) URL(s Signal) string {
	return c.baseURL + "/" + c.uuid + string(s)
}

// ReportSuccess tells the service the job completed.
func (c *Client) ReportSuccess() bool {
	return c.Send(context.Background(), SignalSuccess).OK()
}

// ReportFailure tells the service the job failed.
func (c *Client) ReportFailure() bool {
	return c.Send(context.Background(), SignalFail).OK()
}

// StartTimer marks the job as started so the service can measure its
// run time. See https://healthchecks.io/docs/measuring_script_run_time/.
func (c *Client) StartTimer() bool {
	return c.Send(context.Background(), SignalStart).OK()
}

// Success is ReportSuccess with a context and the full Result.
func (c *Client) Success(ctx context.Context) Result { return c.Send(ctx, SignalSuccess) }

// Fail is ReportFailure with a context and the full Result.
func (c *Client) Fail(ctx context.Context) Result { return c.Send(ctx, SignalFail) }

// Start is StartTimer with a context and the full Result.
func (c *Client) Start(ctx context.Context) Result { return c.Send(ctx, SignalStart) }

// Send issues one GET for the given signal.
func (c *Client) Send(ctx context.Context, s Signal) Result {
	target := c.URL(s)
	res := Result{Signal: s, URL: target}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		res.Outcome = Unreachable
		res.Err = err
		return res
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	res.LatencyMS = time.Since(start).Seconds() * 1000
	if err != nil || resp == nil {
		res.Outcome = Unreachable
		res.Err = err
		if res.Err == nil {
			res.Err = fmt.Errorf("no response from %s", target)
		}
		return res
	}
	if resp.Body != nil {
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrain))
	}

	res.StatusCode = resp.StatusCode
	if resp.StatusCode == http.StatusOK {
		res.Outcome = Acknowledged
	} else {
		res.Outcome = Rejected
	}
	return res
}
