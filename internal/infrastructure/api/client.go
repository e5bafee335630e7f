// Package api implements the HTTP client for the ERP back-office REST
// API. One base Client carries the transport plumbing (bearer
// injection, JSON codec, error envelope decoding, request metrics);
// thin per-resource clients on top of it implement the core ports.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/erplite/backoffice-client/internal/core/domain"
	"github.com/erplite/backoffice-client/internal/core/ports"
	"github.com/erplite/backoffice-client/internal/metrics"
)

// defaultPageLimit matches the page size the original front-end asked
// for on every list call.
const defaultPageLimit = 50

const defaultTimeout = 15 * time.Second

// TokenSource supplies the current bearer token, or "" when logged out.
// Wired to SessionAuthority.Token so resource clients always send the
// live session token.
type TokenSource func() string

// Options configures the base client.
type Options struct {
	// BaseURL is the API root including the version prefix, e.g.
	// "http://localhost:8000/api/v1".
	BaseURL string
	// Timeout bounds every request end-to-end. Defaults to 15s; session
	// and CRUD calls are short and idempotent to retry manually, so no
	// per-call cancellation beyond ctx is needed.
	Timeout time.Duration
	Token   TokenSource
	Logger  zerolog.Logger
}

// Client is the shared transport for all resource clients.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenSource
	log     zerolog.Logger
}

func New(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	token := opts.Token
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		token:   token,
		log:     opts.Logger,
	}
}

// call describes a single request. Token, when non-nil, overrides the
// client's token source; the auth flows need that because they act on a
// token that is not (yet) the session's.
type call struct {
	resource string
	method   string
	path     string
	query    url.Values
	body     any
	out      any
	token    *string
}

func (c *Client) do(ctx context.Context, rq call) error {
	if rq.body != nil {
		if err := validateRequest(rq.body); err != nil {
			return err
		}
	}

	var reader io.Reader
	if rq.body != nil {
		encoded, err := json.Marshal(rq.body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	target := c.baseURL + rq.path
	if len(rq.query) > 0 {
		target += "?" + rq.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, rq.method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	bearer := c.token()
	if rq.token != nil {
		bearer = *rq.token
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.APIRequestDuration.WithLabelValues(rq.resource).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(rq.resource, rq.method, "transport").Inc()
		c.log.Debug().Err(err).Str("method", rq.method).Str("path", rq.path).Msg("request failed")
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := decodeError(resp)
		metrics.APIRequestsTotal.WithLabelValues(rq.resource, rq.method, outcomeLabel(resp.StatusCode)).Inc()
		c.log.Debug().Int("status", resp.StatusCode).Str("method", rq.method).Str("path", rq.path).Msg("request rejected")
		return apiErr
	}
	metrics.APIRequestsTotal.WithLabelValues(rq.resource, rq.method, "ok").Inc()

	if rq.out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(rq.out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// pageQuery renders limit/offset pagination the way the API expects.
func pageQuery(page ports.Page) url.Values {
	limit := page.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(page.Offset))
	return q
}
