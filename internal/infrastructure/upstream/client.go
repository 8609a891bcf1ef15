// Package upstream implements the HTTP clients for the remote buy01 API.
// Every failure is classified into the domain error taxonomy before it leaves
// this package.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/buy01/storefront-gateway/internal/api/metrics"
	"github.com/buy01/storefront-gateway/internal/core/authctx"
	"github.com/buy01/storefront-gateway/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Config captures the settings for reaching the remote API.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client is the shared HTTP core of all upstream adapters. The transport
// attaches the bearer token carried by the request context, so the same
// client serves anonymous and authenticated calls.
type Client struct {
	http    *http.Client
	baseURL string
	log     zerolog.Logger
}

// New creates a Client. A default timeout is applied when none is provided.
func New(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{
			Timeout:   timeout,
			Transport: &authTransport{base: http.DefaultTransport},
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		log:     log,
	}
}

// authTransport injects the Authorization header from the request context and
// tags every call with a correlation ID.
type authTransport struct {
	base http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	if tok := authctx.Token(req.Context()); tok != "" {
		clone.Header.Set("Authorization", "Bearer "+tok)
	}
	clone.Header.Set("X-Request-ID", uuid.NewString())
	return t.base.RoundTrip(clone)
}

// doJSON performs a JSON request against path and decodes the response into
// out (when non-nil). op labels the call in metrics and logs.
func (c *Client) doJSON(ctx context.Context, op, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: encode request: %v", domain.ErrServer, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", domain.ErrServer, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(op, req, out)
}

// send executes a prepared request, records its duration, and classifies any
// failure.
func (c *Client) send(op string, req *http.Request, out any) error {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequestDuration.WithLabelValues(op, "network_error").Observe(time.Since(start).Seconds())
		return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	outcome := "ok"
	if resp.StatusCode >= 400 {
		outcome = fmt.Sprintf("http_%d", resp.StatusCode)
	}
	metrics.UpstreamRequestDuration.WithLabelValues(op, outcome).Observe(time.Since(start).Seconds())

	if resp.StatusCode >= 400 {
		return classify(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decode response: %v", domain.ErrServer, err)
		}
	}
	return nil
}

// Ping reports whether the remote API is reachable. Any HTTP answer counts:
// readiness cares about connectivity, not endpoint semantics.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrServer, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	_ = resp.Body.Close()
	return nil
}

// errorBody is the upstream error envelope.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// classify maps an upstream error response to the domain taxonomy.
func classify(resp *http.Response) error {
	var sentinel error
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		sentinel = domain.ErrInvalidCredentials
	case resp.StatusCode == http.StatusNotFound:
		sentinel = domain.ErrNotFound
	case resp.StatusCode == http.StatusConflict:
		sentinel = domain.ErrConflict
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		sentinel = domain.ErrValidationRejected
	default:
		sentinel = domain.ErrServer
	}

	var body errorBody
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&body); err == nil {
		msg := body.Error
		if msg == "" {
			msg = body.Message
		}
		if msg != "" {
			return fmt.Errorf("%w: %s", sentinel, msg)
		}
	}
	return fmt.Errorf("%w: upstream status %d", sentinel, resp.StatusCode)
}
