package aio

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Option mutates the Client during New().
type Option func(*Client) error

// WithHTTPClient injects a custom *http.Client. Useful for setting transport
// timeouts, tracing, custom TLS settings, etc.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("nil http client")
		}
		c.http = hc
		return nil
	}
}

// WithBaseURL overrides the REST endpoint, e.g. to point at a staging host or
// a test server. A trailing slash is stripped.
func WithBaseURL(base string) Option {
	return func(c *Client) error {
		if base == "" {
			return fmt.Errorf("empty base URL")
		}
		c.baseURL = strings.TrimRight(base, "/")
		return nil
	}
}

// WithAPIVersion overrides the API version path segment (default "v2").
func WithAPIVersion(version string) Option {
	return func(c *Client) error {
		if version == "" {
			return fmt.Errorf("empty api version")
		}
		c.apiVersion = version
		return nil
	}
}

// WithDebugLogging wraps the client's transport such that every request/response
// is logged when `enabled` is true.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			transport := c.http.Transport
			if transport == nil {
				transport = http.DefaultTransport
			}
			c.http.Transport = &debugTransport{base: transport}
		}
		return nil
	}
}

// WithRetry wraps the client's transport with exponential-backoff retry for
// transient failures (network errors, 429 and 5xx responses), bounded by
// maxElapsed. Retry lives on the transport, not in the client operations,
// which always issue a single logical request.
func WithRetry(maxElapsed time.Duration) Option {
	return func(c *Client) error {
		if maxElapsed <= 0 {
			return fmt.Errorf("non-positive retry window")
		}
		transport := c.http.Transport
		if transport == nil {
			transport = http.DefaultTransport
		}
		c.http.Transport = &retryTransport{base: transport, maxElapsed: maxElapsed}
		return nil
	}
}
