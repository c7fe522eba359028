// Package aio is a typed Go client for the Adafruit IO v2 REST API.
//
// The client composes resource URLs, attaches the X-AIO-KEY authentication
// header, serializes JSON payloads and issues one blocking HTTP round trip per
// operation. All network policy (pooling, TLS, timeouts, cancellation, retry)
// lives on the injected *http.Client; see WithHTTPClient and WithRetry.
package aio

import (
	"net/http"
	"os"
	"time"
)

const (
	// DefaultBaseURL is the Adafruit IO REST endpoint.
	DefaultBaseURL = "https://io.adafruit.com/api"

	// DefaultAPIVersion selects the v2 API.
	DefaultAPIVersion = "v2"

	defaultTimeout = 30 * time.Second
)

// Client talks to the Adafruit IO REST API on behalf of one account.
//
// All fields are set during New and never mutated afterwards, so a single
// Client may be shared between goroutines to the same extent the injected
// *http.Client is safe for concurrent use (the default one is).
type Client struct {
	username   string
	key        string
	baseURL    string
	apiVersion string

	http *http.Client
}

// New constructs a Client for the given account credentials with optional
// functional arguments. It performs no network I/O; a ConfigError is returned
// when the credentials are missing or an option rejects its argument.
func New(username, key string, opts ...Option) (*Client, error) {
	if err := ValidateUsername(username); err != nil {
		return nil, &ConfigError{Reason: err.Error()}
	}
	if key == "" {
		return nil, &ConfigError{Reason: "aio key is required"}
	}

	c := &Client{
		username:   username,
		key:        key,
		baseURL:    DefaultBaseURL,
		apiVersion: DefaultAPIVersion,
		http:       &http.Client{Timeout: defaultTimeout},
	}

	// Auto-enable debug via env variable without changing code.
	if os.Getenv("AIO_DEBUG") == "true" || os.Getenv("DEBUG") == "true" {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, &ConfigError{Reason: err.Error()}
		}
	}
	return c, nil
}

// Username returns the account username the client was built with.
func (c *Client) Username() string { return c.username }

// BaseURL returns the endpoint the client targets, without version or user.
func (c *Client) BaseURL() string { return c.baseURL }
