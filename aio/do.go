package aio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

const headerKey = "X-AIO-KEY"

// errorBodyLimit caps how much of a failed response is captured in APIError.
const errorBodyLimit = 8 << 10

// url composes the absolute URL for a relative resource path:
// <base>/<version>/<username>/<path>. Pure string formatting; callers are
// expected to validate path segments first (see validate.go).
func (c *Client) url(path string) string {
	return fmt.Sprintf("%s/%s/%s/%s", c.baseURL, c.apiVersion, c.username, path)
}

// do issues one round trip. payload (when non-nil) is marshalled as the JSON
// request body; out (when non-nil) receives the decoded response body. The
// response body is closed on every exit path.
func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) error {
	op := method + " " + path

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("aio: %s: marshal: %w", op, err)
		}
		body = bytes.NewBuffer(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return fmt.Errorf("aio: %s: %w", op, err)
	}
	req.Header.Set(headerKey, c.key)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		requestFailuresTotal.WithLabelValues(method, "transport").Inc()
		return &TransportError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	requestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode/100 != 2 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return &APIError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: b}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		requestFailuresTotal.WithLabelValues(method, "decode").Inc()
		return &DecodeError{Op: op, Err: err}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, payload, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, payload, out)
}

func (c *Client) del(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}
