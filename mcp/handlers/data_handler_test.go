package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/feedline/aio-go/aio"
)

func TestSendDataTool(t *testing.T) {
	// stub backend data endpoint
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/alice/feeds/temperature/data" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"0ABC","value":"21.5","created_at":"2026-01-01T00:00:00Z"}`))
	}))
	defer ts.Close()

	sdk, err := aio.New("alice", "k123", aio.WithBaseURL(ts.URL))
	if err != nil {
		t.Fatalf("client error: %v", err)
	}
	dh := NewDataHandler(sdk)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]any{
				"feed_key": "temperature",
				"value":    "21.5",
				"lat":      48.21,
				"lon":      16.37,
			},
		},
	}

	res, err := dh.handleSend(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if res == nil || res.IsError {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestReceiveDataTool(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/alice/feeds/temperature/data/last" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"0DEF","value":"19.8"}`))
	}))
	defer ts.Close()

	sdk, err := aio.New("alice", "k123", aio.WithBaseURL(ts.URL))
	if err != nil {
		t.Fatalf("client error: %v", err)
	}
	dh := NewDataHandler(sdk)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]any{"feed_key": "temperature"},
		},
	}

	res, err := dh.handleReceive(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if res == nil || res.IsError {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestSendDataTool_SurfacesClientError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	sdk, _ := aio.New("alice", "wrong", aio.WithBaseURL(ts.URL))
	dh := NewDataHandler(sdk)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]any{"feed_key": "temperature", "value": "1"},
		},
	}

	res, err := dh.handleSend(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if res == nil || !res.IsError {
		t.Fatal("expected tool error result")
	}
}
