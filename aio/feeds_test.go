package aio

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFeedEndpoints(t *testing.T) {
	f := Feed{ID: 7, Name: "Temperature", Key: "temperature", LastValue: "22.1"}

	// mux handler to differentiate requests
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/v2/alice/feeds":
			_ = json.NewEncoder(w).Encode([]Feed{f})
		case r.Method == http.MethodGet && r.URL.Path == "/v2/alice/feeds/temperature":
			_ = json.NewEncoder(w).Encode(&f)
		case r.Method == http.MethodPost && r.URL.Path == "/v2/alice/feeds":
			var req CreateFeedRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			created := Feed{ID: 8, Name: req.Name, Key: "humidity"}
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(&created)
		case r.Method == http.MethodDelete && r.URL.Path == "/v2/alice/feeds/temperature":
			w.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(w).Encode(&f)
		default:
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not found"})
		}
	}))
	defer srv.Close()

	c, err := New("alice", "k123", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	ctx := context.Background()

	// ListFeeds
	feeds, err := c.ListFeeds(ctx)
	if err != nil {
		t.Fatalf("ListFeeds error: %v", err)
	}
	if len(feeds) != 1 || feeds[0].Key != "temperature" {
		t.Fatalf("unexpected feed list %#v", feeds)
	}

	// GetFeed
	got, err := c.GetFeed(ctx, "temperature")
	if err != nil {
		t.Fatalf("GetFeed error: %v", err)
	}
	if got.ID != 7 || got.LastValue != "22.1" {
		t.Fatalf("unexpected feed %+v", got)
	}

	// CreateFeed
	created, err := c.CreateFeed(ctx, CreateFeedRequest{Name: "Humidity"})
	if err != nil {
		t.Fatalf("CreateFeed error: %v", err)
	}
	if created.Key != "humidity" {
		t.Fatalf("unexpected created feed %+v", created)
	}

	// DeleteFeed
	if err := c.DeleteFeed(ctx, "temperature"); err != nil {
		t.Fatalf("DeleteFeed error: %v", err)
	}
}

func TestCreateFeed_RequiresName(t *testing.T) {
	c, _ := New("alice", "k123")
	if _, err := c.CreateFeed(context.Background(), CreateFeedRequest{}); err == nil {
		t.Fatal("expected error for empty feed name")
	}
}
