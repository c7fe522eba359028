package aio

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendValue_WirePayload(t *testing.T) {
	var (
		gotMethod      string
		gotPath        string
		gotKey         string
		gotContentType string
		gotBody        []byte
	)

	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-AIO-KEY")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"0ABC123","value":"72.5","created_at":"2026-01-01T00:00:00Z"}`))
	}))
	defer hs.Close()

	c, err := New("alice", "k123", WithBaseURL(hs.URL))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	stored, err := c.SendValue(context.Background(), "temperature", 72.5)
	if err != nil {
		t.Fatalf("SendValue returned error: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Fatalf("expected POST, got %s", gotMethod)
	}
	if gotPath != "/v2/alice/feeds/temperature/data" {
		t.Fatalf("unexpected path %s", gotPath)
	}
	if gotKey != "k123" {
		t.Fatalf("unexpected X-AIO-KEY %q", gotKey)
	}
	if gotContentType != "application/json" {
		t.Fatalf("unexpected Content-Type %q", gotContentType)
	}

	// Omitted optional fields serialize as explicit nulls.
	want := `{"value":72.5,"lat":null,"lon":null,"ele":null,"created_at":null}`
	if string(gotBody) != want {
		t.Fatalf("body mismatch\nwant %s\ngot  %s", want, gotBody)
	}

	if stored.ID != "0ABC123" {
		t.Fatalf("unexpected stored point %+v", stored)
	}
}

func TestSendData_OptionalFields(t *testing.T) {
	var gotBody []byte
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"id":"1"}`))
	}))
	defer hs.Close()

	c, _ := New("alice", "k123", WithBaseURL(hs.URL))

	dp := DataPoint{
		Value:     22,
		Lat:       Float64(48.21),
		Lon:       Float64(16.37),
		Ele:       Float64(171),
		CreatedAt: String("2026-02-03T04:05:06Z"),
	}
	if _, err := c.SendData(context.Background(), "temperature", dp); err != nil {
		t.Fatalf("SendData returned error: %v", err)
	}

	var sent map[string]interface{}
	if err := json.Unmarshal(gotBody, &sent); err != nil {
		t.Fatalf("sent body is not JSON: %v", err)
	}
	if sent["lat"] != 48.21 || sent["lon"] != 16.37 || sent["ele"] != 171.0 {
		t.Fatalf("unexpected location fields %#v", sent)
	}
	if sent["created_at"] != "2026-02-03T04:05:06Z" {
		t.Fatalf("unexpected created_at %#v", sent["created_at"])
	}
}

func TestReceiveData(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/v2/alice/feeds/temperature/data/last" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id":"0EXAMPLE",
			"value":"23.4",
			"lat":48.21,
			"lon":16.37,
			"ele":null,
			"created_at":"2026-01-15T10:30:00Z"
		}`))
	}))
	defer hs.Close()

	c, _ := New("alice", "k123", WithBaseURL(hs.URL))

	dp, err := c.ReceiveData(context.Background(), "temperature")
	if err != nil {
		t.Fatalf("ReceiveData returned error: %v", err)
	}
	if dp.ID != "0EXAMPLE" || dp.Value != "23.4" {
		t.Fatalf("unexpected data point %+v", dp)
	}
	if dp.Lat == nil || *dp.Lat != 48.21 {
		t.Fatalf("unexpected lat %v", dp.Lat)
	}
	if dp.Ele != nil {
		t.Fatalf("expected nil ele, got %v", *dp.Ele)
	}
	if dp.CreatedAt == nil || *dp.CreatedAt != "2026-01-15T10:30:00Z" {
		t.Fatalf("unexpected created_at %v", dp.CreatedAt)
	}
}

// Regression: feed key and data id must form two distinct path segments.
func TestDeleteData_PathSegments(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v2/alice/feeds/temperature/data/0F55AA", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Fatalf("expected DELETE, got %s", r.Method)
		}
		_, _ = w.Write([]byte(`{"id":"0F55AA","value":"19"}`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("unexpected request path %s", r.URL.Path)
	})
	hs := httptest.NewServer(mux)
	defer hs.Close()

	c, _ := New("alice", "k123", WithBaseURL(hs.URL))

	ack, err := c.DeleteData(context.Background(), "temperature", "0F55AA")
	if err != nil {
		t.Fatalf("DeleteData returned error: %v", err)
	}
	if ack.ID != "0F55AA" {
		t.Fatalf("unexpected ack %+v", ack)
	}
}

func TestListData(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/v2/alice/feeds/temperature/data" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`[{"id":"2","value":"21"},{"id":"1","value":"20"}]`))
	}))
	defer hs.Close()

	c, _ := New("alice", "k123", WithBaseURL(hs.URL))

	points, err := c.ListData(context.Background(), "temperature")
	if err != nil {
		t.Fatalf("ListData returned error: %v", err)
	}
	if len(points) != 2 || points[0].ID != "2" {
		t.Fatalf("unexpected points %#v", points)
	}
}

func TestDataOps_RejectBadKeys(t *testing.T) {
	c, _ := New("alice", "k123")
	ctx := context.Background()

	if _, err := c.SendValue(ctx, "bad/key", 1); err == nil {
		t.Fatal("expected error for feed key with slash")
	}
	if _, err := c.ReceiveData(ctx, ""); err == nil {
		t.Fatal("expected error for empty feed key")
	}
	if _, err := c.DeleteData(ctx, "temperature", "a/../b"); err == nil {
		t.Fatal("expected error for data id with slash")
	}
}
