package aio

// ------------------------------
// Core resource types and payloads
// ------------------------------

// DataPoint is one telemetry sample on a feed.
//
// On writes the optional fields always serialize, as JSON null when unset, so
// the wire payload is stable: {"value":…,"lat":null,"lon":null,"ele":null,
// "created_at":null}. On reads the server populates ID and CreatedAt.
type DataPoint struct {
	ID        string      `json:"id,omitempty"`
	Value     interface{} `json:"value"`
	Lat       *float64    `json:"lat"`
	Lon       *float64    `json:"lon"`
	Ele       *float64    `json:"ele"`
	CreatedAt *string     `json:"created_at"`
}

// Feed is a named telemetry stream, addressed by Key.
type Feed struct {
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name"`
	Key         string `json:"key"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	LastValue   string `json:"last_value,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// CreateFeedRequest is the payload for POST feeds.
type CreateFeedRequest struct {
	Name        string `json:"name"`
	Key         string `json:"key,omitempty"`
	Description string `json:"description,omitempty"`
}

// Group is a named collection of feeds.
type Group struct {
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name"`
	Key         string `json:"key,omitempty"`
	Description string `json:"description,omitempty"`
	Feeds       []Feed `json:"feeds,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// createGroupRequest mirrors the documented creation payload exactly.
type createGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Float64 returns a pointer to v, for the optional DataPoint fields.
func Float64(v float64) *float64 { return &v }

// String returns a pointer to s, for DataPoint.CreatedAt.
func String(s string) *string { return &s }
