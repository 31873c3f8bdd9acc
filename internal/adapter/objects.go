package adapter

import (
	"encoding/json"
	"time"
)

// Query is a content store object filter, e.g.
//
//	adapter.Query{"type": "user-profiles", "metadata.email": "jane@example.com"}
type Query map[string]any

// Object is a content store object as returned by the read API.
// Metadata values are kept raw; decoding them is up to the caller.
type Object struct {
	ID         string                     `json:"id"`
	Slug       string                     `json:"slug"`
	Title      string                     `json:"title"`
	Type       string                     `json:"type"`
	Status     string                     `json:"status,omitempty"`
	Metadata   map[string]json.RawMessage `json:"metadata"`
	CreatedAt  time.Time                  `json:"created_at"`
	ModifiedAt time.Time                  `json:"modified_at"`
}

// ObjectInput is the body of insert and update calls.
type ObjectInput struct {
	Title    string         `json:"title,omitempty"`
	Type     string         `json:"type,omitempty"`
	Slug     string         `json:"slug,omitempty"`
	Status   string         `json:"status,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type objectResponse struct {
	Object Object `json:"object"`
}

type objectsResponse struct {
	Objects []Object `json:"objects"`
	Total   int      `json:"total"`
}
