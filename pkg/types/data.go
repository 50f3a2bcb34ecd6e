package types

import "encoding/json"

// Data is a JSON document instance associated with a ClassModel. Content is
// opaque to the store: object, array, or scalar.
type Data struct {
	ID      string          `json:"id"`       // UUID, generated on creation.
	ClassID string          `json:"class_id"` // Owning class (required).
	Content json.RawMessage `json:"content"`  // Arbitrary JSON document (required).
}

// DataCreate is one row of a batch insert.
type DataCreate struct {
	ClassID string          `json:"class_id"`
	Content json.RawMessage `json:"content"`
}

// DataUpdate is a partial update for a Data row. A nil Content leaves the
// stored document untouched.
type DataUpdate struct {
	Content json.RawMessage `json:"content,omitempty"`
}
