package types

// ClassModel represents a user-defined entity type. It doubles as a canvas
// node: PositionX and PositionY carry diagram layout only and have no meaning
// in the model itself.
type ClassModel struct {
	ID        string  `json:"id"`         // UUID, generated on creation.
	Name      string  `json:"name"`       // Human-readable name (required, non-empty).
	PositionX float64 `json:"position_x"` // Canvas X coordinate, default 0.0.
	PositionY float64 `json:"position_y"` // Canvas Y coordinate, default 0.0.

	// Attributes and DataEntries are populated by hydrating reads
	// (Store.ListClasses). Single-row reads leave them nil.
	Attributes  []*Attribute `json:"attributes"`
	DataEntries []*Data      `json:"data_entries"`
}

// ClassUpdate is a partial update for a ClassModel. Nil fields are left
// untouched; only fields the caller explicitly set are written.
type ClassUpdate struct {
	Name      *string  `json:"name,omitempty"`
	PositionX *float64 `json:"position_x,omitempty"`
	PositionY *float64 `json:"position_y,omitempty"`
}
