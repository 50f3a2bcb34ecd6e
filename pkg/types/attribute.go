package types

// Attribute is a named, typed field declared on a ClassModel. DataType is a
// free-text tag: it is not validated against any enum, and stored Data
// content is never checked against it.
type Attribute struct {
	ID       string `json:"id"`        // UUID, generated on creation.
	ClassID  string `json:"class_id"`  // Owning class (required).
	Name     string `json:"name"`      // Field name (required, non-empty).
	DataType string `json:"data_type"` // Free-text type tag (required).

	// Properties are eagerly loaded on attribute reads.
	Properties []*Property `json:"properties"`
}

// AttributeUpdate is a partial update for an Attribute. Nil fields are left
// untouched.
type AttributeUpdate struct {
	Name     *string `json:"name,omitempty"`
	DataType *string `json:"data_type,omitempty"`
}
