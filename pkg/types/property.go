package types

// Property is a free-form name/value annotation attached to an Attribute.
type Property struct {
	ID          string `json:"id"`           // UUID, generated on creation.
	AttributeID string `json:"attribute_id"` // Owning attribute (required).
	Name        string `json:"name"`         // Annotation name (required).
	Value       string `json:"value"`        // Annotation value (required).
}

// PropertyUpdate is a partial update for a Property. Nil fields are left
// untouched.
type PropertyUpdate struct {
	Name  *string `json:"name,omitempty"`
	Value *string `json:"value,omitempty"`
}
