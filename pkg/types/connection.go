package types

// Relationship type tags for connections.
const (
	RelationshipOneToOne   = "1-1"
	RelationshipOneToMany  = "1-N"
	RelationshipManyToMany = "N-N"
)

// validRelationshipTypes is the set of recognized relationship tags.
var validRelationshipTypes = map[string]bool{
	RelationshipOneToOne:   true,
	RelationshipOneToMany:  true,
	RelationshipManyToMany: true,
}

// IsValidRelationshipType reports whether rt is one of 1-1, 1-N, N-N.
func IsValidRelationshipType(rt string) bool {
	return validRelationshipTypes[rt]
}

// Connection is a typed relationship edge between two ClassModels. Unlike
// attributes and data, connections are not cascade-deleted with a class:
// rows referencing a deleted class remain, and callers must tolerate
// dangling endpoints.
type Connection struct {
	ID               string `json:"id"`                // UUID, generated on creation.
	SourceClass      string `json:"source_class"`      // Source class ID.
	TargetClass      string `json:"target_class"`      // Target class ID.
	RelationshipType string `json:"relationship_type"` // One of the Relationship constants.
}
