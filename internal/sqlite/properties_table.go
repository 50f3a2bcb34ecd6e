// Property operations for the SQLite backend. Properties are free-form
// name/value annotations on attributes; creation does not pre-check the
// owning attribute, so an unresolved attribute surfaces as a constraint
// failure from the insert.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/classmap/pkg/types"
)

// ListPropertiesByAttribute returns the properties of an attribute. An
// attribute with no properties (or an unknown attribute ID) yields an empty
// slice, not nil.
func (b *Backend) ListPropertiesByAttribute(attributeID string) ([]*types.Property, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	if attributeID == "" {
		return nil, types.ErrInvalidID
	}
	return b.fetchProperties(db, attributeID)
}

// GetProperty retrieves a property by ID.
// Returns ErrNotFound if the ID does not resolve.
func (b *Backend) GetProperty(id string) (*types.Property, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, types.ErrInvalidID
	}
	return getProperty(db, id)
}

// CreateProperty persists a new property on the given attribute.
func (b *Backend) CreateProperty(attributeID, name, value string) (*types.Property, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	if attributeID == "" {
		return nil, types.ErrInvalidID
	}
	if name == "" {
		return nil, types.ErrInvalidName
	}
	if value == "" {
		return nil, types.ErrInvalidValue
	}

	p := &types.Property{
		ID:          generateUUID(),
		AttributeID: attributeID,
		Name:        name,
		Value:       value,
	}
	_, err = db.Exec(
		"INSERT INTO properties (id, attribute_id, name, value) VALUES (?, ?, ?, ?)",
		p.ID, p.AttributeID, p.Name, p.Value,
	)
	if err != nil {
		return nil, fmt.Errorf("creating property: %w", err)
	}
	return p, nil
}

// UpdateProperty applies the non-nil fields of upd and returns the updated
// property. Returns ErrNotFound if the ID does not resolve.
func (b *Backend) UpdateProperty(id string, upd types.PropertyUpdate) (*types.Property, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, types.ErrInvalidID
	}

	if _, err := getProperty(db, id); err != nil {
		return nil, err
	}

	var sets []string
	var args []any
	if upd.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *upd.Name)
	}
	if upd.Value != nil {
		sets = append(sets, "value = ?")
		args = append(args, *upd.Value)
	}
	if len(sets) > 0 {
		args = append(args, id)
		if _, err := db.Exec(
			"UPDATE properties SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...,
		); err != nil {
			return nil, fmt.Errorf("updating property %s: %w", id, err)
		}
	}

	return getProperty(db, id)
}

// DeleteProperty removes a property and returns its prior state.
// Returns ErrNotFound if the ID does not resolve.
func (b *Backend) DeleteProperty(id string) (*types.Property, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, types.ErrInvalidID
	}

	prior, err := getProperty(db, id)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("DELETE FROM properties WHERE id = ?", id); err != nil {
		return nil, fmt.Errorf("deleting property %s: %w", id, err)
	}
	return prior, nil
}

// getProperty loads a single property row.
func getProperty(db *sql.DB, id string) (*types.Property, error) {
	row := db.QueryRow(
		"SELECT id, attribute_id, name, value FROM properties WHERE id = ?", id,
	)
	var p types.Property
	if err := row.Scan(&p.ID, &p.AttributeID, &p.Name, &p.Value); err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting property %s: %w", id, err)
	}
	return &p, nil
}

// fetchProperties loads the property rows of one attribute.
func (b *Backend) fetchProperties(db *sql.DB, attributeID string) ([]*types.Property, error) {
	rows, err := db.Query(
		"SELECT id, attribute_id, name, value FROM properties WHERE attribute_id = ?",
		attributeID,
	)
	if err != nil {
		return nil, fmt.Errorf("fetching properties: %w", err)
	}
	defer rows.Close()

	props := []*types.Property{}
	for rows.Next() {
		var p types.Property
		if err := rows.Scan(&p.ID, &p.AttributeID, &p.Name, &p.Value); err != nil {
			return nil, fmt.Errorf("scanning property: %w", err)
		}
		props = append(props, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating properties: %w", err)
	}
	return props, nil
}
