// Attribute operations for the SQLite backend. Attribute creation checks
// that the owning class exists before writing anything; attribute deletion
// cascades to the attribute's properties.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/classmap/pkg/types"
)

// ListAttributesByClass returns the attributes of a class, each with its
// properties hydrated. A class with no attributes (or an unknown class ID)
// yields an empty slice, not nil.
func (b *Backend) ListAttributesByClass(classID string) ([]*types.Attribute, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	if classID == "" {
		return nil, types.ErrInvalidID
	}
	return b.fetchAttributes(db, classID)
}

// GetAttribute retrieves an attribute by ID with its properties hydrated.
// Returns ErrNotFound if the ID does not resolve.
func (b *Backend) GetAttribute(id string) (*types.Attribute, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, types.ErrInvalidID
	}
	return b.getAttribute(db, id)
}

// CreateAttribute persists a new attribute on the given class.
// Returns ErrClassNotFound, before writing anything, if the class ID does
// not resolve.
func (b *Backend) CreateAttribute(classID, name, dataType string) (*types.Attribute, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	if classID == "" {
		return nil, types.ErrInvalidID
	}
	if name == "" {
		return nil, types.ErrInvalidName
	}
	if dataType == "" {
		return nil, types.ErrInvalidDataType
	}

	exists, err := b.classExists(db, classID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, types.ErrClassNotFound
	}

	a := &types.Attribute{
		ID:         generateUUID(),
		ClassID:    classID,
		Name:       name,
		DataType:   dataType,
		Properties: []*types.Property{},
	}
	_, err = db.Exec(
		"INSERT INTO attributes (id, name, data_type, class_id) VALUES (?, ?, ?, ?)",
		a.ID, a.Name, a.DataType, a.ClassID,
	)
	if err != nil {
		return nil, fmt.Errorf("creating attribute: %w", err)
	}
	return a, nil
}

// UpdateAttribute applies the non-nil fields of upd and returns the updated
// attribute. Returns ErrNotFound if the ID does not resolve.
func (b *Backend) UpdateAttribute(id string, upd types.AttributeUpdate) (*types.Attribute, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, types.ErrInvalidID
	}

	if _, err := b.getAttribute(db, id); err != nil {
		return nil, err
	}

	var sets []string
	var args []any
	if upd.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *upd.Name)
	}
	if upd.DataType != nil {
		sets = append(sets, "data_type = ?")
		args = append(args, *upd.DataType)
	}
	if len(sets) > 0 {
		args = append(args, id)
		if _, err := db.Exec(
			"UPDATE attributes SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...,
		); err != nil {
			return nil, fmt.Errorf("updating attribute %s: %w", id, err)
		}
	}

	return b.getAttribute(db, id)
}

// DeleteAttribute removes an attribute and returns its prior state. The
// schema's cascade removes the attribute's properties in the same
// transaction. Returns ErrNotFound if the ID does not resolve.
func (b *Backend) DeleteAttribute(id string) (*types.Attribute, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, types.ErrInvalidID
	}

	prior, err := b.getAttribute(db, id)
	if err != nil {
		return nil, err
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM attributes WHERE id = ?", id); err != nil {
		return nil, fmt.Errorf("deleting attribute %s: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing attribute deletion: %w", err)
	}
	return prior, nil
}

// getAttribute loads a single attribute row and hydrates its properties.
func (b *Backend) getAttribute(db *sql.DB, id string) (*types.Attribute, error) {
	row := db.QueryRow(
		"SELECT id, class_id, name, data_type FROM attributes WHERE id = ?", id,
	)
	var a types.Attribute
	if err := row.Scan(&a.ID, &a.ClassID, &a.Name, &a.DataType); err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting attribute %s: %w", id, err)
	}

	props, err := b.fetchProperties(db, a.ID)
	if err != nil {
		return nil, err
	}
	a.Properties = props
	return &a, nil
}

// fetchAttributes loads attribute rows, scoped to one class when classID is
// non-empty, and hydrates their properties from a single grouped query.
func (b *Backend) fetchAttributes(db *sql.DB, classID string) ([]*types.Attribute, error) {
	query := "SELECT id, class_id, name, data_type FROM attributes"
	var args []any
	if classID != "" {
		query += " WHERE class_id = ?"
		args = append(args, classID)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching attributes: %w", err)
	}
	defer rows.Close()

	attrs := []*types.Attribute{}
	byID := make(map[string]*types.Attribute)
	for rows.Next() {
		var a types.Attribute
		if err := rows.Scan(&a.ID, &a.ClassID, &a.Name, &a.DataType); err != nil {
			return nil, fmt.Errorf("scanning attribute: %w", err)
		}
		a.Properties = []*types.Property{}
		attrs = append(attrs, &a)
		byID[a.ID] = &a
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating attributes: %w", err)
	}
	if len(attrs) == 0 {
		return attrs, nil
	}

	propQuery := "SELECT p.id, p.attribute_id, p.name, p.value FROM properties p"
	var propArgs []any
	if classID != "" {
		propQuery += " INNER JOIN attributes a ON a.id = p.attribute_id WHERE a.class_id = ?"
		propArgs = append(propArgs, classID)
	}

	propRows, err := db.Query(propQuery, propArgs...)
	if err != nil {
		return nil, fmt.Errorf("fetching properties: %w", err)
	}
	defer propRows.Close()
	for propRows.Next() {
		var p types.Property
		if err := propRows.Scan(&p.ID, &p.AttributeID, &p.Name, &p.Value); err != nil {
			return nil, fmt.Errorf("scanning property: %w", err)
		}
		if a, ok := byID[p.AttributeID]; ok {
			a.Properties = append(a.Properties, &p)
		}
	}
	if err := propRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating properties: %w", err)
	}

	return attrs, nil
}
