// Class model operations for the SQLite backend: CRUD, eager hydration of
// the class tree on list, and the cascade delete that removes a class's
// attributes (with their properties) and data while leaving connections
// untouched.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/classmap/pkg/types"
)

// CreateClass persists a new class with a generated ID at canvas position
// (0, 0). Duplicate names are permitted; only the primary key is unique.
func (b *Backend) CreateClass(name string) (*types.ClassModel, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, types.ErrInvalidName
	}

	c := &types.ClassModel{
		ID:          generateUUID(),
		Name:        name,
		Attributes:  []*types.Attribute{},
		DataEntries: []*types.Data{},
	}
	_, err = db.Exec(
		"INSERT INTO class_models (id, name, position_x, position_y) VALUES (?, ?, ?, ?)",
		c.ID, c.Name, c.PositionX, c.PositionY,
	)
	if err != nil {
		return nil, fmt.Errorf("creating class: %w", err)
	}
	return c, nil
}

// GetClass retrieves a class by ID without hydrating its children.
// Returns ErrNotFound if the ID does not resolve.
func (b *Backend) GetClass(id string) (*types.ClassModel, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, types.ErrInvalidID
	}

	row := db.QueryRow(
		"SELECT id, name, position_x, position_y FROM class_models WHERE id = ?", id,
	)
	var c types.ClassModel
	if err := row.Scan(&c.ID, &c.Name, &c.PositionX, &c.PositionY); err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting class %s: %w", id, err)
	}
	return &c, nil
}

// ListClasses returns every class hydrated one level down: attributes (each
// with its properties) and data entries. The tree is assembled from one
// bounded query per table rather than a row-multiplying join.
func (b *Backend) ListClasses() ([]*types.ClassModel, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT id, name, position_x, position_y FROM class_models")
	if err != nil {
		return nil, fmt.Errorf("listing classes: %w", err)
	}
	defer rows.Close()

	classes := []*types.ClassModel{}
	byID := make(map[string]*types.ClassModel)
	for rows.Next() {
		var c types.ClassModel
		if err := rows.Scan(&c.ID, &c.Name, &c.PositionX, &c.PositionY); err != nil {
			return nil, fmt.Errorf("scanning class: %w", err)
		}
		c.Attributes = []*types.Attribute{}
		c.DataEntries = []*types.Data{}
		classes = append(classes, &c)
		byID[c.ID] = &c
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating classes: %w", err)
	}

	attrs, err := b.fetchAttributes(db, "")
	if err != nil {
		return nil, err
	}
	for _, a := range attrs {
		if c, ok := byID[a.ClassID]; ok {
			c.Attributes = append(c.Attributes, a)
		}
	}

	dataRows, err := db.Query("SELECT id, class_id, content FROM data")
	if err != nil {
		return nil, fmt.Errorf("listing data: %w", err)
	}
	defer dataRows.Close()
	for dataRows.Next() {
		d, err := scanData(dataRows)
		if err != nil {
			return nil, err
		}
		if c, ok := byID[d.ClassID]; ok {
			c.DataEntries = append(c.DataEntries, d)
		}
	}
	if err := dataRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating data: %w", err)
	}

	return classes, nil
}

// UpdateClass applies the non-nil fields of upd and returns the updated
// class. An empty payload changes nothing but still reloads the row.
// Returns ErrNotFound if the ID does not resolve.
func (b *Backend) UpdateClass(id string, upd types.ClassUpdate) (*types.ClassModel, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, types.ErrInvalidID
	}

	if err := b.requireClass(db, id); err != nil {
		return nil, err
	}

	var sets []string
	var args []any
	if upd.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *upd.Name)
	}
	if upd.PositionX != nil {
		sets = append(sets, "position_x = ?")
		args = append(args, *upd.PositionX)
	}
	if upd.PositionY != nil {
		sets = append(sets, "position_y = ?")
		args = append(args, *upd.PositionY)
	}
	if len(sets) > 0 {
		args = append(args, id)
		if _, err := db.Exec(
			"UPDATE class_models SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...,
		); err != nil {
			return nil, fmt.Errorf("updating class %s: %w", id, err)
		}
	}

	return b.GetClass(id)
}

// DeleteClass removes a class. The schema's ON DELETE CASCADE rules remove
// its attributes, their properties, and its data rows in the same
// transaction; connection rows referencing the class are left in place.
// Returns ErrNotFound if the ID does not resolve.
func (b *Backend) DeleteClass(id string) error {
	db, err := b.conn()
	if err != nil {
		return err
	}
	if id == "" {
		return types.ErrInvalidID
	}

	if err := b.requireClass(db, id); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM class_models WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting class %s: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing class deletion: %w", err)
	}
	return nil
}

// requireClass returns ErrNotFound if no class row exists with the given ID.
func (b *Backend) requireClass(db *sql.DB, id string) error {
	var one int
	err := db.QueryRow("SELECT 1 FROM class_models WHERE id = ?", id).Scan(&one)
	if err == sql.ErrNoRows {
		return types.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("checking class existence: %w", err)
	}
	return nil
}

// classExists reports whether a class row exists with the given ID.
// Used for caller-side reference checks before dependent creates.
func (b *Backend) classExists(db *sql.DB, id string) (bool, error) {
	var one int
	err := db.QueryRow("SELECT 1 FROM class_models WHERE id = ?", id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking class existence: %w", err)
	}
	return true, nil
}
