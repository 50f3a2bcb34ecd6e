// Connection operations for the SQLite backend. Connection creation checks
// the relationship tag and both endpoint classes before writing anything;
// listing is a raw projection of the connections table with no join to
// class names. Connections do not participate in the class cascade.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/classmap/pkg/types"
)

// ListConnections returns every connection row as a raw projection. Rows
// whose endpoints reference since-deleted classes are returned as stored;
// callers needing class names must join on their side.
func (b *Backend) ListConnections() ([]*types.Connection, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		"SELECT id, source_class, target_class, relationship_type FROM connections",
	)
	if err != nil {
		return nil, fmt.Errorf("listing connections: %w", err)
	}
	defer rows.Close()

	conns := []*types.Connection{}
	for rows.Next() {
		var c types.Connection
		if err := rows.Scan(&c.ID, &c.SourceClass, &c.TargetClass, &c.RelationshipType); err != nil {
			return nil, fmt.Errorf("scanning connection: %w", err)
		}
		conns = append(conns, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating connections: %w", err)
	}
	return conns, nil
}

// GetConnection retrieves a connection by ID.
// Returns ErrNotFound if the ID does not resolve.
func (b *Backend) GetConnection(id string) (*types.Connection, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, types.ErrInvalidID
	}

	row := db.QueryRow(
		"SELECT id, source_class, target_class, relationship_type FROM connections WHERE id = ?",
		id,
	)
	var c types.Connection
	if err := row.Scan(&c.ID, &c.SourceClass, &c.TargetClass, &c.RelationshipType); err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting connection %s: %w", id, err)
	}
	return &c, nil
}

// CreateConnection persists a new connection between two classes.
// Returns ErrInvalidRelationship if the tag is not one of 1-1, 1-N, N-N,
// and ErrClassNotFound if either endpoint does not resolve. Both checks run
// before anything is written.
func (b *Backend) CreateConnection(sourceClass, targetClass, relationshipType string) (*types.Connection, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	if sourceClass == "" || targetClass == "" {
		return nil, types.ErrInvalidID
	}
	if !types.IsValidRelationshipType(relationshipType) {
		return nil, types.ErrInvalidRelationship
	}

	for _, classID := range []string{sourceClass, targetClass} {
		exists, err := b.classExists(db, classID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, types.ErrClassNotFound
		}
	}

	c := &types.Connection{
		ID:               generateUUID(),
		SourceClass:      sourceClass,
		TargetClass:      targetClass,
		RelationshipType: relationshipType,
	}
	_, err = db.Exec(
		"INSERT INTO connections (id, source_class, target_class, relationship_type) VALUES (?, ?, ?, ?)",
		c.ID, c.SourceClass, c.TargetClass, c.RelationshipType,
	)
	if err != nil {
		return nil, fmt.Errorf("creating connection: %w", err)
	}
	return c, nil
}

// DeleteConnection removes a connection.
// Returns ErrNotFound if the ID does not resolve.
func (b *Backend) DeleteConnection(id string) error {
	db, err := b.conn()
	if err != nil {
		return err
	}
	if id == "" {
		return types.ErrInvalidID
	}

	if _, err := b.GetConnection(id); err != nil {
		return err
	}

	if _, err := db.Exec("DELETE FROM connections WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting connection %s: %w", id, err)
	}
	return nil
}
