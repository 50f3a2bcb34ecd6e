// Data operations for the SQLite backend, including the batch insert and
// the chunked batch delete. Content is an opaque JSON document stored in a
// text column that SQLite's JSON functions can still query.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/classmap/pkg/types"
)

// deleteChunkSize bounds the number of IDs per DELETE statement in
// BatchDeleteData. Chunks run inside one transaction, so the chunking only
// limits statement size; it is not a partial-success mechanism.
const deleteChunkSize = 1000

// ListDataByClass returns the data rows of a class. A class with no data
// (or an unknown class ID) yields an empty slice, not nil.
func (b *Backend) ListDataByClass(classID string) ([]*types.Data, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	if classID == "" {
		return nil, types.ErrInvalidID
	}

	rows, err := db.Query("SELECT id, class_id, content FROM data WHERE class_id = ?", classID)
	if err != nil {
		return nil, fmt.Errorf("listing data: %w", err)
	}
	defer rows.Close()

	entries := []*types.Data{}
	for rows.Next() {
		d, err := scanData(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating data: %w", err)
	}
	return entries, nil
}

// GetData retrieves a data row by ID.
// Returns ErrNotFound if the ID does not resolve.
func (b *Backend) GetData(id string) (*types.Data, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, types.ErrInvalidID
	}
	return getData(db, id)
}

// CreateData persists a new data row holding the given JSON document.
func (b *Backend) CreateData(classID string, content []byte) (*types.Data, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	if classID == "" {
		return nil, types.ErrInvalidID
	}
	if len(content) == 0 {
		return nil, types.ErrInvalidContent
	}

	d := &types.Data{
		ID:      generateUUID(),
		ClassID: classID,
		Content: json.RawMessage(content),
	}
	_, err = db.Exec(
		"INSERT INTO data (id, class_id, content) VALUES (?, ?, ?)",
		d.ID, d.ClassID, string(content),
	)
	if err != nil {
		return nil, fmt.Errorf("creating data: %w", err)
	}
	return d, nil
}

// BatchCreateData inserts all rows in a single transaction and returns the
// number inserted. Any row failure, including an unresolved class ID
// tripping the foreign key, rolls back the whole batch.
func (b *Backend) BatchCreateData(items []types.DataCreate) (int, error) {
	db, err := b.conn()
	if err != nil {
		return 0, err
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT INTO data (id, class_id, content) VALUES (?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("preparing batch insert: %w", err)
	}
	defer stmt.Close()

	for _, item := range items {
		if item.ClassID == "" {
			return 0, types.ErrInvalidID
		}
		if len(item.Content) == 0 {
			return 0, types.ErrInvalidContent
		}
		if _, err := stmt.Exec(generateUUID(), item.ClassID, string(item.Content)); err != nil {
			return 0, fmt.Errorf("batch inserting data for class %s: %w", item.ClassID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing batch insert: %w", err)
	}
	return len(items), nil
}

// UpdateData replaces the stored document when upd.Content is non-nil and
// returns the updated row. Returns ErrNotFound if the ID does not resolve.
func (b *Backend) UpdateData(id string, upd types.DataUpdate) (*types.Data, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, types.ErrInvalidID
	}

	if _, err := getData(db, id); err != nil {
		return nil, err
	}

	if upd.Content != nil {
		if _, err := db.Exec(
			"UPDATE data SET content = ? WHERE id = ?", string(upd.Content), id,
		); err != nil {
			return nil, fmt.Errorf("updating data %s: %w", id, err)
		}
	}

	return getData(db, id)
}

// DeleteData removes a data row and returns its prior state.
// Returns ErrNotFound if the ID does not resolve.
func (b *Backend) DeleteData(id string) (*types.Data, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, types.ErrInvalidID
	}

	prior, err := getData(db, id)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("DELETE FROM data WHERE id = ?", id); err != nil {
		return nil, fmt.Errorf("deleting data %s: %w", id, err)
	}
	return prior, nil
}

// BatchDeleteData removes the given data rows, chunking the ID list into
// groups of deleteChunkSize inside a single transaction. IDs that do not
// resolve are silently skipped. The returned count is the number of IDs
// requested, not the number of rows matched.
func (b *Backend) BatchDeleteData(ids []string) (int, error) {
	db, err := b.conn()
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for start := 0; start < len(ids); start += deleteChunkSize {
		end := start + deleteChunkSize
		if end > len(ids) {
			end = len(ids)
		}
		chunk := ids[start:end]

		placeholders := make([]string, len(chunk))
		args := make([]any, len(chunk))
		for i, id := range chunk {
			placeholders[i] = "?"
			args[i] = id
		}
		if _, err := tx.Exec(
			"DELETE FROM data WHERE id IN ("+strings.Join(placeholders, ", ")+")", args...,
		); err != nil {
			return 0, fmt.Errorf("batch deleting data: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing batch delete: %w", err)
	}
	return len(ids), nil
}

// getData loads a single data row.
func getData(db *sql.DB, id string) (*types.Data, error) {
	row := db.QueryRow("SELECT id, class_id, content FROM data WHERE id = ?", id)
	var d types.Data
	var content string
	if err := row.Scan(&d.ID, &d.ClassID, &content); err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting data %s: %w", id, err)
	}
	d.Content = json.RawMessage(content)
	return &d, nil
}

// scanData converts a row from sql.Rows into a *types.Data.
func scanData(rows *sql.Rows) (*types.Data, error) {
	var d types.Data
	var content string
	if err := rows.Scan(&d.ID, &d.ClassID, &content); err != nil {
		return nil, fmt.Errorf("scanning data: %w", err)
	}
	d.Content = json.RawMessage(content)
	return &d, nil
}
