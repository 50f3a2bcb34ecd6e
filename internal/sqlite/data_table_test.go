// Unit tests for data CRUD and the batch insert/delete paths.
package sqlite

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/classmap/pkg/types"
)

func TestDataCRUD(t *testing.T) {
	b := newTestBackend(t)
	person, err := b.CreateClass("Person")
	require.NoError(t, err)

	d, err := b.CreateData(person.ID, []byte(`{"name": "Ada", "age": 36}`))
	require.NoError(t, err)
	assert.NotEmpty(t, d.ID)
	assert.Equal(t, person.ID, d.ClassID)

	t.Run("content may be any JSON shape", func(t *testing.T) {
		for _, content := range []string{`[1, 2, 3]`, `"scalar"`, `42`, `null`} {
			got, err := b.CreateData(person.ID, []byte(content))
			require.NoError(t, err)
			loaded, err := b.GetData(got.ID)
			require.NoError(t, err)
			assert.JSONEq(t, content, string(loaded.Content))
		}
	})

	t.Run("list by class", func(t *testing.T) {
		entries, err := b.ListDataByClass(person.ID)
		require.NoError(t, err)
		assert.Len(t, entries, 5)
	})

	t.Run("update replaces content only when supplied", func(t *testing.T) {
		got, err := b.UpdateData(d.ID, types.DataUpdate{Content: json.RawMessage(`{"age": 37}`)})
		require.NoError(t, err)
		assert.JSONEq(t, `{"age": 37}`, string(got.Content))

		// Nil content is the no-op payload.
		got, err = b.UpdateData(d.ID, types.DataUpdate{})
		require.NoError(t, err)
		assert.JSONEq(t, `{"age": 37}`, string(got.Content))
	})

	t.Run("update unknown id returns ErrNotFound", func(t *testing.T) {
		_, err := b.UpdateData(generateUUID(), types.DataUpdate{Content: json.RawMessage(`1`)})
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("delete returns prior state", func(t *testing.T) {
		prior, err := b.DeleteData(d.ID)
		require.NoError(t, err)
		assert.JSONEq(t, `{"age": 37}`, string(prior.Content))

		_, err = b.GetData(d.ID)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("empty content is rejected", func(t *testing.T) {
		_, err := b.CreateData(person.ID, nil)
		assert.ErrorIs(t, err, types.ErrInvalidContent)
	})
}

func TestBatchCreateData(t *testing.T) {
	t.Run("inserts every row with a distinct id", func(t *testing.T) {
		b := newTestBackend(t)
		person, err := b.CreateClass("Person")
		require.NoError(t, err)

		items := make([]types.DataCreate, 25)
		for i := range items {
			items[i] = types.DataCreate{
				ClassID: person.ID,
				Content: json.RawMessage(fmt.Sprintf(`{"n": %d}`, i)),
			}
		}

		count, err := b.BatchCreateData(items)
		require.NoError(t, err)
		assert.Equal(t, 25, count)

		entries, err := b.ListDataByClass(person.ID)
		require.NoError(t, err)
		require.Len(t, entries, 25)

		seen := make(map[string]bool)
		for _, e := range entries {
			assert.False(t, seen[e.ID], "batch rows must get distinct IDs")
			seen[e.ID] = true
		}
	})

	t.Run("one bad class id rolls back the whole batch", func(t *testing.T) {
		b := newTestBackend(t)
		person, err := b.CreateClass("Person")
		require.NoError(t, err)

		items := []types.DataCreate{
			{ClassID: person.ID, Content: json.RawMessage(`{"n": 1}`)},
			{ClassID: generateUUID(), Content: json.RawMessage(`{"n": 2}`)},
			{ClassID: person.ID, Content: json.RawMessage(`{"n": 3}`)},
		}

		_, err = b.BatchCreateData(items)
		require.Error(t, err)

		entries, err := b.ListDataByClass(person.ID)
		require.NoError(t, err)
		assert.Empty(t, entries, "no rows may survive a failed batch")
	})

	t.Run("empty batch inserts nothing", func(t *testing.T) {
		b := newTestBackend(t)
		count, err := b.BatchCreateData(nil)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestBatchDeleteData(t *testing.T) {
	t.Run("mixed existing and missing ids succeeds", func(t *testing.T) {
		b := newTestBackend(t)
		person, err := b.CreateClass("Person")
		require.NoError(t, err)

		d1, err := b.CreateData(person.ID, []byte(`{"n": 1}`))
		require.NoError(t, err)
		d2, err := b.CreateData(person.ID, []byte(`{"n": 2}`))
		require.NoError(t, err)
		keep, err := b.CreateData(person.ID, []byte(`{"n": 3}`))
		require.NoError(t, err)

		ids := []string{d1.ID, generateUUID(), d2.ID, generateUUID()}
		count, err := b.BatchDeleteData(ids)
		require.NoError(t, err)
		// Count reports IDs requested, not rows matched.
		assert.Equal(t, 4, count)

		entries, err := b.ListDataByClass(person.ID)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, keep.ID, entries[0].ID)
	})

	t.Run("id lists larger than one chunk are fully removed", func(t *testing.T) {
		b := newTestBackend(t)
		person, err := b.CreateClass("Person")
		require.NoError(t, err)

		const total = deleteChunkSize + 500
		items := make([]types.DataCreate, total)
		for i := range items {
			items[i] = types.DataCreate{
				ClassID: person.ID,
				Content: json.RawMessage(fmt.Sprintf(`{"n": %d}`, i)),
			}
		}
		_, err = b.BatchCreateData(items)
		require.NoError(t, err)

		entries, err := b.ListDataByClass(person.ID)
		require.NoError(t, err)
		ids := make([]string, len(entries))
		for i, e := range entries {
			ids[i] = e.ID
		}

		count, err := b.BatchDeleteData(ids)
		require.NoError(t, err)
		assert.Equal(t, total, count)

		remaining, err := b.ListDataByClass(person.ID)
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})

	t.Run("empty id list is a no-op", func(t *testing.T) {
		b := newTestBackend(t)
		count, err := b.BatchDeleteData(nil)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}
