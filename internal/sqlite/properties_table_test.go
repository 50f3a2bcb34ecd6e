// Unit tests for property CRUD.
package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/classmap/pkg/types"
)

func TestPropertyCRUD(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	b := newTestBackend(t)
	person, err := b.CreateClass("Person")
	require.NoError(t, err)
	age, err := b.CreateAttribute(person.ID, "age", "int")
	require.NoError(t, err)

	p, err := b.CreateProperty(age.ID, "unit", "years")
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, age.ID, p.AttributeID)

	t.Run("list by attribute", func(t *testing.T) {
		props, err := b.ListPropertiesByAttribute(age.ID)
		require.NoError(t, err)
		require.Len(t, props, 1)
		assert.Equal(t, "unit", props[0].Name)
		assert.Equal(t, "years", props[0].Value)
	})

	t.Run("partial update keeps omitted fields", func(t *testing.T) {
		got, err := b.UpdateProperty(p.ID, types.PropertyUpdate{Value: strPtr("months")})
		require.NoError(t, err)
		assert.Equal(t, "unit", got.Name)
		assert.Equal(t, "months", got.Value)
	})

	t.Run("empty payload reloads unchanged", func(t *testing.T) {
		got, err := b.UpdateProperty(p.ID, types.PropertyUpdate{})
		require.NoError(t, err)
		assert.Equal(t, "unit", got.Name)
		assert.Equal(t, "months", got.Value)
	})

	t.Run("update unknown id returns ErrNotFound", func(t *testing.T) {
		_, err := b.UpdateProperty(generateUUID(), types.PropertyUpdate{Name: strPtr("x")})
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("delete returns prior state", func(t *testing.T) {
		prior, err := b.DeleteProperty(p.ID)
		require.NoError(t, err)
		assert.Equal(t, "unit", prior.Name)

		_, err = b.GetProperty(p.ID)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("required fields are validated", func(t *testing.T) {
		_, err := b.CreateProperty(age.ID, "", "v")
		assert.ErrorIs(t, err, types.ErrInvalidName)
		_, err = b.CreateProperty(age.ID, "n", "")
		assert.ErrorIs(t, err, types.ErrInvalidValue)
	})

	t.Run("unresolved attribute surfaces as storage failure", func(t *testing.T) {
		_, err := b.CreateProperty(generateUUID(), "unit", "years")
		require.Error(t, err)
		assert.NotErrorIs(t, err, types.ErrNotFound)
	})
}
