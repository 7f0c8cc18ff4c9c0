//go:build unit

package item_test

import (
	"testing"
	"time"

	"shareit/internal/domain/item"
	"shareit/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("valid item", func(t *testing.T) {
		i, err := builder.NewItemBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, i.ID())
		assert.Equal(t, "Cordless drill", i.Name())
		assert.True(t, i.Available())
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := builder.NewItemBuilder().With(func(b *builder.ItemBuilder) {
			b.Name = "  "
		}).BuildDomain()
		assert.ErrorIs(t, err, item.ErrEmptyItemName)
	})

	t.Run("blank description", func(t *testing.T) {
		_, err := builder.NewItemBuilder().With(func(b *builder.ItemBuilder) {
			b.Description = ""
		}).BuildDomain()
		assert.ErrorIs(t, err, item.ErrEmptyItemDescription)
	})
}

func TestItemPatch(t *testing.T) {
	newName := "Impact driver"
	newDescription := "Brushless impact driver"
	unavailable := false

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		i := builder.NewItemBuilder().BuildReconstructed()
		later := i.UpdatedAt().Add(time.Hour)

		require.NoError(t, i.Patch(&newName, nil, nil, later))
		assert.Equal(t, newName, i.Name())
		assert.Equal(t, "18V drill with two batteries", i.Description())
		assert.True(t, i.Available())
		assert.Equal(t, later, i.UpdatedAt())
	})

	t.Run("full update", func(t *testing.T) {
		i := builder.NewItemBuilder().BuildReconstructed()

		require.NoError(t, i.Patch(&newName, &newDescription, &unavailable, i.UpdatedAt()))
		assert.Equal(t, newDescription, i.Description())
		assert.False(t, i.Available())
	})

	t.Run("blank values are rejected without partial application", func(t *testing.T) {
		i := builder.NewItemBuilder().BuildReconstructed()
		blank := "  "

		err := i.Patch(&blank, nil, nil, i.UpdatedAt())
		assert.ErrorIs(t, err, item.ErrEmptyItemName)
		assert.Equal(t, "Cordless drill", i.Name())

		err = i.Patch(nil, &blank, nil, i.UpdatedAt())
		assert.ErrorIs(t, err, item.ErrEmptyItemDescription)
	})

	t.Run("ownership check", func(t *testing.T) {
		i := builder.NewItemBuilder().BuildReconstructed()
		assert.True(t, i.IsOwnedBy(i.OwnerID()))
		assert.False(t, i.IsOwnedBy(uuid.New()))
	})
}
