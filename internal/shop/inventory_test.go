package shop_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mitienda/pos-terminal/internal/money"
	"github.com/mitienda/pos-terminal/internal/shop"
)

func product(id int, name string) *shop.Product {
	return shop.NewProduct(id, name, money.New(1, "€"), true, 10)
}

func TestNextIDEmptyInventory(t *testing.T) {
	t.Parallel()

	var inv shop.Inventory
	require.Equal(t, 1, inv.NextID())
}

func TestNextIDReusesFreedHighestID(t *testing.T) {
	t.Parallel()

	var inv shop.Inventory
	for i := 1; i <= 3; i++ {
		require.NoError(t, inv.Add(product(i, "p")))
	}
	require.Equal(t, 4, inv.NextID())

	require.True(t, inv.Remove(3))
	require.Equal(t, 3, inv.NextID())
}

func TestAddRejectsWhenFull(t *testing.T) {
	t.Parallel()

	var inv shop.Inventory
	for i := 1; i <= shop.MaxInventorySize; i++ {
		require.NoError(t, inv.Add(product(i, "p")))
		require.Equal(t, i, inv.Count())
	}

	err := inv.Add(product(shop.MaxInventorySize+1, "extra"))
	require.ErrorIs(t, err, shop.ErrInventoryFull)
	require.Equal(t, shop.MaxInventorySize, inv.Count())
	require.Len(t, inv.Products(), inv.Count())
}

func TestFindByNameIgnoresCase(t *testing.T) {
	t.Parallel()

	var inv shop.Inventory
	require.NoError(t, inv.Add(product(1, "Apple")))

	found, ok := inv.FindByName("aPPle")
	require.True(t, ok)
	require.Equal(t, 1, found.ID)
}

func TestFindByNameRejectsPartialMatch(t *testing.T) {
	t.Parallel()

	var inv shop.Inventory
	require.NoError(t, inv.Add(product(1, "Apple")))

	_, ok := inv.FindByName("App")
	require.False(t, ok)
	_, ok = inv.FindByName("Apples")
	require.False(t, ok)
}

func TestRemoveAbsentIDMutatesNothing(t *testing.T) {
	t.Parallel()

	var inv shop.Inventory
	require.NoError(t, inv.Add(product(1, "Apple")))

	require.False(t, inv.Remove(99))
	require.Equal(t, 1, inv.Count())
}
