package shop_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mitienda/pos-terminal/internal/common"
	"github.com/mitienda/pos-terminal/internal/money"
	"github.com/mitienda/pos-terminal/internal/shop"
)

func TestAddProductAssignsIDAndPrices(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	gw := &fakeGateway{}
	s := newTestShop(t, gw)

	p, err := s.AddProduct(ctx, "Apple", 1.00, true, 10)
	require.NoError(t, err)
	require.Equal(t, 1, p.ID)
	require.Equal(t, "2.00€", p.PublicPrice.String())
	require.Equal(t, "1.00€", p.WholesalePrice.String())
	require.Equal(t, 1, s.ProductCount())
	require.Len(t, gw.added, 1)
	require.Equal(t, "Apple", gw.added[0].Name)
}

func TestAddProductRejectedAtCapacityWithoutPersistedAdd(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	gw := &fakeGateway{}
	s := newTestShop(t, gw)

	for i := 0; i < shop.MaxInventorySize; i++ {
		_, err := s.AddProduct(ctx, "p", 1, true, 1)
		require.NoError(t, err)
	}
	require.Equal(t, shop.MaxInventorySize, s.ProductCount())
	require.Len(t, gw.added, shop.MaxInventorySize)

	_, err := s.AddProduct(ctx, "overflow", 1, true, 1)
	require.ErrorIs(t, err, shop.ErrInventoryFull)
	require.Equal(t, common.CodeValidation, common.CodeOf(err))
	require.Equal(t, shop.MaxInventorySize, s.ProductCount())
	require.Len(t, gw.added, shop.MaxInventorySize)
}

func TestAddProductSurfacesGatewayFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	gw := &fakeGateway{addErr: errors.New("connection refused")}
	s := newTestShop(t, gw)

	_, err := s.AddProduct(ctx, "Apple", 1, true, 10)
	require.Error(t, err)
	require.Equal(t, common.CodePersistence, common.CodeOf(err))
	// the in-memory add already happened; the divergence is the caller's call
	require.Equal(t, 1, s.ProductCount())
}

func TestAddStock(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	gw := &fakeGateway{}
	s := newTestShop(t, gw)
	_, err := s.AddProduct(ctx, "Apple", 1, true, 10)
	require.NoError(t, err)

	p, err := s.AddStock(ctx, "apple", 5)
	require.NoError(t, err)
	require.Equal(t, 15, p.Stock)
	require.Len(t, gw.updated, 1)
	require.Equal(t, 15, gw.updated[0].Stock)

	_, err = s.AddStock(ctx, "pear", 5)
	require.ErrorIs(t, err, shop.ErrProductNotFound)
	require.Equal(t, common.CodeNotFound, common.CodeOf(err))
}

func TestMarkdownCompounds(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	gw := &fakeGateway{}
	s := newTestShop(t, gw)
	p, err := s.AddProduct(ctx, "Yogurt", 5, true, 3)
	require.NoError(t, err)
	require.InEpsilon(t, 10.0, p.PublicPrice.Amount, 1e-9)

	_, err = s.Markdown(ctx, "Yogurt")
	require.NoError(t, err)
	require.InEpsilon(t, 6.0, p.PublicPrice.Amount, 1e-9)

	_, err = s.Markdown(ctx, "Yogurt")
	require.NoError(t, err)
	require.InEpsilon(t, 3.6, p.PublicPrice.Amount, 1e-9)

	// wholesale price is untouched and the public price is never recomputed
	require.InEpsilon(t, 5.0, p.WholesalePrice.Amount, 1e-9)
	require.Len(t, gw.updated, 2)
}

func TestRemoveProduct(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	gw := &fakeGateway{}
	s := newTestShop(t, gw)
	p, err := s.AddProduct(ctx, "Apple", 1, true, 10)
	require.NoError(t, err)

	require.NoError(t, s.Remove(ctx, p.ID))
	require.Zero(t, s.ProductCount())
	require.Equal(t, []int{p.ID}, gw.deleted)

	err = s.Remove(ctx, p.ID)
	require.ErrorIs(t, err, shop.ErrProductNotFound)
	require.Len(t, gw.deleted, 1)
}

func TestLoadInventory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	gw := &fakeGateway{inventory: []*shop.Product{
		shop.NewProduct(1, "Apple", money.New(1, "€"), true, 10),
		shop.NewProduct(2, "Pear", money.New(2, "€"), true, 5),
	}}
	s := newTestShop(t, gw)

	require.NoError(t, s.LoadInventory(ctx))
	require.Equal(t, 2, s.ProductCount())
	require.Equal(t, 3, s.NextProductID())
}

func TestLoadInventorySurfacesGatewayFailure(t *testing.T) {
	t.Parallel()

	gw := &fakeGateway{getErr: errors.New("connection refused")}
	s := newTestShop(t, gw)

	err := s.LoadInventory(context.Background())
	require.Error(t, err)
	require.Equal(t, common.CodePersistence, common.CodeOf(err))
}

func TestExportHistory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	gw := &fakeGateway{}
	s := newTestShop(t, gw)
	_, err := s.AddProduct(ctx, "Apple", 1, true, 10)
	require.NoError(t, err)

	require.NoError(t, s.ExportHistory(ctx))
	require.Len(t, gw.history, 1)
	require.Len(t, gw.history[0], 1)

	gw.writeErr = errors.New("connection refused")
	err = s.ExportHistory(ctx)
	require.Equal(t, common.CodePersistence, common.CodeOf(err))
}
