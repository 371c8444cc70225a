package shop_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitienda/pos-terminal/internal/money"
	"github.com/mitienda/pos-terminal/internal/shop"
)

// fakeGateway records every call so tests can assert on what was persisted.
type fakeGateway struct {
	inventory []*shop.Product
	added     []shop.Product
	updated   []shop.Product
	deleted   []int
	history   [][]*shop.Product

	getErr    error
	addErr    error
	updateErr error
	deleteErr error
	writeErr  error
}

func (g *fakeGateway) GetInventory(ctx context.Context) ([]*shop.Product, error) {
	if g.getErr != nil {
		return nil, g.getErr
	}
	return g.inventory, nil
}

func (g *fakeGateway) WriteInventory(ctx context.Context, products []*shop.Product) error {
	if g.writeErr != nil {
		return g.writeErr
	}
	g.history = append(g.history, products)
	return nil
}

func (g *fakeGateway) AddProduct(ctx context.Context, product shop.Product) error {
	if g.addErr != nil {
		return g.addErr
	}
	g.added = append(g.added, product)
	return nil
}

func (g *fakeGateway) UpdateProduct(ctx context.Context, product shop.Product) error {
	if g.updateErr != nil {
		return g.updateErr
	}
	g.updated = append(g.updated, product)
	return nil
}

func (g *fakeGateway) DeleteProduct(ctx context.Context, id int) error {
	if g.deleteErr != nil {
		return g.deleteErr
	}
	g.deleted = append(g.deleted, id)
	return nil
}

func newTestShop(t *testing.T, gw *fakeGateway) *shop.Shop {
	t.Helper()
	s := shop.New(gw, zerolog.Nop(), money.New(100, "€"))
	s.Now = func() time.Time {
		return time.Date(2024, 2, 29, 12, 49, 50, 0, time.UTC)
	}
	return s
}
