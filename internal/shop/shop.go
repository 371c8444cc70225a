package shop

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitienda/pos-terminal/internal/common"
	"github.com/mitienda/pos-terminal/internal/ledger"
	"github.com/mitienda/pos-terminal/internal/money"
)

// Shop is the transaction aggregate behind one interactive terminal: the cash
// register, the bounded inventory and the append-only sales ledger. It is
// driven by a single actor; operations are synchronous and each gateway write
// completes before the next input is accepted.
type Shop struct {
	Gateway Gateway
	Logger  zerolog.Logger
	Now     func() time.Time

	cash      money.Money
	inventory Inventory
	ledger    ledger.Ledger
}

// New builds a shop with the given opening cash.
func New(gateway Gateway, logger zerolog.Logger, openingCash money.Money) *Shop {
	return &Shop{
		Gateway: gateway,
		Logger:  logger,
		cash:    openingCash,
	}
}

func (s *Shop) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Shop) currency() string {
	return s.cash.Currency
}

// LoadInventory replaces the in-memory inventory with the persisted one.
func (s *Shop) LoadInventory(ctx context.Context) error {
	products, err := s.Gateway.GetInventory(ctx)
	if err != nil {
		return common.Persistence(fmt.Errorf("load inventory: %w", err))
	}
	s.inventory.Load(products)
	s.Logger.Info().Int("products", s.inventory.Count()).Msg("inventory loaded")
	return nil
}

// Cash returns the register balance.
func (s *Shop) Cash() money.Money {
	return s.cash
}

// Products returns the inventory in insertion order.
func (s *Shop) Products() []*Product {
	return s.inventory.Products()
}

// ProductCount returns the number of products held.
func (s *Shop) ProductCount() int {
	return s.inventory.Count()
}

// NextProductID returns the id the next created product will receive.
func (s *Shop) NextProductID() int {
	return s.inventory.NextID()
}

// FindProduct looks a product up by name, ignoring letter case.
func (s *Shop) FindProduct(name string) (*Product, bool) {
	return s.inventory.FindByName(name)
}

// AddProduct creates a product, appends it to the inventory and persists it.
// A full inventory rejects the product before any gateway call is issued.
func (s *Shop) AddProduct(ctx context.Context, name string, wholesalePrice float64, available bool, stock int) (*Product, error) {
	product := NewProduct(s.inventory.NextID(), name, money.New(wholesalePrice, s.currency()), available, stock)
	if err := s.inventory.Add(product); err != nil {
		return nil, common.Validation(err)
	}
	if err := s.Gateway.AddProduct(ctx, *product); err != nil {
		return product, common.Persistence(fmt.Errorf("persist product %d: %w", product.ID, err))
	}
	s.Logger.Info().Int("product_id", product.ID).Str("name", product.Name).Msg("product added")
	return product, nil
}

// AddStock increments the stock of the named product and persists the change.
func (s *Shop) AddStock(ctx context.Context, name string, quantity int) (*Product, error) {
	product, ok := s.inventory.FindByName(name)
	if !ok {
		return nil, common.NotFound(ErrProductNotFound)
	}
	product.Stock += quantity
	if err := s.Gateway.UpdateProduct(ctx, *product); err != nil {
		return product, common.Persistence(fmt.Errorf("persist stock of product %d: %w", product.ID, err))
	}
	return product, nil
}

// Markdown applies the expiration discount to the named product's current
// public price and persists the change. Repeated calls compound.
func (s *Shop) Markdown(ctx context.Context, name string) (*Product, error) {
	product, ok := s.inventory.FindByName(name)
	if !ok {
		return nil, common.NotFound(ErrProductNotFound)
	}
	product.ApplyMarkdown()
	if err := s.Gateway.UpdateProduct(ctx, *product); err != nil {
		return product, common.Persistence(fmt.Errorf("persist markdown of product %d: %w", product.ID, err))
	}
	s.Logger.Info().Int("product_id", product.ID).Str("public_price", product.PublicPrice.String()).Msg("markdown applied")
	return product, nil
}

// Remove deletes the product with the given id from memory and from the store.
// An absent id mutates nothing.
func (s *Shop) Remove(ctx context.Context, id int) error {
	if !s.inventory.Remove(id) {
		return common.NotFound(ErrProductNotFound)
	}
	if err := s.Gateway.DeleteProduct(ctx, id); err != nil {
		return common.Persistence(fmt.Errorf("delete product %d: %w", id, err))
	}
	s.Logger.Info().Int("product_id", id).Msg("product removed")
	return nil
}

// SaleCount returns the number of completed sales.
func (s *Shop) SaleCount() int {
	return s.ledger.Count()
}

// Sales returns the recorded sales in order of completion.
func (s *Shop) Sales() []ledger.Sale {
	return s.ledger.Sales()
}

// TotalSales sums the totals of every recorded sale.
func (s *Shop) TotalSales() money.Money {
	return s.ledger.TotalAmount(s.currency())
}

// ExportSales appends the recorded sales to the dated export file under dir
// and returns the file path.
func (s *Shop) ExportSales(dir string) (string, error) {
	path, err := s.ledger.Export(dir, s.now())
	if err != nil {
		return "", common.Persistence(err)
	}
	s.Logger.Info().Str("path", path).Int("sales", s.ledger.Count()).Msg("sales exported")
	return path, nil
}

// ExportHistory writes a snapshot of the current inventory to the historical
// store.
func (s *Shop) ExportHistory(ctx context.Context) error {
	if err := s.Gateway.WriteInventory(ctx, s.inventory.Products()); err != nil {
		return common.Persistence(fmt.Errorf("write inventory history: %w", err))
	}
	return nil
}
