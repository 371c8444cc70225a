package shop

import "context"

// Gateway is the persistence boundary for inventory data. Every call owns its
// connection for the duration of the call and returns an explicit error; when
// a call fails after an in-memory mutation the caller sees the divergence and
// decides whether to retry or continue degraded.
type Gateway interface {
	// GetInventory reads the persisted inventory in id order.
	GetInventory(ctx context.Context) ([]*Product, error)
	// WriteInventory appends a snapshot of every product to the historical store.
	WriteInventory(ctx context.Context, products []*Product) error
	// AddProduct inserts a newly created product.
	AddProduct(ctx context.Context, product Product) error
	// UpdateProduct persists the mutable fields of an existing product.
	UpdateProduct(ctx context.Context, product Product) error
	// DeleteProduct removes the product row with the given id.
	DeleteProduct(ctx context.Context, id int) error
}
