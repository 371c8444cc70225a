package shop

import (
	"errors"
	"strings"
)

// MaxInventorySize bounds the number of products the shop can hold.
const MaxInventorySize = 10

var (
	// ErrInventoryFull reports that the inventory already holds MaxInventorySize products.
	ErrInventoryFull = errors.New("inventory is full")
	// ErrProductNotFound reports that no product matched the lookup.
	ErrProductNotFound = errors.New("product not found")
)

// Inventory is the bounded ordered collection of products owned by the shop.
// The product count always equals the length of the collection.
type Inventory struct {
	products []*Product
}

// Load replaces the collection with products read from the store.
func (inv *Inventory) Load(products []*Product) {
	inv.products = append([]*Product(nil), products...)
}

// Products returns the collection in insertion order. The slice is a copy but
// the products are the live instances.
func (inv *Inventory) Products() []*Product {
	return append([]*Product(nil), inv.products...)
}

// Count returns the number of products held.
func (inv *Inventory) Count() int {
	return len(inv.products)
}

// Full reports whether the inventory reached MaxInventorySize.
func (inv *Inventory) Full() bool {
	return len(inv.products) >= MaxInventorySize
}

// NextID returns max(existing ids)+1, or 1 when the inventory is empty. This
// is not a monotonic counter: removing the highest-id product frees its id for
// the next creation.
func (inv *Inventory) NextID() int {
	max := 0
	for _, p := range inv.products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

// Add appends the product, rejecting with ErrInventoryFull at capacity.
func (inv *Inventory) Add(product *Product) error {
	if inv.Full() {
		return ErrInventoryFull
	}
	inv.products = append(inv.products, product)
	return nil
}

// FindByName returns the first product whose name matches exactly, ignoring
// letter case. Partial names do not match.
func (inv *Inventory) FindByName(name string) (*Product, bool) {
	for _, p := range inv.products {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return nil, false
}

// Remove deletes the product with the given id, reporting whether it was held.
func (inv *Inventory) Remove(id int) bool {
	for i, p := range inv.products {
		if p.ID == id {
			inv.products = append(inv.products[:i], inv.products[i+1:]...)
			return true
		}
	}
	return false
}
