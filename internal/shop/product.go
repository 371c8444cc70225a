package shop

import (
	"fmt"

	"github.com/mitienda/pos-terminal/internal/money"
)

// ExpirationRate is the multiplier applied to the public price of a product
// flagged as close to expiry (a 40% reduction).
const ExpirationRate = 0.60

// Product is one inventory item. The public price is fixed at creation as
// twice the wholesale price and only ever changes through ApplyMarkdown;
// editing the wholesale price later never recomputes it.
type Product struct {
	ID             int
	Name           string
	WholesalePrice money.Money
	PublicPrice    money.Money
	Available      bool
	Stock          int
}

// NewProduct builds a product with the given id, pricing the public price at
// twice the wholesale price.
func NewProduct(id int, name string, wholesalePrice money.Money, available bool, stock int) *Product {
	return &Product{
		ID:             id,
		Name:           name,
		WholesalePrice: wholesalePrice,
		PublicPrice:    wholesalePrice.Scale(2),
		Available:      available,
		Stock:          stock,
	}
}

// ApplyMarkdown reduces the current public price to 60% of its prior value.
// Calling it again compounds the reduction; there is no guard.
func (p *Product) ApplyMarkdown() {
	p.PublicPrice = p.PublicPrice.Scale(ExpirationRate)
}

// String renders the product for the interactive inventory listing.
func (p *Product) String() string {
	return fmt.Sprintf("Product [id=%d, name=%s, publicPrice=%s, wholesalePrice=%s, available=%t, stock=%d]",
		p.ID, p.Name, p.PublicPrice, p.WholesalePrice, p.Available, p.Stock)
}
