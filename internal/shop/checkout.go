package shop

import (
	"context"
	"errors"
	"fmt"

	"github.com/mitienda/pos-terminal/internal/common"
	"github.com/mitienda/pos-terminal/internal/ledger"
	"github.com/mitienda/pos-terminal/internal/money"
)

// TaxRate is the fixed multiplier applied to the pre-tax cart total.
const TaxRate = 1.04

// SentinelDone is the scan token that ends item collection.
const SentinelDone = "0"

// CheckoutState tracks the progress of one checkout procedure.
type CheckoutState int

const (
	// StateCollectingItems accepts item scans.
	StateCollectingItems CheckoutState = iota
	// StateFinalizing means the sentinel was scanned and the sale awaits Finalize.
	StateFinalizing
	// StateCompleted is terminal.
	StateCompleted
)

var (
	// ErrCheckoutClosed reports a scan or finalize on a finished checkout.
	ErrCheckoutClosed = errors.New("checkout already completed")
	// ErrCheckoutCollecting reports a finalize before the sentinel was scanned.
	ErrCheckoutCollecting = errors.New("checkout still collecting items")
)

// Checkout drives one sale: it collects scanned item names, mutating stock and
// persisting product state item by item, then finalizes into a Sale record.
type Checkout struct {
	shop     *Shop
	client   *ledger.Client
	cart     []ledger.LineItem
	subtotal float64
	state    CheckoutState
}

// Result reports the outcome of a finalized checkout. The register is credited
// with the full total even when Paid is false; Outstanding carries what the
// client still owes.
type Result struct {
	Sale        ledger.Sale
	Paid        bool
	Outstanding money.Money
}

// BeginCheckout opens a checkout for the given client.
func (s *Shop) BeginCheckout(client *ledger.Client) *Checkout {
	return &Checkout{shop: s, client: client, state: StateCollectingItems}
}

// State returns the current checkout state.
func (c *Checkout) State() CheckoutState {
	return c.state
}

// Items returns the cart collected so far.
func (c *Checkout) Items() []ledger.LineItem {
	return append([]ledger.LineItem(nil), c.cart...)
}

// Subtotal returns the accumulated pre-tax total.
func (c *Checkout) Subtotal() money.Money {
	return money.New(c.subtotal, c.shop.currency())
}

// Scan processes one item token. The sentinel "0" moves the checkout to the
// finalizing state. A token naming an absent or unavailable product leaves all
// state untouched and returns a not-found error. Otherwise one unit is sold:
// the public price joins the subtotal, a snapshot joins the cart, stock drops
// by one (zero stock flips availability off) and the product is persisted
// before the next token is read. A failed persist is returned to the caller;
// the in-memory mutation stands.
func (c *Checkout) Scan(ctx context.Context, name string) error {
	if c.state != StateCollectingItems {
		return common.Validation(ErrCheckoutClosed)
	}
	if name == SentinelDone {
		c.state = StateFinalizing
		return nil
	}
	product, ok := c.shop.inventory.FindByName(name)
	if !ok || !product.Available {
		return common.NotFound(ErrProductNotFound)
	}
	c.subtotal += product.PublicPrice.Amount
	c.cart = append(c.cart, ledger.LineItem{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.PublicPrice,
	})
	product.Stock--
	if product.Stock == 0 {
		product.Available = false
	}
	if err := c.shop.Gateway.UpdateProduct(ctx, *product); err != nil {
		return common.Persistence(fmt.Errorf("persist sold product %d: %w", product.ID, err))
	}
	return nil
}

// Finalize applies the tax rate, attempts payment and records the sale. The
// sale is recorded and the register credited with the full total whether or
// not the client could pay; the result carries the unpaid shortfall.
func (c *Checkout) Finalize() (Result, error) {
	switch c.state {
	case StateCompleted:
		return Result{}, common.Validation(ErrCheckoutClosed)
	case StateCollectingItems:
		return Result{}, common.Validation(ErrCheckoutCollecting)
	}

	total := money.New(c.subtotal*TaxRate, c.shop.currency())
	paid := c.client.Pay(total)

	sale := ledger.NewSale(c.client, c.cart, total, c.shop.now())
	c.shop.ledger.Append(sale)
	c.shop.cash = c.shop.cash.Add(total.Amount)
	c.state = StateCompleted

	evt := c.shop.Logger.Info().
		Str("sale_id", sale.ID.String()).
		Str("client", c.client.Name).
		Int("items", len(c.cart)).
		Str("total", total.String()).
		Bool("paid", paid)
	if !paid {
		evt = evt.Str("outstanding", c.client.Outstanding.String())
	}
	evt.Msg("sale completed")

	return Result{Sale: sale, Paid: paid, Outstanding: c.client.Outstanding}, nil
}
