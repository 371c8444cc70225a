package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mitienda/pos-terminal/internal/money"
)

// saleDateLayout is the timestamp layout used by the sales export file.
const saleDateLayout = "02-01-2006 15:04:05"

// LineItem is a snapshot of a product at the moment it was sold. Later price
// or stock edits on the inventory do not change recorded sales.
type LineItem struct {
	ProductID int
	Name      string
	UnitPrice money.Money
}

// Sale is one completed checkout. Immutable after creation.
type Sale struct {
	ID         uuid.UUID
	ClientName string
	Items      []LineItem
	Total      money.Money
	At         time.Time
}

// NewSale records a completed checkout for the given client. The item slice is
// copied so the sale cannot be edited through the caller's cart.
func NewSale(client *Client, items []LineItem, total money.Money, at time.Time) Sale {
	return Sale{
		ID:         uuid.New(),
		ClientName: client.Name,
		Items:      append([]LineItem(nil), items...),
		Total:      total,
		At:         at,
	}
}

// FormatDate renders the sale timestamp the way the export file expects it.
func (s Sale) FormatDate() string {
	return s.At.Format(saleDateLayout)
}

// String summarises the sale for the interactive listing.
func (s Sale) String() string {
	names := make([]string, 0, len(s.Items))
	for _, item := range s.Items {
		names = append(names, item.Name)
	}
	return fmt.Sprintf("Sale [client=%s, date=%s, items=%s, total=%s]",
		s.ClientName, s.FormatDate(), strings.Join(names, ","), s.Total)
}
