package ledger

import "github.com/mitienda/pos-terminal/internal/money"

// Ledger is the append-only history of completed sales.
type Ledger struct {
	sales []Sale
}

// Append records a completed sale.
func (l *Ledger) Append(sale Sale) {
	l.sales = append(l.sales, sale)
}

// Count returns the number of recorded sales.
func (l *Ledger) Count() int {
	return len(l.sales)
}

// Sales returns a copy of the recorded history in order of completion.
func (l *Ledger) Sales() []Sale {
	return append([]Sale(nil), l.sales...)
}

// TotalAmount sums the totals of every recorded sale.
func (l *Ledger) TotalAmount(currency string) money.Money {
	total := money.New(0, currency)
	for _, sale := range l.sales {
		total = total.Add(sale.Total.Amount)
	}
	return total
}
