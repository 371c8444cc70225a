package money

import "fmt"

// DefaultCurrency is the symbol used when none is configured.
const DefaultCurrency = "€"

// Money is a monetary amount tagged with a currency symbol. It is a value
// type: callers copy and re-assign it, never share it between aggregates.
// Negative amounts are representable.
type Money struct {
	Amount   float64
	Currency string
}

// New builds a Money in the given currency, falling back to DefaultCurrency.
func New(amount float64, currency string) Money {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{Amount: amount, Currency: currency}
}

// Add returns a new Money with amount added to the current value.
func (m Money) Add(amount float64) Money {
	return Money{Amount: m.Amount + amount, Currency: m.Currency}
}

// Scale returns a new Money multiplied by factor.
func (m Money) Scale(factor float64) Money {
	return Money{Amount: m.Amount * factor, Currency: m.Currency}
}

// String renders the amount with exactly two fraction digits followed by the
// currency symbol, e.g. "4.16€".
func (m Money) String() string {
	currency := m.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	return fmt.Sprintf("%.2f%s", m.Amount, currency)
}
