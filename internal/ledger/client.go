package ledger

import "github.com/mitienda/pos-terminal/internal/money"

// Client is the counterparty of a single sale. Funds are what the client
// presents at the till; Outstanding accumulates what they could not cover.
// Clients live only as long as the sale that created them.
type Client struct {
	Name        string
	Funds       money.Money
	Outstanding money.Money
}

// NewClient builds a client presenting the given funds.
func NewClient(name string, funds float64, currency string) *Client {
	return &Client{
		Name:        name,
		Funds:       money.New(funds, currency),
		Outstanding: money.New(0, currency),
	}
}

// Pay settles total against the client's funds. When the funds fall short the
// shortfall is added to Outstanding, the funds drop to zero and Pay reports
// false. The caller decides what to do with the unpaid remainder.
func (c *Client) Pay(total money.Money) bool {
	if c.Funds.Amount >= total.Amount {
		c.Funds = c.Funds.Add(-total.Amount)
		return true
	}
	shortfall := total.Amount - c.Funds.Amount
	c.Funds = money.New(0, c.Funds.Currency)
	c.Outstanding = c.Outstanding.Add(shortfall)
	return false
}
