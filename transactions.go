package stocksim

import (
	"time"
)

// Action is the side of a trade.
type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
)

// Transaction is an executed trade. Transactions are immutable once recorded.
type Transaction struct {
	ID       string
	Time     time.Time
	Action   Action
	Symbol   string
	Quantity Quantity
	Price    Money // price per share at execution
}

// Amount returns the cash exchanged: price × quantity.
func (t Transaction) Amount() Money { return t.Price.Mul(t.Quantity) }

// MarshalJSON encodes the transaction with a stable field order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("id", t.ID)
	w.Append("time", t.Time.Format(time.RFC3339))
	w.Append("action", t.Action)
	w.Append("symbol", t.Symbol)
	w.Append("quantity", t.Quantity)
	w.Append("price", t.Price.Fixed())
	w.EmbedFrom(t.Amount())
	return w.MarshalJSON()
}

// AcceptAll is a filter that accepts every transaction.
func AcceptAll(Transaction) bool { return true }

// BySymbol returns a predicate that filters transactions by symbol.
func BySymbol(symbol string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Symbol == symbol }
}

// ByAction returns a predicate that filters transactions by action.
func ByAction(action Action) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Action == action }
}

// accept reports whether tx passes all filters.
func accept(tx Transaction, filters []func(Transaction) bool) bool {
	for _, filter := range filters {
		if !filter(tx) {
			return false
		}
	}
	return true
}
