package stocksim

import (
	"errors"
	"fmt"
)

// Trade rejections. Every failed Buy or Sell returns an error matching one
// of these with errors.Is, and leaves the ledger untouched.
var (
	ErrMarketClosed       = errors.New("market is closed")
	ErrUnknownSymbol      = errors.New("stock not found")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrNoHolding          = errors.New("no shares owned")
	ErrInsufficientShares = errors.New("insufficient shares")
)

// InsufficientFundsError reports a buy that costs more than the cash balance.
type InsufficientFundsError struct {
	Symbol    string
	Needed    Money
	Available Money
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds to buy %s: needed %v, available %v", e.Symbol, e.Needed, e.Available)
}

func (e *InsufficientFundsError) Unwrap() error { return ErrInsufficientFunds }

// Shortfall is the missing cash.
func (e *InsufficientFundsError) Shortfall() Money { return e.Needed.Sub(e.Available) }

// InsufficientSharesError reports a sell of more shares than held.
type InsufficientSharesError struct {
	Symbol    string
	Requested Quantity
	Held      Quantity
}

func (e *InsufficientSharesError) Error() string {
	return fmt.Sprintf("insufficient shares: you only own %v shares of %s, cannot sell %v", e.Held, e.Symbol, e.Requested)
}

func (e *InsufficientSharesError) Unwrap() error { return ErrInsufficientShares }

// Shortfall is the number of missing shares.
func (e *InsufficientSharesError) Shortfall() Quantity { return e.Requested.Sub(e.Held) }

// ErrorCode returns a stable snake_case label for a trade error, "ok" for nil
// and "internal" for errors outside the rejection taxonomy.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrMarketClosed):
		return "market_closed"
	case errors.Is(err, ErrUnknownSymbol):
		return "unknown_symbol"
	case errors.Is(err, ErrInvalidQuantity):
		return "invalid_quantity"
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrNoHolding):
		return "no_holding"
	case errors.Is(err, ErrInsufficientShares):
		return "insufficient_shares"
	default:
		return "internal"
	}
}
