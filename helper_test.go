package stocksim

import (
	"fmt"
	"time"
)

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// utcHours is the default session, evaluated in UTC so tests do not depend on the machine time zone.
var utcHours = Hours{Open: Clock{9, 30}, Close: Clock{16, 0}, Location: time.UTC}

// Monday 2025-01-06, a trading day.
var (
	mondayOpen   = time.Date(2025, time.January, 6, 10, 0, 0, 0, time.UTC)
	saturdayNoon = time.Date(2025, time.January, 4, 12, 0, 0, 0, time.UTC)
	mondayEarly  = time.Date(2025, time.January, 6, 8, 0, 0, 0, time.UTC)
)

// fixedRand always draws the same number.
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

// seqIDs returns an ID generator producing tx-1, tx-2, ...
func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("tx-%d", n)
	}
}

// fatalT is satisfied by *testing.T and *rapid.T.
type fatalT interface {
	Helper()
	Fatalf(format string, args ...any)
}

// newTestLedger creates a default ledger with deterministic hours, prices and IDs.
func newTestLedger(t fatalT, opts ...Option) *Ledger {
	t.Helper()
	base := []Option{WithHours(utcHours), WithSeed(1), WithIDs(seqIDs())}
	l, err := New(append(base, opts...)...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return l
}

func mustBuy(t fatalT, l *Ledger, symbol string, quantity int, now time.Time) Transaction {
	t.Helper()
	tx, err := l.Buy(symbol, Q(quantity), now)
	if err != nil {
		t.Fatalf("Buy(%s, %d) failed: %v", symbol, quantity, err)
	}
	return tx
}
