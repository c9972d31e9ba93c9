package stocksim

import (
	"testing"
)

func TestLedger_Portfolio(t *testing.T) {
	l := newTestLedger(t, WithRand(fixedRand(1)))

	empty := l.Portfolio()
	if !empty.IsEmpty() {
		t.Fatalf("new ledger portfolio has %d positions", len(empty.Positions))
	}
	if !empty.TotalValue.Equal(USD(10000)) || !empty.ProfitLoss.IsZero() {
		t.Errorf("empty portfolio total %v P/L %v, want $10,000.00 and 0", empty.TotalValue, empty.ProfitLoss)
	}

	mustBuy(t, l, "MSFT", 2, mondayOpen) // 840.00
	mustBuy(t, l, "AAPL", 10, mondayOpen) // 1850.00
	l.Tick()                              // +volatility: AAPL 188.70, MSFT 426.30

	s := l.Portfolio()
	if len(s.Positions) != 2 {
		t.Fatalf("got %d positions, want 2", len(s.Positions))
	}
	// sorted by symbol.
	aapl, msft := s.Positions[0], s.Positions[1]
	if aapl.Symbol != "AAPL" || msft.Symbol != "MSFT" {
		t.Fatalf("positions = %s, %s want AAPL, MSFT", aapl.Symbol, msft.Symbol)
	}
	if aapl.Name != "Apple Inc." {
		t.Errorf("AAPL name = %q", aapl.Name)
	}

	checks := []struct {
		name      string
		got, want Money
	}{
		{"AAPL average cost", aapl.AverageCost, USD(185)},
		{"AAPL price", aapl.Price, USD(188.70)},
		{"AAPL cost basis", aapl.CostBasis, USD(1850)},
		{"AAPL market value", aapl.MarketValue, USD(1887)},
		{"AAPL P/L", aapl.ProfitLoss, USD(37)},
		{"MSFT P/L", msft.ProfitLoss, USD(12.60)},
		{"cost basis", s.CostBasis, USD(2690)},
		{"market value", s.MarketValue, USD(2739.60)},
		{"cash", s.Cash, USD(7310)},
		{"total value", s.TotalValue, USD(10049.60)},
		{"initial", s.Initial, USD(10000)},
		{"P/L", s.ProfitLoss, USD(49.60)},
	}
	for _, c := range checks {
		if !c.got.Equal(c.want) {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
	if !aapl.Return().Equal(2) {
		t.Errorf("AAPL return = %v, want 2%%", aapl.Return())
	}
	if !s.Return().Equal(0.496) {
		t.Errorf("portfolio return = %v, want 0.496%%", s.Return())
	}
}

func TestLedger_Quote(t *testing.T) {
	l := newTestLedger(t)
	q, ok := l.Quote("NFLX")
	if !ok || q.Name != "Netflix Inc." || !q.Price.Equal(USD(620)) || q.Change != 0 {
		t.Errorf("Quote(NFLX) = %+v, %v", q, ok)
	}
	if _, ok := l.Quote("XYZ"); ok {
		t.Error("Quote(XYZ) found an unknown symbol")
	}
}
