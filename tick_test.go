package stocksim

import (
	"testing"
)

func TestStep(t *testing.T) {
	testCases := []struct {
		name       string
		price      float64
		volatility float64
		u          float64
		want       float64
	}{
		{"lowest draw", 100, 0.02, 0, 98},
		{"middle draw", 100, 0.02, 0.5, 100},
		{"highest draw", 100, 0.02, 0.999, 102}, // 100 * 1.01996, +2% itself is never drawn
		{"rounded to the cent", 145.5, 0.02, 0.3, 144.34}, // 145.5 * 0.992 = 144.336
		{"floored", 0.01, 0.9, 0, 0.01},
		{"floored from above", 0.02, 0.9, 0, 0.01},
		{"zero volatility", 42.42, 0, 0.9, 42.42},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			inst := NewInstrument("TEST", "Test", USD(tc.price), tc.volatility)
			step(&inst, tc.u)
			if !inst.Price.Equal(USD(tc.want)) {
				t.Errorf("price = %v, want %v", inst.Price.Decimal(), tc.want)
			}
			if !inst.Previous.Equal(USD(tc.price)) {
				t.Errorf("previous = %v, want %v", inst.Previous, tc.price)
			}
		})
	}
}

func TestLedger_Tick(t *testing.T) {
	l := newTestLedger(t, WithRand(fixedRand(1)))
	before := l.Market()
	l.Tick()
	after := l.Market()

	for i, q := range after {
		if !q.Previous.Equal(before[i].Price) {
			t.Errorf("%s previous = %v, want %v", q.Symbol, q.Previous, before[i].Price)
		}
		if !q.Price.GreaterThan(before[i].Price) {
			t.Errorf("%s price = %v, want more than %v", q.Symbol, q.Price, before[i].Price)
		}
	}
	// AAPL moves by its full volatility, +2%.
	if !after[0].Price.Equal(USD(188.70)) || !after[0].Change.Equal(2) {
		t.Errorf("AAPL = %v (%v), want $188.70 (+2.00%%)", after[0].Price, after[0].Change)
	}
}

func TestLedger_TickIsReproducible(t *testing.T) {
	a := newTestLedger(t, WithSeed(42))
	b := newTestLedger(t, WithSeed(42))
	for i := 0; i < 20; i++ {
		a.Tick()
		b.Tick()
	}
	qa, qb := a.Market(), b.Market()
	for i := range qa {
		if !qa[i].Price.Equal(qb[i].Price) {
			t.Errorf("%s: %v != %v with the same seed", qa[i].Symbol, qa[i].Price, qb[i].Price)
		}
	}
}

func TestLedger_TradeAtTickedPrice(t *testing.T) {
	l := newTestLedger(t, WithRand(fixedRand(0)))
	l.Tick()
	tx := mustBuy(t, l, "AAPL", 1, mondayOpen)
	// 185 * 0.98
	if !tx.Price.Equal(USD(181.30)) {
		t.Errorf("executed at %v, want $181.30", tx.Price)
	}
}
