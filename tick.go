package stocksim

import "github.com/shopspring/decimal"

// priceDecimals is the precision of simulated prices.
const priceDecimals = 2

// minPrice is the floor of simulated prices.
var minPrice = decimal.New(1, -priceDecimals)

// Tick simulates one market update: every instrument moves by a uniformly
// drawn fraction of its volatility.
func (l *Ledger) Tick() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for inst := range l.market.All() {
		step(inst, l.rand.Float64())
	}
	l.log.Debug("market tick", "instruments", l.market.Len())
}

// step moves the instrument price by a change in [-volatility, +volatility)
// chosen by u in [0, 1), floored at 0.01 and rounded to the cent.
func step(inst *Instrument, u float64) {
	v := inst.Volatility
	change := -v + u*2*v
	next := inst.Price.value.Mul(decimal.NewFromFloat(1 + change))
	if next.LessThan(minPrice) {
		next = minPrice
	}
	inst.Previous = inst.Price
	inst.Price = Money{value: next.Round(priceDecimals), cur: inst.Price.cur}
}
