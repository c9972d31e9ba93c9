package stocksim

// Quote is the market view of one instrument.
type Quote struct {
	Symbol   string
	Name     string
	Price    Money
	Previous Money
	Change   Percent // since the previous tick
}

func quoteOf(inst *Instrument) Quote {
	return Quote{
		Symbol:   inst.Symbol,
		Name:     inst.Name,
		Price:    inst.Price,
		Previous: inst.Previous,
		Change:   inst.Change(),
	}
}

// Market returns the quotes of all instruments in catalog order.
func (l *Ledger) Market() []Quote {
	l.mu.RLock()
	defer l.mu.RUnlock()
	quotes := make([]Quote, 0, l.market.Len())
	for inst := range l.market.All() {
		quotes = append(quotes, quoteOf(inst))
	}
	return quotes
}

// Quote returns the quote of symbol, false if it is not in the catalog.
func (l *Ledger) Quote(symbol string) (Quote, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	inst := l.market.Get(symbol)
	if inst == nil {
		return Quote{}, false
	}
	return quoteOf(inst), true
}

// Position is a holding valued at the current market price.
type Position struct {
	Symbol      string
	Name        string
	Quantity    Quantity
	AverageCost Money
	Price       Money
	CostBasis   Money // AverageCost × Quantity
	MarketValue Money // Price × Quantity
	ProfitLoss  Money // unrealized, MarketValue - CostBasis
}

// Return is the unrealized gain relative to the cost basis.
func (p Position) Return() Percent { return p.MarketValue.Ratio(p.CostBasis) }

// PortfolioSnapshot is a valuation of the whole ledger.
type PortfolioSnapshot struct {
	Positions   []Position // sorted by symbol
	CostBasis   Money      // total invested in the positions
	MarketValue Money      // total value of the positions
	Cash        Money
	TotalValue  Money // MarketValue + Cash
	Initial     Money // cash the ledger started with
	ProfitLoss  Money // TotalValue - Initial
}

// IsEmpty reports whether no stock is held.
func (s PortfolioSnapshot) IsEmpty() bool { return len(s.Positions) == 0 }

// Return is the overall gain relative to the initial balance.
func (s PortfolioSnapshot) Return() Percent { return s.TotalValue.Ratio(s.Initial) }

// Portfolio values every holding at the current prices.
func (l *Ledger) Portfolio() PortfolioSnapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	zero := M(0, l.Currency())
	s := PortfolioSnapshot{
		CostBasis:   zero,
		MarketValue: zero,
		Cash:        l.cash,
		Initial:     l.initial,
	}
	for _, h := range l.sortedHoldings() {
		inst := l.market.Get(h.Symbol)
		p := Position{
			Symbol:      h.Symbol,
			Name:        inst.Name,
			Quantity:    h.Quantity,
			AverageCost: h.AverageCost,
			Price:       inst.Price,
			CostBasis:   h.CostBasis(),
			MarketValue: inst.Price.Mul(h.Quantity),
		}
		p.ProfitLoss = p.MarketValue.Sub(p.CostBasis)
		s.Positions = append(s.Positions, p)
		s.CostBasis = s.CostBasis.Add(p.CostBasis)
		s.MarketValue = s.MarketValue.Add(p.MarketValue)
	}
	s.TotalValue = s.MarketValue.Add(s.Cash)
	s.ProfitLoss = s.TotalValue.Sub(s.Initial)
	return s
}
