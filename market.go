package stocksim

import (
	"errors"
	"fmt"
	"iter"
)

// Instrument is a tradable stock with a simulated price.
type Instrument struct {
	Symbol     string
	Name       string
	Price      Money   // current price
	Previous   Money   // price before the last tick
	Volatility float64 // maximum fractional swing per tick, 0.02 is ±2%
}

// NewInstrument creates an instrument whose previous price equals its price.
func NewInstrument(symbol, name string, price Money, volatility float64) Instrument {
	return Instrument{Symbol: symbol, Name: name, Price: price, Previous: price, Volatility: volatility}
}

// Validate checks the instrument definition.
func (i Instrument) Validate() error {
	if i.Symbol == "" {
		return errors.New("instrument symbol is missing")
	}
	if !i.Price.IsPositive() {
		return fmt.Errorf("instrument %s price must be positive, got %v", i.Symbol, i.Price)
	}
	if i.Volatility < 0 {
		return fmt.Errorf("instrument %s volatility must not be negative, got %v", i.Symbol, i.Volatility)
	}
	return nil
}

// Change returns the price change since the previous tick.
func (i Instrument) Change() Percent { return i.Price.Ratio(i.Previous) }

// DefaultCatalog returns the stocks the simulator starts with.
func DefaultCatalog(currency string) []Instrument {
	price := func(v float64) Money { return M(v, currency) }
	return []Instrument{
		NewInstrument("AAPL", "Apple Inc.", price(185.00), 0.02),
		NewInstrument("GOOGL", "Alphabet Inc.", price(145.50), 0.018),
		NewInstrument("MSFT", "Microsoft Corp.", price(420.00), 0.015),
		NewInstrument("AMZN", "Amazon.com Inc.", price(180.00), 0.022),
		NewInstrument("TSLA", "Tesla Inc.", price(175.00), 0.025),
		NewInstrument("NFLX", "Netflix Inc.", price(620.00), 0.02),
		NewInstrument("META", "Meta Platforms", price(485.00), 0.019),
		NewInstrument("NVDA", "NVIDIA Corp.", price(950.00), 0.023),
	}
}

// Market holds the instrument catalog in declaration order.
type Market struct {
	instruments []*Instrument
	index       map[string]*Instrument
}

// NewMarket returns a new empty market.
func NewMarket() *Market {
	return &Market{
		instruments: make([]*Instrument, 0),
		index:       make(map[string]*Instrument),
	}
}

// Add declares an instrument. Symbols are unique.
func (m *Market) Add(inst Instrument) error {
	if err := inst.Validate(); err != nil {
		return err
	}
	if m.Has(inst.Symbol) {
		return fmt.Errorf("instrument %q is already defined", inst.Symbol)
	}
	p := &inst
	m.instruments = append(m.instruments, p)
	m.index[inst.Symbol] = p
	return nil
}

// Has reports whether the symbol is listed.
func (m *Market) Has(symbol string) bool {
	_, ok := m.index[symbol]
	return ok
}

// Get returns the instrument for symbol, or nil if unknown.
func (m *Market) Get(symbol string) *Instrument { return m.index[symbol] }

// Len returns the number of instruments.
func (m *Market) Len() int { return len(m.instruments) }

// All iterates over instruments in declaration order.
func (m *Market) All() iter.Seq[*Instrument] {
	return func(yield func(*Instrument) bool) {
		for _, inst := range m.instruments {
			if !yield(inst) {
				return
			}
		}
	}
}

// Symbols iterates over the symbols in declaration order.
func (m *Market) Symbols() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, inst := range m.instruments {
			if !yield(inst.Symbol) {
				return
			}
		}
	}
}
