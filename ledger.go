package stocksim

import (
	"fmt"
	"log/slog"
	"maps"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultCurrency is the currency of the default ledger.
const DefaultCurrency = "USD"

// DefaultInitialCash is the cash balance of a default ledger.
var DefaultInitialCash = M(10000, DefaultCurrency)

// Holding is an owned position in one instrument.
//
// Quantity is always positive, a fully sold holding is removed.
type Holding struct {
	Symbol      string
	Quantity    Quantity
	AverageCost Money // quantity weighted mean purchase price
}

// CostBasis returns the amount paid for the position: AverageCost × Quantity.
func (h Holding) CostBasis() Money { return h.AverageCost.Mul(h.Quantity) }

// RandSource draws uniform numbers in [0, 1). *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// Ledger is a trading session: the instrument catalog, the cash balance, the
// holdings and the transaction log.
//
// All methods are safe for concurrent use, each trade is applied atomically
// at the instrument's current price.
type Ledger struct {
	mu sync.RWMutex

	market       *Market
	initial      Money
	cash         Money
	holdings     map[string]*Holding // index holdings by symbol
	transactions []Transaction       // in execution order

	hours Hours
	rand  RandSource
	newID func() string
	log   *slog.Logger
}

// Option configures a new Ledger.
type Option func(*Ledger) error

// WithInitialCash sets the starting cash balance, and the ledger currency.
func WithInitialCash(cash Money) Option {
	return func(l *Ledger) error {
		if cash.IsNegative() {
			return fmt.Errorf("initial cash must not be negative, got %v", cash)
		}
		if cash.Currency() == "" {
			return fmt.Errorf("initial cash %v has no currency", cash)
		}
		l.initial = cash
		return nil
	}
}

// WithCatalog replaces the default instruments.
func WithCatalog(instruments []Instrument) Option {
	return func(l *Ledger) error {
		market := NewMarket()
		for _, inst := range instruments {
			if err := market.Add(inst); err != nil {
				return fmt.Errorf("invalid catalog: %w", err)
			}
		}
		l.market = market
		return nil
	}
}

// WithHours sets the trading calendar.
func WithHours(h Hours) Option {
	return func(l *Ledger) error {
		if err := h.Validate(); err != nil {
			return fmt.Errorf("invalid market hours: %w", err)
		}
		l.hours = h
		return nil
	}
}

// WithRand sets the random source used by Tick.
func WithRand(r RandSource) Option {
	return func(l *Ledger) error {
		l.rand = r
		return nil
	}
}

// WithSeed seeds the random source used by Tick, for reproducible prices.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed)))
}

// WithLogger sets the logger trades and ticks are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Ledger) error {
		l.log = logger
		return nil
	}
}

// WithIDs sets the transaction ID generator.
func WithIDs(newID func() string) Option {
	return func(l *Ledger) error {
		l.newID = newID
		return nil
	}
}

// New creates a ledger with the default catalog, 10000 USD in cash, no
// holdings and an empty transaction log, then applies opts.
func New(opts ...Option) (*Ledger, error) {
	l := &Ledger{
		initial:      DefaultInitialCash,
		holdings:     make(map[string]*Holding),
		transactions: make([]Transaction, 0),
		hours:        DefaultHours(),
		newID:        uuid.NewString,
		log:          slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	if l.market == nil {
		if err := WithCatalog(DefaultCatalog(l.initial.Currency()))(l); err != nil {
			return nil, err
		}
	}
	for inst := range l.market.All() {
		if inst.Price.Currency() != l.initial.Currency() {
			return nil, fmt.Errorf("instrument %s is priced in %q, the ledger currency is %q", inst.Symbol, inst.Price.Currency(), l.initial.Currency())
		}
	}
	if l.rand == nil {
		seed := uint64(time.Now().UnixNano())
		l.rand = rand.New(rand.NewPCG(seed, seed>>1))
	}
	l.cash = l.initial
	return l, nil
}

// Currency returns the ledger currency.
func (l *Ledger) Currency() string { return l.initial.Currency() }

// InitialCash returns the cash balance the ledger started with.
func (l *Ledger) InitialCash() Money { return l.initial }

// Hours returns the trading calendar.
func (l *Ledger) Hours() Hours { return l.hours }

// Cash returns the current cash balance.
func (l *Ledger) Cash() Money {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cash
}

// Holding returns the position in symbol, false if none is held.
func (l *Ledger) Holding(symbol string) (Holding, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	h, ok := l.holdings[symbol]
	if !ok {
		return Holding{}, false
	}
	return *h, true
}

// Holdings returns all positions sorted by symbol.
func (l *Ledger) Holdings() []Holding {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.sortedHoldings()
}

func (l *Ledger) sortedHoldings() []Holding {
	symbols := slices.Sorted(maps.Keys(l.holdings))
	res := make([]Holding, 0, len(symbols))
	for _, s := range symbols {
		res = append(res, *l.holdings[s])
	}
	return res
}

// IsMarketOpen reports whether trades are accepted at now.
func (l *Ledger) IsMarketOpen(now time.Time) bool { return l.hours.IsOpen(now) }

// Transactions returns the transactions accepted by all filters, in
// execution order. The result is a copy.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) []Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	res := make([]Transaction, 0, len(l.transactions))
	for _, tx := range l.transactions {
		if accept(tx, filters) {
			res = append(res, tx)
		}
	}
	return res
}

// Buy purchases quantity shares of symbol at its current price.
//
// It fails, in this order, if the market is closed at now, the symbol is
// unknown, the quantity is not a positive whole number, or the cost exceeds
// the cash balance.
func (l *Ledger) Buy(symbol string, quantity Quantity, now time.Time) (Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	tx, err := l.buy(symbol, quantity, now)
	l.report(ActionBuy, symbol, quantity, tx, err)
	return tx, err
}

func (l *Ledger) buy(symbol string, quantity Quantity, now time.Time) (Transaction, error) {
	if !l.hours.IsOpen(now) {
		return Transaction{}, fmt.Errorf("%w: trading available %s", ErrMarketClosed, l.hours.Session())
	}
	inst := l.market.Get(symbol)
	if inst == nil {
		return Transaction{}, fmt.Errorf("%w: %s", ErrUnknownSymbol, symbol)
	}
	if !quantity.valid() {
		return Transaction{}, fmt.Errorf("%w: %v, must be a positive whole number of shares", ErrInvalidQuantity, quantity)
	}
	price := inst.Price
	cost := price.Mul(quantity)
	if cost.GreaterThan(l.cash) {
		return Transaction{}, &InsufficientFundsError{Symbol: symbol, Needed: cost, Available: l.cash}
	}

	l.cash = l.cash.Sub(cost)
	if h, ok := l.holdings[symbol]; ok {
		// (old_avg * old_qty + cost_of_new_shares) / (old_qty + new_qty)
		total := h.Quantity.Add(quantity)
		h.AverageCost = h.AverageCost.Mul(h.Quantity).Add(cost).Div(total)
		h.Quantity = total
	} else {
		l.holdings[symbol] = &Holding{Symbol: symbol, Quantity: quantity, AverageCost: price}
	}
	return l.record(ActionBuy, symbol, quantity, price, now), nil
}

// Sell sells quantity shares of symbol at its current price.
//
// It fails, in this order, if the market is closed at now, no share of
// symbol is held, the quantity is not a positive whole number, or more
// shares are requested than held.
func (l *Ledger) Sell(symbol string, quantity Quantity, now time.Time) (Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	tx, err := l.sell(symbol, quantity, now)
	l.report(ActionSell, symbol, quantity, tx, err)
	return tx, err
}

func (l *Ledger) sell(symbol string, quantity Quantity, now time.Time) (Transaction, error) {
	if !l.hours.IsOpen(now) {
		return Transaction{}, fmt.Errorf("%w: trading available %s", ErrMarketClosed, l.hours.Session())
	}
	h, ok := l.holdings[symbol]
	if !ok {
		return Transaction{}, fmt.Errorf("%w: %s", ErrNoHolding, symbol)
	}
	if !quantity.valid() {
		return Transaction{}, fmt.Errorf("%w: %v, must be a positive whole number of shares", ErrInvalidQuantity, quantity)
	}
	if h.Quantity.LessThan(quantity) {
		return Transaction{}, &InsufficientSharesError{Symbol: symbol, Requested: quantity, Held: h.Quantity}
	}

	// a held symbol is always in the catalog: instruments are never deleted.
	price := l.market.Get(symbol).Price
	l.cash = l.cash.Add(price.Mul(quantity))
	if h.Quantity.Equal(quantity) {
		delete(l.holdings, symbol)
	} else {
		h.Quantity = h.Quantity.Sub(quantity)
	}
	return l.record(ActionSell, symbol, quantity, price, now), nil
}

// record appends a transaction to the log.
func (l *Ledger) record(action Action, symbol string, quantity Quantity, price Money, now time.Time) Transaction {
	tx := Transaction{
		ID:       l.newID(),
		Time:     now,
		Action:   action,
		Symbol:   symbol,
		Quantity: quantity,
		Price:    price,
	}
	l.transactions = append(l.transactions, tx)
	return tx
}

func (l *Ledger) report(action Action, symbol string, quantity Quantity, tx Transaction, err error) {
	if err != nil {
		l.log.Debug("trade rejected", "action", action, "symbol", symbol, "quantity", quantity.String(), "reason", ErrorCode(err), "err", err)
		return
	}
	l.log.Info("trade executed", "id", tx.ID, "action", action, "symbol", symbol,
		"quantity", quantity.String(), "price", tx.Price.Fixed(), "cash", l.cash.Fixed())
}
