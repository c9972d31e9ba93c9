// Package metrics exposes the trading session activity as Prometheus metrics.
package metrics

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/etnz/stocksim"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus metrics of a trading session.
//
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	TradesTotal *prometheus.CounterVec // labels: action, outcome
	TicksTotal  prometheus.Counter
	Cash        prometheus.Gauge
	TotalValue  prometheus.Gauge
	MarketState prometheus.Gauge // 0=closed, 1=open
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		TradesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stocksim_trades_total",
			Help: "Trade requests by action and outcome (ok or the rejection reason)",
		}, []string{"action", "outcome"}),
		TicksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stocksim_ticks_total",
			Help: "Total simulated market updates",
		}),
		Cash: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "stocksim_cash",
			Help: "Cash balance in the ledger currency",
		}),
		TotalValue: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "stocksim_total_value",
			Help: "Cash plus holdings at current prices",
		}),
		MarketState: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "stocksim_market_open",
			Help: "Market session state at the last observation (0=closed, 1=open)",
		}),
	}

	reg.MustRegister(
		m.TradesTotal,
		m.TicksTotal,
		m.Cash,
		m.TotalValue,
		m.MarketState,
	)
	return m
}

// ObserveTrade counts a trade request and its outcome.
func (m *Metrics) ObserveTrade(action stocksim.Action, err error) {
	if m == nil {
		return
	}
	m.TradesTotal.WithLabelValues(string(action), stocksim.ErrorCode(err)).Inc()
}

// ObserveTick counts a market update.
func (m *Metrics) ObserveTick() {
	if m == nil {
		return
	}
	m.TicksTotal.Inc()
}

// ObserveLedger records the ledger balances and the market state at now.
func (m *Metrics) ObserveLedger(l *stocksim.Ledger, now time.Time) {
	if m == nil {
		return
	}
	s := l.Portfolio()
	m.Cash.Set(s.Cash.Decimal().InexactFloat64())
	m.TotalValue.Set(s.TotalValue.Decimal().InexactFloat64())
	if l.IsMarketOpen(now) {
		m.MarketState.Set(1)
	} else {
		m.MarketState.Set(0)
	}
}

// Server runs an HTTP server exposing /metrics.
type Server struct {
	addr string
	srv  *http.Server
	log  *slog.Logger
}

// NewServer creates a metrics server for the metrics gathered by g. A nil
// log uses the default logger.
func NewServer(addr string, g prometheus.Gatherer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))

	return &Server{
		addr: addr,
		log:  log,
		srv: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start launches the HTTP server in a goroutine.
func (s *Server) Start() {
	go func() {
		s.log.Info("metrics server listening", "addr", s.addr)
		if err := s.srv.ListenAndServe(); err != http.ErrServerClosed {
			s.log.Error("metrics server error", "err", err)
		}
	}()
}

// Stop gracefully shuts down the metrics server.
func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler { return s.srv.Handler }
