// Package config loads the simulator settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/etnz/stocksim"
	"github.com/etnz/stocksim/date"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// Prefix of every environment variable, e.g. STOCKSIM_INITIAL_CASH.
const Prefix = "stocksim"

// Config is the simulator configuration.
type Config struct {
	Currency    string          `envconfig:"CURRENCY" default:"USD"`
	InitialCash decimal.Decimal `envconfig:"INITIAL_CASH" default:"10000.00"`

	MarketOpen  string      `envconfig:"MARKET_OPEN" default:"09:30"`
	MarketClose string      `envconfig:"MARKET_CLOSE" default:"16:00"`
	Timezone    string      `envconfig:"TIMEZONE" default:"Local"`
	Holidays    []date.Date `envconfig:"HOLIDAYS"` // comma separated

	Seed        uint64 `envconfig:"SEED"` // 0 seeds from the clock
	Catalog     string `envconfig:"CATALOG"`
	CatalogPath string `envconfig:"CATALOG_PATH" default:"$.instruments"`

	MetricsAddr string     `envconfig:"METRICS_ADDR"` // empty disables the endpoint
	LogLevel    slog.Level `envconfig:"LOG_LEVEL" default:"WARN"`
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	// a missing .env is fine, the environment alone is enough.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values that envconfig cannot.
func (c *Config) Validate() error {
	if money.GetCurrency(c.Currency) == nil {
		return fmt.Errorf("unknown currency %q", c.Currency)
	}
	if c.InitialCash.IsNegative() {
		return fmt.Errorf("initial cash must not be negative, got %v", c.InitialCash)
	}
	if _, err := c.Hours(); err != nil {
		return err
	}
	return nil
}

// Hours returns the configured trading calendar.
func (c *Config) Hours() (stocksim.Hours, error) {
	open, err := stocksim.ParseClock(c.MarketOpen)
	if err != nil {
		return stocksim.Hours{}, fmt.Errorf("invalid market open time: %w", err)
	}
	closing, err := stocksim.ParseClock(c.MarketClose)
	if err != nil {
		return stocksim.Hours{}, fmt.Errorf("invalid market close time: %w", err)
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return stocksim.Hours{}, fmt.Errorf("invalid market time zone: %w", err)
	}
	h := stocksim.Hours{Open: open, Close: closing, Location: loc}
	if len(c.Holidays) > 0 {
		h.Holidays = make(map[date.Date]bool, len(c.Holidays))
		for _, d := range c.Holidays {
			h.Holidays[d] = true
		}
	}
	if err := h.Validate(); err != nil {
		return stocksim.Hours{}, err
	}
	return h, nil
}

// Options returns the ledger options for this configuration.
//
// The catalog file, if any, is read here.
func (c *Config) Options() ([]stocksim.Option, error) {
	hours, err := c.Hours()
	if err != nil {
		return nil, err
	}
	opts := []stocksim.Option{
		stocksim.WithInitialCash(stocksim.M(c.InitialCash, c.Currency)),
		stocksim.WithHours(hours),
	}
	if c.Seed != 0 {
		opts = append(opts, stocksim.WithSeed(c.Seed))
	}
	if c.Catalog != "" {
		instruments, err := c.DecodeCatalog()
		if err != nil {
			return nil, err
		}
		opts = append(opts, stocksim.WithCatalog(instruments))
	}
	return opts, nil
}

// DecodeCatalog reads the configured catalog file.
func (c *Config) DecodeCatalog() ([]stocksim.Instrument, error) {
	f, err := os.Open(c.Catalog)
	if err != nil {
		return nil, fmt.Errorf("could not open catalog: %w", err)
	}
	defer f.Close()
	instruments, err := stocksim.DecodeCatalog(f, c.CatalogPath, c.Currency)
	if err != nil {
		return nil, fmt.Errorf("could not decode catalog %q: %w", c.Catalog, err)
	}
	return instruments, nil
}
