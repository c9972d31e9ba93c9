package cmd

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/etnz/stocksim/config"
	"github.com/etnz/stocksim/metrics"
	"github.com/google/subcommands"
	"github.com/prometheus/client_golang/prometheus"
)

// atLayouts are the accepted formats of the -at flag.
var atLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02 15:04"}

// playCmd holds the flags for the 'play' subcommand.
type playCmd struct {
	cfg *config.Config
	log *slog.Logger

	seed    uint64
	at      string
	catalog string
	plain   bool
}

func (*playCmd) Name() string     { return "play" }
func (*playCmd) Synopsis() string { return "start an interactive trading session" }
func (*playCmd) Usage() string {
	return `tsim play [-seed <n>] [-at <time>] [-catalog <file>] [-plain]

  Starts a trading session with the configured cash balance and catalog.
  Choose a menu option by number, or type a command; "help" lists them.
  The session state is lost on exit.
`
}

func (c *playCmd) SetFlags(f *flag.FlagSet) {
	f.Uint64Var(&c.seed, "seed", c.cfg.Seed, "seed of the simulated price moves, 0 seeds from the clock")
	f.StringVar(&c.at, "at", "", "pin the session clock to this time (2006-01-02T15:04), in the market time zone")
	f.StringVar(&c.catalog, "catalog", c.cfg.Catalog, "JSON catalog of instruments, replacing the default ones")
	f.BoolVar(&c.plain, "plain", false, "print raw markdown instead of styled output")
}

func (c *playCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := newLedger(c.cfg, c.seed, c.catalog, c.log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating the session: %v\n", err)
		return subcommands.ExitFailure
	}

	s := NewSession(ledger, os.Stdin, os.Stdout)
	s.Plain = c.plain
	if c.at != "" {
		at, err := parseAt(c.at, ledger.Hours().Location)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -at: %v\n", err)
			return subcommands.ExitUsageError
		}
		s.Clock = func() time.Time { return at }
	}

	if c.cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		s.Metrics = metrics.New(reg)
		srv := metrics.NewServer(c.cfg.MetricsAddr, reg, c.log)
		srv.Start()
		defer srv.Stop(context.Background())
	}

	if err := s.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// parseAt parses a time in one of atLayouts, in loc unless the layout has an offset.
func parseAt(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	var err error
	for _, layout := range atLayouts {
		t, perr := time.ParseInLocation(layout, s, loc)
		if perr == nil {
			return t, nil
		}
		err = perr
	}
	return time.Time{}, fmt.Errorf("invalid time %q, want format %q: %w", s, atLayouts[1], err)
}
