package cmd

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/etnz/stocksim/config"
	"github.com/etnz/stocksim/renderer"
	"github.com/google/subcommands"
)

// quotesCmd holds the flags for the 'quotes' subcommand.
type quotesCmd struct {
	cfg *config.Config
	log *slog.Logger

	seed    uint64
	ticks   int
	catalog string
	plain   bool
}

func (*quotesCmd) Name() string     { return "quotes" }
func (*quotesCmd) Synopsis() string { return "print the market after simulated updates" }
func (*quotesCmd) Usage() string {
	return `tsim quotes [-seed <n>] [-n <ticks>] [-catalog <file>] [-plain]

  Prints the catalog quotes after n simulated market updates.
  With the same seed, the quotes are the same.
`
}

func (c *quotesCmd) SetFlags(f *flag.FlagSet) {
	f.Uint64Var(&c.seed, "seed", c.cfg.Seed, "seed of the simulated price moves, 0 seeds from the clock")
	f.IntVar(&c.ticks, "n", 0, "number of market updates to simulate")
	f.StringVar(&c.catalog, "catalog", c.cfg.Catalog, "JSON catalog of instruments, replacing the default ones")
	f.BoolVar(&c.plain, "plain", false, "print raw markdown instead of styled output")
}

func (c *quotesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticks < 0 {
		fmt.Fprintln(os.Stderr, "Error: -n must not be negative.")
		return subcommands.ExitUsageError
	}
	ledger, err := newLedger(c.cfg, c.seed, c.catalog, c.log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating the market: %v\n", err)
		return subcommands.ExitFailure
	}
	for range c.ticks {
		ledger.Tick()
	}
	printMarkdown(os.Stdout, renderer.MarketMarkdown(ledger.Market(), ledger.Hours().Status(time.Now())), c.plain)
	return subcommands.ExitSuccess
}
