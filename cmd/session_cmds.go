package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/stocksim"
	"github.com/etnz/stocksim/renderer"
	"github.com/google/subcommands"
)

type marketCmd struct{}

func (*marketCmd) Name() string     { return "market" }
func (*marketCmd) Synopsis() string { return "view the market data" }
func (*marketCmd) Usage() string {
	return `market

  Lists every instrument with its price and its change since the last update.
`
}
func (*marketCmd) SetFlags(*flag.FlagSet) {}

func (*marketCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := sessionOf(args)
	if s == nil {
		return subcommands.ExitFailure
	}
	s.printMarkdown(renderer.MarketMarkdown(s.Ledger.Market(), s.Ledger.Hours().Status(s.Clock())))
	return subcommands.ExitSuccess
}

type portfolioCmd struct{}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "view the holdings valued at current prices" }
func (*portfolioCmd) Usage() string {
	return `portfolio

  Shows the cash balance, the holdings with their average cost, market value
  and unrealized gain, and the overall gain since the start of the session.
`
}
func (*portfolioCmd) SetFlags(*flag.FlagSet) {}

func (*portfolioCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := sessionOf(args)
	if s == nil {
		return subcommands.ExitFailure
	}
	s.printMarkdown(renderer.PortfolioMarkdown(s.Ledger.Portfolio()))
	return subcommands.ExitSuccess
}

// tradeCmd is the 'buy' or the 'sell' command.
type tradeCmd struct {
	action stocksim.Action
}

func (c *tradeCmd) Name() string { return strings.ToLower(string(c.action)) }
func (c *tradeCmd) Synopsis() string {
	if c.action == stocksim.ActionSell {
		return "sell shares at the current price"
	}
	return "buy shares at the current price"
}
func (c *tradeCmd) Usage() string {
	return fmt.Sprintf(`%s <symbol> <quantity>

  Trades a whole number of shares at the current market price, during market hours.
`, c.Name())
}
func (*tradeCmd) SetFlags(*flag.FlagSet) {}

func (c *tradeCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := sessionOf(args)
	if s == nil {
		return subcommands.ExitFailure
	}
	if f.NArg() != 2 {
		fmt.Fprintf(s.out, "Usage: %s", c.Usage())
		return subcommands.ExitUsageError
	}
	return s.trade(c.action, f.Arg(0), f.Arg(1))
}

// historyCmd holds the flags for the 'history' command.
type historyCmd struct {
	symbol string
	head   int
	tail   int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "view the transaction history" }
func (*historyCmd) Usage() string {
	return `history [-s <symbol>] [-head <n>] [-tail <n>]

  Lists the executed trades in execution order.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Show only the transactions of this symbol.")
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions.")
}

func (c *historyCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := sessionOf(args)
	if s == nil {
		return subcommands.ExitFailure
	}
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(s.out, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	filter := stocksim.AcceptAll
	if c.symbol != "" {
		filter = stocksim.BySymbol(strings.ToUpper(c.symbol))
	}
	transactions := s.Ledger.Transactions(filter)

	if c.head > 0 && len(transactions) > c.head {
		transactions = transactions[:c.head]
	}
	if c.tail > 0 && len(transactions) > c.tail {
		transactions = transactions[len(transactions)-c.tail:]
	}

	s.printMarkdown(renderer.HistoryMarkdown(transactions))
	return subcommands.ExitSuccess
}

// tickCmd holds the flags for the 'tick' command.
type tickCmd struct {
	n int
}

func (*tickCmd) Name() string     { return "tick" }
func (*tickCmd) Synopsis() string { return "simulate a market update" }
func (*tickCmd) Usage() string {
	return `tick [-n <count>]

  Moves every price randomly within its volatility, n times.
`
}

func (c *tickCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.n, "n", 1, "Number of market updates.")
}

func (c *tickCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := sessionOf(args)
	if s == nil {
		return subcommands.ExitFailure
	}
	if c.n < 1 {
		fmt.Fprintln(s.out, "Error: -n must be at least 1.")
		return subcommands.ExitUsageError
	}
	for range c.n {
		s.Ledger.Tick()
		s.Metrics.ObserveTick()
	}
	s.Metrics.ObserveLedger(s.Ledger, s.Clock())
	fmt.Fprintln(s.out, "Market data updated.")
	return subcommands.ExitSuccess
}

type exportCmd struct{}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "print the transactions as JSON lines" }
func (*exportCmd) Usage() string {
	return `export

  Prints one JSON object per transaction, in execution order.
`
}
func (*exportCmd) SetFlags(*flag.FlagSet) {}

func (*exportCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := sessionOf(args)
	if s == nil {
		return subcommands.ExitFailure
	}
	if err := stocksim.EncodeTransactions(s.out, s.Ledger.Transactions()); err != nil {
		fmt.Fprintf(s.out, "Error exporting transactions: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type statusCmd struct{}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "show the market session and the balances" }
func (*statusCmd) Usage() string {
	return `status

  Shows whether the market is open, the trading hours, the cash balance and
  the total value.
`
}
func (*statusCmd) SetFlags(*flag.FlagSet) {}

func (*statusCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := sessionOf(args)
	if s == nil {
		return subcommands.ExitFailure
	}
	now := s.Clock()
	hours := s.Ledger.Hours()
	p := s.Ledger.Portfolio()
	fmt.Fprintln(s.out, hours.Status(now))
	fmt.Fprintf(s.out, "Trading hours: %s\n", hours.Session())
	fmt.Fprintf(s.out, "Cash: %v, total value: %v (%s)\n", p.Cash, p.TotalValue, p.Return().SignedString())
	s.Metrics.ObserveLedger(s.Ledger, now)
	return subcommands.ExitSuccess
}

type exitCmd struct{}

func (*exitCmd) Name() string     { return "exit" }
func (*exitCmd) Synopsis() string { return "end the session" }
func (*exitCmd) Usage() string {
	return `exit

  Ends the session, all trades are discarded.
`
}
func (*exitCmd) SetFlags(*flag.FlagSet) {}

func (*exitCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	s := sessionOf(args)
	if s == nil {
		return subcommands.ExitFailure
	}
	fmt.Fprintln(s.out, "Exiting...")
	s.done = true
	return subcommands.ExitSuccess
}
