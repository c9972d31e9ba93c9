package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/etnz/stocksim"
	"github.com/etnz/stocksim/metrics"
	"github.com/etnz/stocksim/renderer"
	"github.com/google/subcommands"
)

const invalidOption = "Invalid option. Please try again."

// Session is an interactive trading session over a ledger.
//
// Every input line is either a menu number or a session command, dispatched
// through a subcommands.Commander with the *Session as its only argument.
type Session struct {
	Ledger  *stocksim.Ledger
	Clock   func() time.Time // time trades are executed at
	Metrics *metrics.Metrics // may be nil
	Plain   bool             // print raw markdown

	in   *bufio.Scanner
	out  io.Writer
	done bool

	flags     *flag.FlagSet
	commander *subcommands.Commander
}

// NewSession creates a session reading commands from in and printing to out.
func NewSession(l *stocksim.Ledger, in io.Reader, out io.Writer) *Session {
	s := &Session{
		Ledger: l,
		Clock:  time.Now,
		in:     bufio.NewScanner(in),
		out:    out,
	}
	s.flags = flag.NewFlagSet("tsim", flag.ContinueOnError)
	s.flags.SetOutput(out)
	s.commander = subcommands.NewCommander(s.flags, "tsim")
	s.commander.Output = out
	s.commander.Error = out

	s.commander.Register(&marketCmd{}, "market")
	s.commander.Register(&portfolioCmd{}, "market")
	s.commander.Register(&statusCmd{}, "market")
	s.commander.Register(&tickCmd{}, "market")

	s.commander.Register(&tradeCmd{action: stocksim.ActionBuy}, "trading")
	s.commander.Register(&tradeCmd{action: stocksim.ActionSell}, "trading")
	s.commander.Register(&historyCmd{}, "trading")
	s.commander.Register(&exportCmd{}, "trading")

	s.commander.Register(s.commander.HelpCommand(), "")
	s.commander.Register(&topicCmd{}, "")
	s.commander.Register(&exitCmd{}, "")
	return s
}

// Run prints the menu and executes input lines until exit or the end of the input.
func (s *Session) Run(ctx context.Context) error {
	for !s.done {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.printMarkdown(renderer.Menu())
		line, ok := s.prompt("Select option: ")
		if !ok {
			return s.in.Err()
		}
		s.choose(ctx, line)
	}
	return nil
}

// choose executes a menu number, or line as a command.
func (s *Session) choose(ctx context.Context, line string) subcommands.ExitStatus {
	switch strings.TrimSpace(line) {
	case "1":
		return s.Exec(ctx, "market")
	case "2":
		return s.Exec(ctx, "portfolio")
	case "3":
		return s.promptTrade(stocksim.ActionBuy)
	case "4":
		return s.promptTrade(stocksim.ActionSell)
	case "5":
		return s.Exec(ctx, "history")
	case "6":
		return s.Exec(ctx, "tick")
	case "7":
		return s.Exec(ctx, "exit")
	default:
		return s.Exec(ctx, line)
	}
}

// Exec executes a single command line.
func (s *Session) Exec(ctx context.Context, line string) subcommands.ExitStatus {
	args := strings.Fields(line)
	if len(args) == 0 {
		return subcommands.ExitSuccess
	}
	args[0] = strings.ToLower(args[0])
	if !s.has(args[0]) {
		fmt.Fprintln(s.out, invalidOption)
		return subcommands.ExitUsageError
	}
	if err := s.flags.Parse(args); err != nil {
		return subcommands.ExitUsageError
	}
	return s.commander.Execute(ctx, s)
}

// Done reports whether the session was exited.
func (s *Session) Done() bool { return s.done }

// has reports whether name is a session command.
func (s *Session) has(name string) bool {
	found := false
	s.commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			found = true
		}
	})
	return found
}

// prompt prints msg and reads the next input line.
func (s *Session) prompt(msg string) (string, bool) {
	fmt.Fprint(s.out, msg)
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

// promptTrade asks for the symbol and the quantity, then trades.
func (s *Session) promptTrade(action stocksim.Action) subcommands.ExitStatus {
	symbol, ok := s.prompt("Enter stock symbol: ")
	if !ok {
		return subcommands.ExitFailure
	}
	quantity, ok := s.prompt("Enter quantity: ")
	if !ok {
		return subcommands.ExitFailure
	}
	return s.trade(action, symbol, quantity)
}

// trade executes a buy or a sell at the session clock and prints the outcome.
func (s *Session) trade(action stocksim.Action, symbol, quantity string) subcommands.ExitStatus {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	quantity = strings.TrimSpace(quantity)
	// an unparsable quantity is traded as zero so the ledger checks still run in order.
	q, perr := stocksim.ParseQuantity(quantity)

	now := s.Clock()
	var tx stocksim.Transaction
	var err error
	switch action {
	case stocksim.ActionBuy:
		tx, err = s.Ledger.Buy(symbol, q, now)
	case stocksim.ActionSell:
		tx, err = s.Ledger.Sell(symbol, q, now)
	}
	usage := perr != nil && errors.Is(err, stocksim.ErrInvalidQuantity)
	if usage {
		err = fmt.Errorf("%w: %q is not a number", stocksim.ErrInvalidQuantity, quantity)
	}
	s.Metrics.ObserveTrade(action, err)
	if err != nil {
		fmt.Fprintln(s.out, renderer.Rejection(err))
		if usage {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}
	s.Metrics.ObserveLedger(s.Ledger, now)
	fmt.Fprintln(s.out, renderer.Trade(tx))
	return subcommands.ExitSuccess
}

func (s *Session) printMarkdown(md string) { printMarkdown(s.out, md, s.Plain) }

// sessionOf returns the session passed to a command's Execute.
func sessionOf(args []interface{}) *Session {
	if len(args) == 0 {
		return nil
	}
	s, _ := args[0].(*Session)
	return s
}
