// Package cmd implements the CLI application of the stock trading simulator.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/stocksim"
	"github.com/etnz/stocksim/config"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander, cfg *config.Config, log *slog.Logger) {
	c.Register(&playCmd{cfg: cfg, log: log}, "")
	c.Register(&quotesCmd{cfg: cfg, log: log}, "")
	c.Register(&topicCmd{}, "")
}

// Completion returns the shell completion of the registered subcommands.
func Completion() *complete.Command {
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"play": {
				Flags: map[string]complete.Predictor{
					"seed":    predict.Something,
					"at":      predict.Something,
					"catalog": predict.Files("*.json"),
					"plain":   predict.Nothing,
				},
			},
			"quotes": {
				Flags: map[string]complete.Predictor{
					"seed":    predict.Something,
					"n":       predict.Something,
					"catalog": predict.Files("*.json"),
					"plain":   predict.Nothing,
				},
			},
			"topic": {
				Flags: map[string]complete.Predictor{"plain": predict.Nothing},
				Args:  predict.Set{"*", "trading", "market", "configuration", "export"},
			},
			"help": {
				Args: predict.Set{"play", "quotes", "topic"},
			},
		},
	}
}

// newLedger creates a ledger from the configuration, overridden by the command flags.
func newLedger(cfg *config.Config, seed uint64, catalog string, log *slog.Logger) (*stocksim.Ledger, error) {
	c := *cfg
	c.Seed = seed
	c.Catalog = catalog
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	if log != nil {
		opts = append(opts, stocksim.WithLogger(log))
	}
	return stocksim.New(opts...)
}

// printMarkdown renders md for the terminal, or writes it as is if plain.
func printMarkdown(w io.Writer, md string, plain bool) {
	if !plain {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
		if err == nil {
			if out, err := r.Render(md); err == nil {
				md = out
			}
		}
	}
	if !strings.HasSuffix(md, "\n") {
		md += "\n"
	}
	fmt.Fprint(w, md)
}
