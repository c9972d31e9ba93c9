// Command tsim is an interactive stock trading simulator.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/stocksim/cmd"
	"github.com/etnz/stocksim/config"
	"github.com/etnz/stocksim/logger"
	"github.com/google/subcommands"
)

func main() {
	cmd.Completion().Complete("tsim")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}
	log := logger.Init("tsim", cfg.LogLevel)

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander, cfg, log)

	flag.Parse()

	os.Exit(int(commander.Execute(context.Background())))
}
