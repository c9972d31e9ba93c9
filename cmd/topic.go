package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/stocksim/docs"
	"github.com/google/subcommands"
)

// topicCmd shows the user manual, at the top level or in a session.
type topicCmd struct {
	plain bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `topic [<topic>...]

  Shows the documentation of the given topics, "*" for all of them.
  Without a topic, lists the available ones.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.plain, "plain", false, "print raw markdown instead of styled output")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	var out, errOut io.Writer = os.Stdout, os.Stderr
	plain := c.plain
	if s := sessionOf(args); s != nil {
		out, errOut = s.out, s.out
		plain = plain || s.Plain
	}

	doc, err := docs.Topics(f.Args()...)
	if err != nil {
		fmt.Fprintf(errOut, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(out, doc, plain)
	return subcommands.ExitSuccess
}
