package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/projector"
	"github.com/google/subcommands"
)

type scenarioCmd struct {
	output string
}

func (*scenarioCmd) Name() string     { return "scenario" }
func (*scenarioCmd) Synopsis() string { return "print the scenario as JSON" }
func (*scenarioCmd) Usage() string {
	return `wp scenario [-o <file>]

  Prints the scenario as JSON, the reference one unless -scenario is given.
  Use it as a starting point for your own:

    wp scenario -o mine.json
    wp -scenario mine.json project
`
}

func (c *scenarioCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Write to this file instead of stdout.")
}

func (c *scenarioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadScenario()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scenario: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.output == "" {
		if err := projector.EncodeScenario(os.Stdout, s); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	defer out.Close()
	if err := projector.EncodeScenario(out, s); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
