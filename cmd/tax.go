package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/projector/renderer"
	"github.com/google/subcommands"
)

type taxCmd struct{}

func (*taxCmd) Name() string     { return "tax" }
func (*taxCmd) Synopsis() string { return "compute the income tax owed on taxable incomes" }
func (*taxCmd) Usage() string {
	return `wp tax [<amount>...]

  Prints the tax brackets of the scenario, and for each taxable income given
  as argument, the tax owed with the marginal and effective rates.
`
}

func (*taxCmd) SetFlags(f *flag.FlagSet) {}

func (*taxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amounts := make([]float64, 0, f.NArg())
	for _, arg := range f.Args() {
		a, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing amount %q: %v\n", arg, err)
			return subcommands.ExitUsageError
		}
		amounts = append(amounts, a)
	}

	s, err := loadScenario()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scenario: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TaxMarkdown(s.Portfolio().Brackets, amounts, s.Currency))
	return subcommands.ExitSuccess
}
