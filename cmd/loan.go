package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/projector"
	"github.com/etnz/projector/renderer"
	"github.com/google/subcommands"
)

type loanCmd struct {
	amount float64
	rate   float64
	length int
}

func (*loanCmd) Name() string     { return "loan" }
func (*loanCmd) Synopsis() string { return "compute the payments of an amortized loan" }
func (*loanCmd) Usage() string {
	return `wp loan -amount <amount> -rate <rate> -length <periods>

  Prints the constant payment of a loan, its total cost and its amortization
  schedule. The rate is per period: 0.0575 for 5.75% a year with yearly
  payments.
`
}

func (c *loanCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Borrowed amount.")
	f.Float64Var(&c.rate, "rate", 0, "Interest rate per period, like 0.0575.")
	f.IntVar(&c.length, "length", 0, "Number of periodic payments.")
}

func (c *loanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount <= 0 || c.length <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -amount and -length must be positive")
		return subcommands.ExitUsageError
	}
	if c.rate <= 0 {
		// the annuity formula divides by zero without interest
		fmt.Fprintln(os.Stderr, "Error: -rate must be positive")
		return subcommands.ExitUsageError
	}
	l := projector.NewLoan(c.amount, c.rate, c.length)
	printMarkdown(renderer.LoanMarkdown(l, currencyCode(nil)))
	return subcommands.ExitSuccess
}
