package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/etnz/projector"
	"github.com/etnz/projector/renderer"
	json "github.com/goccy/go-json"
	"github.com/google/subcommands"
)

type projectCmd struct {
	years  int
	every  int
	target float64
	md     bool
	json   bool
	query  string
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project the net worth over the years" }
func (*projectCmd) Usage() string {
	return `wp project [-years <n>] [-every <n>] [-target <amount>] [-md | -json | -q <jsonpath>]

  Runs the scenario year by year and prints the net worth every few years,
  both nominal and deflated to year 0 money.

  Without -scenario, the reference scenario is used: a household buying a
  home with a ten year loan after four years.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.years, "years", 0, "Projection horizon in years. Overrides the scenario's.")
	f.IntVar(&c.every, "every", 0, "Interval in years between two reported years. Overrides the scenario's.")
	f.Float64Var(&c.target, "target", 0, "Print the first year the net worth reaches this amount in year 0 money.")
	f.BoolVar(&c.md, "md", false, "Print a markdown report.")
	f.BoolVar(&c.json, "json", false, "Print every year of the projection as JSON.")
	f.StringVar(&c.query, "q", "", "Print the result of a JSONPath query on the projection JSON, like '$.final.deflated'.")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.years < 0 || c.every < 0 {
		fmt.Fprintln(os.Stderr, "Error: -years and -every must not be negative")
		return subcommands.ExitUsageError
	}
	s, err := loadScenario()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scenario: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.years > 0 {
		s.Years = c.years
	}
	if c.every > 0 {
		s.ReportEvery = c.every
	}

	proj, err := s.Run(projector.WithLogger(newLogger()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running scenario: %v\n", err)
		return subcommands.ExitFailure
	}

	switch {
	case c.query != "":
		v, err := proj.Query(c.query)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		if err := writeValue(os.Stdout, v); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	case c.json:
		if err := projector.EncodeProjection(os.Stdout, proj); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	case c.md:
		printMarkdown(renderer.ProjectionMarkdown(s, proj, renderer.ReportOptions{Every: c.every, Target: c.target}))
	default:
		renderer.Console(os.Stdout, proj, c.every)
		if c.target > 0 {
			fmt.Println()
			renderer.Milestone(os.Stdout, proj, c.target)
		}
	}
	return subcommands.ExitSuccess
}

// writeValue prints a query result: scalars as is, one per line, anything
// else as indented JSON.
func writeValue(w io.Writer, v any) error {
	switch v := v.(type) {
	case string:
		_, err := fmt.Fprintln(w, v)
		return err
	case float64:
		_, err := fmt.Fprintln(w, strconv.FormatFloat(v, 'f', -1, 64))
		return err
	case bool:
		_, err := fmt.Fprintln(w, v)
		return err
	case nil:
		_, err := fmt.Fprintln(w, "null")
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
