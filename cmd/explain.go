package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/projector"
	"github.com/etnz/projector/agent"
	"github.com/etnz/projector/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type explainCmd struct {
	model  string
	target float64
}

func (*explainCmd) Name() string     { return "explain" }
func (*explainCmd) Synopsis() string { return "ask Gemini to explain the projection in plain language" }
func (*explainCmd) Usage() string {
	return `wp explain [-model <model>] [-target <amount>] [<question>...]

  Sends the projection report to Gemini and prints its reading. An optional
  question narrows the answer, like "what if I never buy the home?".

  Requires a Gemini API key in $GEMINI_API_KEY.
`
}

func (c *explainCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "model", agent.DefaultModel, "Gemini model to use.")
	f.Float64Var(&c.target, "target", 1000000, "Net worth milestone, in year 0 money, to include in the report.")
}

func (c *explainCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := loadScenario()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scenario: %v\n", err)
		return subcommands.ExitFailure
	}
	log := newLogger()
	proj, err := s.Run(projector.WithLogger(log))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running scenario: %v\n", err)
		return subcommands.ExitFailure
	}
	report := renderer.ProjectionMarkdown(s, proj, renderer.ReportOptions{Target: c.target})

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	advisor := agent.NewAdvisor(c.model, proj, s.Portfolio().Brackets, report)
	log.Debug().Str("model", advisor.ModelName).Str("projection", proj.ID).Msg("asking for an explanation")
	answer, err := agent.Explain(ctx, client, advisor, strings.Join(f.Args(), " "))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error explaining projection:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(answer)
	return subcommands.ExitSuccess
}
