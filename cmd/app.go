// Package cmd implements the wp command line, one subcommand per file.
package cmd

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"strconv"

	"github.com/etnz/projector"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Environment variables read as defaults for the global flags. They are also
// passed to extensions.
const (
	EnvScenario = "WP_SCENARIO"
	EnvCurrency = "WP_CURRENCY"
	EnvVerbose  = "WP_VERBOSE"
	EnvLogLevel = "WP_LOG_LEVEL"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	scenarioFile = flag.String("scenario", "", "Path to a JSON scenario file. Defaults to $"+EnvScenario+", then to the built-in reference scenario.")
	currency     = flag.String("currency", "", "Currency code used to print amounts, like USD or EUR. Defaults to $"+EnvCurrency+", then to the scenario's.")
	Verbose      = flag.Bool("v", false, "Log the projection steps to stderr. Defaults to $"+EnvVerbose+".")
)

type commandGroup struct {
	name     string
	commands []subcommands.Command
}

func groups() []commandGroup {
	return []commandGroup{
		{"projection", []subcommands.Command{&projectCmd{}, &scenarioCmd{}, &explainCmd{}}},
		{"calculators", []subcommands.Command{&taxCmd{}, &loanCmd{}}},
		{"documentation", []subcommands.Command{&topicCmd{}}},
	}
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")
	for _, g := range groups() {
		for _, cmd := range g.commands {
			c.Register(cmd, g.name)
		}
	}
}

// IsCommand reports whether name is a built-in subcommand.
func IsCommand(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, g := range groups() {
		for _, cmd := range g.commands {
			if cmd.Name() == name {
				return true
			}
		}
	}
	return false
}

// LoadEnv reads the .env file of the working directory, if any. Variables
// already set in the environment win.
func LoadEnv() error {
	err := godotenv.Load()
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func scenarioPath() string {
	if *scenarioFile != "" {
		return *scenarioFile
	}
	return os.Getenv(EnvScenario)
}

func verbose() bool {
	if *Verbose {
		return true
	}
	v, _ := strconv.ParseBool(os.Getenv(EnvVerbose))
	return v
}

// currencyCode returns the currency to print amounts in. s may be nil.
func currencyCode(s *projector.Scenario) string {
	if *currency != "" {
		return *currency
	}
	if c := os.Getenv(EnvCurrency); c != "" {
		return c
	}
	if s != nil {
		return s.Currency
	}
	return ""
}

// loadScenario loads the scenario selected by the global flags, the reference
// one by default. The currency flag overrides the scenario's.
func loadScenario() (*projector.Scenario, error) {
	var s *projector.Scenario
	if path := scenarioPath(); path != "" {
		var err error
		if s, err = projector.LoadScenario(path); err != nil {
			return nil, err
		}
	} else {
		s = projector.DefaultScenario()
	}
	s.Currency = currencyCode(s)
	return s, nil
}
