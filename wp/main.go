// Command wp projects the net worth of a household over the years.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/projector/cmd"
	"github.com/google/subcommands"
)

func main() {
	if err := cmd.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)
	cmd.Complete("wp")

	flag.Parse()

	if name := flag.Arg(0); name != "" && !cmd.IsCommand(name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
