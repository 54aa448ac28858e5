package cmd

import (
	"flag"

	"github.com/etnz/projector/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete handles shell completion for the program name. It is a no-op
// unless the shell asks for completions, or COMP_INSTALL=1 / COMP_UNINSTALL=1
// is set to install the completion in the user's shell.
func Complete(name string) {
	completion().Complete(name)
}

func completion() *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(flag.CommandLine),
	}
	for _, g := range groups() {
		for _, c := range g.commands {
			fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(fs)
			root.Sub[c.Name()] = &complete.Command{Flags: flagPredictors(fs)}
		}
	}
	if topics, err := docs.GetAllTopics(); err == nil {
		root.Sub["topic"].Args = predict.Set(topics)
	}
	for _, name := range []string{"help", "flags", "commands"} {
		root.Sub[name] = &complete.Command{}
	}
	return root
}

// flagPredictors predicts flag values: files for paths, nothing for switches
// and free values.
func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	res := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		switch f.Name {
		case "scenario":
			res[f.Name] = predict.Files("*.json")
		case "o":
			res[f.Name] = predict.Files("*")
		case "currency":
			res[f.Name] = predict.Set{"USD", "EUR", "GBP", "JPY", "CHF", "CAD"}
		default:
			res[f.Name] = predict.Nothing
		}
	})
	return res
}
