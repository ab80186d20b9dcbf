package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/cholcombe973/payrun/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command tree for shell completion. It runs and
// exits early when the shell asks for completions, before normal parsing.
func completion() {
	storeFlags := map[string]complete.Predictor{
		"store": predict.Set{"auto", "memory", "disk"},
	}
	c := &complete.Command{
		Sub: map[string]*complete.Command{
			"process": {
				Flags: storeFlags,
				Args:  predict.Files("*.csv"),
			},
			"report": {
				Flags: storeFlags,
				Args:  predict.Files("*.csv"),
			},
			"generate": {},
			"topic":    {Args: predict.Set{"readme", "format", "disputes", "storage"}},
		},
	}
	c.Complete("prun")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
