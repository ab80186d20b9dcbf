package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cholcombe973/payrun"
	"github.com/google/subcommands"
)

type generateCmd struct {
	size   int64
	seed   uint64
	output string
}

func (*generateCmd) Name() string     { return "generate" }
func (*generateCmd) Synopsis() string { return "generate a pseudo-random transaction file" }
func (*generateCmd) Usage() string {
	return `prun generate [-size <bytes>] [-seed <n>] [-o <file>]

  Emits pseudo-random transaction records for fuzzing and load testing. The
  output is deterministic for a given seed. Size it above the host's memory
  to exercise the on-disk store.
`
}

func (p *generateCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&p.size, "size", 1<<20, "Approximate size of the generated file, in bytes.")
	f.Uint64Var(&p.seed, "seed", 42, "Seed of the pseudo-random generator.")
	f.StringVar(&p.output, "o", "", "Write records to this file instead of stdout.")
}

func (p *generateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	out := os.Stdout
	if p.output != "" {
		var err error
		out, err = os.Create(p.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output %q: %v\n", p.output, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}

	if err := payrun.Generate(out, p.size, p.seed); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
