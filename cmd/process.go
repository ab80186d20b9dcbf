package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cholcombe973/payrun"
	"github.com/google/subcommands"
)

type processCmd struct {
	store  string
	output string
}

func (*processCmd) Name() string     { return "process" }
func (*processCmd) Synopsis() string { return "process a transaction file into account balances" }
func (*processCmd) Usage() string {
	return `prun process [-store auto|memory|disk] [-o <file>] <input.csv>

  Reads the transaction records, applies them per client account (including
  the dispute lifecycle), and writes the final balances as CSV, one row per
  client in ascending client id order.

Usage Examples:
# Write balances to stdout, picking the store from available memory.
$ prun process transactions.csv

# Force the on-disk store.
$ prun process -store disk transactions.csv
`
}

func (p *processCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.store, "store", "auto", "Account store to use: auto, memory or disk.")
	f.StringVar(&p.output, "o", "", "Write balances to this file instead of stdout.")
}

func (p *processCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one input file.")
		return subcommands.ExitUsageError
	}
	input := f.Arg(0)

	in, err := os.Open(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening input %q: %v\n", input, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	store, err := openStore(p.store, input)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	out := os.Stdout
	if p.output != "" {
		out, err = os.Create(p.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output %q: %v\n", p.output, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}

	engine := payrun.NewEngine(store)
	if err := engine.Run(payrun.ReadRecords(in), out); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
