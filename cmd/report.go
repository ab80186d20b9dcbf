package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cholcombe973/payrun"
	"github.com/cholcombe973/payrun/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	store    string
	currency string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "process a transaction file and render a balance report" }
func (*reportCmd) Usage() string {
	return `prun report [-store auto|memory|disk] [-cur <currency>] <input.csv>

  Same computation as process, but renders the balances as a table on the
  terminal, with amounts formatted in the display currency.
`
}

func (p *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.store, "store", "auto", "Account store to use: auto, memory or disk.")
	f.StringVar(&p.currency, "cur", "USD", "Display currency for amounts.")
}

func (p *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	engine := payrun.NewEngine(store)
	for rec, err := range payrun.ReadRecords(in) {
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error reading input:", err)
			return subcommands.ExitFailure
		}
		if err := engine.Ingest(rec.Client, rec.Op); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
	}

	accounts := make([]*payrun.Account, 0, engine.Registry().Count())
	for a, err := range engine.Finalize() {
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		accounts = append(accounts, a)
	}

	printMarkdown(renderer.Balances(accounts, p.currency))
	return subcommands.ExitSuccess
}
