// Package cmd implements the CLI application to process transaction streams
// into account balances.
package cmd

import (
	"fmt"
	"log"

	"github.com/cholcombe973/payrun"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the prun tool.
// A main package registers each of them on its commander.
var Commands = []subcommands.Command{
	&processCmd{},
	&reportCmd{},
	&generateCmd{},
	&topicCmd{},
}

// openStore builds the account store for the run. kind is one of "auto",
// "memory" or "disk"; "auto" consults the memory probe against the input
// file. The choice is made once, here, before any record is ingested.
func openStore(kind, input string) (payrun.Store, error) {
	switch kind {
	case "memory":
		return payrun.NewMemStore(), nil
	case "disk":
		return payrun.NewDiskStore()
	case "auto":
		fits, err := payrun.FitsInMemory(input)
		if err != nil {
			return nil, err
		}
		if fits {
			return payrun.NewMemStore(), nil
		}
		log.Printf("input %q is too large for memory, using the on-disk store", input)
		return payrun.NewDiskStore()
	default:
		return nil, fmt.Errorf("unknown store kind %q (want auto, memory or disk)", kind)
	}
}
