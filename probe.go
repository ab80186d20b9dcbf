package payrun

import (
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v4/mem"
)

// The fits-in-memory decision is made once, before ingestion, from two very
// rough estimates: the record count (file size over a worst-case 35 bytes per
// line, i.e. assuming every record addresses a distinct account) and how many
// account records the available memory could hold. Conservative on purpose:
// ops are much smaller than accounts.

const (
	approxLineBytes    = 35
	approxAccountBytes = 512
)

// FitsInMemory estimates whether the accounts referenced by the input file at
// path can be processed with the in-memory store, or need the disk-backed
// one. The answer is computed once per run and is stable for the whole run.
func FitsInMemory(path string) (bool, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("cannot stat input %q: %w", path, err)
	}
	vm, err := mem.VirtualMemory()
	if err != nil {
		return false, fmt.Errorf("cannot probe host memory: %w", err)
	}
	return fits(fi.Size(), vm.Available), nil
}

// fits is the pure decision: estimated accounts vs what memory can hold.
func fits(fileSize int64, availableBytes uint64) bool {
	estimatedAccounts := uint64(fileSize) / approxLineBytes
	maxAccounts := availableBytes / approxAccountBytes
	return estimatedAccounts <= maxAccounts
}
