package payrun

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"math/rand/v2"

	"github.com/shopspring/decimal"
)

// Generate writes pseudo-random test records to w until roughly targetBytes
// of row data have been produced. The output is imperfect on purpose: it is a
// fuzz feed, not a well-formed scenario. Disputes and resolves reference the
// transaction before the most recent dispute, so many of them resolve to
// nothing and exercise the abort path. The client id rolls over every 1000
// transactions. Output is deterministic for a given seed.
func Generate(w io.Writer, targetBytes int64, seed uint64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"type", "client", "tx", "amount"}); err != nil {
		return err
	}

	rng := rand.New(rand.NewPCG(seed, seed))
	types := []OpType{OpDeposit, OpWithdrawal, OpDispute, OpResolve}

	var (
		tx           uint32 = 1
		disputedTx   uint32
		client       uint16 = 1
		bytesWritten int64
	)
	for bytesWritten <= targetBytes {
		if tx == math.MaxUint32 {
			break
		}
		if tx%1000 == 0 {
			client++
		}
		opType := types[rng.IntN(len(types))]
		refTx := tx
		if opType == OpDispute {
			disputedTx = tx - 1
		}
		if opType == OpDispute || opType == OpResolve {
			refTx = disputedTx
		}
		amount := decimal.NewFromFloat(rng.Float64()).Round(maxFractionalDigits)

		row := []string{
			string(opType),
			fmt.Sprintf("%d", client),
			fmt.Sprintf("%d", refTx),
			amount.String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
		for _, f := range row {
			bytesWritten += int64(len(f)) + 1
		}
		tx++
	}
	cw.Flush()
	return cw.Error()
}
