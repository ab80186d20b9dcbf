package payrun

import (
	"encoding/csv"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// This file reads the input record format and writes the final balance rows.
// Input is CSV with a header row:
//
//	type, client, tx, amount
//
// Fields may carry surrounding whitespace. The amount column is present for
// deposits and withdrawals and may be empty for the dispute-lifecycle rows.

// maxFractionalDigits is the precision the input format allows on amounts.
const maxFractionalDigits = 4

// ReadRecords parses the record stream from r. The sequence yields one Record
// per row; a malformed row yields an error and ends the sequence, since a
// partially-read input must not produce output.
func ReadRecords(r io.Reader) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		cr := csv.NewReader(r)
		cr.TrimLeadingSpace = true
		cr.FieldsPerRecord = -1 // control rows may omit the amount column

		// Skip the header row.
		if _, err := cr.Read(); err != nil {
			if err != io.EOF {
				yield(Record{}, fmt.Errorf("cannot read header: %w", err))
			}
			return
		}

		line := 1
		for {
			line++
			fields, err := cr.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(Record{}, fmt.Errorf("line %d: %w", line, err))
				return
			}
			rec, err := parseRecord(fields)
			if err != nil {
				yield(Record{}, fmt.Errorf("line %d: %w", line, err))
				return
			}
			if !yield(rec, nil) {
				return
			}
		}
	}
}

// parseRecord converts one row's fields into a typed record.
func parseRecord(fields []string) (Record, error) {
	if len(fields) < 3 {
		return Record{}, fmt.Errorf("expected at least 3 fields, got %d", len(fields))
	}
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}

	client, err := strconv.ParseUint(fields[1], 10, 16)
	if err != nil {
		return Record{}, fmt.Errorf("invalid client id %q: %w", fields[1], err)
	}
	tx, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return Record{}, fmt.Errorf("invalid transaction id %q: %w", fields[2], err)
	}

	opType := OpType(fields[0])
	switch opType {
	case OpDeposit, OpWithdrawal:
		if len(fields) < 4 || fields[3] == "" {
			return Record{}, fmt.Errorf("%s of tx %d is missing its amount", opType, tx)
		}
		amount, err := parseAmount(fields[3])
		if err != nil {
			return Record{}, err
		}
		if opType == OpDeposit {
			return Record{Client: ClientID(client), Op: NewDeposit(TxID(tx), amount)}, nil
		}
		return Record{Client: ClientID(client), Op: NewWithdraw(TxID(tx), amount)}, nil
	case OpDispute:
		return Record{Client: ClientID(client), Op: NewDispute(TxID(tx))}, nil
	case OpResolve:
		return Record{Client: ClientID(client), Op: NewResolve(TxID(tx))}, nil
	case OpChargeback:
		return Record{Client: ClientID(client), Op: NewChargeback(TxID(tx))}, nil
	default:
		return Record{}, fmt.Errorf("unknown record type %q", fields[0])
	}
}

// parseAmount parses a decimal amount with at most 4 fractional digits.
func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if amount.Exponent() < -maxFractionalDigits {
		return decimal.Decimal{}, fmt.Errorf("amount %q has more than %d fractional digits", s, maxFractionalDigits)
	}
	return amount, nil
}

// WriteBalances writes the finalized balance rows:
//
//	client,available,held,total,locked
//
// one row per account in the order given. Callers pass accounts in ascending
// client order, so the output is reproducible whichever store backed the run.
func WriteBalances(w io.Writer, accounts []*Account) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}
	for _, a := range accounts {
		row := []string{
			strconv.FormatUint(uint64(a.ID), 10),
			a.Available.String(),
			a.Held.String(),
			a.Total.String(),
			strconv.FormatBool(a.Locked),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
