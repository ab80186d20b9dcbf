package payrun

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
)

// Record pairs an operation with the client account it addresses.
type Record struct {
	Client ClientID
	Op     TransactionOp
}

// Engine drives one run: a single ingestion pass that buffers every operation
// on its account through the selected store, then a finalization pass that
// settles each registered account and emits it.
//
// The store is chosen once, before ingestion, and injected here; the engine
// never switches backends mid-run.
type Engine struct {
	store Store
	reg   *Registry
}

// NewEngine creates an engine running against the given store.
func NewEngine(store Store) *Engine {
	return &Engine{store: store, reg: NewRegistry()}
}

// Registry exposes the set of client ids seen so far.
func (e *Engine) Registry() *Registry { return e.reg }

// Ingest buffers one operation: load or create the addressed account, append
// the op to its pending log, write the account back, and mark the client id.
// Balances are not touched here.
func (e *Engine) Ingest(client ClientID, op TransactionOp) error {
	a, err := e.store.GetOrCreate(client)
	if err != nil {
		return fmt.Errorf("loading account %d: %w", client, err)
	}
	a.Append(op)
	if err := e.store.Put(client, a); err != nil {
		return fmt.Errorf("storing account %d: %w", client, err)
	}
	e.reg.Mark(client)
	return nil
}

// Finalize settles every registered account and yields it, in ascending
// client-id order. A registered id with no stored record is an inconsistency:
// it is reported to the diagnostic log and skipped. A store failure is yielded
// as an error and ends the sequence.
func (e *Engine) Finalize() iter.Seq2[*Account, error] {
	return func(yield func(*Account, error) bool) {
		for id := range e.reg.All() {
			a, err := e.store.Get(id)
			if errors.Is(err, ErrNoAccount) {
				log.Printf("account %d is registered but missing from the store", id)
				continue
			}
			if err != nil {
				yield(nil, err)
				return
			}
			a.Settle()
			if !yield(a, nil) {
				return
			}
		}
	}
}

// Run consumes the whole record stream, then finalizes and writes the balance
// rows to w. Output is buffered until finalization has fully succeeded, so a
// backend failure produces no partial output.
func (e *Engine) Run(records iter.Seq2[Record, error], w io.Writer) error {
	for rec, err := range records {
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		if err := e.Ingest(rec.Client, rec.Op); err != nil {
			return err
		}
	}
	accounts := make([]*Account, 0, e.reg.Count())
	for a, err := range e.Finalize() {
		if err != nil {
			return err
		}
		accounts = append(accounts, a)
	}
	return WriteBalances(w, accounts)
}
