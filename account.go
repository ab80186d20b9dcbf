package payrun

import "github.com/shopspring/decimal"

// Account holds the balance state for one client, plus the ordered buffer of
// operations that have not yet been folded into the balances.
//
// The invariant Total = Available + Held holds after every applied operation.
// The log is append-only during ingestion and drained exactly once by Settle
// at finalization; after that the account is terminal for the run.
type Account struct {
	ID            ClientID
	Available     decimal.Decimal
	Held          decimal.Decimal
	Total         decimal.Decimal
	Locked        bool // permanently set by a chargeback
	InDispute     bool // advisory: a dispute was opened at some point
	LastProcessed TxID // most recently applied value-moving or chargeback op
	Log           []TransactionOp
}

// NewAccount creates a zero-balance account for the given client.
func NewAccount(id ClientID) *Account {
	return &Account{
		ID:        id,
		Available: decimal.Zero,
		Held:      decimal.Zero,
		Total:     decimal.Zero,
	}
}

// Append buffers an operation on the account. It does not touch the balances;
// only Settle does.
func (a *Account) Append(op TransactionOp) {
	a.Log = append(a.Log, op)
}

// Settle replays the buffered operation log in arrival order, mutating the
// balances in place, and clears the log. Calling Settle on an already drained
// account is a no-op.
//
// Dispute, Resolve and Chargeback look up their referenced transaction in the
// same log being replayed. If the reference is missing, or points at an op
// that carries no amount, the remaining log is dropped and replay stops for
// this account. That outcome is silent control flow, not an error.
func (a *Account) Settle() {
	log := a.Log
	a.Log = nil
	for _, op := range log {
		switch v := op.(type) {
		case Deposit:
			a.Available = a.Available.Add(v.Amount)
			a.Total = a.Total.Add(v.Amount)
			a.LastProcessed = v.ID
		case Withdraw:
			// No floor: available may go negative.
			a.Available = a.Available.Sub(v.Amount)
			a.Total = a.Total.Sub(v.Amount)
			a.LastProcessed = v.ID
		case Dispute:
			amt, ok := referencedAmount(v.ID, log)
			if !ok {
				return
			}
			a.InDispute = true
			a.Available = a.Available.Sub(amt)
			a.Held = a.Held.Add(amt)
			// Total is unchanged: the funds are held, not gone.
			a.LastProcessed = v.ID
		case Resolve:
			amt, ok := referencedAmount(v.ID, log)
			if !ok {
				return
			}
			a.Held = a.Held.Sub(amt)
			a.Available = a.Available.Add(amt)
		case Chargeback:
			amt, ok := referencedAmount(v.ID, log)
			if !ok {
				return
			}
			a.Held = a.Held.Sub(amt)
			a.Total = a.Total.Sub(amt)
			a.Locked = true
			a.LastProcessed = v.ID
		}
	}
}

// findOp returns the first operation in the log whose transaction id matches,
// regardless of its kind.
func findOp(id TxID, log []TransactionOp) (TransactionOp, bool) {
	for _, op := range log {
		if op.Ref() == id {
			return op, true
		}
	}
	return nil, false
}

// referencedAmount resolves a control op's reference: first find the entry
// with the matching id, then extract an amount from it. A match that is
// itself a control op yields no amount and counts as not found.
func referencedAmount(id TxID, log []TransactionOp) (decimal.Decimal, bool) {
	op, ok := findOp(id, log)
	if !ok {
		return decimal.Decimal{}, false
	}
	return amountOf(op)
}
