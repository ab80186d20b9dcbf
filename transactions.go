package payrun

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ClientID identifies a client account. The full id domain is 16 bits.
type ClientID uint16

// TxID is a globally unique transaction id.
type TxID uint32

// OpType is a typed string for identifying transaction operations. The
// constants match the values of the "type" column in the input format.
type OpType string

// Operation types carried by input records.
const (
	OpDeposit    OpType = "deposit"
	OpWithdrawal OpType = "withdrawal"
	OpDispute    OpType = "dispute"
	OpResolve    OpType = "resolve"
	OpChargeback OpType = "chargeback"
)

// TransactionOp defines the common interface for the five operations an
// account can buffer: the two value-moving ones (Deposit, Withdraw) and the
// three control ones that drive the dispute lifecycle (Dispute, Resolve,
// Chargeback).
type TransactionOp interface {
	What() OpType // What returns the operation type (e.g. "deposit").
	Ref() TxID    // Ref returns the transaction id the op carries or references.
	Equal(TransactionOp) bool
}

// baseOp is the component common to every operation: the discriminator tag
// and the transaction id. For value-moving ops the id is the transaction's
// own; for control ops it references a prior value-moving transaction.
type baseOp struct {
	Op OpType `json:"op"`
	ID TxID   `json:"tx"`
}

func (o baseOp) What() OpType { return o.Op }
func (o baseOp) Ref() TxID    { return o.ID }

// Deposit credits funds to an account.
type Deposit struct {
	baseOp
	Amount decimal.Decimal `json:"amount"`
}

// NewDeposit creates a new Deposit operation.
func NewDeposit(tx TxID, amount decimal.Decimal) Deposit {
	return Deposit{baseOp: baseOp{Op: OpDeposit, ID: tx}, Amount: amount}
}

func (t Deposit) Equal(o TransactionOp) bool {
	v, ok := o.(Deposit)
	return ok && v.ID == t.ID && v.Amount.Equal(t.Amount)
}

// MarshalJSON implements the json.Marshaler interface for Deposit.
func (t Deposit) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseOp)
	w.Append("amount", t.Amount)
	return w.MarshalJSON()
}

// Withdraw debits funds from an account.
type Withdraw struct {
	baseOp
	Amount decimal.Decimal `json:"amount"`
}

// NewWithdraw creates a new Withdraw operation.
func NewWithdraw(tx TxID, amount decimal.Decimal) Withdraw {
	return Withdraw{baseOp: baseOp{Op: OpWithdrawal, ID: tx}, Amount: amount}
}

func (t Withdraw) Equal(o TransactionOp) bool {
	v, ok := o.(Withdraw)
	return ok && v.ID == t.ID && v.Amount.Equal(t.Amount)
}

// MarshalJSON implements the json.Marshaler interface for Withdraw.
func (t Withdraw) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseOp)
	w.Append("amount", t.Amount)
	return w.MarshalJSON()
}

// Dispute opens a claim against a prior value-moving transaction, holding its
// amount until the claim is resolved or charged back.
type Dispute struct {
	baseOp
}

// NewDispute creates a new Dispute operation referencing tx.
func NewDispute(tx TxID) Dispute {
	return Dispute{baseOp{Op: OpDispute, ID: tx}}
}

func (t Dispute) Equal(o TransactionOp) bool {
	v, ok := o.(Dispute)
	return ok && v.ID == t.ID
}

// MarshalJSON implements the json.Marshaler interface for Dispute.
func (t Dispute) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseOp)
	return w.MarshalJSON()
}

// Resolve settles a dispute in the client's favor, releasing the hold.
type Resolve struct {
	baseOp
}

// NewResolve creates a new Resolve operation referencing tx.
func NewResolve(tx TxID) Resolve {
	return Resolve{baseOp{Op: OpResolve, ID: tx}}
}

func (t Resolve) Equal(o TransactionOp) bool {
	v, ok := o.(Resolve)
	return ok && v.ID == t.ID
}

// MarshalJSON implements the json.Marshaler interface for Resolve.
func (t Resolve) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseOp)
	return w.MarshalJSON()
}

// Chargeback reverses a disputed transaction and freezes the account.
type Chargeback struct {
	baseOp
}

// NewChargeback creates a new Chargeback operation referencing tx.
func NewChargeback(tx TxID) Chargeback {
	return Chargeback{baseOp{Op: OpChargeback, ID: tx}}
}

func (t Chargeback) Equal(o TransactionOp) bool {
	v, ok := o.(Chargeback)
	return ok && v.ID == t.ID
}

// MarshalJSON implements the json.Marshaler interface for Chargeback.
func (t Chargeback) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseOp)
	return w.MarshalJSON()
}

// amountOf extracts the amount carried by a value-moving operation. Control
// ops carry no amount of their own.
func amountOf(op TransactionOp) (decimal.Decimal, bool) {
	switch v := op.(type) {
	case Deposit:
		return v.Amount, true
	case Withdraw:
		return v.Amount, true
	default:
		return decimal.Decimal{}, false
	}
}

// OpString renders an operation for diagnostics.
func OpString(op TransactionOp) string {
	if amt, ok := amountOf(op); ok {
		return fmt.Sprintf("%s tx %d for %s", op.What(), op.Ref(), amt)
	}
	return fmt.Sprintf("%s of tx %d", op.What(), op.Ref())
}
