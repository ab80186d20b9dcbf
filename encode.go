package payrun

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file persists accounts as JSON for the disk-backed store. The format
// is one object per account, with the pending log as an array of tagged
// operation objects, e.g.
//
//	{"id":7,"available":25,"held":0,"total":25,"locked":false,
//	 "log":[{"op":"deposit","tx":1,"amount":100}]}
//
// Decoding identifies each op by its "op" tag first, then unmarshals the
// matching concrete struct.

// EncodeAccount serializes an account, including its pending log.
func EncodeAccount(a *Account) ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", a.ID)
	w.Append("available", a.Available)
	w.Append("held", a.Held)
	w.Append("total", a.Total)
	w.Append("locked", a.Locked)
	w.Optional("inDispute", a.InDispute)
	w.Optional("lastProcessed", a.LastProcessed)
	if len(a.Log) > 0 {
		w.Append("log", a.Log)
	}
	return w.MarshalJSON()
}

// DecodeAccount is the inverse of EncodeAccount.
func DecodeAccount(raw []byte) (*Account, error) {
	var ja struct {
		ID            ClientID          `json:"id"`
		Available     decimal.Decimal   `json:"available"`
		Held          decimal.Decimal   `json:"held"`
		Total         decimal.Decimal   `json:"total"`
		Locked        bool              `json:"locked"`
		InDispute     bool              `json:"inDispute"`
		LastProcessed TxID              `json:"lastProcessed"`
		Log           []json.RawMessage `json:"log"`
	}
	if err := json.Unmarshal(raw, &ja); err != nil {
		return nil, fmt.Errorf("not a valid account record: %w", err)
	}
	a := &Account{
		ID:            ja.ID,
		Available:     ja.Available,
		Held:          ja.Held,
		Total:         ja.Total,
		Locked:        ja.Locked,
		InDispute:     ja.InDispute,
		LastProcessed: ja.LastProcessed,
	}
	for _, rawOp := range ja.Log {
		op, err := decodeOp(rawOp)
		if err != nil {
			return nil, err
		}
		a.Log = append(a.Log, op)
	}
	return a, nil
}

// decodeOp decodes a single tagged operation object.
func decodeOp(raw json.RawMessage) (TransactionOp, error) {
	var identifier struct {
		Op OpType `json:"op"`
	}
	if err := json.Unmarshal(raw, &identifier); err != nil {
		return nil, fmt.Errorf("could not identify op in %q: %w", string(raw), err)
	}

	var moving struct {
		Tx     TxID            `json:"tx"`
		Amount decimal.Decimal `json:"amount"`
	}
	switch identifier.Op {
	case OpDeposit:
		if err := json.Unmarshal(raw, &moving); err != nil {
			return nil, err
		}
		return NewDeposit(moving.Tx, moving.Amount), nil
	case OpWithdrawal:
		if err := json.Unmarshal(raw, &moving); err != nil {
			return nil, err
		}
		return NewWithdraw(moving.Tx, moving.Amount), nil
	case OpDispute:
		if err := json.Unmarshal(raw, &moving); err != nil {
			return nil, err
		}
		return NewDispute(moving.Tx), nil
	case OpResolve:
		if err := json.Unmarshal(raw, &moving); err != nil {
			return nil, err
		}
		return NewResolve(moving.Tx), nil
	case OpChargeback:
		if err := json.Unmarshal(raw, &moving); err != nil {
			return nil, err
		}
		return NewChargeback(moving.Tx), nil
	default:
		return nil, fmt.Errorf("unknown op type %q", identifier.Op)
	}
}
