package payrun

import (
	"bytes"
	"strings"
	"testing"
)

func TestReadRecords(t *testing.T) {
	input := `type, client, tx, amount
deposit, 1, 1, 100.0
withdrawal, 1, 2, 50.5
dispute, 1, 1,
resolve, 1, 1,
chargeback, 1, 1,
deposit,2,5,0.0001
`
	want := []Record{
		{Client: 1, Op: NewDeposit(1, d("100.0"))},
		{Client: 1, Op: NewWithdraw(2, d("50.5"))},
		{Client: 1, Op: NewDispute(1)},
		{Client: 1, Op: NewResolve(1)},
		{Client: 1, Op: NewChargeback(1)},
		{Client: 2, Op: NewDeposit(5, d("0.0001"))},
	}

	var got []Record
	for rec, err := range ReadRecords(strings.NewReader(input)) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, rec)
	}

	if len(got) != len(want) {
		t.Fatalf("read %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Client != want[i].Client || !got[i].Op.Equal(want[i].Op) {
			t.Errorf("record %d = client %d %s, want client %d %s",
				i, got[i].Client, OpString(got[i].Op), want[i].Client, OpString(want[i].Op))
		}
	}
}

func TestReadRecords_DisputeRowWithoutAmountColumn(t *testing.T) {
	input := "type, client, tx, amount\ndispute, 3, 9\n"
	for rec, err := range ReadRecords(strings.NewReader(input)) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !rec.Op.Equal(NewDispute(9)) {
			t.Errorf("got %s, want dispute of tx 9", OpString(rec.Op))
		}
	}
}

func TestReadRecords_Malformed(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"unknown type", "type, client, tx, amount\ntransfer, 1, 1, 10\n"},
		{"client out of range", "type, client, tx, amount\ndeposit, 70000, 1, 10\n"},
		{"tx not a number", "type, client, tx, amount\ndeposit, 1, abc, 10\n"},
		{"deposit without amount", "type, client, tx, amount\ndeposit, 1, 1,\n"},
		{"too many fractional digits", "type, client, tx, amount\ndeposit, 1, 1, 1.00001\n"},
		{"amount not a number", "type, client, tx, amount\ndeposit, 1, 1, ten\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var sawError bool
			for _, err := range ReadRecords(strings.NewReader(tc.input)) {
				if err != nil {
					sawError = true
				}
			}
			if !sawError {
				t.Error("expected a parse error")
			}
		})
	}
}

func TestWriteBalances(t *testing.T) {
	a := NewAccount(1)
	a.Available = d("1.5")
	a.Total = d("1.5")
	b := NewAccount(2)
	b.Held = d("3.0001")
	b.Total = d("3.0001")
	b.Locked = true

	var out bytes.Buffer
	if err := WriteBalances(&out, []*Account{a, b}); err != nil {
		t.Fatalf("WriteBalances: %v", err)
	}

	want := "client,available,held,total,locked\n" +
		"1,1.5,0,1.5,false\n" +
		"2,0,3.0001,3.0001,true\n"
	if got := out.String(); got != want {
		t.Errorf("output:\n%s\nwant:\n%s", got, want)
	}
}
