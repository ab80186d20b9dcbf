// Package renderer builds markdown views of finalized accounts for terminal
// display.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/cholcombe973/payrun"
	md "github.com/nao1215/markdown"
)

// Balances renders the finalized accounts as a markdown table. Amounts are
// formatted in the given display currency; balance math upstream is exact and
// unaffected by the formatting.
func Balances(accounts []*payrun.Account, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Account Balances")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Client", "Available", "Held", "Total", "Locked"},
	}
	locked := 0
	for _, a := range accounts {
		lockedCell := ""
		if a.Locked {
			lockedCell = "locked"
			locked++
		}
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", a.ID),
			payrun.M(a.Available, currency).String(),
			payrun.M(a.Held, currency).SignedString(),
			payrun.M(a.Total, currency).String(),
			lockedCell,
		})
	}
	doc.Table(table)

	summary := fmt.Sprintf("%d accounts", len(accounts))
	if locked > 0 {
		summary = fmt.Sprintf("%s, %d locked by chargeback", summary, locked)
	}
	doc.PlainText(summary)

	doc.Build()
	return buf.String()
}
