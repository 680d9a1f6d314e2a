// Package renderer builds the markdown reports of the pds command line tool.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/paydown"
	md "github.com/nao1215/markdown"
)

// StrategyMarkdown renders one merged strategy outcome to a markdown string.
func StrategyMarkdown(title string, t *paydown.Table) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2(title)
	doc.Table(strategyTable(t))

	return doc.String()
}

// CompareMarkdown renders both strategy outcomes side by side, headed by the
// simulation terms and a short verdict.
func CompareMarkdown(loan paydown.Loan, excess paydown.Money, concomitant, debtFirst *paydown.Table) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Payoff Strategy Comparison")
	doc.PlainText(fmt.Sprintf("Loan: %s at %s, paying %s monthly, investing %s extra.",
		loan.Principal, loan.AnnualRate, loan.Payment, excess))

	doc.H2("Verdict")
	verdict := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Strategy", "Debt Retired", "Final Investment"},
		Rows: [][]string{
			verdictRow("Concomitant", concomitant),
			verdictRow("Debt First", debtFirst),
		},
	}
	doc.Table(verdict)

	doc.H2("Concomitant Payout")
	doc.Table(strategyTable(concomitant))
	doc.H2("Debt First Payout")
	doc.Table(strategyTable(debtFirst))

	return doc.String()
}

func verdictRow(name string, t *paydown.Table) []string {
	payoff := "-"
	if on, ok := t.PayoffDate(); ok {
		payoff = on.String()
	}
	return []string{name, payoff, t.FinalValue().String()}
}

func strategyTable(t *paydown.Table) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Loan Balance", "Payment", "Investment"},
		Rows:   [][]string{},
	}
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)
		table.Rows = append(table.Rows, []string{
			row.Date.String(),
			row.LoanBalance.String(),
			row.Payment.SignedString(),
			row.InvValue.String(),
		})
	}
	return table
}
