package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/paydown"
)

func testTables(t *testing.T) (paydown.Loan, paydown.Money, *paydown.Table, *paydown.Table) {
	t.Helper()

	loan := paydown.Loan{
		Principal:  paydown.M(1200, "USD"),
		AnnualRate: 0.12,
		Payment:    paydown.M(103, "USD"),
	}
	excess := paydown.M(50, "USD")

	var returns paydown.Returns
	for _, on := range paydown.ScheduleDates(paydown.NewDate(2024, time.January, 1), 29) {
		returns.Append(on, 0)
	}

	concomitant, err := paydown.ConcomitantPayout(&returns, loan, excess)
	if err != nil {
		t.Fatalf("ConcomitantPayout() unexpected error = %v", err)
	}
	debtFirst, err := paydown.DebtFirstPayout(&returns, loan, excess)
	if err != nil {
		t.Fatalf("DebtFirstPayout() unexpected error = %v", err)
	}
	return loan, excess, concomitant, debtFirst
}

func TestCompareMarkdown(t *testing.T) {
	loan, excess, concomitant, debtFirst := testTables(t)

	got := CompareMarkdown(loan, excess, concomitant, debtFirst)

	for _, want := range []string{
		"Payoff Strategy Comparison",
		"Verdict",
		"Concomitant Payout",
		"Debt First Payout",
		"Loan Balance",
		"2024-01-31", // the first period appears in both schedules
	} {
		if !strings.Contains(got, want) {
			t.Errorf("CompareMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestStrategyMarkdown(t *testing.T) {
	_, _, concomitant, _ := testTables(t)

	got := StrategyMarkdown("Concomitant Payout", concomitant)
	if !strings.Contains(got, "## Concomitant Payout") {
		t.Errorf("StrategyMarkdown() missing title in:\n%s", got)
	}
	// One row per merged period, plus header and separator.
	if rows := strings.Count(got, "\n|"); rows < concomitant.Len() {
		t.Errorf("StrategyMarkdown() has %d table lines, want at least %d", rows, concomitant.Len())
	}
}

func TestPathMarkdown(t *testing.T) {
	var returns paydown.Returns
	dates := paydown.ScheduleDates(paydown.NewDate(2024, time.January, 1), 2)
	prices := []float64{100, 110, 99}
	returns.Append(dates[0], 0)
	returns.Append(dates[1], 0.1)
	returns.Append(dates[2], -0.1)

	got := PathMarkdown("Synthetic GBM Path", &returns, prices)
	for _, want := range []string{"Synthetic GBM Path", "2024-02-29", "+10.00%", "-10.00%"} {
		if !strings.Contains(got, want) {
			t.Errorf("PathMarkdown() missing %q in:\n%s", want, got)
		}
	}
}
