package paydown

import (
	"errors"
	"fmt"
)

// ErrInsufficientPeriods reports a return series shorter than the number of
// periods needed to retire the debt.
var ErrInsufficientPeriods = errors.New("not enough investment periods")

// Row is one period of a merged strategy outcome.
type Row struct {
	Date        Date
	LoanBalance Money // remaining debt balance, 0 once retired
	Payment     Money // debt payment made this period
	InvValue    Money // investment account value
}

// Table is the outer join of an amortization schedule and a compounding
// schedule on their shared period index, absent values filled with 0.
type Table struct {
	rows []Row
}

// Len returns the number of periods in the table.
func (t *Table) Len() int { return len(t.rows) }

// Row returns the i-th row in chronological order.
func (t *Table) Row(i int) Row { return t.rows[i] }

// PayoffDate returns the period on which the debt is retired: the last
// period with a non-zero payment.
func (t *Table) PayoffDate() (Date, bool) {
	for i := len(t.rows) - 1; i >= 0; i-- {
		if !t.rows[i].Payment.IsZero() {
			return t.rows[i].Date, true
		}
	}
	return Date{}, false
}

// FinalValue returns the investment account value on the last period.
func (t *Table) FinalValue() Money {
	if len(t.rows) == 0 {
		return Money{}
	}
	return t.rows[len(t.rows)-1].InvValue
}

// ConcomitantPayout simulates paying the debt at its nominal payment while
// investing 'excess' concomitantly. Once the debt is retired, the freed-up
// nominal payment is invested as well.
//
// The return series must be longer than the loan's payoff horizon.
func ConcomitantPayout(returns *Returns, loan Loan, excess Money) (*Table, error) {
	months, err := loan.MonthsToPayoff()
	if err != nil {
		return nil, err
	}
	if returns.Len() <= months {
		return nil, fmt.Errorf("debt needs %d months to retire, got %d periods: %w", months, returns.Len(), ErrInsufficientPeriods)
	}

	sched, err := loan.Amortize(returns.First())
	if err != nil {
		return nil, err
	}

	// While the debt is serviced, only the excess is invested. On the final
	// debt period the unspent remainder of the clipped payment is invested
	// too, along with a full nominal payment that is now free. Afterwards the
	// whole cash flow goes to the investment.
	during := loan.Payment.Add(excess)
	last := loan.Payment.Sub(sched.LastPayment()).Add(excess).Add(loan.Payment)
	after := loan.Payment.Add(loan.Payment).Add(excess)

	var contributions Series
	for i, on := range returns.days {
		switch {
		case i < sched.Len()-1:
			contributions.Append(on, during)
		case i == sched.Len()-1:
			contributions.Append(on, last)
		default:
			contributions.Append(on, after)
		}
	}

	investment, err := Compound(&contributions, returns)
	if err != nil {
		return nil, err
	}
	return merge(sched, &investment), nil
}

// DebtFirstPayout simulates retiring the debt as fast as possible with the
// full available cash flow (twice the nominal payment plus the excess), then
// investing that same cash flow once the debt is gone.
//
// The return series must be longer than the nominal payoff horizon.
func DebtFirstPayout(returns *Returns, loan Loan, excess Money) (*Table, error) {
	months, err := loan.MonthsToPayoff()
	if err != nil {
		return nil, err
	}
	if returns.Len() <= months {
		return nil, fmt.Errorf("debt needs %d months to retire, got %d periods: %w", months, returns.Len(), ErrInsufficientPeriods)
	}

	cashFlow := loan.Payment.Add(loan.Payment).Add(excess)
	accelerated := Loan{Principal: loan.Principal, AnnualRate: loan.AnnualRate, Payment: cashFlow}
	sched, err := accelerated.Amortize(returns.First())
	if err != nil {
		return nil, err
	}

	// Nothing is invested until the payoff period. On the payoff period only
	// the shortfall between the nominal cash flow and the clipped last debt
	// payment is left to invest; afterwards the full cash flow is.
	first := loan.Payment.Sub(sched.LastPayment()).Add(excess)

	var contributions Series
	for i := sched.Len() - 1; i < returns.Len(); i++ {
		on := returns.days[i]
		if i == sched.Len()-1 {
			contributions.Append(on, first)
		} else {
			contributions.Append(on, cashFlow)
		}
	}

	sub := returns.From(contributions.First())
	investment, err := Compound(&contributions, &sub)
	if err != nil {
		return nil, err
	}
	return merge(sched, &investment), nil
}

// merge outer-joins an amortization schedule and a compounding schedule on
// their period index, filling absent values with 0.
func merge(sched *AmortizationSchedule, investment *Series) *Table {
	zero := M(0, sched.balances[0].Currency())
	t := &Table{}
	for _, on := range mergeDates(sched.dates, investment.days) {
		row := Row{Date: on, LoanBalance: zero, Payment: zero, InvValue: zero}
		if balance, payment, ok := sched.Get(on); ok {
			row.LoanBalance, row.Payment = balance, payment
		}
		if value, ok := investment.Get(on); ok {
			row.InvValue = value
		}
		t.rows = append(t.rows, row)
	}
	return t
}
