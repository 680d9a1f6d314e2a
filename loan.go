package paydown

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidLoanTerms reports loan terms under which the balance never
// decreases: the amortization recurrence would not terminate.
var ErrInvalidLoanTerms = errors.New("invalid loan terms")

// Loan describes an amortizing debt with a fixed monthly payment.
type Loan struct {
	Principal  Money
	AnnualRate Percent
	Payment    Money
}

// Validate checks the terms before any iteration begins. The payment must
// strictly exceed the first period's accrued interest, otherwise the balance
// never decreases.
func (l Loan) Validate() error {
	if !l.Principal.IsPositive() {
		return fmt.Errorf("principal %s must be positive: %w", l.Principal, ErrInvalidLoanTerms)
	}
	if l.AnnualRate < 0 {
		return fmt.Errorf("annual rate %s must not be negative: %w", l.AnnualRate, ErrInvalidLoanTerms)
	}
	if !l.Payment.IsPositive() {
		return fmt.Errorf("payment %s must be positive: %w", l.Payment, ErrInvalidLoanTerms)
	}
	interest := l.Principal.MulFloat(l.AnnualRate.Monthly())
	if !l.Payment.GreaterThan(interest) {
		return fmt.Errorf("payment %s does not cover first period interest %s: %w", l.Payment, interest, ErrInvalidLoanTerms)
	}
	return nil
}

// MonthsToPayoff returns the number of months until the balance reaches zero.
// No schedule is retained; use Amortize for the full trace.
func (l Loan) MonthsToPayoff() (int, error) {
	if err := l.Validate(); err != nil {
		return 0, err
	}
	growth := 1 + l.AnnualRate.Monthly()
	balance := l.Principal
	months := 0
	for balance.IsPositive() {
		balance = balance.MulFloat(growth).Sub(l.Payment)
		months++
	}
	return months, nil
}

// AmortizationSchedule is the period-by-period balance and payment trace of a
// loan, indexed by business-month-end dates. The balance starts at the
// principal and ends at exactly 0; the final payment is clipped to the amount
// needed to retire the balance and may be less than the nominal payment.
type AmortizationSchedule struct {
	dates    []Date
	balances []Money
	payments []Money
}

// Len returns the number of periods, including period 0 (the initial
// principal with no payment made).
func (s *AmortizationSchedule) Len() int { return len(s.dates) }

// At returns the i-th (period, remaining balance, payment made) triple.
func (s *AmortizationSchedule) At(i int) (Date, Money, Money) {
	return s.dates[i], s.balances[i], s.payments[i]
}

// LastPayment returns the clipped final payment.
func (s *AmortizationSchedule) LastPayment() Money {
	return s.payments[len(s.payments)-1]
}

// Get returns the balance and payment on 'day', or false when the schedule
// has no such period.
func (s *AmortizationSchedule) Get(day Date) (balance, payment Money, ok bool) {
	i, found := slices.BinarySearchFunc(s.dates, day, compareDates)
	if !found {
		return Money{}, Money{}, false
	}
	return s.balances[i], s.payments[i], true
}

// Amortize produces the full amortization schedule of the loan, starting at
// the business month end of 'start'.
func (l Loan) Amortize(start Date) (*AmortizationSchedule, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	growth := 1 + l.AnnualRate.Monthly()
	zero := M(0, l.Principal.Currency())

	balances := []Money{l.Principal}
	payments := []Money{zero}
	balance := l.Principal
	for balance.IsPositive() {
		balance = balance.MulFloat(growth).Sub(l.Payment)
		balances = append(balances, balance)
		payments = append(payments, l.Payment)
	}

	// The final payment only retires the remaining balance.
	last := len(balances) - 1
	payments[last] = l.Payment.Add(balances[last])
	balances[last] = zero

	return &AmortizationSchedule{
		dates:    ScheduleDates(start, last),
		balances: balances,
		payments: payments,
	}, nil
}
