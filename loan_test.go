package paydown

import (
	"errors"
	"testing"
	"time"
)

func TestLoan_MonthsToPayoff(t *testing.T) {
	tests := []struct {
		name    string
		loan    Loan
		want    int
		wantErr error
	}{
		{
			name: "1200 at 1% a month paying 103",
			loan: Loan{Principal: M(1200, "USD"), AnnualRate: 0.12, Payment: M(103, "USD")},
			want: 13,
		},
		{
			name: "zero rate is plain division",
			loan: Loan{Principal: M(1200, "USD"), AnnualRate: 0, Payment: M(100, "USD")},
			want: 12,
		},
		{
			name: "single payment retires the debt",
			loan: Loan{Principal: M(500, "USD"), AnnualRate: 0.06, Payment: M(600, "USD")},
			want: 1,
		},
		{
			name:    "payment below first period interest",
			loan:    Loan{Principal: M(1000, "USD"), AnnualRate: 0.24, Payment: M(10, "USD")},
			wantErr: ErrInvalidLoanTerms,
		},
		{
			name:    "payment equal to first period interest",
			loan:    Loan{Principal: M(1000, "USD"), AnnualRate: 0.24, Payment: M(20, "USD")},
			wantErr: ErrInvalidLoanTerms,
		},
		{
			name:    "negative principal",
			loan:    Loan{Principal: M(-1, "USD"), AnnualRate: 0.12, Payment: M(103, "USD")},
			wantErr: ErrInvalidLoanTerms,
		},
		{
			name:    "negative rate",
			loan:    Loan{Principal: M(1200, "USD"), AnnualRate: -0.01, Payment: M(103, "USD")},
			wantErr: ErrInvalidLoanTerms,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.loan.MonthsToPayoff()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("MonthsToPayoff() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("MonthsToPayoff() unexpected error = %v", err)
			}
			if got != tt.want {
				t.Errorf("MonthsToPayoff() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLoan_Amortize(t *testing.T) {
	loan := Loan{Principal: M(1200, "USD"), AnnualRate: 0.12, Payment: M(103, "USD")}
	start := NewDate(2024, time.January, 1)

	sched, err := loan.Amortize(start)
	if err != nil {
		t.Fatalf("Amortize() unexpected error = %v", err)
	}

	months, err := loan.MonthsToPayoff()
	if err != nil {
		t.Fatalf("MonthsToPayoff() unexpected error = %v", err)
	}
	if got, want := sched.Len(), months+1; got != want {
		t.Errorf("Amortize() length = %d, want %d", got, want)
	}

	// Period 0 is the initial principal with no payment made.
	on, balance, payment := sched.At(0)
	if on != NewDate(2024, time.January, 31) {
		t.Errorf("first period = %v, want 2024-01-31", on)
	}
	if !balance.Equal(loan.Principal) {
		t.Errorf("initial balance = %s, want %s", balance, loan.Principal)
	}
	if !payment.IsZero() {
		t.Errorf("initial payment = %s, want 0", payment)
	}

	// The final balance is exactly 0 and the final payment is clipped.
	_, balance, payment = sched.At(sched.Len() - 1)
	if !balance.IsZero() {
		t.Errorf("final balance = %s, want 0", balance)
	}
	if !payment.LessThan(loan.Payment) {
		t.Errorf("final payment = %s, want less than %s", payment, loan.Payment)
	}
	if !payment.IsPositive() {
		t.Errorf("final payment = %s, want positive", payment)
	}

	// The balance is non-increasing all the way down to zero.
	for i := 1; i < sched.Len(); i++ {
		_, prev, _ := sched.At(i - 1)
		_, next, _ := sched.At(i)
		if next.GreaterThan(prev) {
			t.Errorf("balance increased at period %d: %s > %s", i, next, prev)
		}
	}
}

// The sum of all payments reconciles with the principal plus the interest
// accrued by the balance recurrence.
func TestLoan_Amortize_reconciles(t *testing.T) {
	loan := Loan{Principal: M(1200, "USD"), AnnualRate: 0.12, Payment: M(103, "USD")}

	sched, err := loan.Amortize(NewDate(2024, time.January, 1))
	if err != nil {
		t.Fatalf("Amortize() unexpected error = %v", err)
	}

	totalPaid := M(0, "USD")
	for i := 0; i < sched.Len(); i++ {
		_, _, payment := sched.At(i)
		totalPaid = totalPaid.Add(payment)
	}

	totalInterest := M(0, "USD")
	balance := loan.Principal
	rate := loan.AnnualRate.Monthly()
	for balance.IsPositive() {
		interest := balance.MulFloat(rate)
		totalInterest = totalInterest.Add(interest)
		balance = balance.Add(interest).Sub(loan.Payment)
	}

	if want := loan.Principal.Add(totalInterest); !totalPaid.Equal(want) {
		t.Errorf("sum of payments = %s, want principal + interest = %s", totalPaid, want)
	}
}

func TestLoan_Amortize_invalidTerms(t *testing.T) {
	loan := Loan{Principal: M(1000, "USD"), AnnualRate: 0.24, Payment: M(10, "USD")}
	if _, err := loan.Amortize(NewDate(2024, time.January, 1)); !errors.Is(err, ErrInvalidLoanTerms) {
		t.Errorf("Amortize() error = %v, want %v", err, ErrInvalidLoanTerms)
	}
}
