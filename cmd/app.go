// Package cmd implements the CLI application to simulate debt payoff strategies.
package cmd

import (
	"flag"
	"fmt"

	"github.com/etnz/paydown"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&compareCmd{}, "simulation")
	c.Register(&horizonCmd{}, "simulation")
	c.Register(&gbmCmd{}, "simulation")

	c.Register(&fetchCmd{}, "market data")

	c.Register(&assistCmd{}, "ai")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// loanFlags holds the loan terms shared by the simulation commands.
type loanFlags struct {
	amount   float64
	rate     float64
	payment  float64
	excess   float64
	currency string
}

func (l *loanFlags) register(f *flag.FlagSet) {
	f.Float64Var(&l.amount, "amount", 1200, "total amount of debt to be paid off")
	f.Float64Var(&l.rate, "rate", 0.12, "APR on the debt, as a fraction (0.12 is 12%)")
	f.Float64Var(&l.payment, "payment", 103, "monthly payment towards the debt")
	f.Float64Var(&l.excess, "excess", 100, "monthly investment in excess of the debt payment")
	f.StringVar(&l.currency, "currency", "USD", "currency of all amounts")
}

func (l *loanFlags) loan() paydown.Loan {
	return paydown.Loan{
		Principal:  paydown.M(l.amount, l.currency),
		AnnualRate: paydown.Percent(l.rate),
		Payment:    paydown.M(l.payment, l.currency),
	}
}

func (l *loanFlags) excessInv() paydown.Money { return paydown.M(l.excess, l.currency) }

// returnsFlags holds the flags selecting the source of the return series:
// historical prices from EODHD when a ticker is given, a synthetic GBM path
// otherwise.
type returnsFlags struct {
	ticker  string
	start   string
	periods int
	price0  float64
	vol     float64
	drift   float64
	seed    int64
}

func (r *returnsFlags) register(f *flag.FlagSet) {
	f.StringVar(&r.ticker, "s", "", "EODHD ticker to fetch historical returns for (e.g. GSPC.INDX); synthesize a GBM path when empty")
	f.StringVar(&r.start, "start", "", "start date of the simulation (defaults to today)")
	f.IntVar(&r.periods, "periods", 360, "number of monthly periods to simulate")
	f.Float64Var(&r.price0, "price", 100, "starting price of the synthetic path")
	f.Float64Var(&r.vol, "vol", 0.15, "annualized volatility of the synthetic path")
	f.Float64Var(&r.drift, "drift", 0.07, "annualized drift of the synthetic path")
	f.Int64Var(&r.seed, "seed", 0, "random seed of the synthetic path (0 means time-based)")
}

func (r *returnsFlags) startDate() (paydown.Date, error) {
	if r.start == "" {
		return paydown.Today(), nil
	}
	return paydown.ParseDate(r.start)
}

// series builds the return series from the selected source.
func (r *returnsFlags) series() (paydown.Returns, error) {
	start, err := r.startDate()
	if err != nil {
		return paydown.Returns{}, err
	}

	if r.ticker != "" {
		apiKey := paydown.EodhdApiKey()
		if apiKey == "" {
			return paydown.Returns{}, fmt.Errorf("an EODHD API key is required to fetch %s prices", r.ticker)
		}
		return paydown.FetchMonthlyReturns(apiKey, r.ticker, start, paydown.Today())
	}

	return paydown.GBMReturns(newRand(r.seed), start, r.periods, r.price0, r.vol, r.drift)
}
