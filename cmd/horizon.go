package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/paydown"
	"github.com/google/subcommands"
)

type horizonCmd struct {
	loan loanFlags
}

func (*horizonCmd) Name() string     { return "horizon" }
func (*horizonCmd) Synopsis() string { return "display the number of months until the debt is retired" }
func (*horizonCmd) Usage() string {
	return `pds horizon [-amount <amount>] [-rate <rate>] [-payment <payment>]

  Computes the payoff horizon of the loan: how many monthly payments it takes
  to bring the balance to zero, and how big the clipped final payment is.
`
}

func (c *horizonCmd) SetFlags(f *flag.FlagSet) {
	c.loan.register(f)
}

func (c *horizonCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	loan := c.loan.loan()

	months, err := loan.MonthsToPayoff()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	sched, err := loan.Amortize(paydown.Today())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s at %s, paying %s monthly:\n", loan.Principal, loan.AnnualRate, loan.Payment)
	fmt.Printf("retired in %d months, final payment %s\n", months, sched.LastPayment())
	return subcommands.ExitSuccess
}
