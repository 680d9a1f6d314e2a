package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/paydown"
	"github.com/etnz/paydown/renderer"
	"github.com/google/subcommands"
)

type gbmCmd struct {
	returns returnsFlags
}

func (*gbmCmd) Name() string     { return "gbm" }
func (*gbmCmd) Synopsis() string { return "synthesize a geometric-Brownian-motion price path" }
func (*gbmCmd) Usage() string {
	return `pds gbm [-periods <n>] [-price <price>] [-vol <vol>] [-drift <drift>] [-seed <seed>]

  Generates a synthetic monthly price path and its linear returns, for use as
  a return series when historical market data is unavailable. A non-zero
  -seed makes the path reproducible.
`
}

func (c *gbmCmd) SetFlags(f *flag.FlagSet) {
	c.returns.register(f)
}

func (c *gbmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	start, err := c.returns.startDate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.returns.periods <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -periods must be positive")
		return subcommands.ExitUsageError
	}

	rng := newRand(c.returns.seed)
	prices := paydown.GBMPath(rng, float64(c.returns.periods)/12, c.returns.periods, c.returns.price0, c.returns.vol, c.returns.drift)
	returns, err := paydown.ReturnsFromPrices(paydown.ScheduleDates(start, c.returns.periods-1), prices)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PathMarkdown("Synthetic GBM Path", &returns, prices))
	return subcommands.ExitSuccess
}
