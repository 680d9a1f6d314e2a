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

type fetchCmd struct {
	ticker string
	url    string
	path   string
	from   string
	to     string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch monthly returns from a market data provider" }
func (*fetchCmd) Usage() string {
	return `pds fetch -s <ticker> [-from <date>] [-to <date>] | -url <url> -path <jsonpath> [-from <date>]

  Fetches historical prices, resamples them to business month ends and
  displays the monthly linear returns. With -s the prices come from EODHD;
  with -url any JSON endpoint can serve, the prices being extracted with a
  jsonpath expression like "$.prices[*].close".

Usage Examples:
# Monthly S&P 500 returns since 1990.
$ pds fetch -s GSPC.INDX -from 1990-01-01
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "s", "", "EODHD ticker to fetch (e.g. GSPC.INDX)")
	f.StringVar(&c.url, "url", "", "JSON endpoint to fetch prices from")
	f.StringVar(&c.path, "path", "$[*]", "jsonpath expression extracting the price array from the -url payload")
	f.StringVar(&c.from, "from", "1990-01-01", "first date to fetch")
	f.StringVar(&c.to, "to", "", "last date to fetch (defaults to today)")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if (c.ticker == "" && c.url == "") || (c.ticker != "" && c.url != "") {
		fmt.Fprintln(os.Stderr, "either -s or -url must be provided")
		return subcommands.ExitUsageError
	}

	from, err := paydown.ParseDate(c.from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -from: %v\n", err)
		return subcommands.ExitUsageError
	}
	to := paydown.Today()
	if c.to != "" {
		if to, err = paydown.ParseDate(c.to); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -to: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	var returns paydown.Returns
	var title string
	if c.ticker != "" {
		apiKey := paydown.EodhdApiKey()
		if apiKey == "" {
			fmt.Fprintln(os.Stderr, "an EODHD API key is required, see -eodhd-api-key")
			return subcommands.ExitUsageError
		}
		returns, err = paydown.FetchMonthlyReturns(apiKey, c.ticker, from, to)
		title = fmt.Sprintf("Monthly Returns for %s", c.ticker)
	} else {
		returns, err = paydown.FetchJSONReturns(c.url, c.path, from)
		title = fmt.Sprintf("Monthly Returns from %s", c.url)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching returns: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ReturnsMarkdown(title, &returns))
	return subcommands.ExitSuccess
}
