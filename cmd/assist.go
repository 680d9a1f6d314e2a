package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/paydown"
	"github.com/etnz/paydown/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct {
	loan    loanFlags
	returns returnsFlags
	model   string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask the AI assistant to explain a strategy comparison" }
func (*assistCmd) Usage() string {
	return `pds assist [compare flags] [-model <model>]

  Runs the same simulation as 'pds compare' and asks Gemini for a
  plain-language reading of the outcome. Requires Gemini credentials in the
  environment.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	c.loan.register(f)
	c.returns.register(f)
	f.StringVar(&c.model, "model", "gemini-2.5-flash", "Gemini model to use")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	returns, err := c.returns.series()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building return series: %v\n", err)
		return subcommands.ExitFailure
	}

	loan, excess := c.loan.loan(), c.loan.excessInv()
	concomitant, err := paydown.ConcomitantPayout(&returns, loan, excess)
	if err != nil {
		return reportError(err)
	}
	debtFirst, err := paydown.DebtFirstPayout(&returns, loan, excess)
	if err != nil {
		return reportError(err)
	}

	report := renderer.CompareMarkdown(loan, excess, concomitant, debtFirst)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	chat, err := client.Chats.Create(ctx, c.model, nil, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error starting chat:", err)
		return subcommands.ExitFailure
	}

	prompt := "You are a personal finance analyst. Below is a simulation comparing two debt payoff strategies. " +
		"Explain in a few short paragraphs which strategy comes out ahead and why, " +
		"and what assumptions the reader should keep in mind.\n\n" + report
	resp, err := chat.Send(ctx, &genai.Part{Text: prompt})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error from Gemini:", err)
		return subcommands.ExitFailure
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		fmt.Fprintln(os.Stderr, "no response from the assistant")
		return subcommands.ExitFailure
	}

	printMarkdown(resp.Candidates[0].Content.Parts[0].Text)
	return subcommands.ExitSuccess
}
