package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/brickmgr/brick"
	"github.com/brickmgr/brick/renderer"
)

type summaryCmd struct {
	date   string
	months int
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "business summary with monthly profit rollup" }
func (*summaryCmd) Usage() string {
	return `bkm summary [-d <date>] [-months <n>]

  Prints the business summary: revenue, gross and net profit, total
  expenses, stock counts, the monthly profit rollup and the expense
  breakdown by category.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Reference date as YYYY-MM-DD. Defaults to today.")
	f.IntVar(&c.months, "months", brick.DefaultRollupMonths, "Number of months in the rollup, ending at the reference date.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on := brick.Today()
	if c.date != "" {
		var err error
		on, err = brick.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.months < 1 {
		fmt.Fprintln(os.Stderr, "Error: -months must be at least 1.")
		return subcommands.ExitUsageError
	}

	ledger := openForReading()
	printMarkdown(renderer.SummaryMarkdown(brick.NewSummary(ledger, on, c.months)))
	return subcommands.ExitSuccess
}
