package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/brickmgr/brick/renderer"
)

type expensesCmd struct{}

func (*expensesCmd) Name() string     { return "expenses" }
func (*expensesCmd) Synopsis() string { return "list recorded expenses, newest first" }
func (*expensesCmd) Usage() string {
	return `bkm expenses

  Lists every recorded expense, newest first.
`
}

func (*expensesCmd) SetFlags(*flag.FlagSet) {}

func (*expensesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := openForReading()
	printMarkdown(renderer.ExpensesMarkdown(ledger.ExpensesNewestFirst()))
	return subcommands.ExitSuccess
}
