package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmExpenseCmd struct {
	yes bool
}

func (*rmExpenseCmd) Name() string     { return "rm-expense" }
func (*rmExpenseCmd) Synopsis() string { return "remove a recorded expense" }
func (*rmExpenseCmd) Usage() string {
	return `bkm rm-expense [-y] <id>

  Removes an expense from the ledger.
`
}

func (c *rmExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation.")
}

func (c *rmExpenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expecting exactly one expense id.")
		return subcommands.ExitUsageError
	}

	ledger, err := openForWriting()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	id, err := ledger.ResolveExpenseID(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	expense, err := ledger.Expense(id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if !c.yes && !confirm(fmt.Sprintf("Remove expense %q of %s?", expense.Description, expense.Amount)) {
		fmt.Fprintln(os.Stderr, "Aborted.")
		return subcommands.ExitFailure
	}

	if err := ledger.DeleteExpense(id); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Removed expense %q.\n", expense.Description)
	return subcommands.ExitSuccess
}
