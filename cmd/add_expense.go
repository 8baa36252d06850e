package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/brickmgr/brick"
)

type expenseCmd struct {
	desc     string
	amount   string
	category string
	date     string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record a business expense" }
func (*expenseCmd) Usage() string {
	return `bkm expense -desc <text> -amount <amount> [-category <c>] [-d <date>]

  Records a business expense. Without -d the expense is dated today.
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.desc, "desc", "", "What the money was spent on (required).")
	f.StringVar(&c.amount, "amount", "", "Amount spent (required).")
	f.StringVar(&c.category, "category", string(brick.ExpenseOther), "Category: rent, freight, tools, utilities, marketing, maintenance, other.")
	f.StringVar(&c.date, "d", "", "Expense date as YYYY-MM-DD. Defaults to today.")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := brick.ParseMoney(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	var date brick.Date
	if c.date != "" {
		date, err = brick.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	ledger, err := openForWriting()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	expense, err := ledger.AddExpense(brick.ExpenseDraft{
		Description: c.desc,
		Amount:      amount,
		Category:    brick.ExpenseCategory(c.category),
		Date:        date,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s expense %q of %s on %s.\n", expense.Category, expense.Description, expense.Amount, expense.Date)
	return subcommands.ExitSuccess
}
