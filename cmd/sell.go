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

type sellCmd struct {
	amount string
	method string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record the sale of an item" }
func (*sellCmd) Usage() string {
	return `bkm sell [-amount <amount>] [-method <method>] <id>

  Marks an available item as sold and records the sale. Without -amount
  the item's asking price is used. Profit is the sale amount minus the
  item's cost price, and may be negative.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Actual sale amount. Defaults to the asking price.")
	f.StringVar(&c.method, "method", string(brick.PayCash), "Payment method: cash, pix, card, other.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expecting exactly one item id.")
		return subcommands.ExitUsageError
	}

	ledger, err := openForWriting()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	id, err := ledger.ResolveItemID(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	item, err := ledger.Item(id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	amount := item.SalePrice
	if c.amount != "" {
		amount, err = brick.ParseMoney(c.amount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	sale, err := ledger.CompleteSale(id, amount, brick.PaymentMethod(c.method))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SaleMarkdown(sale))
	return subcommands.ExitSuccess
}
