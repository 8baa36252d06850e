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

type addCmd struct {
	name      string
	category  string
	condition string
	cost      string
	price     string
	desc      string
	from      string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new item to the inventory" }
func (*addCmd) Usage() string {
	return `bkm add -name <name> -category <category> -condition <condition> -cost <amount> -price <amount> [-desc <text>] [-from <source>]

  Adds a new inventory item. The item starts as available; the id and the
  creation date are assigned automatically.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Item name (required).")
	f.StringVar(&c.category, "category", string(brick.CategoryOther), "Category: furniture, electronics, appliances, decor, other.")
	f.StringVar(&c.condition, "condition", string(brick.ConditionGood), "Condition: new, excellent, good, fair, poor.")
	f.StringVar(&c.cost, "cost", "0", "Cost price, what the item cost to acquire.")
	f.StringVar(&c.price, "price", "0", "Asking price.")
	f.StringVar(&c.desc, "desc", "", "Free-text description.")
	f.StringVar(&c.from, "from", "", "Where the item was acquired.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cost, err := brick.ParseMoney(c.cost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing cost: %v\n", err)
		return subcommands.ExitUsageError
	}
	price, err := brick.ParseMoney(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing price: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := openForWriting()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	item, err := ledger.AddItem(brick.ItemDraft{
		Name:         c.name,
		Category:     brick.Category(c.category),
		Condition:    brick.Condition(c.condition),
		CostPrice:    cost,
		SalePrice:    price,
		Description:  c.desc,
		AcquiredFrom: c.from,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ItemMarkdown(item))
	return subcommands.ExitSuccess
}
