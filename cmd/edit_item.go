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

type editCmd struct {
	id        string
	name      string
	category  string
	condition string
	cost      string
	price     string
	status    string
	desc      string
	from      string

	set map[string]bool // flags explicitly provided on the command line
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit fields of an existing item" }
func (*editCmd) Usage() string {
	return `bkm edit -id <id> [-name <name>] [-category <c>] [-condition <c>] [-cost <amount>] [-price <amount>] [-status <s>] [-desc <text>] [-from <source>]

  Updates only the fields given on the command line. The id and the
  creation date cannot change. Moving an item to sold is done with
  'bkm sell', not here.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Item id or unique prefix (required).")
	f.StringVar(&c.name, "name", "", "New item name.")
	f.StringVar(&c.category, "category", "", "New category.")
	f.StringVar(&c.condition, "condition", "", "New condition.")
	f.StringVar(&c.cost, "cost", "", "New cost price.")
	f.StringVar(&c.price, "price", "", "New asking price.")
	f.StringVar(&c.status, "status", "", "New status: available, repair, reserved.")
	f.StringVar(&c.desc, "desc", "", "New description.")
	f.StringVar(&c.from, "from", "", "New acquisition source.")
}

func (c *editCmd) patch(f *flag.FlagSet) (brick.ItemPatch, error) {
	c.set = make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { c.set[fl.Name] = true })

	var p brick.ItemPatch
	if c.set["name"] {
		p.Name = &c.name
	}
	if c.set["category"] {
		cat := brick.Category(c.category)
		p.Category = &cat
	}
	if c.set["condition"] {
		cond := brick.Condition(c.condition)
		p.Condition = &cond
	}
	if c.set["cost"] {
		cost, err := brick.ParseMoney(c.cost)
		if err != nil {
			return p, err
		}
		p.CostPrice = &cost
	}
	if c.set["price"] {
		price, err := brick.ParseMoney(c.price)
		if err != nil {
			return p, err
		}
		p.SalePrice = &price
	}
	if c.set["status"] {
		status := brick.ItemStatus(c.status)
		p.Status = &status
	}
	if c.set["desc"] {
		p.Description = &c.desc
	}
	if c.set["from"] {
		p.AcquiredFrom = &c.from
	}
	return p, nil
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}

	patch, err := c.patch(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	ledger, err := openForWriting()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	id, err := ledger.ResolveItemID(c.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	item, err := ledger.UpdateItem(id, patch)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ItemMarkdown(item))
	return subcommands.ExitSuccess
}
