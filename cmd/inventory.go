package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/google/subcommands"

	"github.com/brickmgr/brick"
	"github.com/brickmgr/brick/renderer"
)

type inventoryCmd struct {
	query    string
	category string
	status   string
}

func (*inventoryCmd) Name() string     { return "inventory" }
func (*inventoryCmd) Synopsis() string { return "list inventory items" }
func (*inventoryCmd) Usage() string {
	return `bkm inventory [-q <text>] [-c <category>] [-s <status>]

  Lists inventory items. Filters combine: an item must match all of them.
  -q matches the name and the description, case insensitively.
`
}

func (c *inventoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Only items whose name or description contains this text.")
	f.StringVar(&c.category, "c", "", "Only items in this category.")
	f.StringVar(&c.status, "s", "", "Only items with this status.")
}

func (c *inventoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var filters []func(brick.Item) bool
	if c.query != "" {
		filters = append(filters, brick.ByQuery(c.query))
	}
	if c.category != "" {
		cat, err := brick.ParseCategory(c.category)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		filters = append(filters, brick.ByCategory(cat))
	}
	if c.status != "" {
		status, err := brick.ParseStatus(c.status)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		filters = append(filters, brick.ByStatus(status))
	}

	ledger := openForReading()
	items := slices.Collect(ledger.Items(filters...))
	printMarkdown(renderer.InventoryMarkdown(items))
	return subcommands.ExitSuccess
}
