package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct {
	yes bool
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove an item from the inventory" }
func (*rmCmd) Usage() string {
	return `bkm rm [-y] <id>

  Removes an item. Sales already recorded against it are kept, they carry
  their own copy of the item name.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation.")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if !c.yes && !confirm(fmt.Sprintf("Remove %q (%s)?", item.Name, id)) {
		fmt.Fprintln(os.Stderr, "Aborted.")
		return subcommands.ExitFailure
	}

	if err := ledger.DeleteItem(id); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Removed %q.\n", item.Name)
	return subcommands.ExitSuccess
}
