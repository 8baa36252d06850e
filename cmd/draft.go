package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/brickmgr/brick/advisor"
)

type draftCmd struct{}

func (*draftCmd) Name() string     { return "draft" }
func (*draftCmd) Synopsis() string { return "draft a for-sale listing for an item" }
func (*draftCmd) Usage() string {
	return `bkm draft <id>

  Asks the advisory model to draft advertisement copy for the item: a
  title, a description and hashtag suggestions. Requires GEMINI_API_KEY.
  The ledger itself is never modified.
`
}

func (*draftCmd) SetFlags(*flag.FlagSet) {}

func (*draftCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expecting exactly one item id.")
		return subcommands.ExitUsageError
	}

	ledger := openForReading()
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

	a, err := advisor.New(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	listing, err := a.GenerateListing(ctx, item.Name, item.Condition, item.Category)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(listing)
	return subcommands.ExitSuccess
}
