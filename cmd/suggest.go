package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/brickmgr/brick"
	"github.com/brickmgr/brick/advisor"
	"github.com/brickmgr/brick/renderer"
)

type suggestCmd struct {
	apply bool
}

func (*suggestCmd) Name() string     { return "suggest" }
func (*suggestCmd) Synopsis() string { return "suggest a fair asking price for an item" }
func (*suggestCmd) Usage() string {
	return `bkm suggest [-apply] <id>

  Asks the advisory model for a fair asking price and the reasoning
  behind it. With -apply the suggested price becomes the item's asking
  price. Requires GEMINI_API_KEY.
`
}

func (c *suggestCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.apply, "apply", false, "Set the item's asking price to the suggestion.")
}

func (c *suggestCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	a, err := advisor.New(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	s, err := a.SuggestPrice(ctx, item.Name, item.Condition)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SuggestionMarkdown(item, s.Price, s.MinPrice, s.MaxPrice, s.Reasoning))

	if c.apply {
		price := s.Price
		if _, err := ledger.UpdateItem(id, brick.ItemPatch{SalePrice: &price}); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Asking price for %q set to %s.\n", item.Name, s.Price)
	}
	return subcommands.ExitSuccess
}
