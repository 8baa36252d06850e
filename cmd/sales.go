package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/brickmgr/brick/renderer"
)

type salesCmd struct{}

func (*salesCmd) Name() string     { return "sales" }
func (*salesCmd) Synopsis() string { return "list recorded sales, newest first" }
func (*salesCmd) Usage() string {
	return `bkm sales

  Lists every recorded sale, newest first.
`
}

func (*salesCmd) SetFlags(*flag.FlagSet) {}

func (*salesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger := openForReading()
	printMarkdown(renderer.SalesMarkdown(ledger.SalesNewestFirst()))
	return subcommands.ExitSuccess
}
