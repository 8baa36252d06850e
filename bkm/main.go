// Command bkm is the BrickManager command line interface.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/brickmgr/brick"
	"github.com/brickmgr/brick/cmd"
)

// completion describes the command tree for shell completion. It runs
// before flag.Parse and exits on its own when a completion is requested.
func completion() {
	statuses := make([]string, 0, len(brick.AllStatuses))
	for _, s := range brick.AllStatuses {
		statuses = append(statuses, string(s))
	}
	categories := make([]string, 0, len(brick.AllCategories))
	for _, c := range brick.AllCategories {
		categories = append(categories, string(c))
	}

	sub := make(map[string]*complete.Command)
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	sub["inventory"].Flags = map[string]complete.Predictor{
		"q": predict.Nothing,
		"c": predict.Set(categories),
		"s": predict.Set(statuses),
	}

	bkm := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"store": predict.Dirs("*"),
		},
	}
	bkm.Complete("bkm")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
