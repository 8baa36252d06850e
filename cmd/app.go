// Package cmd implements the CLI application to manage a BrickManager
// ledger. A main package calls Commands to register the subcommands.
package cmd

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/brickmgr/brick"
)

// Environment variables honored by the application.
const (
	EnvStore = "BKM_STORE"
)

// as a CLI application it is short lived, so global flags are fine.
var storeDir = flag.String("store", defaultStore(), "Path to the store directory")

func defaultStore() string {
	if dir := os.Getenv(EnvStore); dir != "" {
		return dir
	}
	return ".brickmanager"
}

// Commands lists every subcommand of the application.
var Commands = []subcommands.Command{
	&summaryCmd{},
	&inventoryCmd{},
	&addCmd{},
	&editCmd{},
	&rmCmd{},
	&sellCmd{},
	&salesCmd{},
	&expenseCmd{},
	&expensesCmd{},
	&rmExpenseCmd{},
	&draftCmd{},
	&suggestCmd{},
	&fmtCmd{},
	&topicCmd{},
}

// openForWriting loads the ledger and attaches the write-through saver. A
// corrupt store refuses to open: a mutation would rewrite the full
// snapshot and destroy whatever could still be repaired by hand.
func openForWriting() (*brick.Ledger, error) {
	ledger, err := brick.LoadLedger(*storeDir)
	if err != nil {
		var derr *brick.DeserializationError
		if errors.As(err, &derr) {
			return nil, fmt.Errorf("%w\nfix the file by hand (or move it away) before modifying the store", err)
		}
		return nil, err
	}
	ledger.SetSaver(brick.DirSaver{Dir: *storeDir})
	return ledger, nil
}

// openForReading loads the ledger for a report. A corrupt store degrades
// to an empty ledger with a visible warning rather than blocking startup.
func openForReading() *brick.Ledger {
	ledger, err := brick.LoadLedger(*storeDir)
	if err != nil {
		log.Printf("warning: %v", err)
		log.Printf("warning: starting from an empty ledger; reports below ignore the corrupt file")
		return brick.NewLedger()
	}
	return ledger
}

// printMarkdown renders markdown for the terminal, falling back to the
// raw text when the renderer is unavailable.
func printMarkdown(content string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		if out, rerr := r.Render(content); rerr == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(content)
}

// confirm asks the user a yes/no question on the terminal. Anything but an
// explicit yes declines.
func confirm(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N] ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	line = strings.TrimSpace(strings.ToLower(line))
	return line == "y" || line == "yes"
}
