package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"github.com/brickmgr/brick"
)

// ExpensesMarkdown renders the expense history as a markdown table, in the
// order the expenses are given (the caller passes newest first).
func ExpensesMarkdown(expenses []brick.Expense) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Expenses")
	if len(expenses) == 0 {
		doc.PlainText("No expenses recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight,
		},
		Header: []string{"ID", "Date", "Description", "Category", "Amount"},
		Rows:   [][]string{},
	}
	for _, e := range expenses {
		table.Rows = append(table.Rows, []string{
			shortID(e.ID),
			e.Date.String(),
			e.Description,
			string(e.Category),
			e.Amount.String(),
		})
	}
	doc.Table(table)
	return doc.String()
}
