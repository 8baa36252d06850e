package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"github.com/brickmgr/brick"
)

// SalesMarkdown renders the sales history as a markdown table, in the
// order the sales are given (the caller passes newest first).
func SalesMarkdown(sales []brick.Sale) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Sales History")
	if len(sales) == 0 {
		doc.PlainText("No sales yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft, md.AlignRight,
		},
		Header: []string{"Date", "Item", "Amount", "Method", "Profit"},
		Rows:   [][]string{},
	}
	for _, s := range sales {
		table.Rows = append(table.Rows, []string{
			s.SaleDate.Format("2006-01-02"),
			s.ItemName,
			s.Amount.String(),
			string(s.PaymentMethod),
			s.Profit.SignedString(),
		})
	}
	doc.Table(table)
	return doc.String()
}
