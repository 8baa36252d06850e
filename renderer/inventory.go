package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	"github.com/brickmgr/brick"
)

// InventoryMarkdown renders the inventory list as a markdown table, in the
// order the items are given.
func InventoryMarkdown(items []brick.Item) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Inventory")
	if len(items) == 0 {
		doc.PlainText("No items.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft,
			md.AlignRight, md.AlignRight, md.AlignLeft,
		},
		Header: []string{"ID", "Name", "Category", "Condition", "Cost", "Price", "Status"},
		Rows:   [][]string{},
	}
	for _, item := range items {
		table.Rows = append(table.Rows, []string{
			shortID(item.ID),
			item.Name,
			string(item.Category),
			string(item.Condition),
			item.CostPrice.String(),
			item.SalePrice.String(),
			string(item.Status),
		})
	}
	doc.Table(table)
	return doc.String()
}

// shortID abbreviates a uuid for table display. Commands accept the full
// id or any unique prefix, so the short form stays actionable.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
