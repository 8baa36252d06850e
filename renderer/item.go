package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/brickmgr/brick"
)

// ItemMarkdown renders one item as a detail card.
func ItemMarkdown(item brick.Item) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(item.Name)
	doc.Table(md.TableSet{
		Header: []string{"Field", "Value"},
		Rows: [][]string{
			{"ID", item.ID},
			{"Category", string(item.Category)},
			{"Condition", string(item.Condition)},
			{"Cost", item.CostPrice.String()},
			{"Asking price", item.SalePrice.String()},
			{"Status", string(item.Status)},
			{"Acquired from", item.AcquiredFrom},
			{"Added", item.DateAdded.Format("2006-01-02")},
		},
	})
	if item.Description != "" {
		doc.PlainText(item.Description)
	}
	return doc.String()
}

// SuggestionMarkdown renders the advisory price suggestion for an item.
func SuggestionMarkdown(item brick.Item, price, low, high brick.Money, reasoning string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Price suggestion: %s", item.Name))
	doc.Table(md.TableSet{
		Header: []string{"", "Amount"},
		Rows: [][]string{
			{"Suggested", price.String()},
			{"Range", fmt.Sprintf("%s to %s", low, high)},
			{"Current asking", item.SalePrice.String()},
			{"Cost", item.CostPrice.String()},
		},
	})
	doc.PlainText(reasoning)
	return doc.String()
}

// SaleMarkdown renders one completed sale as a confirmation card.
func SaleMarkdown(s brick.Sale) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Sold: %s", s.ItemName))
	doc.Table(md.TableSet{
		Header: []string{"Field", "Value"},
		Rows: [][]string{
			{"Sale ID", s.ID},
			{"Date", s.SaleDate.Format("2006-01-02")},
			{"Amount", s.Amount.String()},
			{"Method", string(s.PaymentMethod)},
			{"Profit", s.Profit.SignedString()},
		},
	})
	return doc.String()
}
