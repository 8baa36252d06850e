// Package renderer turns the report structs of the brick package into
// markdown, ready to be printed raw or through a terminal renderer.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/brickmgr/brick"
)

// SummaryMarkdown renders the dashboard: headline figures, stock counts,
// the trailing monthly rollup and the expense breakdown.
func SummaryMarkdown(s *brick.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("BrickManager Summary on %s", s.Date))

	doc.Table(md.TableSet{
		Header: []string{"Total Revenue", "Gross Profit", "Total Expenses", "Net Profit"},
		Rows: [][]string{{
			s.TotalRevenue.String(),
			s.GrossProfit.String(),
			s.TotalExpenses.String(),
			s.NetProfit.String(),
		}},
	})

	doc.H2("Stock")
	stock := md.TableSet{
		Header: []string{"Status", "Items"},
		Rows:   [][]string{},
	}
	for _, status := range brick.AllStatuses {
		if n := s.StockCounts[status]; n > 0 {
			stock.Rows = append(stock.Rows, []string{string(status), fmt.Sprintf("%d", n)})
		}
	}
	doc.Table(stock)
	doc.PlainText(fmt.Sprintf("Capital in available stock (at cost): %s", s.StockValue))

	doc.H2("Monthly")
	monthly := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Month", "Gross Profit", "Expenses", "Net"},
		Rows:      [][]string{},
	}
	for _, b := range s.Rollup {
		monthly.Rows = append(monthly.Rows, []string{
			b.Month.Label(),
			b.GrossProfit.SignedString(),
			b.Expenses.String(),
			b.Net.SignedString(),
		})
	}
	doc.Table(monthly)

	if len(s.Breakdown) > 0 {
		doc.H2("Expenses by Category")
		breakdown := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Category", "Amount"},
			Rows:      [][]string{},
		}
		for _, c := range s.Breakdown {
			breakdown.Rows = append(breakdown.Rows, []string{string(c.Category), c.Amount.String()})
		}
		doc.Table(breakdown)
	}

	return doc.String()
}
