package brick

import "sort"

// The metrics in this file are pure, read-only computations over a ledger
// snapshot. Empty collections yield all-zero figures, never errors.

// TotalRevenue is the sum of all sale amounts.
func (l *Ledger) TotalRevenue() Money {
	var total Money
	for _, s := range l.sales {
		total = total.Add(s.Amount)
	}
	return total
}

// GrossProfit is the sum of the profit recorded on every sale.
func (l *Ledger) GrossProfit() Money {
	var total Money
	for _, s := range l.sales {
		total = total.Add(s.Profit)
	}
	return total
}

// TotalExpenses is the sum of all expense amounts.
func (l *Ledger) TotalExpenses() Money {
	var total Money
	for _, e := range l.expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// NetProfit is the gross profit minus the total expenses.
func (l *Ledger) NetProfit() Money {
	return l.GrossProfit().Sub(l.TotalExpenses())
}

// CategoryTotal is one slice of the expense breakdown.
type CategoryTotal struct {
	Category ExpenseCategory
	Amount   Money
}

// ExpenseBreakdown groups expense amounts by category. Only categories with
// at least one expense appear (sparse, unlike the monthly rollup). The
// result is ordered by descending amount, ties broken by category name, so
// the breakdown is deterministic.
func (l *Ledger) ExpenseBreakdown() []CategoryTotal {
	totals := make(map[ExpenseCategory]Money)
	for _, e := range l.expenses {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}
	out := make([]CategoryTotal, 0, len(totals))
	// AllExpenseCategories is the closed set: iterating it rather than the
	// map keeps the exhaustive matching visible when a category is added.
	for _, c := range AllExpenseCategories {
		if total, ok := totals[c]; ok {
			out = append(out, CategoryTotal{Category: c, Amount: total})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Amount.Equal(out[j].Amount) {
			return out[j].Amount.LessThan(out[i].Amount)
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// Summary is the dashboard report: the headline figures, the trailing
// monthly rollup and the expense breakdown, plus a snapshot of the stock.
type Summary struct {
	Date Date

	TotalRevenue  Money
	GrossProfit   Money
	TotalExpenses Money
	NetProfit     Money

	Rollup    []MonthlyBucket
	Breakdown []CategoryTotal

	StockCounts map[ItemStatus]int // items per status
	StockValue  Money              // capital tied up in available items, at cost
}

// NewSummary computes the dashboard report as of the given date, with a
// rollup over the trailing monthCount months.
func NewSummary(l *Ledger, on Date, monthCount int) *Summary {
	s := &Summary{
		Date:          on,
		TotalRevenue:  l.TotalRevenue(),
		GrossProfit:   l.GrossProfit(),
		TotalExpenses: l.TotalExpenses(),
		NetProfit:     l.NetProfit(),
		Rollup:        l.MonthlyRollup(on, monthCount),
		Breakdown:     l.ExpenseBreakdown(),
		StockCounts:   make(map[ItemStatus]int),
	}
	for _, item := range l.items {
		s.StockCounts[item.Status]++
		if item.Status == StatusAvailable {
			s.StockValue = s.StockValue.Add(item.CostPrice)
		}
	}
	return s
}
