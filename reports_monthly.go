package brick

// DefaultRollupMonths is the dashboard's trailing window.
const DefaultRollupMonths = 6

// MonthlyBucket aggregates one calendar month of activity.
type MonthlyBucket struct {
	Month       Month
	GrossProfit Money // sum of sale profits in the month
	Expenses    Money // sum of expense amounts in the month
	Net         Money // GrossProfit minus Expenses
}

// MonthlyRollup buckets sale profits and expenses into the trailing
// monthCount calendar months ending at the month containing now.
//
// The result is dense and chronological: exactly monthCount buckets,
// oldest first, zero-filled for months with no activity. Sales and
// expenses outside the window are silently excluded.
func (l *Ledger) MonthlyRollup(now Date, monthCount int) []MonthlyBucket {
	if monthCount <= 0 {
		return nil
	}
	last := MonthOfDate(now)
	buckets := make([]MonthlyBucket, monthCount)
	index := make(map[Month]int, monthCount)
	for i := range buckets {
		m := last.AddMonths(i - monthCount + 1)
		buckets[i] = MonthlyBucket{Month: m}
		index[m] = i
	}
	for _, s := range l.sales {
		if i, ok := index[MonthOf(s.SaleDate)]; ok {
			buckets[i].GrossProfit = buckets[i].GrossProfit.Add(s.Profit)
		}
	}
	for _, e := range l.expenses {
		if i, ok := index[MonthOfDate(e.Date)]; ok {
			buckets[i].Expenses = buckets[i].Expenses.Add(e.Amount)
		}
	}
	for i := range buckets {
		buckets[i].Net = buckets[i].GrossProfit.Sub(buckets[i].Expenses)
	}
	return buckets
}
