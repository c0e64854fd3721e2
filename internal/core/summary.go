package core

import "github.com/shopspring/decimal"

// Summary holds the totals of a set of transactions.
type Summary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// DailyPoint is the summed amount of one category on one calendar day.
type DailyPoint struct {
	Date     Date
	Category Category
	Amount   decimal.Decimal
}

// DailySeries holds one point per day of Days for each category. Income[i]
// and Expense[i] both refer to Days[i].
type DailySeries struct {
	Days    []Date
	Income  []DailyPoint
	Expense []DailyPoint
}

// Summarize totals income and expense. An empty input yields zeros.
func Summarize(txs []Transaction) Summary {
	income, expense := decimal.Zero, decimal.Zero
	for _, t := range txs {
		switch t.Category {
		case Income:
			income = income.Add(t.Amount)
		case Expense:
			expense = expense.Add(t.Amount)
		}
	}
	return Summary{
		Income:  income,
		Expense: expense,
		Net:     income.Sub(expense),
	}
}

// ToDailySeries expands txs into a dense per-day series covering every
// calendar day from the earliest to the latest date in txs. Days without
// transactions of a category get a zero point for it.
func ToDailySeries(txs []Transaction) DailySeries {
	if len(txs) == 0 {
		return DailySeries{}
	}

	first, last := txs[0].Date, txs[0].Date
	sums := map[Category]map[Date]decimal.Decimal{
		Income:  {},
		Expense: {},
	}
	for _, t := range txs {
		if t.Date.Before(first) {
			first = t.Date
		}
		if t.Date.After(last) {
			last = t.Date
		}
		byDay, ok := sums[t.Category]
		if !ok {
			continue
		}
		byDay[t.Date] = byDay[t.Date].Add(t.Amount)
	}

	var s DailySeries
	for d := first; !d.After(last); d = d.AddDays(1) {
		s.Days = append(s.Days, d)
		s.Income = append(s.Income, DailyPoint{Date: d, Category: Income, Amount: sums[Income][d]})
		s.Expense = append(s.Expense, DailyPoint{Date: d, Category: Expense, Amount: sums[Expense][d]})
	}
	return s
}

// Values returns the amounts of points as floats, for charting.
func Values(points []DailyPoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Amount.InexactFloat64()
	}
	return out
}
