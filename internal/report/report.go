// Package report renders range query results for the terminal.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"

	"ledger/internal/core"
)

const (
	chartHeight = 12
	noDataLine  = "No transactions found in the given date range"
	noPlotLine  = "Nothing to plot for the given date range"
)

// RenderTransactions writes txs as an aligned table with the store's columns.
func RenderTransactions(w io.Writer, txs []core.Transaction) error {
	if len(txs) == 0 {
		_, err := fmt.Fprintln(w, noDataLine)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "date\tamount\tcategory\tdescription")
	for _, t := range txs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.Date, core.FormatMoney(t.Amount), t.Category, t.Description)
	}
	return tw.Flush()
}

// RenderSummary writes the three totals with two decimals.
func RenderSummary(w io.Writer, s core.Summary) error {
	_, err := fmt.Fprintf(w, "Total Income: $%s\nTotal Expense: $%s\nNet Savings: $%s\n",
		core.FormatMoney(s.Income), core.FormatMoney(s.Expense), core.FormatMoney(s.Net))
	return err
}

// RenderChart plots the income and expense series over the same day axis.
func RenderChart(w io.Writer, s core.DailySeries) error {
	if len(s.Days) == 0 {
		_, err := fmt.Fprintln(w, noPlotLine)
		return err
	}

	// A one-point series draws only the axis.
	if len(s.Days) == 1 {
		_, err := fmt.Fprintf(w, "%s: Income $%s, Expense $%s\n", s.Days[0],
			core.FormatMoney(s.Income[0].Amount), core.FormatMoney(s.Expense[0].Amount))
		return err
	}

	income, expense := core.Values(s.Income), core.Values(s.Expense)
	caption := fmt.Sprintf("Income and Expenses Over Time, %s to %s", s.Days[0], s.Days[len(s.Days)-1])
	graph := asciigraph.PlotMany([][]float64{income, expense},
		asciigraph.Height(chartHeight),
		asciigraph.Precision(2),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Red),
		asciigraph.SeriesLegends(core.Income.String(), core.Expense.String()),
	)
	_, err := fmt.Fprintln(w, graph)
	return err
}
