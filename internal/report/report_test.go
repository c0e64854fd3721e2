package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"ledger/internal/core"
)

func sample() []core.Transaction {
	return []core.Transaction{
		{Date: core.NewDate(2024, 3, 1), Amount: decimal.RequireFromString("100"), Category: core.Income, Description: "salary"},
		{Date: core.NewDate(2024, 3, 3), Amount: decimal.RequireFromString("12.5"), Category: core.Expense, Description: ""},
	}
}

func TestRenderTransactions(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderTransactions(&buf, sample()); err != nil {
		t.Fatalf("RenderTransactions: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %q", buf.String())
	}
	if !strings.HasPrefix(lines[0], "date") || !strings.Contains(lines[0], "description") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.Contains(lines[1], "01-03-2024") || !strings.Contains(lines[1], "100.00") || !strings.Contains(lines[1], "salary") {
		t.Errorf("unexpected row %q", lines[1])
	}
	if !strings.Contains(lines[2], "12.50") || !strings.Contains(lines[2], "Expense") {
		t.Errorf("unexpected row %q", lines[2])
	}
}

func TestRenderTransactions_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderTransactions(&buf, nil); err != nil {
		t.Fatalf("RenderTransactions: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != noDataLine {
		t.Errorf("got %q, want %q", got, noDataLine)
	}
}

func TestRenderSummary(t *testing.T) {
	tests := []struct {
		name string
		txs  []core.Transaction
		want string
	}{
		{
			name: "mixed",
			txs:  sample(),
			want: "Total Income: $100.00\nTotal Expense: $12.50\nNet Savings: $87.50\n",
		},
		{
			name: "empty",
			txs:  nil,
			want: "Total Income: $0.00\nTotal Expense: $0.00\nNet Savings: $0.00\n",
		},
		{
			name: "deficit",
			txs:  sample()[1:],
			want: "Total Income: $0.00\nTotal Expense: $12.50\nNet Savings: $-12.50\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := RenderSummary(&buf, core.Summarize(tt.txs)); err != nil {
				t.Fatalf("RenderSummary: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestRenderChart(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderChart(&buf, core.ToDailySeries(sample())); err != nil {
		t.Fatalf("RenderChart: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"01-03-2024 to 03-03-2024", "Income", "Expense"} {
		if !strings.Contains(out, want) {
			t.Errorf("chart missing %q:\n%s", want, out)
		}
	}
}

func TestRenderChart_SingleDay(t *testing.T) {
	day := core.NewDate(2024, 3, 1)
	txs := []core.Transaction{
		{Date: day, Amount: decimal.RequireFromString("100"), Category: core.Income},
		{Date: day, Amount: decimal.RequireFromString("12.5"), Category: core.Expense},
		{Date: day, Amount: decimal.RequireFromString("7.5"), Category: core.Expense},
	}
	var buf bytes.Buffer
	if err := RenderChart(&buf, core.ToDailySeries(txs)); err != nil {
		t.Fatalf("RenderChart: %v", err)
	}
	want := "01-03-2024: Income $100.00, Expense $20.00"
	if got := strings.TrimSpace(buf.String()); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderChart_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderChart(&buf, core.DailySeries{}); err != nil {
		t.Fatalf("RenderChart: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != noPlotLine {
		t.Errorf("got %q, want %q", got, noPlotLine)
	}
}
