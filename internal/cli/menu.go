package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"ledger/internal/core"
	"ledger/internal/log"
	"ledger/internal/report"
	"ledger/internal/services"
	"ledger/internal/trace"
)

const menuText = `
1. Add a new transaction
2. View transactions and summary within a date range
3. Exit`

// Ledger is what the menu needs from the service layer.
type Ledger interface {
	AddTransaction(ctx context.Context, t core.Transaction) error
	Report(ctx context.Context, start, end core.Date) (services.Report, error)
}

// App is the interactive menu loop.
type App struct {
	ledger Ledger
	prompt *Prompter
	out    io.Writer
	tracer *trace.Tracer
}

func NewApp(ledger Ledger, in io.Reader, out io.Writer, logger *log.Logger) *App {
	if logger == nil {
		logger = log.Discard()
	}
	return &App{
		ledger: ledger,
		prompt: NewPrompter(in, out),
		out:    out,
		tracer: trace.NewTracer(logger.WithComponent(log.ComponentCLI)),
	}
}

// Run serves the menu until the user exits or input ends. A failed operation
// is reported and the menu is shown again.
func (a *App) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(a.out, menuText)
		choice, err := a.prompt.Line("Enter your choice (1-3): ")
		if err != nil {
			return a.finish(err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = a.traced(ctx, log.OpAppend, a.add)
		case "2":
			err = a.traced(ctx, log.OpReport, a.report)
		case "3":
			fmt.Fprintln(a.out, "Exiting...")
			return nil
		default:
			fmt.Fprintln(a.out, "Invalid choice. Enter 1, 2, or 3.")
			continue
		}

		if errors.Is(err, ErrInputClosed) {
			return a.finish(err)
		}
		if err != nil {
			fmt.Fprintf(a.out, "Error: %v\n", err)
		}
	}
}

func (a *App) traced(ctx context.Context, op string, fn func(context.Context) error) error {
	ctx, done := a.tracer.Begin(ctx, op)
	err := fn(ctx)
	done(err)
	if err != nil && !errors.Is(err, ErrInputClosed) {
		log.FromContext(ctx).ErrorContext(ctx, "Menu operation failed", log.FieldOperation, op, log.FieldError, err.Error())
	}
	return err
}

func (a *App) finish(err error) error {
	if errors.Is(err, ErrInputClosed) {
		fmt.Fprintln(a.out)
		return nil
	}
	return err
}

func (a *App) add(ctx context.Context) error {
	t, err := a.prompt.Transaction()
	if err != nil {
		return err
	}
	if err := a.ledger.AddTransaction(ctx, t); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Entry added successfully")
	return nil
}

func (a *App) report(ctx context.Context) error {
	start, err := a.prompt.Date("Enter the start date (dd-mm-yyyy): ", false)
	if err != nil {
		return err
	}
	end, err := a.prompt.Date("Enter the end date (dd-mm-yyyy): ", false)
	if err != nil {
		return err
	}

	r, err := a.ledger.Report(ctx, start, end)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out)
	if !r.Empty() {
		fmt.Fprintf(a.out, "Transactions from %s to %s\n", r.Start, r.End)
	}
	if err := report.RenderTransactions(a.out, r.Transactions); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "\nSummary:")
	if err := report.RenderSummary(a.out, r.Summary); err != nil {
		return err
	}

	plot, err := a.prompt.Confirm("Do you want to see a plot? (y/n): ")
	if err != nil || !plot {
		return err
	}
	return report.RenderChart(a.out, r.Series)
}
