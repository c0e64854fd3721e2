package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ledger/internal/core"
)

// ErrInputClosed is returned once the input reaches end of file.
var ErrInputClosed = errors.New("input closed")

const (
	invalidDateMsg     = "Invalid date format. Please enter the date in dd-mm-yyyy format"
	invalidCategoryMsg = "Invalid category. Please enter 'I' for Income or 'E' for Expense."
)

// Prompter reads answers line by line. Each typed getter keeps asking until
// the answer is valid; none of them has a retry cap.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
	now func() time.Time
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
		now: time.Now,
	}
}

// Line prints prompt and returns the next input line without its line ending.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimRight(p.in.Text(), "\r"), nil
}

// Date asks for a DD-MM-YYYY date. With allowDefault an empty answer means
// today.
func (p *Prompter) Date(prompt string, allowDefault bool) (core.Date, error) {
	for {
		raw, err := p.Line(prompt)
		if err != nil {
			return core.Date{}, err
		}
		d, err := core.ParseDateOrDefault(raw, allowDefault, p.now())
		if err == nil {
			return d, nil
		}
		fmt.Fprintln(p.out, invalidDateMsg)
	}
}

func (p *Prompter) Amount() (decimal.Decimal, error) {
	for {
		raw, err := p.Line("Enter the amount: ")
		if err != nil {
			return decimal.Zero, err
		}
		amount, err := core.ParseAmount(raw)
		if err == nil {
			return amount, nil
		}
		fmt.Fprintf(p.out, "Invalid amount: %v.\n", err)
	}
}

func (p *Prompter) Category() (core.Category, error) {
	for {
		raw, err := p.Line("Enter the category ('I' for Income or 'E' for Expense): ")
		if err != nil {
			return "", err
		}
		c, err := core.ParseCategory(raw)
		if err == nil {
			return c, nil
		}
		fmt.Fprintln(p.out, invalidCategoryMsg)
	}
}

func (p *Prompter) Description() (string, error) {
	raw, err := p.Line("Enter a description (optional): ")
	if err != nil {
		return "", err
	}
	return core.ParseDescription(raw), nil
}

// Confirm reports whether the answer is y or Y.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	raw, err := p.Line(prompt)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(raw), "y"), nil
}

// Transaction walks through the four add-transaction questions.
func (p *Prompter) Transaction() (core.Transaction, error) {
	var (
		t   core.Transaction
		err error
	)
	if t.Date, err = p.Date("Enter the date of the transaction (dd-mm-yyyy) or enter for today's date: ", true); err != nil {
		return t, err
	}
	if t.Amount, err = p.Amount(); err != nil {
		return t, err
	}
	if t.Category, err = p.Category(); err != nil {
		return t, err
	}
	if t.Description, err = p.Description(); err != nil {
		return t, err
	}
	return t, nil
}
