package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	Income  Category = "Income"
	Expense Category = "Expense"

	// DateLayout is the canonical textual form of a Date (DD-MM-YYYY).
	DateLayout = "02-01-2006"
	// dateParseLayout also accepts single digit day and month.
	dateParseLayout = "2-1-2006"
)

type (
	Category string

	Date struct {
		time.Time
	}

	Transaction struct {
		Date        Date
		Amount      decimal.Decimal
		Category    Category
		Description string // optional
	}
)

var (
	ErrInvalidFormat   = errors.New("invalid date format, expected dd-mm-yyyy")
	ErrInvalidAmount   = errors.New("amount must be a positive non-zero number")
	ErrInvalidCategory = errors.New("invalid category, expected 'I' for Income or 'E' for Expense")
	ErrStoreUnreadable = errors.New("store unreadable")
	ErrZeroDate        = errors.New("date cannot be zero")
)

// categoryCodes maps the single-letter entry code to the stored word.
var categoryCodes = map[string]Category{
	"I": Income,
	"E": Expense,
}

// Categories lists the recognized categories in reporting order.
func Categories() []Category {
	return []Category{Income, Expense}
}

func (c Category) IsValid() bool {
	switch c {
	case Income, Expense:
		return true
	default:
		return false
	}
}

func (c Category) String() string {
	return string(c)
}

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, int(m), d)
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrZeroDate
	}
	return nil
}

// String renders the date as DD-MM-YYYY.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// AddDays returns the date n calendar days later.
func (d Date) AddDays(n int) Date {
	return Date{Time: d.Time.AddDate(0, 0, n)}
}

func (d Date) Before(o Date) bool { return d.Time.Before(o.Time) }
func (d Date) After(o Date) bool  { return d.Time.After(o.Time) }
func (d Date) Equal(o Date) bool  { return d.Time.Equal(o.Time) }

func (t Transaction) Validate() error {
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !t.Category.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, string(t.Category))
	}
	return nil
}
