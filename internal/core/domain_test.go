package core

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestDateValidate(t *testing.T) {
	cases := []struct {
		d  Date
		ok bool
	}{
		{NewDate(2025, 1, 1), true},
		{NewDate(2025, 12, 31), true},
		{Date{Time: time.Time{}}, false}, // zero time
	}
	for i, tc := range cases {
		err := tc.d.Validate()
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestDateString(t *testing.T) {
	if got := NewDate(2024, 3, 5).String(); got != "05-03-2024" {
		t.Fatalf("got %q", got)
	}
}

func TestDateOfDropsTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	d := DateOf(time.Date(2024, 3, 15, 23, 30, 0, 0, loc))
	if !d.Equal(NewDate(2024, 3, 15)) {
		t.Fatalf("got %v", d)
	}
}

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		Date:        NewDate(2025, 1, 1),
		Amount:      decimal.RequireFromString("10.50"),
		Category:    Income,
		Description: "",
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []struct {
		tx   Transaction
		want error
	}{
		{Transaction{Date: Date{}, Amount: decimal.NewFromInt(1), Category: Income}, ErrZeroDate},
		{Transaction{Date: NewDate(2025, 1, 1), Amount: decimal.Zero, Category: Income}, ErrInvalidAmount},
		{Transaction{Date: NewDate(2025, 1, 1), Amount: decimal.NewFromInt(-3), Category: Expense}, ErrInvalidAmount},
		{Transaction{Date: NewDate(2025, 1, 1), Amount: decimal.NewFromInt(1), Category: "Transfer"}, ErrInvalidCategory},
	}
	for i, tc := range bads {
		if err := tc.tx.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("case %d expected %v, got %v", i, tc.want, err)
		}
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"15-03-2024", "15-03-2024", true},
		{"5-3-2024", "05-03-2024", true},
		{" 01-01-2020 ", "01-01-2020", true},
		{"29-02-2024", "29-02-2024", true},
		{"29-02-2023", "", false},
		{"31-04-2024", "", false},
		{"2024-03-15", "", false},
		{"15/03/2024", "", false},
		{"15-03-24", "", false},
		{"", "", false},
		{"tomorrow", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if !tt.ok {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Fatalf("expected ErrInvalidFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Fatalf("got %q, want %q", got.String(), tt.want)
			}
			again, err := ParseDate(got.String())
			if err != nil || !again.Equal(got) {
				t.Fatalf("round trip failed: %v %v", again, err)
			}
		})
	}
}

func TestParseDateOrDefault(t *testing.T) {
	now := time.Date(2024, 7, 9, 18, 0, 0, 0, time.UTC)

	d, err := ParseDateOrDefault("", true, now)
	if err != nil || d.String() != "09-07-2024" {
		t.Fatalf("expected today, got %v (err=%v)", d, err)
	}
	if _, err := ParseDateOrDefault("", false, now); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat without default, got %v", err)
	}
	d, err = ParseDateOrDefault("01-02-2023", true, now)
	if err != nil || d.String() != "01-02-2023" {
		t.Fatalf("explicit date ignored: %v (err=%v)", d, err)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
		ok   bool
	}{
		{"I", Income, true},
		{"i", Income, true},
		{"E", Expense, true},
		{" e ", Expense, true},
		{"Income", "", false},
		{"X", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.in)
		if tt.ok && (err != nil || got != tt.want) {
			t.Fatalf("%q expected %v, got %v (err=%v)", tt.in, tt.want, got, err)
		}
		if !tt.ok && !errors.Is(err, ErrInvalidCategory) {
			t.Fatalf("%q expected ErrInvalidCategory, got %v", tt.in, err)
		}
	}
}

func TestParseDescription(t *testing.T) {
	for _, in := range []string{"", "salary", "  padded  "} {
		if got := ParseDescription(in); got != in {
			t.Fatalf("got %q, want %q", got, in)
		}
	}
}
