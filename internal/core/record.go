package core

import (
	"fmt"
	"strings"
)

// Column names of a persisted transaction row, in their fixed order.
const (
	ColumnDate        = "date"
	ColumnAmount      = "amount"
	ColumnCategory    = "category"
	ColumnDescription = "description"
)

// Columns returns the header row shared by every row-oriented store.
func Columns() []string {
	return []string{ColumnDate, ColumnAmount, ColumnCategory, ColumnDescription}
}

// Row encodes t in Columns order.
func (t Transaction) Row() []string {
	return []string{t.Date.String(), t.Amount.String(), t.Category.String(), t.Description}
}

// ColumnIndex maps header names to their positions and reports the first
// required column that is missing.
func ColumnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, c := range Columns() {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrStoreUnreadable, c)
		}
	}
	return idx, nil
}

// DecodeRow builds a Transaction from a persisted row using a column index
// produced by ColumnIndex. Every failure wraps ErrStoreUnreadable.
func DecodeRow(idx map[string]int, row []string) (Transaction, error) {
	get := func(col string) (string, error) {
		i := idx[col]
		if i >= len(row) {
			return "", fmt.Errorf("%w: missing field %q", ErrStoreUnreadable, col)
		}
		return row[i], nil
	}

	rawDate, err := get(ColumnDate)
	if err != nil {
		return Transaction{}, err
	}
	rawAmount, err := get(ColumnAmount)
	if err != nil {
		return Transaction{}, err
	}
	rawCategory, err := get(ColumnCategory)
	if err != nil {
		return Transaction{}, err
	}
	// Sheets drops trailing empty cells, so a short row means an empty description.
	desc, _ := get(ColumnDescription)

	date, err := ParseDate(rawDate)
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: date %q: %v", ErrStoreUnreadable, rawDate, err)
	}
	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: amount %q: %v", ErrStoreUnreadable, rawAmount, err)
	}
	category, err := ParseStoredCategory(rawCategory)
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: category %q: %v", ErrStoreUnreadable, rawCategory, err)
	}
	return Transaction{
		Date:        date,
		Amount:      amount,
		Category:    category,
		Description: desc,
	}, nil
}
