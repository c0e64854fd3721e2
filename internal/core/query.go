package core

// InRange reports whether d lies within [start, end], both ends inclusive.
func InRange(d, start, end Date) bool {
	return !d.Before(start) && !d.After(end)
}

// FilterByDateRange returns the transactions dated within [start, end] in
// their original order. A start after end matches nothing.
func FilterByDateRange(txs []Transaction, start, end Date) []Transaction {
	out := make([]Transaction, 0, len(txs))
	for _, t := range txs {
		if InRange(t.Date, start, end) {
			out = append(out, t)
		}
	}
	return out
}
