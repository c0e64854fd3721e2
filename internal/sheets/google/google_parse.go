package google

import (
	"fmt"
	"strings"

	"ledger/internal/core"
)

// parseRows converts a values matrix (as returned by the Sheets API) into
// transactions. The first row must be the header; blank rows are skipped.
func parseRows(values [][]interface{}) ([]core.Transaction, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: sheet has no header row", core.ErrStoreUnreadable)
	}
	idx, err := core.ColumnIndex(toStrings(values[0]))
	if err != nil {
		return nil, err
	}

	out := []core.Transaction{}
	for i := 1; i < len(values); i++ {
		row := toStrings(values[i])
		if isBlank(row) {
			continue
		}
		t, err := core.DecodeRow(idx, row)
		if err != nil {
			// i+1 is the sheet row number
			return nil, fmt.Errorf("sheet row %d: %w", i+1, err)
		}
		out = append(out, t)
	}
	return out, nil
}

// toStrings keeps cells verbatim; the field parsers trim what they parse
// and descriptions must survive unchanged.
func toStrings(in []interface{}) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = fmt.Sprint(v)
	}
	return out
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
