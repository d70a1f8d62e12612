package parser

import (
	"github.com/aramis-fighter/aramis-xlsx/pkg/analyzer/models"
)

// SampleRows returns the first n rows of a grid as a sample table, each
// row padded to the widest row of the whole grid.
func SampleRows(rows [][]string, n int) models.SampleTable {
	rows = trimTrailingEmptyRows(rows)

	width := 0
	for _, row := range rows {
		if w := usedWidth(row); w > width {
			width = w
		}
	}
	if width == 0 {
		return models.SampleTable{}
	}

	if n > len(rows) {
		n = len(rows)
	}
	sample := make([][]string, n)
	for i := 0; i < n; i++ {
		values := make([]string, width)
		copy(values, rows[i])
		sample[i] = values
	}

	return models.SampleTable{Rows: sample, Width: width}
}

// usedWidth returns the row length without trailing empty cells.
func usedWidth(row []string) int {
	for i := len(row) - 1; i >= 0; i-- {
		if row[i] != "" {
			return i + 1
		}
	}
	return 0
}

func trimTrailingEmptyRows(rows [][]string) [][]string {
	for len(rows) > 0 && usedWidth(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	return rows
}
