package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	DensityMin       float64
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		MinNonemptyCells: 3,
	}
}

// DetectTables detects table-like regions in a cell grid.
// Blocks of rows separated by at least one blank row are bounded
// separately; a block is kept when it is dense enough.
// Returns cell ranges such as "A1:D10", top to bottom.
func DetectTables(rows [][]string, params TableDetectionParams) []string {
	var result []string

	start := -1
	for rowIdx := 0; rowIdx <= len(rows); rowIdx++ {
		blank := rowIdx == len(rows) || usedWidth(rows[rowIdx]) == 0
		switch {
		case !blank && start < 0:
			start = rowIdx
		case blank && start >= 0:
			if ref, ok := tableRange(rows[start:rowIdx], start, params); ok {
				result = append(result, ref)
			}
			start = -1
		}
	}

	return result
}

// tableRange bounds a block of rows starting at rowOffset.
func tableRange(block [][]string, rowOffset int, params TableDetectionParams) (string, bool) {
	minRow, maxRow, minCol, maxCol := findDataBounds(block)
	if minRow < 0 {
		return "", false
	}

	totalCells := (maxRow - minRow + 1) * (maxCol - minCol + 1)
	nonEmptyCells := countNonEmptyCells(block, minRow, maxRow, minCol, maxCol)
	if nonEmptyCells < params.MinNonemptyCells {
		return "", false
	}

	density := float64(nonEmptyCells) / float64(totalCells)
	if density < params.DensityMin {
		return "", false
	}

	startCell, err := excelize.CoordinatesToCellName(minCol+1, rowOffset+minRow+1)
	if err != nil {
		return "", false
	}
	endCell, err := excelize.CoordinatesToCellName(maxCol+1, rowOffset+maxRow+1)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%s:%s", startCell, endCell), true
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows [][]string, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if row[colIdx] != "" {
				count++
			}
		}
	}
	return count
}
