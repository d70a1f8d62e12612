package parser

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExtractPrintAreas returns the print areas of a workbook as normalized
// ranges ("A1:D10"), keyed by sheet name.
func ExtractPrintAreas(f *excelize.File) map[string][]string {
	result := make(map[string][]string)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			continue
		}
		sheetName, areas := parsePrintAreaReference(dn.RefersTo)
		if sheetName == "" {
			sheetName = dn.Scope
		}
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}

	return result
}

// parsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10, comma separated.
func parsePrintAreaReference(ref string) (string, []string) {
	var areas []string
	var sheetName string

	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		rangeStr := part
		if idx := strings.LastIndex(part, "!"); idx >= 0 {
			sheet := strings.Trim(part[:idx], "'")
			sheet = strings.ReplaceAll(sheet, "''", "'")
			if sheetName == "" {
				sheetName = sheet
			}
			rangeStr = part[idx+1:]
		}

		if area, ok := normalizeRange(rangeStr); ok {
			areas = append(areas, area)
		}
	}

	return sheetName, areas
}

// normalizeRange turns $A$1:$D$10 into A1:D10.
func normalizeRange(rangeStr string) (string, bool) {
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return "", false
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return "", false
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return "", false
	}

	start, _ := excelize.CoordinatesToCellName(startCol, startRow)
	end, _ := excelize.CoordinatesToCellName(endCol, endRow)
	return fmt.Sprintf("%s:%s", start, end), true
}
