package parser

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestScanBounds(t *testing.T) {
	tests := []struct {
		name   string
		xml    string
		maxRow int
		maxCol int
	}{
		{"no sheet data", `<worksheet><dimension ref="A1"/></worksheet>`, 1, 1},
		{"empty sheet data", `<worksheet><sheetData/></worksheet>`, 1, 1},
		{
			"styled empty cell counts",
			`<worksheet><sheetData><row r="1"><c r="A1" t="s"><v>0</v></c></row>
			<row r="25"><c r="H25" s="3"/></row></sheetData></worksheet>`,
			25, 8,
		},
		{
			"row without cells ignored",
			`<worksheet><sheetData><row r="2"><c r="B2"/></row><row r="40"/></sheetData></worksheet>`,
			2, 2,
		},
		{
			"references omitted",
			`<worksheet><sheetData><row><c/><c/><c/></row><row><c/></row></sheetData></worksheet>`,
			2, 3,
		},
		{
			"cells follow the row attribute",
			`<worksheet><sheetData><row r="5"><c/><c r="D5"/><c/></row></sheetData></worksheet>`,
			5, 5,
		},
	}

	for _, tt := range tests {
		b, err := scanBounds(strings.NewReader(tt.xml))
		if err != nil {
			t.Fatalf("%s: scanBounds failed: %v", tt.name, err)
		}
		if b.MaxRow != tt.maxRow || b.MaxCol != tt.maxCol {
			t.Errorf("%s: bounds = (%d, %d), expected (%d, %d)",
				tt.name, b.MaxRow, b.MaxCol, tt.maxRow, tt.maxCol)
		}
	}
}

func TestScanBoundsMalformed(t *testing.T) {
	if _, err := scanBounds(strings.NewReader(`<worksheet><sheetData><row><<`)); err == nil {
		t.Error("Expected error for malformed sheet part")
	}
}

func TestExtractSheetBounds(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "Escrimeur")
	f.SetCellValue("Sheet1", "C4", "Zone")
	style, err := f.NewStyle(&excelize.Style{Fill: excelize.Fill{Type: "pattern", Color: []string{"F8F9FA"}, Pattern: 1}})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	if err := f.SetCellStyle("Sheet1", "E9", "E9", style); err != nil {
		t.Fatalf("SetCellStyle failed: %v", err)
	}
	if _, err := f.NewSheet("Vide"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "bounds.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	bounds, err := ExtractSheetBounds(path)
	if err != nil {
		t.Fatalf("ExtractSheetBounds failed: %v", err)
	}

	if got := bounds["Sheet1"]; got != (Bounds{MaxRow: 9, MaxCol: 5}) {
		t.Errorf("Sheet1 bounds = %+v, expected 9x5", got)
	}
	if got := bounds["Vide"]; got != (Bounds{MaxRow: 1, MaxCol: 1}) {
		t.Errorf("Vide bounds = %+v, expected 1x1", got)
	}
}
