package parser

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Bounds is the extent of the cells stored in a sheet, 1-based.
type Bounds struct {
	MaxRow int
	MaxCol int
}

// ExtractSheetBounds returns the bounds of every sheet, keyed by sheet
// name. Every stored cell counts, including styled cells without a
// value. Sheets without cells, chartsheets included, report 1x1.
func ExtractSheetBounds(xlsxPath string) (map[string]Bounds, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	parts, err := sheetParts(&r.Reader)
	if err != nil {
		return nil, err
	}

	result := make(map[string]Bounds, len(parts))
	for _, sheet := range parts {
		b, err := partBounds(&r.Reader, sheet.path)
		if err != nil {
			return nil, err
		}
		result[sheet.name] = b
	}
	return result, nil
}

func partBounds(r *zip.Reader, name string) (Bounds, error) {
	for _, f := range r.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return Bounds{}, err
		}
		defer rc.Close()
		return scanBounds(rc)
	}
	return Bounds{MaxRow: 1, MaxCol: 1}, nil
}

// scanBounds streams the sheetData of a sheet part. Rows and cells
// without an r attribute follow the previous one.
func scanBounds(rd io.Reader) (Bounds, error) {
	b := Bounds{MaxRow: 1, MaxCol: 1}
	decoder := xml.NewDecoder(rd)
	inData := false
	row, col := 0, 0

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return b, nil
		}
		if err != nil {
			return b, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch {
			case t.Name.Local == "sheetData":
				inData = true
			case !inData:
			case t.Name.Local == "row":
				row++
				col = 0
				if n, err := strconv.Atoi(attrValue(t, "r")); err == nil {
					row = n
				}
			case t.Name.Local == "c":
				col++
				if c, r, err := excelize.CellNameToCoordinates(attrValue(t, "r")); err == nil {
					col, row = c, r
				}
				if row > b.MaxRow {
					b.MaxRow = row
				}
				if col > b.MaxCol {
					b.MaxCol = col
				}
			}
		case xml.EndElement:
			if t.Name.Local == "sheetData" {
				inData = false
			}
		}
	}
}

func attrValue(se xml.StartElement, local string) string {
	for _, attr := range se.Attr {
		if attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}
