package template

import (
	"github.com/xuri/excelize/v2"
)

// headerRowHeight is the height of every header row, in points.
const headerRowHeight = 25

// Generator builds the template workbook.
type Generator struct {
	opts Options
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(&g.opts)
	}
	if g.opts.Creator == "" {
		g.opts.Creator = DefaultCreator
	}
	return g
}

// sheetBuilder fills one sheet of the template.
type sheetBuilder func(f *excelize.File, sheet string, s *styles) error

// Generate builds the five template sheets in order and returns the
// in-memory workbook. The caller closes it.
func (g *Generator) Generate() (*excelize.File, error) {
	f := excelize.NewFile()

	s, err := newStyles(f)
	if err != nil {
		f.Close()
		return nil, newGenerationError("", "styles", err)
	}

	builders := []struct {
		sheet string
		build sheetBuilder
	}{
		{SheetData, buildDataSheet},
		{SheetFencer, buildFencerSheet},
		{SheetActions, buildActionsSheet},
		{SheetCharts, g.buildChartsSheet},
		{SheetMacros, buildMacrosSheet},
	}

	// The default sheet becomes the first template sheet.
	defaultSheet := f.GetSheetName(0)
	for i, b := range builders {
		if i == 0 {
			err = f.SetSheetName(defaultSheet, b.sheet)
		} else {
			_, err = f.NewSheet(b.sheet)
		}
		if err != nil {
			f.Close()
			return nil, newGenerationError(b.sheet, "sheet", err)
		}
		if err := b.build(f, b.sheet, s); err != nil {
			f.Close()
			return nil, err
		}
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Creator:        g.opts.Creator,
		LastModifiedBy: g.opts.Creator,
		Title:          "Aramis Fighter - Analyse d'escrime",
		Subject:        "Template d'analyse des assauts",
	}); err != nil {
		f.Close()
		return nil, newGenerationError("", "properties", err)
	}
	f.SetActiveSheet(0)

	return f, nil
}

// SaveAs generates the template and writes it to path.
func (g *Generator) SaveAs(path string) error {
	f, err := g.Generate()
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return newGenerationError("", "save", err)
	}
	return nil
}

// writeRow writes values as text from cell start, left to right.
func writeRow(f *excelize.File, sheet string, col, row int, values []string) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+i, row)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

// writeHeader writes a styled header row starting in column A.
func writeHeader(f *excelize.File, sheet string, row int, headers []string, styleID int) error {
	if err := writeRow(f, sheet, 1, row, headers); err != nil {
		return newGenerationError(sheet, "cells", err)
	}
	start, _ := excelize.CoordinatesToCellName(1, row)
	end, _ := excelize.CoordinatesToCellName(len(headers), row)
	if err := f.SetCellStyle(sheet, start, end, styleID); err != nil {
		return newGenerationError(sheet, "styles", err)
	}
	if err := f.SetRowHeight(sheet, row, headerRowHeight); err != nil {
		return newGenerationError(sheet, "layout", err)
	}
	return nil
}

// writeTitle writes a styled title in A1, merged up to lastCell.
func writeTitle(f *excelize.File, sheet, lastCell, title string, styleID int) error {
	if err := f.MergeCell(sheet, "A1", lastCell); err != nil {
		return newGenerationError(sheet, "layout", err)
	}
	if err := f.SetCellStr(sheet, "A1", title); err != nil {
		return newGenerationError(sheet, "cells", err)
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", styleID); err != nil {
		return newGenerationError(sheet, "styles", err)
	}
	return nil
}

// setColumnWidths sets the width of the first n columns.
func setColumnWidths(f *excelize.File, sheet string, n int, width float64) error {
	last, err := excelize.ColumnNumberToName(n)
	if err != nil {
		return newGenerationError(sheet, "layout", err)
	}
	if err := f.SetColWidth(sheet, "A", last, width); err != nil {
		return newGenerationError(sheet, "layout", err)
	}
	return nil
}

// freezeRows freezes the first n rows.
func freezeRows(f *excelize.File, sheet string, n int) error {
	topLeft, _ := excelize.CoordinatesToCellName(1, n+1)
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      n,
		TopLeftCell: topLeft,
		ActivePane:  "bottomLeft",
	}); err != nil {
		return newGenerationError(sheet, "layout", err)
	}
	return nil
}

// hideGridLines turns off the gridlines of sheet.
func hideGridLines(f *excelize.File, sheet string) error {
	show := false
	if err := f.SetSheetView(sheet, 0, &excelize.ViewOptions{ShowGridLines: &show}); err != nil {
		return newGenerationError(sheet, "layout", err)
	}
	return nil
}
