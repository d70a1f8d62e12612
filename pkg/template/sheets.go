package template

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// buildDataSheet writes the raw-data sheet: the import header row only.
func buildDataSheet(f *excelize.File, sheet string, s *styles) error {
	if err := writeHeader(f, sheet, 1, DataHeaders, s.dataHeader); err != nil {
		return err
	}
	if err := setColumnWidths(f, sheet, len(DataHeaders), 15); err != nil {
		return err
	}
	return freezeRows(f, sheet, 1)
}

// buildFencerSheet writes the per-fencer analysis sheet with its example row.
func buildFencerSheet(f *excelize.File, sheet string, s *styles) error {
	if err := writeTitle(f, sheet, "H1", "ANALYSE DÉTAILLÉE PAR ESCRIMEUR", s.fencerTitle); err != nil {
		return err
	}
	if err := writeHeader(f, sheet, 2, FencerHeaders, s.fencerHeader); err != nil {
		return err
	}

	if err := writeRow(f, sheet, 1, 3, FencerExample); err != nil {
		return newGenerationError(sheet, "cells", err)
	}
	end, _ := excelize.CoordinatesToCellName(len(FencerExample), 3)
	if err := f.SetCellStyle(sheet, "A3", end, s.example); err != nil {
		return newGenerationError(sheet, "styles", err)
	}

	if err := setColumnWidths(f, sheet, len(FencerHeaders), 18); err != nil {
		return err
	}
	return freezeRows(f, sheet, 2)
}

// buildActionsSheet writes the action analysis sheet and the color scale
// of the efficiency column.
func buildActionsSheet(f *excelize.File, sheet string, s *styles) error {
	if err := writeTitle(f, sheet, "F1", "ANALYSE DES ACTIONS D'ESCRIME", s.actionsTitle); err != nil {
		return err
	}
	if err := writeHeader(f, sheet, 2, ActionHeaders, s.actionsHeader); err != nil {
		return err
	}

	for i, action := range Actions {
		row := i + 3
		if err := writeRow(f, sheet, 1, row, ActionRow(action, row)); err != nil {
			return newGenerationError(sheet, "cells", err)
		}
	}

	if err := f.SetConditionalFormat(sheet, EfficiencyRange, []excelize.ConditionalFormatOptions{{
		Type:     "3_color_scale",
		Criteria: "=",
		MinType:  "min",
		MidType:  "percentile",
		MaxType:  "max",
		MidValue: ScaleMidValue,
		MinColor: "#" + ScaleMinColor,
		MidColor: "#" + ScaleMidColor,
		MaxColor: "#" + ScaleMaxColor,
	}}); err != nil {
		return newGenerationError(sheet, "format", err)
	}

	if err := setColumnWidths(f, sheet, len(ActionHeaders), 20); err != nil {
		return err
	}
	return freezeRows(f, sheet, 2)
}

// buildChartsSheet writes the chart placeholders and, when enabled, the
// native charts drawn over the first two of them.
func (g *Generator) buildChartsSheet(f *excelize.File, sheet string, s *styles) error {
	if err := hideGridLines(f, sheet); err != nil {
		return err
	}
	if err := writeTitle(f, sheet, "H1", "VISUALISATIONS ET GRAPHIQUES", s.chartsTitle); err != nil {
		return err
	}

	for _, p := range Placeholders {
		if err := f.MergeCell(sheet, p.TopLeft, p.BottomRight); err != nil {
			return newGenerationError(sheet, "layout", err)
		}
		if err := f.SetCellStr(sheet, p.TopLeft, p.Text); err != nil {
			return newGenerationError(sheet, "cells", err)
		}
		// Styling the whole zone draws the border around the merged area.
		if err := f.SetCellStyle(sheet, p.TopLeft, p.BottomRight, s.placeholder); err != nil {
			return newGenerationError(sheet, "styles", err)
		}
	}

	if !g.opts.WithCharts {
		return nil
	}
	return addActionCharts(f, sheet)
}

// actionsRef returns an absolute reference into the action sheet.
func actionsRef(col string, firstRow, lastRow int) string {
	if firstRow == lastRow {
		return fmt.Sprintf("'%s'!$%s$%d", SheetActions, col, firstRow)
	}
	return fmt.Sprintf("'%s'!$%s$%d:$%s$%d", SheetActions, col, firstRow, col, lastRow)
}

// addActionCharts draws the frequency pie and the efficiency bars from the
// action sheet.
func addActionCharts(f *excelize.File, sheet string) error {
	first, last := 3, 2+len(Actions)
	categories := actionsRef("B", first, last)

	charts := []struct {
		cell  string
		chart *excelize.Chart
	}{
		{Placeholders[0].TopLeft, &excelize.Chart{
			Type: excelize.Pie,
			Series: []excelize.ChartSeries{{
				Name:       actionsRef("C", 2, 2),
				Categories: categories,
				Values:     actionsRef("C", first, last),
			}},
			Title:     []excelize.RichTextRun{{Text: "Répartition des Actions"}},
			Dimension: excelize.ChartDimension{Width: 320, Height: 250},
		}},
		{Placeholders[1].TopLeft, &excelize.Chart{
			Type: excelize.Col,
			Series: []excelize.ChartSeries{{
				Name:       actionsRef("D", 2, 2),
				Categories: categories,
				Values:     actionsRef("D", first, last),
			}},
			Title:     []excelize.RichTextRun{{Text: "Efficacité par Action"}},
			Dimension: excelize.ChartDimension{Width: 240, Height: 250},
		}},
	}

	for _, c := range charts {
		if err := f.AddChart(sheet, c.cell, c.chart); err != nil {
			return newGenerationError(sheet, "charts", err)
		}
	}
	return nil
}

// macroLineStyle picks the style of a macro sheet line; 0 means unstyled.
func macroLineStyle(s *styles, line string) int {
	switch {
	case line == "":
		return 0
	case strings.Contains(line, "MACRO") || strings.Contains(line, "CODE VBA"):
		return s.subtitle
	case strings.Contains(line, "Sub ") || strings.Contains(line, "End Sub") || strings.HasPrefix(line, "    "):
		return s.code
	}
	return 0
}

// buildMacrosSheet writes the macro documentation. Empty lines leave the
// cell blank.
func buildMacrosSheet(f *excelize.File, sheet string, s *styles) error {
	if err := hideGridLines(f, sheet); err != nil {
		return err
	}

	for i, line := range MacroLines {
		row := i + 1
		cell, _ := excelize.CoordinatesToCellName(1, row)

		if row == 1 {
			if err := writeTitle(f, sheet, "F1", line, s.macrosTitle); err != nil {
				return err
			}
			continue
		}
		if line == "" {
			continue
		}
		if err := f.SetCellStr(sheet, cell, line); err != nil {
			return newGenerationError(sheet, "cells", err)
		}
		if styleID := macroLineStyle(s, line); styleID != 0 {
			if err := f.SetCellStyle(sheet, cell, cell, styleID); err != nil {
				return newGenerationError(sheet, "styles", err)
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", 80); err != nil {
		return newGenerationError(sheet, "layout", err)
	}
	return nil
}
