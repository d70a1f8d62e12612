package analyzer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/aramis-fighter/aramis-xlsx/pkg/analyzer/models"
	"github.com/aramis-fighter/aramis-xlsx/pkg/analyzer/parser"
	"github.com/xuri/excelize/v2"
)

// Analyze summarizes the workbook at path.
//
// The structure pass (sheets, dimensions, charts, data ranges) must
// succeed. The data pass (samples, keywords) is best effort: its
// failures are collected in the result's Warnings.
func Analyze(path string, opts Options) (*models.AnalysisResult, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	chartData, err := parser.ExtractCharts(path)
	if err != nil {
		return nil, NewAnalysisError("", "charts", err)
	}
	bounds, err := parser.ExtractSheetBounds(path)
	if err != nil {
		return nil, NewAnalysisError("", "cells", err)
	}
	printAreas := parser.ExtractPrintAreas(f)

	result := models.NewAnalysisResult()
	sheetList := f.GetSheetList()

	for _, sheetName := range sheetList {
		sheet := models.NewSheet(sheetName)

		if b, ok := bounds[sheetName]; ok {
			sheet.MaxRow, sheet.MaxCol = b.MaxRow, b.MaxCol
		}

		// Chartsheets have no cells; they still carry charts.
		if rows, err := f.GetRows(sheetName); err == nil {
			sheet.DataRanges = appendUnique(sheet.DataRanges, parser.DetectTables(rows, parser.DefaultTableParams())...)
		}
		sheet.DataRanges = appendUnique(sheet.DataRanges, printAreas[sheetName]...)

		for _, chart := range chartData[sheetName] {
			sheet.Charts = append(sheet.Charts, chart)
			result.AddChartType(chart.Type)

			chart.Sheet = sheetName
			result.Charts = append(result.Charts, chart)
		}

		result.Sheets = append(result.Sheets, sheet)
	}

	if !opts.SkipData {
		source := openRowSource(path, f, opts, result)
		analyzeData(source, sheetList, opts, result)
		source.Close()
	}

	result.Recommendations = Recommend(result.ChartTypes)
	return result, nil
}

// openRowSource returns the row source of the data pass: the streaming
// reader, or the opened workbook when streaming is off or fails.
func openRowSource(path string, f *excelize.File, opts Options, result *models.AnalysisResult) parser.RowSource {
	if !opts.NoStreaming {
		stream, err := parser.OpenStream(path)
		if err == nil {
			return stream
		}
		result.Warnings = append(result.Warnings, NewAnalysisError("", "data", err))
	}
	return parser.NewFileSource(f)
}

// analyzeData runs the data pass over every sheet. A sheet whose rows
// cannot be read is left out of the samples with a warning.
func analyzeData(source parser.RowSource, sheetList []string, opts Options, result *models.AnalysisResult) {
	for _, sheetName := range sheetList {
		rows, err := source.Rows(sheetName)
		if err != nil {
			result.Warnings = append(result.Warnings, NewAnalysisError(sheetName, "data", err))
			continue
		}

		if hits := KeywordHits(rows, opts.keywords()); len(hits) > 0 {
			result.Keywords[sheetName] = hits
		}
		result.DataStructure = append(result.DataStructure, models.SheetSample{
			Sheet: sheetName,
			Table: parser.SampleRows(rows, opts.sampleRows()),
		})
	}
}

func appendUnique(list []string, values ...string) []string {
	for _, v := range values {
		seen := false
		for _, existing := range list {
			if existing == v {
				seen = true
				break
			}
		}
		if !seen {
			list = append(list, v)
		}
	}
	return list
}
