package parser

import (
	"github.com/thedatashed/xlsxreader"
	"github.com/xuri/excelize/v2"
)

// RowSource yields the cell grid of a sheet as strings.
type RowSource interface {
	Rows(sheet string) ([][]string, error)
	Close() error
}

// StreamSource reads rows by streaming the sheet parts.
type StreamSource struct {
	xl *xlsxreader.XlsxFileCloser
}

// OpenStream opens a streaming row source on an xlsx file.
func OpenStream(path string) (*StreamSource, error) {
	xl, err := xlsxreader.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &StreamSource{xl: xl}, nil
}

// Rows streams every row of sheet into a dense grid. Rows absent from the
// sheet part come back empty. The first row error is returned after the
// stream is drained.
func (s *StreamSource) Rows(sheet string) ([][]string, error) {
	var grid [][]string
	var firstErr error

	for row := range s.xl.ReadRows(sheet) {
		if row.Error != nil {
			if firstErr == nil {
				firstErr = row.Error
			}
			continue
		}
		// A row without a reference follows the previous one.
		index := row.Index
		if index < 1 {
			index = len(grid) + 1
		}
		for len(grid) < index {
			grid = append(grid, nil)
		}
		values := grid[index-1]
		for _, cell := range row.Cells {
			col, err := excelize.ColumnNameToNumber(cell.Column)
			if err != nil {
				continue
			}
			for len(values) < col {
				values = append(values, "")
			}
			values[col-1] = cell.Value
		}
		grid[index-1] = values
	}

	return trimTrailingEmptyRows(grid), firstErr
}

// Close releases the underlying file.
func (s *StreamSource) Close() error {
	return s.xl.Close()
}

// FileSource reads rows from an already opened workbook.
type FileSource struct {
	f *excelize.File
}

// NewFileSource wraps f. Closing the source leaves f open.
func NewFileSource(f *excelize.File) *FileSource {
	return &FileSource{f: f}
}

// Rows returns the formatted cell values of sheet.
func (s *FileSource) Rows(sheet string) ([][]string, error) {
	return s.f.GetRows(sheet)
}

// Close is a no-op; the workbook belongs to the caller.
func (s *FileSource) Close() error {
	return nil
}
