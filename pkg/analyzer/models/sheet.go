package models

// Sheet represents the summary of a single sheet.
type Sheet struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Charts contains the charts anchored on the sheet, in drawing order.
	Charts []Chart `json:"charts"`
	// DataRanges contains cell ranges holding data: detected table
	// candidates followed by user-defined print areas.
	DataRanges []string `json:"data_ranges"`
	// MaxRow is the last used row (1-based, at least 1).
	MaxRow int `json:"max_row"`
	// MaxCol is the last used column (1-based, at least 1).
	MaxCol int `json:"max_col"`
}

// NewSheet returns a Sheet with empty, non-nil lists.
func NewSheet(name string) Sheet {
	return Sheet{
		Name:       name,
		Charts:     []Chart{},
		DataRanges: []string{},
		MaxRow:     1,
		MaxCol:     1,
	}
}
