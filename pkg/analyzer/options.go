// Package analyzer summarizes the sheets, charts and data of an Excel workbook.
package analyzer

// DefaultSampleRows is the number of leading rows kept per sheet.
const DefaultSampleRows = 10

// DefaultKeywords are the fencing terms looked up in every sheet.
var DefaultKeywords = []string{"AS", "AC", "AF", "PR", "CA", "Zone", "Efficacité", "Touches"}

// Options configures an analysis run.
type Options struct {
	// SampleRows is the number of leading rows kept per sheet.
	// Zero means DefaultSampleRows.
	SampleRows int
	// Keywords are looked up case-insensitively in every sheet.
	// Nil means DefaultKeywords.
	Keywords []string
	// SkipData disables the data pass (samples and keywords).
	SkipData bool
	// NoStreaming reads the data pass through the already opened workbook
	// instead of streaming the sheet parts.
	NoStreaming bool
}

// DefaultOptions returns default analysis options.
func DefaultOptions() Options {
	return Options{
		SampleRows: DefaultSampleRows,
	}
}

func (o Options) sampleRows() int {
	if o.SampleRows <= 0 {
		return DefaultSampleRows
	}
	return o.SampleRows
}

func (o Options) keywords() []string {
	if o.Keywords == nil {
		return DefaultKeywords
	}
	return o.Keywords
}
