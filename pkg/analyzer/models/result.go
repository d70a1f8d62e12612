// Package models defines the data structures produced by the workbook analyzer.
package models

// AnalysisResult is the results record of one analyzer run.
type AnalysisResult struct {
	// Sheets lists every sheet in workbook order.
	Sheets []Sheet `json:"sheets"`
	// Charts lists every chart of the workbook with its owning sheet.
	Charts []Chart `json:"charts"`
	// DataStructure holds the leading rows of each sheet.
	DataStructure DataStructure `json:"data_structure"`
	// ChartTypes lists each distinct chart type once, in first-seen order.
	ChartTypes []string `json:"chart_types"`
	// Recommendations pairs known chart types with a suggested use.
	Recommendations []Recommendation `json:"recommendations"`

	// Keywords maps a sheet name to the fencing keywords found in it.
	Keywords map[string][]string `json:"-"`
	// Warnings collects non-fatal failures of the data pass.
	Warnings []error `json:"-"`
}

// NewAnalysisResult returns an empty result whose lists encode as [].
func NewAnalysisResult() *AnalysisResult {
	return &AnalysisResult{
		Sheets:          []Sheet{},
		Charts:          []Chart{},
		DataStructure:   DataStructure{},
		ChartTypes:      []string{},
		Recommendations: []Recommendation{},
		Keywords:        make(map[string][]string),
	}
}

// AddChartType records t unless it is already present.
func (r *AnalysisResult) AddChartType(t string) {
	for _, existing := range r.ChartTypes {
		if existing == t {
			return
		}
	}
	r.ChartTypes = append(r.ChartTypes, t)
}
