package models

// Chart describes a chart anchored on a sheet.
type Chart struct {
	// Type is the chart class name (e.g. BarChart, PieChart).
	Type string `json:"type"`
	// Title is the chart title text, nil when the chart has none.
	Title *string `json:"title"`
	// Anchor is the cell range covered by the chart (e.g. "A3:H18").
	// Charts placed with an absolute anchor have an empty anchor.
	Anchor string `json:"anchor"`
	// SeriesCount is the number of data series plotted.
	SeriesCount int `json:"series_count"`
	// Sheet is the owning sheet name. It is only set in the
	// workbook-level chart list.
	Sheet string `json:"sheet,omitempty"`
}

// Recommendation pairs a chart type found in the workbook with
// a suggested use for the fencing dashboards.
type Recommendation struct {
	// ChartType is the chart class name.
	ChartType string `json:"chart_type"`
	// Description is the suggested use.
	Description string `json:"description"`
}
