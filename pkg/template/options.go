// Package template builds the Aramis Fighter fencing analysis workbook template.
package template

// DefaultCreator is written in the workbook document properties.
const DefaultCreator = "Aramis Fighter App"

// Options configures template generation.
type Options struct {
	// WithCharts adds native charts over the chart sheet placeholders.
	WithCharts bool
	// Creator is the document author. Empty means DefaultCreator.
	Creator string
}

// Option mutates Options.
type Option func(*Options)

// WithCharts enables native charts on the chart sheet.
func WithCharts(enabled bool) Option {
	return func(o *Options) {
		o.WithCharts = enabled
	}
}

// WithCreator sets the document author.
func WithCreator(creator string) Option {
	return func(o *Options) {
		o.Creator = creator
	}
}
