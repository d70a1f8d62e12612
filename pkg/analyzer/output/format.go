package output

import (
	"fmt"
	"strings"

	"github.com/aramis-fighter/aramis-xlsx/pkg/analyzer/models"
)

// Format is an output encoding of the analyzer.
type Format string

const (
	// FormatJSON is the analysis results record, the default output.
	FormatJSON Format = "json"
	// FormatTOON is the compact TOON encoding of the same data.
	FormatTOON Format = "toon"
	// FormatMarkdown is a human-readable report.
	FormatMarkdown Format = "markdown"
	// FormatHTML is the markdown report rendered as a standalone page.
	FormatHTML Format = "html"
)

// ParseFormat returns the format named s. Matching ignores case and
// accepts "md" for markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "toon":
		return FormatTOON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be json, toon, markdown, or html)", s)
	}
}

// Render encodes result in format. pretty only affects JSON.
func Render(result *models.AnalysisResult, format Format, pretty bool) ([]byte, error) {
	switch format {
	case FormatJSON:
		return ToJSON(result, pretty)
	case FormatTOON:
		s, err := ToTOON(result)
		if err != nil {
			return nil, fmt.Errorf("toon encoding failed: %w", err)
		}
		return []byte(s), nil
	case FormatMarkdown:
		return []byte(ToMarkdown(result)), nil
	case FormatHTML:
		return ToHTML(result), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
