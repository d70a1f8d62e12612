package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/aramis-fighter/aramis-xlsx/pkg/analyzer/models"
	"github.com/xuri/excelize/v2"
)

// ChartTypeMap maps OOXML plot element tags to chart class names.
var ChartTypeMap = map[string]string{
	"barChart":       "BarChart",
	"bar3DChart":     "BarChart3D",
	"lineChart":      "LineChart",
	"line3DChart":    "LineChart3D",
	"pieChart":       "PieChart",
	"pie3DChart":     "PieChart3D",
	"doughnutChart":  "DoughnutChart",
	"ofPieChart":     "ProjectedPieChart",
	"areaChart":      "AreaChart",
	"area3DChart":    "AreaChart3D",
	"scatterChart":   "ScatterChart",
	"bubbleChart":    "BubbleChart",
	"radarChart":     "RadarChart",
	"surfaceChart":   "SurfaceChart",
	"surface3DChart": "SurfaceChart3D",
	"stockChart":     "StockChart",
}

// chartAnchor is a chart reference found in a drawing part.
type chartAnchor struct {
	rID    string
	anchor string
}

// cellMarker is a 0-based cell position from a drawing anchor.
type cellMarker struct {
	col int
	row int
}

// ExtractCharts extracts charts from an xlsx file. The result maps a
// sheet name to its charts, in drawing order. Chart parts that cannot
// be read are skipped.
func ExtractCharts(xlsxPath string) (map[string][]models.Chart, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return extractCharts(&r.Reader)
}

func extractCharts(r *zip.Reader) (map[string][]models.Chart, error) {
	parts, err := sheetParts(r)
	if err != nil {
		return nil, err
	}

	result := make(map[string][]models.Chart)
	for _, sheet := range parts {
		drawingPath, err := findDrawingPart(r, sheet.path)
		if err != nil || drawingPath == "" {
			continue
		}
		charts := chartsFromDrawing(r, drawingPath)
		if len(charts) > 0 {
			result[sheet.name] = charts
		}
	}

	return result, nil
}

// chartsFromDrawing resolves and parses every chart of a drawing part.
func chartsFromDrawing(r *zip.Reader, drawingPath string) []models.Chart {
	var result []models.Chart

	drawingXML, err := readZipFile(r, drawingPath)
	if err != nil || drawingXML == nil {
		return result
	}

	anchors := parseDrawingAnchors(drawingXML)
	if len(anchors) == 0 {
		return result
	}

	relsXML, err := readZipFile(r, relsPath(drawingPath))
	if err != nil || relsXML == nil {
		return result
	}
	chartPaths := make(map[string]string)
	for _, rel := range parseRelationships(relsXML) {
		if relationshipKind(rel.kind) == "chart" {
			chartPaths[rel.id] = resolveTarget(drawingPath, rel.target)
		}
	}

	for _, a := range anchors {
		chartPath, ok := chartPaths[a.rID]
		if !ok {
			continue
		}
		chartXML, err := readZipFile(r, chartPath)
		if err != nil || chartXML == nil {
			continue
		}
		chart, ok := parseChartXML(chartXML)
		if !ok {
			continue
		}
		chart.Anchor = a.anchor
		result = append(result, chart)
	}

	return result
}

// parseDrawingAnchors returns the chart references of a drawing part in
// document order.
func parseDrawingAnchors(data []byte) []chartAnchor {
	var result []chartAnchor
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		if se, ok := token.(xml.StartElement); ok {
			switch se.Name.Local {
			case "twoCellAnchor", "oneCellAnchor", "absoluteAnchor":
				result = append(result, parseAnchor(decoder)...)
			}
		}
	}

	return result
}

// parseAnchor parses one anchor element. Grouped frames share the anchor
// of their group.
func parseAnchor(decoder *xml.Decoder) []chartAnchor {
	var from, to *cellMarker
	var rIDs []string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "from":
				m := parseMarker(decoder)
				from = &m
				depth--
			case "to":
				m := parseMarker(decoder)
				to = &m
				depth--
			case "chart":
				for _, attr := range t.Attr {
					if attr.Name.Local == "id" {
						rIDs = append(rIDs, attr.Value)
					}
				}
			}
		case xml.EndElement:
			depth--
		}
	}

	anchor := formatAnchor(from, to)
	result := make([]chartAnchor, 0, len(rIDs))
	for _, rID := range rIDs {
		result = append(result, chartAnchor{rID: rID, anchor: anchor})
	}
	return result
}

// parseMarker parses an xdr:from or xdr:to element.
func parseMarker(decoder *xml.Decoder) cellMarker {
	var m cellMarker
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "col", "row":
				txt, err := readElementText(decoder)
				depth--
				if err != nil {
					continue
				}
				v, err := strconv.Atoi(strings.TrimSpace(txt))
				if err != nil {
					continue
				}
				if t.Name.Local == "col" {
					m.col = v
				} else {
					m.row = v
				}
			}
		case xml.EndElement:
			depth--
		}
	}

	return m
}

// formatAnchor renders anchor markers as an A1 reference: "A3:H18" for
// two-cell anchors, "A3" for one-cell anchors, "" without markers.
func formatAnchor(from, to *cellMarker) string {
	if from == nil {
		return ""
	}
	start, err := excelize.CoordinatesToCellName(from.col+1, from.row+1)
	if err != nil {
		return ""
	}
	if to == nil {
		return start
	}
	end, err := excelize.CoordinatesToCellName(to.col+1, to.row+1)
	if err != nil {
		return start
	}
	return start + ":" + end
}

// parseChartXML parses a chart part. A chart whose plot area holds
// several plot types (combo chart) takes the first type and counts the
// series of all of them. It reports false when the part is not well-formed
// XML or holds no known plot type.
func parseChartXML(data []byte) (models.Chart, bool) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	var chart models.Chart

	for {
		token, err := decoder.Token()
		if err != nil {
			if err != io.EOF {
				return chart, false
			}
			break
		}

		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "chart" {
			parseChartElement(decoder, &chart)
		}
	}

	return chart, chart.Type != ""
}

// parseChartElement parses the c:chart element.
func parseChartElement(decoder *xml.Decoder, chart *models.Chart) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "title":
				if title := parseChartTitle(decoder); title != "" {
					chart.Title = &title
				}
				depth--
			case "plotArea":
				parsePlotArea(decoder, chart)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
}

// parseChartTitle returns the title text: rich text runs joined, or the
// cached value of a referenced title.
func parseChartTitle(decoder *xml.Decoder) string {
	var runs []string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "t", "v":
				if txt, err := readElementText(decoder); err == nil {
					runs = append(runs, txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return strings.TrimSpace(strings.Join(runs, ""))
}

// parsePlotArea parses the plot area element.
func parsePlotArea(decoder *xml.Decoder, chart *models.Chart) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if ct, ok := ChartTypeMap[t.Name.Local]; ok {
				if chart.Type == "" {
					chart.Type = ct
				}
				chart.SeriesCount += countSeries(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
}

// countSeries counts the c:ser children of a plot type element.
func countSeries(decoder *xml.Decoder) int {
	count := 0
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "ser" && depth == 2 {
				count++
			}
		case xml.EndElement:
			depth--
		}
	}

	return count
}
