package output

import (
	"strings"

	toon "github.com/mateuszkardas/toon-go"

	"github.com/aramis-fighter/aramis-xlsx/pkg/analyzer/models"
)

// toonPayload flattens a result into uniform lists so that TOON can
// encode each of them as one table.
type toonPayload struct {
	Sheets          []toonSheet             `json:"sheets"`
	Charts          []toonChart             `json:"charts"`
	Samples         []toonSample            `json:"samples"`
	ChartTypes      []string                `json:"chart_types"`
	Recommendations []models.Recommendation `json:"recommendations"`
}

type toonSheet struct {
	Name       string `json:"name"`
	MaxRow     int    `json:"max_row"`
	MaxCol     int    `json:"max_col"`
	ChartCount int    `json:"chart_count"`
	DataRanges string `json:"data_ranges"`
}

type toonChart struct {
	Sheet       string `json:"sheet"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Anchor      string `json:"anchor"`
	SeriesCount int    `json:"series_count"`
}

type toonSample struct {
	Sheet  string `json:"sheet"`
	Row    int    `json:"row"`
	Values string `json:"values"`
}

func buildTOONPayload(result *models.AnalysisResult) toonPayload {
	payload := toonPayload{
		Sheets:          make([]toonSheet, 0, len(result.Sheets)),
		Charts:          make([]toonChart, 0, len(result.Charts)),
		Samples:         make([]toonSample, 0),
		ChartTypes:      result.ChartTypes,
		Recommendations: result.Recommendations,
	}

	for _, s := range result.Sheets {
		payload.Sheets = append(payload.Sheets, toonSheet{
			Name:       s.Name,
			MaxRow:     s.MaxRow,
			MaxCol:     s.MaxCol,
			ChartCount: len(s.Charts),
			DataRanges: strings.Join(s.DataRanges, " "),
		})
	}

	for _, c := range result.Charts {
		title := ""
		if c.Title != nil {
			title = *c.Title
		}
		payload.Charts = append(payload.Charts, toonChart{
			Sheet:       c.Sheet,
			Type:        c.Type,
			Title:       title,
			Anchor:      c.Anchor,
			SeriesCount: c.SeriesCount,
		})
	}

	for _, sample := range result.DataStructure {
		for row, values := range sample.Table.Rows {
			payload.Samples = append(payload.Samples, toonSample{
				Sheet:  sample.Sheet,
				Row:    row,
				Values: strings.Join(values, "|"),
			})
		}
	}

	return payload
}

// ToTOON encodes the result in the compact TOON format.
func ToTOON(result *models.AnalysisResult) (string, error) {
	return toon.Marshal(buildTOONPayload(result), nil)
}
