package parser

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeChartWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	rows := [][]interface{}{
		{"Action", "Fréquence", "Efficacité"},
		{"Attaque", 12, 0.5},
		{"Riposte", 7, 0.8},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}

	if err := f.AddChart(sheet, "E2", &excelize.Chart{
		Type: excelize.Pie,
		Series: []excelize.ChartSeries{{
			Name:       "Sheet1!$B$1",
			Categories: "Sheet1!$A$2:$A$3",
			Values:     "Sheet1!$B$2:$B$3",
		}},
		Title: []excelize.RichTextRun{{Text: "Répartition"}},
	}); err != nil {
		t.Fatalf("AddChart pie failed: %v", err)
	}
	if err := f.AddChart(sheet, "E20", &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{
			{Name: "Sheet1!$B$1", Categories: "Sheet1!$A$2:$A$3", Values: "Sheet1!$B$2:$B$3"},
			{Name: "Sheet1!$C$1", Categories: "Sheet1!$A$2:$A$3", Values: "Sheet1!$C$2:$C$3"},
		},
	}); err != nil {
		t.Fatalf("AddChart col failed: %v", err)
	}

	if _, err := f.NewSheet("Vide"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "charts.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

func TestExtractCharts(t *testing.T) {
	path := writeChartWorkbook(t)

	charts, err := ExtractCharts(path)
	if err != nil {
		t.Fatalf("ExtractCharts failed: %v", err)
	}

	if _, ok := charts["Vide"]; ok {
		t.Errorf("Expected no charts on sheet without drawing")
	}

	got := charts["Sheet1"]
	if len(got) != 2 {
		t.Fatalf("Expected 2 charts, got %d", len(got))
	}

	pie := got[0]
	if pie.Type != "PieChart" {
		t.Errorf("Expected PieChart, got %q", pie.Type)
	}
	if pie.Title == nil || *pie.Title != "Répartition" {
		t.Errorf("Expected title 'Répartition', got %v", pie.Title)
	}
	if pie.SeriesCount != 1 {
		t.Errorf("Expected 1 series, got %d", pie.SeriesCount)
	}
	if len(pie.Anchor) < 3 || pie.Anchor[:3] != "E2:" {
		t.Errorf("Expected anchor starting at E2, got %q", pie.Anchor)
	}

	col := got[1]
	if col.Type != "BarChart" {
		t.Errorf("Expected BarChart, got %q", col.Type)
	}
	if col.SeriesCount != 2 {
		t.Errorf("Expected 2 series, got %d", col.SeriesCount)
	}
}

// replaceZipPart rewrites the part name of the xlsx file at path with data.
func replaceZipPart(t *testing.T, path, name string, data []byte) {
	t.Helper()

	src, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", path, err)
	}
	defer src.Close()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	found := false
	for _, f := range src.File {
		dst, err := w.Create(f.Name)
		if err != nil {
			t.Fatalf("Failed to create %s: %v", f.Name, err)
		}
		if f.Name == name {
			found = true
			dst.Write(data)
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("Failed to open %s: %v", f.Name, err)
		}
		if _, err := io.Copy(dst, rc); err != nil {
			t.Fatalf("Failed to copy %s: %v", f.Name, err)
		}
		rc.Close()
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close zip writer: %v", err)
	}
	if !found {
		t.Fatalf("Part %s not found in %s", name, path)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestExtractChartsSkipsMalformedChart(t *testing.T) {
	path := writeChartWorkbook(t)
	replaceZipPart(t, path, "xl/charts/chart1.xml", []byte(`<c:chartSpace><c:chart><<<garbage`))

	charts, err := ExtractCharts(path)
	if err != nil {
		t.Fatalf("ExtractCharts failed: %v", err)
	}

	got := charts["Sheet1"]
	if len(got) != 1 {
		t.Fatalf("Expected the malformed chart to be skipped, got %d charts: %+v", len(got), got)
	}
	if got[0].Type != "BarChart" {
		t.Errorf("Expected the remaining chart to be BarChart, got %q", got[0].Type)
	}
}

func TestExtractChartsMissingFile(t *testing.T) {
	if _, err := ExtractCharts(filepath.Join(t.TempDir(), "absent.xlsx")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestParseChartXML(t *testing.T) {
	tests := []struct {
		name        string
		xml         string
		chartType   string
		title       string
		seriesCount int
		invalid     bool
	}{
		{
			name: "rich title",
			xml: `<c:chartSpace xmlns:c="c" xmlns:a="a"><c:chart>
				<c:title><c:tx><c:rich><a:p><a:r><a:t>Efficacité </a:t></a:r><a:r><a:t>par action</a:t></a:r></a:p></c:rich></c:tx></c:title>
				<c:plotArea><c:barChart><c:ser><c:idx val="0"/></c:ser></c:barChart>
				<c:valAx><c:title><c:tx><c:rich><a:p><a:r><a:t>Axe</a:t></a:r></a:p></c:rich></c:tx></c:title></c:valAx></c:plotArea>
				</c:chart></c:chartSpace>`,
			chartType:   "BarChart",
			title:       "Efficacité par action",
			seriesCount: 1,
		},
		{
			name: "combo chart keeps first type",
			xml: `<c:chartSpace xmlns:c="c"><c:chart><c:plotArea>
				<c:lineChart><c:ser/><c:ser/></c:lineChart>
				<c:barChart><c:ser/></c:barChart>
				</c:plotArea></c:chart></c:chartSpace>`,
			chartType:   "LineChart",
			seriesCount: 3,
		},
		{
			name: "referenced title",
			xml: `<c:chartSpace xmlns:c="c"><c:chart>
				<c:title><c:tx><c:strRef><c:f>Sheet1!$A$1</c:f><c:strCache><c:pt idx="0"><c:v>Touches</c:v></c:pt></c:strCache></c:strRef></c:tx></c:title>
				<c:plotArea><c:radarChart><c:ser/></c:radarChart></c:plotArea></c:chart></c:chartSpace>`,
			chartType:   "RadarChart",
			title:       "Touches",
			seriesCount: 1,
		},
		{
			name:    "unknown plot",
			xml:     `<c:chartSpace xmlns:c="c"><c:chart><c:plotArea/></c:chart></c:chartSpace>`,
			invalid: true,
		},
		{
			name:    "no chart element",
			xml:     `<c:chartSpace xmlns:c="c"><c:date1904 val="0"/></c:chartSpace>`,
			invalid: true,
		},
		{
			name:    "truncated part",
			xml:     `<c:chartSpace xmlns:c="c"><c:chart><<<garbage`,
			invalid: true,
		},
		{
			name:    "garbage after plot area",
			xml:     `<c:chartSpace xmlns:c="c"><c:chart><c:plotArea><c:pieChart><c:ser/></c:pieChart></c:plotArea></c:chart><c:x</c:chartSpace>`,
			invalid: true,
		},
	}

	for _, tt := range tests {
		chart, ok := parseChartXML([]byte(tt.xml))
		if ok == tt.invalid {
			t.Errorf("%s: ok = %v, expected %v", tt.name, ok, !tt.invalid)
		}
		if tt.invalid {
			continue
		}
		if chart.Type != tt.chartType {
			t.Errorf("%s: type = %q, expected %q", tt.name, chart.Type, tt.chartType)
		}
		if chart.SeriesCount != tt.seriesCount {
			t.Errorf("%s: series = %d, expected %d", tt.name, chart.SeriesCount, tt.seriesCount)
		}
		switch {
		case tt.title == "" && chart.Title != nil:
			t.Errorf("%s: expected no title, got %q", tt.name, *chart.Title)
		case tt.title != "" && (chart.Title == nil || *chart.Title != tt.title):
			t.Errorf("%s: title = %v, expected %q", tt.name, chart.Title, tt.title)
		}
	}
}

func TestParseDrawingAnchors(t *testing.T) {
	drawing := `<xdr:wsDr xmlns:xdr="x" xmlns:a="a" xmlns:c="c" xmlns:r="r">
		<xdr:twoCellAnchor>
			<xdr:from><xdr:col>5</xdr:col><xdr:colOff>0</xdr:colOff><xdr:row>2</xdr:row><xdr:rowOff>0</xdr:rowOff></xdr:from>
			<xdr:to><xdr:col>7</xdr:col><xdr:colOff>0</xdr:colOff><xdr:row>14</xdr:row><xdr:rowOff>0</xdr:rowOff></xdr:to>
			<xdr:graphicFrame><xdr:nvGraphicFramePr><xdr:cNvPr id="2" name="Chart 1"/></xdr:nvGraphicFramePr>
			<a:graphic><a:graphicData><c:chart r:id="rId2"/></a:graphicData></a:graphic></xdr:graphicFrame>
		</xdr:twoCellAnchor>
		<xdr:oneCellAnchor>
			<xdr:from><xdr:col>0</xdr:col><xdr:row>0</xdr:row></xdr:from>
			<xdr:pic><xdr:nvPicPr><xdr:cNvPr id="3" name="Logo"/></xdr:nvPicPr></xdr:pic>
		</xdr:oneCellAnchor>
		<xdr:oneCellAnchor>
			<xdr:from><xdr:col>0</xdr:col><xdr:row>16</xdr:row></xdr:from>
			<xdr:graphicFrame><a:graphic><a:graphicData><c:chart r:id="rId1"/></a:graphicData></a:graphic></xdr:graphicFrame>
		</xdr:oneCellAnchor>
		<xdr:absoluteAnchor>
			<xdr:pos x="0" y="0"/>
			<xdr:graphicFrame><a:graphic><a:graphicData><c:chart r:id="rId3"/></a:graphicData></a:graphic></xdr:graphicFrame>
		</xdr:absoluteAnchor>
	</xdr:wsDr>`

	got := parseDrawingAnchors([]byte(drawing))
	expected := []chartAnchor{
		{rID: "rId2", anchor: "F3:H15"},
		{rID: "rId1", anchor: "A17"},
		{rID: "rId3", anchor: ""},
	}
	if len(got) != len(expected) {
		t.Fatalf("Expected %d anchors, got %d: %+v", len(expected), len(got), got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("anchor %d = %+v, expected %+v", i, got[i], expected[i])
		}
	}
}
