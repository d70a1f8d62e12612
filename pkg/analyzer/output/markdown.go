package output

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/xuri/excelize/v2"

	"github.com/aramis-fighter/aramis-xlsx/pkg/analyzer/models"
)

// ToMarkdown renders a human-readable report of the result.
func ToMarkdown(result *models.AnalysisResult) string {
	var b strings.Builder

	b.WriteString("# Analyse du fichier Excel\n\n")
	b.WriteString("## Feuilles\n\n")
	b.WriteString("| Nom | Lignes | Colonnes | Graphiques | Plages |\n")
	b.WriteString("| --- | ---: | ---: | ---: | --- |\n")
	for _, s := range result.Sheets {
		b.WriteString(fmt.Sprintf("| %s | %d | %d | %d | %s |\n",
			escapeMarkdownCell(s.Name), s.MaxRow, s.MaxCol, len(s.Charts),
			escapeMarkdownCell(strings.Join(s.DataRanges, ", "))))
	}

	if len(result.Charts) > 0 {
		b.WriteString("\n## Graphiques\n\n")
		b.WriteString("| Feuille | Type | Titre | Position | Séries |\n")
		b.WriteString("| --- | --- | --- | --- | ---: |\n")
		for _, c := range result.Charts {
			title := ""
			if c.Title != nil {
				title = *c.Title
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %d |\n",
				escapeMarkdownCell(c.Sheet), c.Type, escapeMarkdownCell(title),
				c.Anchor, c.SeriesCount))
		}
	}

	if len(result.DataStructure) > 0 {
		b.WriteString("\n## Données\n")
		for _, sample := range result.DataStructure {
			b.WriteString(fmt.Sprintf("\n### %s\n\n", escapeMarkdownCell(sample.Sheet)))
			writeSampleTable(&b, sample.Table)
		}
	}

	if len(result.Recommendations) > 0 {
		b.WriteString("\n## Recommandations\n\n")
		for _, r := range result.Recommendations {
			b.WriteString(fmt.Sprintf("- **%s**: %s\n", r.ChartType, r.Description))
		}
	}

	return b.String()
}

// writeSampleTable writes the sample rows under column letter headers.
func writeSampleTable(b *strings.Builder, t models.SampleTable) {
	if len(t.Rows) == 0 || t.Width == 0 {
		b.WriteString("_Aucune donnée._\n")
		return
	}

	b.WriteString("| ")
	for col := 1; col <= t.Width; col++ {
		if col > 1 {
			b.WriteString(" | ")
		}
		name, _ := excelize.ColumnNumberToName(col)
		b.WriteString(name)
	}
	b.WriteString(" |\n|")
	for col := 0; col < t.Width; col++ {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")

	for row := range t.Rows {
		b.WriteString("| ")
		for col := 0; col < t.Width; col++ {
			if col > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(escapeMarkdownCell(t.Value(col, row)))
		}
		b.WriteString(" |\n")
	}
}

func escapeMarkdownCell(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "\\", "\\\\")
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", " ")
	return v
}

// ToHTML renders the markdown report as a standalone HTML page.
func ToHTML(result *models.AnalysisResult) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.CompletePage,
		Title: "Analyse du fichier Excel",
	})
	return markdown.ToHTML([]byte(ToMarkdown(result)), p, renderer)
}
