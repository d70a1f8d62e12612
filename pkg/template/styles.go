package template

import "github.com/xuri/excelize/v2"

const (
	colorData    = "4472C4"
	colorFencer  = "70AD47"
	colorActions = "E74C3C"
	colorCharts  = "9B59B6"
	colorMacros  = "2E86AB"
)

// styles holds the style ids shared by the sheet builders.
type styles struct {
	dataHeader    int
	fencerHeader  int
	actionsHeader int

	fencerTitle  int
	actionsTitle int
	chartsTitle  int
	macrosTitle  int

	example     int
	placeholder int
	subtitle    int
	code        int
}

func borders(style int) []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: style},
		{Type: "right", Color: "000000", Style: style},
		{Type: "top", Color: "000000", Style: style},
		{Type: "bottom", Color: "000000", Style: style},
	}
}

func solidFill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
}

var centered = &excelize.Alignment{Horizontal: "center", Vertical: "center"}

func headerStyle(fill string) *excelize.Style {
	return &excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      solidFill(fill),
		Alignment: centered,
		Border:    borders(1),
	}
}

func titleStyle(size float64, color string) *excelize.Style {
	return &excelize.Style{
		Font:      &excelize.Font{Size: size, Bold: true, Color: color},
		Alignment: centered,
	}
}

// newStyles registers every template style in f.
func newStyles(f *excelize.File) (*styles, error) {
	s := &styles{}
	defs := []struct {
		id    *int
		style *excelize.Style
	}{
		{&s.dataHeader, headerStyle(colorData)},
		{&s.fencerHeader, headerStyle(colorFencer)},
		{&s.actionsHeader, headerStyle(colorActions)},
		{&s.fencerTitle, titleStyle(16, colorData)},
		{&s.actionsTitle, titleStyle(16, colorActions)},
		{&s.chartsTitle, titleStyle(18, colorCharts)},
		{&s.macrosTitle, titleStyle(16, colorMacros)},
		{&s.example, &excelize.Style{
			Font: &excelize.Font{Italic: true},
			Fill: solidFill("F2F2F2"),
		}},
		{&s.placeholder, &excelize.Style{
			Fill:      solidFill("F8F9FA"),
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
			Border:    borders(2),
		}},
		{&s.subtitle, &excelize.Style{
			Font: &excelize.Font{Size: 12, Bold: true, Color: colorMacros},
		}},
		{&s.code, &excelize.Style{
			Font: &excelize.Font{Family: "Consolas", Size: 10, Color: "666666"},
			Fill: solidFill("F5F5F5"),
		}},
	}

	for _, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return nil, err
		}
		*d.id = id
	}
	return s, nil
}
