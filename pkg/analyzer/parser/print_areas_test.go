package parser

import (
	"reflect"
	"testing"
)

func TestParsePrintAreaReference(t *testing.T) {
	tests := []struct {
		ref      string
		sheet    string
		expected []string
	}{
		{"'Données Brutes'!$A$1:$N$20", "Données Brutes", []string{"A1:N20"}},
		{"Sheet1!$A$1:$D$10,Sheet1!$F$1:$G$2", "Sheet1", []string{"A1:D10", "F1:G2"}},
		{"'L''équipe'!$B$2:$C$3", "L'équipe", []string{"B2:C3"}},
		{"Sheet1!$A:$A", "Sheet1", nil},
		{"", "", nil},
	}

	for _, tt := range tests {
		sheet, areas := parsePrintAreaReference(tt.ref)
		if sheet != tt.sheet {
			t.Errorf("parsePrintAreaReference(%q) sheet = %q, expected %q", tt.ref, sheet, tt.sheet)
		}
		if !reflect.DeepEqual(areas, tt.expected) {
			t.Errorf("parsePrintAreaReference(%q) areas = %v, expected %v", tt.ref, areas, tt.expected)
		}
	}
}
