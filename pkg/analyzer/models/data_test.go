package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleTableMarshalColumnMajor(t *testing.T) {
	table := SampleTable{
		Rows: [][]string{
			{"Date", "Heure"},
			{"2022-05-14", ""},
		},
		Width: 2,
	}

	data, err := json.Marshal(table)
	require.NoError(t, err)
	assert.Equal(t, `{"0":{"0":"Date","1":"2022-05-14"},"1":{"0":"Heure","1":""}}`, string(data))
}

func TestSampleTableKeysInNumericOrder(t *testing.T) {
	rows := make([][]string, 12)
	for i := range rows {
		rows[i] = []string{"x"}
	}
	data, err := json.Marshal(SampleTable{Rows: rows, Width: 1})
	require.NoError(t, err)

	// "10" must follow "9", not "1".
	assert.Contains(t, string(data), `"9":"x","10":"x","11":"x"`)
}

func TestDataStructureKeepsSheetOrderAndAmpersand(t *testing.T) {
	ds := DataStructure{
		{Sheet: "Macros & Auto", Table: SampleTable{}},
		{Sheet: "Données Brutes", Table: SampleTable{Rows: [][]string{{"<b>"}}, Width: 1}},
	}

	// json.Marshal would re-escape HTML characters; call the method directly.
	data, err := ds.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"Macros & Auto":{},"Données Brutes":{"0":{"0":"<b>"}}}`, string(data))

	table, ok := ds.Lookup("Données Brutes")
	require.True(t, ok)
	assert.Equal(t, "<b>", table.Value(0, 0))
	assert.Equal(t, "", table.Value(3, 3))

	_, ok = ds.Lookup("Absente")
	assert.False(t, ok)
}

func TestEmptyResultEncodesEmptyLists(t *testing.T) {
	data, err := json.Marshal(NewAnalysisResult())
	require.NoError(t, err)
	assert.JSONEq(t, `{"sheets":[],"charts":[],"data_structure":{},"chart_types":[],"recommendations":[]}`, string(data))
}

func TestAddChartTypeDeduplicates(t *testing.T) {
	r := NewAnalysisResult()
	r.AddChartType("BarChart")
	r.AddChartType("PieChart")
	r.AddChartType("BarChart")
	assert.Equal(t, []string{"BarChart", "PieChart"}, r.ChartTypes)
}
