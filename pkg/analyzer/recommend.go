package analyzer

import "github.com/aramis-fighter/aramis-xlsx/pkg/analyzer/models"

// chartRecommendations maps the chart types worth reusing in the fencing
// dashboards to their suggested use.
var chartRecommendations = map[string]string{
	"BarChart":     "Graphiques en barres pour efficacité par action",
	"PieChart":     "Graphiques circulaires pour répartition des actions",
	"LineChart":    "Courbes d'évolution des performances",
	"ScatterChart": "Nuages de points pour corrélations",
	"AreaChart":    "Graphiques en aires pour zones de terrain",
	"RadarChart":   "Graphiques radar pour profils tactiques",
}

// Recommend returns a recommendation for each known chart type, in the
// order of chartTypes. Unknown types are skipped.
func Recommend(chartTypes []string) []models.Recommendation {
	result := []models.Recommendation{}
	for _, t := range chartTypes {
		if description, ok := chartRecommendations[t]; ok {
			result = append(result, models.Recommendation{
				ChartType:   t,
				Description: description,
			})
		}
	}
	return result
}
