package main

import (
	"github.com/rs/zerolog/log"

	"github.com/aramis-fighter/aramis-xlsx/pkg/analyzer/models"
)

// report logs the console summary of an analysis.
func report(result *models.AnalysisResult) {
	log.Info().Int("count", len(result.Sheets)).Msg("Feuilles trouvées")

	for _, sheet := range result.Sheets {
		log.Info().
			Str("sheet", sheet.Name).
			Int("max_row", sheet.MaxRow).
			Int("max_col", sheet.MaxCol).
			Strs("data_ranges", sheet.DataRanges).
			Msg("Feuille")

		for _, chart := range sheet.Charts {
			event := log.Info().
				Str("sheet", sheet.Name).
				Str("type", chart.Type).
				Str("anchor", chart.Anchor).
				Int("series_count", chart.SeriesCount)
			if chart.Title != nil {
				event = event.Str("title", *chart.Title)
			}
			event.Msg("Graphique trouvé")
		}

		if hits := result.Keywords[sheet.Name]; len(hits) > 0 {
			log.Info().Str("sheet", sheet.Name).Strs("keywords", hits).Msg("Mots-clés trouvés")
		}
	}

	for _, warning := range result.Warnings {
		log.Warn().Err(warning).Msg("Impossible de lire les données")
	}

	log.Info().Strs("chart_types", result.ChartTypes).Msg("Types de graphiques")
	for _, r := range result.Recommendations {
		log.Info().Str("chart_type", r.ChartType).Msg(r.Description)
	}
}
