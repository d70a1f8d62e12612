// Package main provides the CLI entry point of the template generator.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/aramis-fighter/aramis-xlsx/internal/app"
	"github.com/aramis-fighter/aramis-xlsx/pkg/template"
)

var (
	outputPath string
	withCharts bool
	creator    string
)

func main() {
	app.SetupEnvironment()
	config := app.LoadConfig()

	if err := newRootCmd(config).Execute(); err != nil {
		log.Error().Err(err).Msg("Template generation failed")
		os.Exit(1)
	}
}

func newRootCmd(config *app.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "excel-template",
		Short: "Generate the Aramis Fighter analysis template",
		Long: `excel-template builds the five-sheet workbook used to record and
analyze fencing bouts.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", config.TemplateOutput, "Output file path")
	rootCmd.Flags().BoolVar(&withCharts, "with-charts", false, "Add native charts over the chart placeholders")
	rootCmd.Flags().StringVar(&creator, "creator", template.DefaultCreator, "Document author")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	g := template.New(
		template.WithCharts(withCharts),
		template.WithCreator(creator),
	)
	if err := g.SaveAs(outputPath); err != nil {
		return fmt.Errorf("failed to generate template: %w", err)
	}

	log.Info().Str("file", outputPath).Msg("Template Excel créé")
	log.Info().Strs("sheets", template.SheetNames).Msg("Feuilles créées")
	return nil
}
