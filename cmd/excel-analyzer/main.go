// Package main provides the CLI entry point of the workbook analyzer.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/aramis-fighter/aramis-xlsx/internal/app"
	"github.com/aramis-fighter/aramis-xlsx/pkg/analyzer"
	"github.com/aramis-fighter/aramis-xlsx/pkg/analyzer/output"
)

var (
	outputPath  string
	format      string
	pretty      bool
	sampleRows  int
	skipData    bool
	noStreaming bool
)

func main() {
	app.SetupEnvironment()
	config := app.LoadConfig()

	if err := newRootCmd(config).Execute(); err != nil {
		log.Error().Err(err).Msg("Analysis failed")
		os.Exit(1)
	}
}

func newRootCmd(config *app.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "excel-analyzer [input.xlsx]",
		Short: "Analyze the sheets and charts of an Excel workbook",
		Long: `excel-analyzer lists the sheets, charts and leading data rows of an
Excel workbook and suggests chart types for the fencing dashboards.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := config.AnalyzerInput
			if len(args) == 1 {
				inputPath = args[0]
			}
			return run(inputPath)
		},
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", config.AnalyzerOutput, `Output file path ("-" for stdout)`)
	rootCmd.Flags().StringVar(&format, "format", "json", "Output format: json, toon, markdown, html")
	rootCmd.Flags().BoolVar(&pretty, "pretty", true, "Pretty-print JSON output")
	rootCmd.Flags().IntVar(&sampleRows, "sample-rows", analyzer.DefaultSampleRows, "Number of leading rows sampled per sheet")
	rootCmd.Flags().BoolVar(&skipData, "skip-data", false, "Skip the data pass (samples and keywords)")
	rootCmd.Flags().BoolVar(&noStreaming, "no-streaming", false, "Read sample rows without the streaming reader")

	return rootCmd
}

func run(inputPath string) error {
	outputFormat, err := output.ParseFormat(format)
	if err != nil {
		return err
	}

	log.Info().Str("file", inputPath).Msg("Analyse du fichier Excel")

	opts := analyzer.DefaultOptions()
	opts.SampleRows = sampleRows
	opts.SkipData = skipData
	opts.NoStreaming = noStreaming

	result, err := analyzer.Analyze(inputPath, opts)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	report(result)

	// Render fully before touching the output path so a failure never
	// leaves a partial file behind.
	data, err := output.Render(result, outputFormat, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath == "-" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	log.Info().Str("file", outputPath).Msg("Résultats sauvegardés")
	return nil
}
