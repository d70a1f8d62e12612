// Package app holds the environment and configuration shared by the
// command-line tools.
package app

import (
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Default paths, used when neither a flag nor the environment sets one.
const (
	DefaultAnalyzerInput  = "Analyse assauts Vichy 2022 EPEE.xlsx"
	DefaultAnalyzerOutput = "excel_analysis_results.json"
	DefaultTemplateOutput = "Aramis_Fighter_Analysis_Template.xlsx"
)

// Config holds application configuration
type Config struct {
	AnalyzerInput  string
	AnalyzerOutput string
	TemplateOutput string
}

// SetupEnvironment loads the .env file, configures zerolog output and log
// level, and tags every log line with a fresh run id. It returns the run id.
func SetupEnvironment() string {
	// Load .env file if it exists
	err := godotenv.Load()

	// The console report goes to stdout with the rest of the tool output.
	if os.Getenv("ENV") == "production" {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	runID := uuid.NewString()
	log.Logger = log.Logger.With().Str("run_id", runID).Logger()

	levelStr := strings.ToLower(os.Getenv("LOGLEVEL"))
	switch levelStr {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn", "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "disabled":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	case "":
		// The report is logged at info level, so production keeps it too.
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Warn().Msgf("Unknown LOGLEVEL '%s', defaulting to info.", levelStr)
	}

	// wait until now to report on the .env file so we have the chance to set up logging first
	if err == nil {
		log.Debug().Msg("Loaded environment variables from .env file.")
	} else {
		log.Debug().Msg("No .env file found or error loading .env file; proceeding with existing environment variables.")
	}

	return runID
}

// LoadConfig loads configuration from environment variables, falling back
// to the default paths.
func LoadConfig() *Config {
	return &Config{
		AnalyzerInput:  getEnv("ARAMIS_ANALYZER_INPUT", DefaultAnalyzerInput),
		AnalyzerOutput: getEnv("ARAMIS_ANALYZER_OUTPUT", DefaultAnalyzerOutput),
		TemplateOutput: getEnv("ARAMIS_TEMPLATE_OUTPUT", DefaultTemplateOutput),
	}
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
