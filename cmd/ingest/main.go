package main

import (
	"flag"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/kakeibo-dev/kakeibo/logger"
	"github.com/kakeibo-dev/kakeibo/statement"
	"github.com/kakeibo-dev/kakeibo/uploader"
)

func main() {
	log := logger.New()

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using environment variables")
	}

	csvDir := flag.String("csv-dir", envOr("KAKEIBO_CSV_DIR", "csv_files"), "base directory holding statement exports")
	apiURL := flag.String("api-url", envOr("KAKEIBO_API_URL", "http://localhost:8000/api"), "kakeibo API base URL")
	employer := flag.String("employer", os.Getenv("KAKEIBO_EMPLOYER"), "employer name for salary classification")
	flag.Parse()

	// One id per run so the lines of a batch can be grepped together.
	log = log.With().Str("run_id", uuid.NewString()).Logger()

	parsers := []statement.Parser{
		statement.NewJapanPostParser(*employer, log),
		statement.NewRakutenParser(log),
		statement.NewMitsuiSumitomoParser(log),
	}

	processor := statement.NewProcessor(*csvDir, log)
	up := uploader.New(*apiURL, log)

	exitCode := 0
	for _, parser := range parsers {
		transactions, err := processor.ProcessFiles(parser)
		if err != nil {
			// The failing file was left unrenamed, so the next run retries
			// it. Other institutions still get their turn.
			log.Error().Err(err).Str("source", parser.Source()).Msg("statement processing failed")
			exitCode = 1
			continue
		}

		failed := up.Post(transactions)
		if failed > 0 {
			log.Error().Str("source", parser.Source()).Int("failed", failed).Msg("some transactions were not accepted")
			exitCode = 1
		}
		log.Info().
			Str("source", parser.Source()).
			Int("transactions", len(transactions)).
			Msg("ingestion finished")
	}

	os.Exit(exitCode)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
