package statement

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kakeibo-dev/kakeibo/models"
)

// processedSuffix marks a statement file that has already been parsed. The
// filename is the durable state store: a file either carries the marker or is
// eligible for processing, and the rename is the single state transition.
const processedSuffix = ".processed.csv"

// Processor walks one institution's statement directory, parses every
// unprocessed export, and marks each file processed by renaming it.
type Processor struct {
	baseDir string
	log     zerolog.Logger
}

func NewProcessor(baseDir string, log zerolog.Logger) *Processor {
	return &Processor{baseDir: baseDir, log: log}
}

// ProcessFiles parses every unprocessed statement file for the parser's
// institution and returns the collected transactions in file enumeration
// order, row order within each file.
//
// A file is renamed to carry the processed marker only after every one of its
// rows was mapped. A row-shape or decoding failure propagates without the
// rename, so the file stays eligible for a retry on the next run.
func (p *Processor) ProcessFiles(parser Parser) ([]models.Transaction, error) {
	files, err := p.discover(parser.Subdir())
	if err != nil {
		return nil, err
	}

	var transactions []models.Transaction
	for _, path := range files {
		parsed, err := p.processFile(parser, path)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, parsed...)
	}
	return transactions, nil
}

// discover lists statement files under the given subdirectory, excluding
// files already bearing the processed marker.
func (p *Processor) discover(subdir string) ([]string, error) {
	pattern := filepath.Join(p.baseDir, subdir, "*.csv")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("discovering statement files %s: %w", pattern, err)
	}

	var files []string
	for _, path := range matches {
		if strings.HasSuffix(path, processedSuffix) {
			continue
		}
		files = append(files, path)
	}
	return files, nil
}

func (p *Processor) processFile(parser Parser, path string) ([]models.Transaction, error) {
	rows, err := readRows(path, parser.Encodings())
	if err != nil {
		return nil, err
	}

	var transactions []models.Transaction
	for _, row := range rows {
		tx, err := parser.ParseRow(row)
		if err != nil {
			return nil, fmt.Errorf("processing %s: %w", path, err)
		}
		if tx == nil {
			continue
		}
		transactions = append(transactions, *tx)
	}

	if err := p.markProcessed(path); err != nil {
		return nil, err
	}

	p.log.Info().
		Str("source", parser.Source()).
		Str("file", path).
		Int("transactions", len(transactions)).
		Msg("processed statement file")
	return transactions, nil
}

// markProcessed renames the file to carry the processed marker. Renaming an
// already-marked file is a no-op, so the transition is idempotent.
func (p *Processor) markProcessed(path string) error {
	if strings.HasSuffix(path, processedSuffix) {
		return nil
	}
	base := strings.TrimSuffix(path, filepath.Ext(path))
	processed := base + processedSuffix
	if err := os.Rename(path, processed); err != nil {
		return fmt.Errorf("marking %s processed: %w", path, err)
	}
	return nil
}
