package statement

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/kakeibo-dev/kakeibo/models"
	"github.com/kakeibo-dev/kakeibo/normalize"
)

// RakutenParser maps 楽天カード statement export rows.
//
// Row layout: [0] date YYYY/MM/DD, [1] payee, [6] charged amount. The export
// appends summary rows without a parseable date; those are skipped.
type RakutenParser struct {
	log zerolog.Logger
}

func NewRakutenParser(log zerolog.Logger) *RakutenParser {
	return &RakutenParser{log: log}
}

func (p *RakutenParser) Source() string { return models.SourceRakuten }

func (p *RakutenParser) Subdir() string { return "credit_card/rakuten" }

func (p *RakutenParser) Encodings() []Encoding {
	return []Encoding{EncodingUTF8, EncodingShiftJIS}
}

func (p *RakutenParser) ParseRow(row []string) (*models.Transaction, error) {
	if len(row) < 7 {
		return nil, &RowShapeError{Source: p.Source(), Row: row, Reason: "expected at least 7 fields"}
	}

	date, err := time.Parse("2006/01/02", row[0])
	if err != nil {
		p.log.Info().Strs("row", row).Msg("skipping row due to invalid date")
		return nil, nil
	}

	amount, err := parseAmount(p.Source(), row, 6)
	if err != nil {
		return nil, err
	}

	return &models.Transaction{
		Date:            date.Format("2006-01-02"),
		Amount:          amount,
		Content:         normalize.ConvertString(row[1]),
		Type:            models.TypeExpense,
		Category:        models.CategoryOther,
		Source:          p.Source(),
		TransactionType: models.TransactionTypeCreditCard,
	}, nil
}
