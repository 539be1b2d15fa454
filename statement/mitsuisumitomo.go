package statement

import (
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/kakeibo-dev/kakeibo/models"
	"github.com/kakeibo-dev/kakeibo/normalize"
)

// cashbackContent marks point-exchange cashback rows in 三井住友 exports.
// They adjust the billed total but are not purchases, so they are skipped.
const cashbackContent = "キャッシュバック（ポイント交換）"

// MitsuiSumitomoParser maps 三井住友カード statement export rows.
//
// Row layout: [0] date YYYY/MM/DD, [1] payee, [2] charged amount. The export
// ships Shift_JIS encoded, so that candidate is tried first.
type MitsuiSumitomoParser struct {
	log zerolog.Logger
}

func NewMitsuiSumitomoParser(log zerolog.Logger) *MitsuiSumitomoParser {
	return &MitsuiSumitomoParser{log: log}
}

func (p *MitsuiSumitomoParser) Source() string { return models.SourceMitsuiSumitomo }

func (p *MitsuiSumitomoParser) Subdir() string { return "credit_card/mitsui_sumitomo" }

func (p *MitsuiSumitomoParser) Encodings() []Encoding {
	return []Encoding{EncodingShiftJIS, EncodingUTF8}
}

func (p *MitsuiSumitomoParser) ParseRow(row []string) (*models.Transaction, error) {
	if len(row) < 3 {
		return nil, &RowShapeError{Source: p.Source(), Row: row, Reason: "expected at least 3 fields"}
	}

	if row[0] == "" {
		p.log.Info().Strs("row", row).Msg("skipping row with empty date field")
		return nil, nil
	}
	date, err := time.Parse("2006/01/02", row[0])
	if err != nil {
		p.log.Info().Strs("row", row).Msg("skipping row with invalid date format")
		return nil, nil
	}

	payee := strings.ReplaceAll(row[1], "　", " ")
	if payee == cashbackContent {
		p.log.Info().Strs("row", row).Msg("skipping cashback adjustment row")
		return nil, nil
	}

	amount, err := parseAmount(p.Source(), row, 2)
	if err != nil {
		return nil, err
	}

	return &models.Transaction{
		Date:            date.Format("2006-01-02"),
		Amount:          amount,
		Content:         normalize.ConvertString(payee),
		Type:            models.TypeExpense,
		Category:        models.CategoryOther,
		Source:          p.Source(),
		TransactionType: models.TransactionTypeCreditCard,
	}, nil
}
