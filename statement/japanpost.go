package statement

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/kakeibo-dev/kakeibo/models"
	"github.com/kakeibo-dev/kakeibo/normalize"
)

// Counterparty names that appear on passbook rows for credit-card debits.
// Those rows are dropped here because the card statements carry the same
// spending itemized, and recording both would double count.
const (
	rakutenCardName        = "楽天カード"
	mitsuiSumitomoCardName = "三井住友カード"
)

// cashWithdrawalContent is the stored payee for ATM card withdrawals, which
// the passbook export only labels by channel.
const cashWithdrawalContent = "現金引き出し"

// JapanPostParser maps ゆうちょ銀行 passbook export rows.
//
// Row layout: [0] date YYYYMMDD, [2] credit amount, [3] debit amount,
// [4] method/description, [5] counterparty. Credit and debit are mutually
// exclusive per row.
type JapanPostParser struct {
	employer string
	log      zerolog.Logger
}

// NewJapanPostParser builds the passbook parser. Deposits whose counterparty
// equals employer are classified as salary.
func NewJapanPostParser(employer string, log zerolog.Logger) *JapanPostParser {
	return &JapanPostParser{employer: employer, log: log}
}

func (p *JapanPostParser) Source() string { return models.SourceJapanPost }

func (p *JapanPostParser) Subdir() string { return "bank/japan_post" }

func (p *JapanPostParser) Encodings() []Encoding {
	return []Encoding{EncodingUTF8, EncodingShiftJIS}
}

func (p *JapanPostParser) ParseRow(row []string) (*models.Transaction, error) {
	if len(row) < 6 {
		return nil, &RowShapeError{Source: p.Source(), Row: row, Reason: "expected at least 6 fields"}
	}

	date, err := time.Parse("20060102", row[0])
	if err != nil {
		return nil, &RowShapeError{Source: p.Source(), Row: row, Reason: "date is not in YYYYMMDD form"}
	}

	if row[5] == rakutenCardName || row[5] == mitsuiSumitomoCardName {
		p.log.Info().Strs("row", row).Msg("skipping credit-card debit row")
		return nil, nil
	}

	credit, debit := row[2], row[3]
	if credit != "" && debit != "" {
		return nil, &RowShapeError{Source: p.Source(), Row: row, Reason: "both credit and debit fields populated"}
	}

	var (
		txType   string
		amount   int64
		category string
		payee    string
	)
	if credit != "" {
		txType = models.TypeIncome
		if amount, err = parseAmount(p.Source(), row, 2); err != nil {
			return nil, err
		}
		if p.employer != "" && row[5] == p.employer {
			category = models.CategorySalary
			payee = row[4]
			if payee == "" {
				payee = row[5]
			}
		} else {
			category = models.CategoryAllowance
			payee = row[5]
			if payee == "" {
				payee = row[4]
			}
		}
	} else {
		txType = models.TypeExpense
		category = models.CategoryOther
		if amount, err = parseAmount(p.Source(), row, 3); err != nil {
			return nil, err
		}
		if row[4] == "カード" { // ATM withdrawal through the card channel
			payee = cashWithdrawalContent
		} else {
			payee = row[5]
			if payee == "" {
				payee = row[4]
			}
		}
	}

	return &models.Transaction{
		Date:            date.Format("2006-01-02"),
		Amount:          amount,
		Content:         normalize.ConvertString(payee),
		Type:            txType,
		Category:        category,
		Source:          p.Source(),
		TransactionType: models.TransactionTypeBank,
	}, nil
}
