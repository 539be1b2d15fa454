package statement

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kakeibo-dev/kakeibo/models"
)

const testEmployer = "株式会社サンプル"

func TestJapanPostParseRow(t *testing.T) {
	parser := NewJapanPostParser(testEmployer, zerolog.Nop())

	tests := []struct {
		name     string
		row      []string
		expected *models.Transaction
	}{
		{
			name: "salary deposit from employer",
			row:  []string{"20231001", "", "15000", "", "", "株式会社サンプル"},
			expected: &models.Transaction{
				Date:            "2023-10-01",
				Amount:          15000,
				Content:         "株式会社サンプル",
				Type:            models.TypeIncome,
				Category:        models.CategorySalary,
				Source:          models.SourceJapanPost,
				TransactionType: models.TransactionTypeBank,
			},
		},
		{
			name: "salary deposit uses description field when present",
			row:  []string{"20231025", "", "280000", "", "給与振込", "株式会社サンプル"},
			expected: &models.Transaction{
				Date:            "2023-10-25",
				Amount:          280000,
				Content:         "給与振込",
				Type:            models.TypeIncome,
				Category:        models.CategorySalary,
				Source:          models.SourceJapanPost,
				TransactionType: models.TransactionTypeBank,
			},
		},
		{
			name: "deposit from someone else is allowance",
			row:  []string{"20231003", "", "5000", "", "振込", "ヤマダタロウ"},
			expected: &models.Transaction{
				Date:            "2023-10-03",
				Amount:          5000,
				Content:         "ヤマダタロウ",
				Type:            models.TypeIncome,
				Category:        models.CategoryAllowance,
				Source:          models.SourceJapanPost,
				TransactionType: models.TransactionTypeBank,
			},
		},
		{
			name: "allowance payee falls back to description field",
			row:  []string{"20231003", "", "3000", "", "振込", ""},
			expected: &models.Transaction{
				Date:            "2023-10-03",
				Amount:          3000,
				Content:         "振込",
				Type:            models.TypeIncome,
				Category:        models.CategoryAllowance,
				Source:          models.SourceJapanPost,
				TransactionType: models.TransactionTypeBank,
			},
		},
		{
			name: "card channel withdrawal becomes cash withdrawal",
			row:  []string{"20231005", "", "", "20000", "カード", ""},
			expected: &models.Transaction{
				Date:            "2023-10-05",
				Amount:          20000,
				Content:         "現金引き出し",
				Type:            models.TypeExpense,
				Category:        models.CategoryOther,
				Source:          models.SourceJapanPost,
				TransactionType: models.TransactionTypeBank,
			},
		},
		{
			name: "debit payee from counterparty",
			row:  []string{"20231007", "", "", "8000", "口座振替", "東京電力"},
			expected: &models.Transaction{
				Date:            "2023-10-07",
				Amount:          8000,
				Content:         "東京電力",
				Type:            models.TypeExpense,
				Category:        models.CategoryOther,
				Source:          models.SourceJapanPost,
				TransactionType: models.TransactionTypeBank,
			},
		},
		{
			name: "debit payee falls back to description field",
			row:  []string{"20231008", "", "", "1200", "払込", ""},
			expected: &models.Transaction{
				Date:            "2023-10-08",
				Amount:          1200,
				Content:         "払込",
				Type:            models.TypeExpense,
				Category:        models.CategoryOther,
				Source:          models.SourceJapanPost,
				TransactionType: models.TransactionTypeBank,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := parser.ParseRow(tt.row)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tx)
		})
	}
}

func TestJapanPostParseRowSkips(t *testing.T) {
	parser := NewJapanPostParser(testEmployer, zerolog.Nop())

	// Credit-card debits are itemized on the card statements; recording the
	// passbook row too would double count.
	for _, card := range []string{rakutenCardName, mitsuiSumitomoCardName} {
		tx, err := parser.ParseRow([]string{"20231010", "", "", "45000", "口座振替", card})
		require.NoError(t, err)
		assert.Nil(t, tx)
	}
}

func TestJapanPostParseRowShapeViolations(t *testing.T) {
	parser := NewJapanPostParser(testEmployer, zerolog.Nop())

	tests := []struct {
		name string
		row  []string
	}{
		{"too few fields", []string{"20231001", "", "15000"}},
		{"malformed date", []string{"2023-10-01", "", "15000", "", "", "株式会社サンプル"}},
		{"both credit and debit populated", []string{"20231001", "", "15000", "3000", "", "株式会社サンプル"}},
		{"non-integer credit amount", []string{"20231001", "", "abc", "", "", "株式会社サンプル"}},
		{"non-integer debit amount", []string{"20231001", "", "", "abc", "口座振替", "東京電力"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := parser.ParseRow(tt.row)
			require.Error(t, err)
			assert.Nil(t, tx)
			var shapeErr *RowShapeError
			assert.ErrorAs(t, err, &shapeErr)
		})
	}
}
