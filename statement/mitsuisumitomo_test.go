package statement

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kakeibo-dev/kakeibo/models"
)

func TestMitsuiSumitomoParseRow(t *testing.T) {
	parser := NewMitsuiSumitomoParser(zerolog.Nop())

	tx, err := parser.ParseRow([]string{"2023/10/02", "ファミリｰマｰト　渋谷店", "450"})
	require.NoError(t, err)

	assert.Equal(t, &models.Transaction{
		Date:            "2023-10-02",
		Amount:          450,
		Content:         "ファミリーマート 渋谷店",
		Type:            models.TypeExpense,
		Category:        models.CategoryOther,
		Source:          models.SourceMitsuiSumitomo,
		TransactionType: models.TransactionTypeCreditCard,
	}, tx)
}

func TestMitsuiSumitomoParseRowSkips(t *testing.T) {
	parser := NewMitsuiSumitomoParser(zerolog.Nop())

	tests := []struct {
		name string
		row  []string
	}{
		{"empty date field", []string{"", "合計", "45000"}},
		{"invalid date format", []string{"ご利用日", "ご利用店名", "金額"}},
		{"cashback adjustment", []string{"2023/10/15", "キャッシュバック（ポイント交換）", "500"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := parser.ParseRow(tt.row)
			require.NoError(t, err)
			assert.Nil(t, tx)
		})
	}
}

func TestMitsuiSumitomoParseRowShapeViolations(t *testing.T) {
	parser := NewMitsuiSumitomoParser(zerolog.Nop())

	tests := []struct {
		name string
		row  []string
	}{
		{"too few fields", []string{"2023/10/02", "スーパー"}},
		{"non-integer amount", []string{"2023/10/02", "スーパー", "千二百"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.ParseRow(tt.row)
			require.Error(t, err)
			var shapeErr *RowShapeError
			assert.ErrorAs(t, err, &shapeErr)
		})
	}
}

func TestMitsuiSumitomoTriesShiftJISFirst(t *testing.T) {
	parser := NewMitsuiSumitomoParser(zerolog.Nop())
	assert.Equal(t, []Encoding{EncodingShiftJIS, EncodingUTF8}, parser.Encodings())
}
