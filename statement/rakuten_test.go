package statement

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kakeibo-dev/kakeibo/models"
)

func TestRakutenParseRow(t *testing.T) {
	parser := NewRakutenParser(zerolog.Nop())

	tx, err := parser.ParseRow([]string{"2023/10/01", "ｱﾏｿﾞﾝ", "1", "10980", "0", "10980", "10980"})
	require.NoError(t, err)

	assert.Equal(t, &models.Transaction{
		Date:            "2023-10-01",
		Amount:          10980,
		Content:         "アマゾン",
		Type:            models.TypeExpense,
		Category:        models.CategoryOther,
		Source:          models.SourceRakuten,
		TransactionType: models.TransactionTypeCreditCard,
	}, tx)
}

func TestRakutenParseRowSkipsInvalidDate(t *testing.T) {
	parser := NewRakutenParser(zerolog.Nop())

	rows := [][]string{
		{"お支払い金額", "", "", "", "", "", "25000"},
		{"", "スーパー", "1", "1200", "0", "1200", "1200"},
	}
	for _, row := range rows {
		tx, err := parser.ParseRow(row)
		require.NoError(t, err)
		assert.Nil(t, tx)
	}
}

func TestRakutenParseRowShapeViolations(t *testing.T) {
	parser := NewRakutenParser(zerolog.Nop())

	tests := []struct {
		name string
		row  []string
	}{
		{"too few fields", []string{"2023/10/01", "スーパー", "1200"}},
		{"non-integer amount", []string{"2023/10/01", "スーパー", "1", "1200", "0", "1200", "税込"}},
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
