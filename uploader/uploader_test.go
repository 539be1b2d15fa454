package uploader

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kakeibo-dev/kakeibo/models"
)

func testTransactions() []models.Transaction {
	return []models.Transaction{
		{
			Date:            "2023-10-01",
			Amount:          1200,
			Content:         "スーパー",
			Type:            models.TypeExpense,
			Category:        models.CategoryOther,
			Source:          models.SourceRakuten,
			TransactionType: models.TransactionTypeCreditCard,
		},
		{
			Date:            "2023-10-25",
			Amount:          280000,
			Content:         "株式会社サンプル",
			Type:            models.TypeIncome,
			Category:        models.CategorySalary,
			Source:          models.SourceJapanPost,
			TransactionType: models.TransactionTypeBank,
		},
	}
}

func TestPostSubmitsEachTransaction(t *testing.T) {
	var received []models.Transaction
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/transactions", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var tx models.Transaction
		require.NoError(t, json.NewDecoder(r.Body).Decode(&tx))
		received = append(received, tx)

		json.NewEncoder(w).Encode(map[string]int64{"id": int64(len(received))})
	}))
	defer server.Close()

	up := New(server.URL+"/api", zerolog.Nop())
	failed := up.Post(testTransactions())

	assert.Zero(t, failed)
	assert.Equal(t, testTransactions(), received)
}

func TestPostContinuesAfterFailure(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests == 1 {
			http.Error(w, "bad transaction", http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(map[string]int64{"id": 1})
	}))
	defer server.Close()

	up := New(server.URL+"/api", zerolog.Nop())
	failed := up.Post(testTransactions())

	// The first rejection is reported but the second record still goes out.
	assert.Equal(t, 1, failed)
	assert.Equal(t, 2, requests)
}

func TestPostUnreachableServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	up := New(server.URL+"/api", zerolog.Nop())
	failed := up.Post(testTransactions())
	assert.Equal(t, 2, failed)
}
