package uploader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/kakeibo-dev/kakeibo/models"
)

// Uploader delivers canonical transactions to the kakeibo API.
type Uploader struct {
	apiURL string
	client *http.Client
	log    zerolog.Logger
}

// New builds an uploader posting to the API rooted at apiURL
// (e.g. "http://localhost:8000/api").
func New(apiURL string, log zerolog.Logger) *Uploader {
	return &Uploader{
		apiURL: apiURL,
		client: &http.Client{Timeout: 30 * time.Second},
		log:    log,
	}
}

// Post submits each transaction to the API in order. A rejected record is
// logged and does not stop the remaining submissions: by the time this runs
// the source file is already marked processed, so retries are out-of-band.
// It returns the number of failed submissions.
func (u *Uploader) Post(transactions []models.Transaction) int {
	failed := 0
	for _, tx := range transactions {
		if err := u.post(tx); err != nil {
			u.log.Error().Err(err).
				Str("date", tx.Date).
				Str("content", tx.Content).
				Int64("amount", tx.Amount).
				Msg("failed to post transaction")
			failed++
			continue
		}
		u.log.Info().
			Str("date", tx.Date).
			Str("content", tx.Content).
			Int64("amount", tx.Amount).
			Msg("transaction posted")
	}
	return failed
}

func (u *Uploader) post(tx models.Transaction) error {
	body, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("encoding transaction: %w", err)
	}

	resp, err := u.client.Post(u.apiURL+"/transactions", "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("posting transaction: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("posting transaction: unexpected status %d", resp.StatusCode)
	}
	return nil
}
