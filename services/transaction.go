package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/kakeibo-dev/kakeibo/models"
)

var (
	// ErrNotFound means no transaction exists with the requested id.
	ErrNotFound = errors.New("transaction not found")
	// ErrUnknownCategory means the category label is not in the catalog for
	// the transaction's type.
	ErrUnknownCategory = errors.New("unknown category")
)

// TransactionService persists canonical transactions.
type TransactionService struct {
	db *sql.DB
}

func NewTransactionService(db *sql.DB) *TransactionService {
	return &TransactionService{db: db}
}

// List returns every stored transaction joined with its category label,
// newest first.
func (s *TransactionService) List() ([]models.TransactionRecord, error) {
	rows, err := s.db.Query(`
		SELECT t.id, t.date, t.amount, t.content, t.type, c.name,
		       COALESCE(t.source, ''), COALESCE(t.transaction_type, '')
		FROM transactions t
		JOIN categories c ON t.category_id = c.id
		ORDER BY t.date DESC, t.id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var records []models.TransactionRecord
	for rows.Next() {
		var r models.TransactionRecord
		if err := rows.Scan(&r.ID, &r.Date, &r.Amount, &r.Content, &r.Type,
			&r.Category, &r.Source, &r.TransactionType); err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}
		// DATE columns scan as timestamps; keep the calendar-date form.
		if len(r.Date) > 10 {
			r.Date = r.Date[:10]
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Create validates and stores a transaction, returning its assigned id.
func (s *TransactionService) Create(tx *models.Transaction) (int64, error) {
	if err := tx.Validate(); err != nil {
		return 0, err
	}

	categoryID, err := s.categoryID(tx.Type, tx.Category)
	if err != nil {
		return 0, err
	}

	var id int64
	err = s.db.QueryRow(`
		INSERT INTO transactions (date, amount, content, type, source, transaction_type, category_id)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7)
		RETURNING id
	`, tx.Date, tx.Amount, tx.Content, tx.Type, tx.Source, tx.TransactionType, categoryID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting transaction: %w", err)
	}
	return id, nil
}

// Get returns one transaction by id.
func (s *TransactionService) Get(id int64) (*models.TransactionRecord, error) {
	var r models.TransactionRecord
	err := s.db.QueryRow(`
		SELECT t.id, t.date, t.amount, t.content, t.type, c.name,
		       COALESCE(t.source, ''), COALESCE(t.transaction_type, '')
		FROM transactions t
		JOIN categories c ON t.category_id = c.id
		WHERE t.id = $1
	`, id).Scan(&r.ID, &r.Date, &r.Amount, &r.Content, &r.Type,
		&r.Category, &r.Source, &r.TransactionType)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting transaction %d: %w", id, err)
	}
	if len(r.Date) > 10 {
		r.Date = r.Date[:10]
	}
	return &r, nil
}

// Update replaces the mutable fields of a stored transaction.
func (s *TransactionService) Update(id int64, tx *models.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	categoryID, err := s.categoryID(tx.Type, tx.Category)
	if err != nil {
		return err
	}

	result, err := s.db.Exec(`
		UPDATE transactions
		SET date = $1, amount = $2, content = $3, type = $4, category_id = $5
		WHERE id = $6
	`, tx.Date, tx.Amount, tx.Content, tx.Type, categoryID, id)
	if err != nil {
		return fmt.Errorf("updating transaction %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating transaction %d: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a stored transaction.
func (s *TransactionService) Delete(id int64) error {
	result, err := s.db.Exec(`DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting transaction %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting transaction %d: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *TransactionService) categoryID(txType, name string) (int64, error) {
	var id int64
	err := s.db.QueryRow(`
		SELECT id FROM categories WHERE name = $1 AND type = $2
	`, name, txType).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrUnknownCategory
	}
	if err != nil {
		return 0, fmt.Errorf("resolving category %q: %w", name, err)
	}
	return id, nil
}
