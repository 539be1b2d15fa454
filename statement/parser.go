package statement

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kakeibo-dev/kakeibo/models"
)

// Parser maps one raw statement row to a canonical transaction. The variant
// set is closed: one implementation per supported institution.
//
// ParseRow returns (nil, nil) for rows that are recognized but carry no
// transaction to record (transfers captured elsewhere, cashback adjustments,
// unparseable dates). It returns a *RowShapeError for rows that violate the
// variant's structural assumptions, which aborts the whole file.
type Parser interface {
	// Source identifies the institution the parser handles.
	Source() string
	// Subdir is the statement directory relative to the ingest base dir.
	Subdir() string
	// Encodings is the candidate decode order for this institution's exports.
	Encodings() []Encoding
	// ParseRow maps one data row to a transaction, a skip, or an error.
	ParseRow(row []string) (*models.Transaction, error)
}

// RowShapeError reports a row that does not match the structure a parser
// requires. It is fatal for the file so the source stays eligible for retry.
type RowShapeError struct {
	Source string
	Row    []string
	Reason string
}

func (e *RowShapeError) Error() string {
	return fmt.Sprintf("%s: malformed row %q: %s", e.Source, strings.Join(e.Row, ","), e.Reason)
}

// parseAmount reads a statement amount field as a non-negative yen magnitude.
func parseAmount(source string, row []string, field int) (int64, error) {
	amount, err := strconv.ParseInt(strings.TrimSpace(row[field]), 10, 64)
	if err != nil {
		return 0, &RowShapeError{Source: source, Row: row, Reason: fmt.Sprintf("amount field %d is not an integer", field)}
	}
	if amount < 0 {
		return 0, &RowShapeError{Source: source, Row: row, Reason: fmt.Sprintf("amount field %d is negative", field)}
	}
	return amount, nil
}
