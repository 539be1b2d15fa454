package models

import (
	"fmt"
	"time"
)

// Transaction direction.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Statement sources.
const (
	SourceJapanPost      = "japan_post"
	SourceRakuten        = "rakuten"
	SourceMitsuiSumitomo = "mitsui_sumitomo"
)

// Transaction kinds.
const (
	TransactionTypeBank       = "bank"
	TransactionTypeCreditCard = "credit_card"
)

// Category labels. The set is closed: these are the exact strings the
// categories table is seeded with, and the API rejects anything else.
const (
	CategorySalary        = "給与"
	CategorySideIncome    = "副収入"
	CategoryAllowance     = "お小遣い"
	CategoryFood          = "食費"
	CategoryDailyGoods    = "日用品"
	CategoryHousing       = "住居費"
	CategorySocial        = "交際費"
	CategoryEntertainment = "娯楽"
	CategoryTransport     = "交通費"
	CategoryOther         = "その他"
)

var incomeCategories = map[string]bool{
	CategorySalary:     true,
	CategorySideIncome: true,
	CategoryAllowance:  true,
}

var expenseCategories = map[string]bool{
	CategoryFood:          true,
	CategoryDailyGoods:    true,
	CategoryHousing:       true,
	CategorySocial:        true,
	CategoryEntertainment: true,
	CategoryTransport:     true,
	CategoryOther:         true,
}

// Transaction is the canonical record every statement parser converges to and
// the shape the API accepts. Date is an ISO-8601 calendar date; Amount is a
// positive magnitude in yen, with direction carried by Type.
type Transaction struct {
	Date            string `json:"date"`
	Amount          int64  `json:"amount"`
	Content         string `json:"content"`
	Type            string `json:"type"`
	Category        string `json:"category"`
	Source          string `json:"source,omitempty"`
	TransactionType string `json:"transaction_type,omitempty"`
}

// TransactionRecord is a stored transaction, as returned by the API.
type TransactionRecord struct {
	ID int64 `json:"id"`
	Transaction
}

// Category is one row of the category catalog.
type Category struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Color      string  `json:"color"`
	IconBase64 *string `json:"icon_base64"`
}

// ValidCategory reports whether category is a known label for the given
// transaction type. Income labels never pair with expense and vice versa.
func ValidCategory(txType, category string) bool {
	switch txType {
	case TypeIncome:
		return incomeCategories[category]
	case TypeExpense:
		return expenseCategories[category]
	default:
		return false
	}
}

// Validate checks the invariants the persistence layer relies on.
func (t *Transaction) Validate() error {
	if _, err := time.Parse("2006-01-02", t.Date); err != nil {
		return fmt.Errorf("invalid date %q: %w", t.Date, err)
	}
	if t.Amount < 0 {
		return fmt.Errorf("negative amount %d", t.Amount)
	}
	if t.Content == "" {
		return fmt.Errorf("empty content")
	}
	if t.Type != TypeIncome && t.Type != TypeExpense {
		return fmt.Errorf("unknown type %q", t.Type)
	}
	if !ValidCategory(t.Type, t.Category) {
		return fmt.Errorf("category %q is not valid for type %q", t.Category, t.Type)
	}
	return nil
}
