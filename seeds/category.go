package seeds

import (
	"database/sql"
	"fmt"

	"github.com/kakeibo-dev/kakeibo/models"
)

var initialCategories = []models.Category{
	{Name: models.CategoryFood, Type: models.TypeExpense, Color: "#ff6347"},
	{Name: models.CategoryDailyGoods, Type: models.TypeExpense, Color: "#4682b4"},
	{Name: models.CategoryHousing, Type: models.TypeExpense, Color: "#32cd32"},
	{Name: models.CategorySocial, Type: models.TypeExpense, Color: "#ffa500"},
	{Name: models.CategoryEntertainment, Type: models.TypeExpense, Color: "#ff6347"},
	{Name: models.CategoryTransport, Type: models.TypeExpense, Color: "#4682b4"},
	{Name: models.CategoryOther, Type: models.TypeExpense, Color: "#32cd32"},
	{Name: models.CategorySalary, Type: models.TypeIncome, Color: "#ffa500"},
	{Name: models.CategorySideIncome, Type: models.TypeIncome, Color: "#ffa500"},
	{Name: models.CategoryAllowance, Type: models.TypeIncome, Color: "#ffa500"},
}

// SeedCategories inserts the fixed category catalog. Existing rows are left
// untouched, so the seed can run on every startup.
func SeedCategories(db *sql.DB) error {
	for _, category := range initialCategories {
		_, err := db.Exec(`
			INSERT INTO categories (name, type, color, icon_base64)
			VALUES ($1, $2, $3, NULL)
			ON CONFLICT (name) DO NOTHING
		`, category.Name, category.Type, category.Color)
		if err != nil {
			return fmt.Errorf("seeding category %s: %w", category.Name, err)
		}
	}
	return nil
}
