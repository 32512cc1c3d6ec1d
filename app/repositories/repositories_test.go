package repositories_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/stockroom/stockroom/app/models"
	"github.com/stockroom/stockroom/pkg/database"
)

// newTestDB opens a throwaway sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.InventoryAlert{},
		&models.InventorySetting{},
	))
	return db
}

func testProduct(id, name string) *models.Product {
	return &models.Product{
		ID:        id,
		Name:      name,
		SKU:       "SKU-" + name,
		Barcode:   "4006381333931",
		Category:  "Electronics",
		Stock:     25,
		Threshold: 10,
		Price:     19.99,
		Status:    models.StatusInStock,
	}
}
