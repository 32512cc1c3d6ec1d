package seeders

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stockroom/stockroom/app/models"
)

func init() {
	Register("products", SeedProducts)
}

// SeedProducts inserts a small demo catalogue. Re-running is safe, rows
// are keyed by fixed ids and conflicting inserts are skipped.
func SeedProducts(db *gorm.DB) error {
	products := []models.Product{
		{
			ID:        "c0a8012e-0001-4000-8000-000000000001",
			Name:      "Wireless Mouse",
			SKU:       "WM-1001",
			Barcode:   "4006381333931",
			Category:  "Electronics",
			Stock:     42,
			Threshold: 10,
			Price:     24.99,
			Status:    models.StatusInStock,
		},
		{
			ID:        "c0a8012e-0001-4000-8000-000000000002",
			Name:      "Mechanical Keyboard",
			SKU:       "MK-2040",
			Barcode:   "4006381333948",
			Category:  "Electronics",
			Stock:     7,
			Threshold: 10,
			Price:     89.50,
			Status:    models.StatusLowStock,
		},
		{
			ID:        "c0a8012e-0001-4000-8000-000000000003",
			Name:      "Desk Lamp",
			SKU:       "DL-0330",
			Barcode:   "4006381333955",
			Category:  "Office",
			Stock:     0,
			Threshold: 5,
			Price:     34.00,
			Status:    models.StatusOutOfStock,
		},
	}

	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&products).Error
}
