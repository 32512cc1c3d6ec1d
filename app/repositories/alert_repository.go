package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/stockroom/stockroom/app/models"
	"github.com/stockroom/stockroom/pkg/logger"
)

// AlertRepository handles database operations for InventoryAlert rows.
type AlertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

// All returns every alert row.
func (r *AlertRepository) All() ([]models.InventoryAlert, error) {
	var alerts []models.InventoryAlert
	if err := r.db.Find(&alerts).Error; err != nil {
		logger.Error("alert select all failed", "error", err)
		return nil, fmt.Errorf("alert select all: %w", err)
	}
	return alerts, nil
}

// ForProduct returns the alerts referencing one product.
func (r *AlertRepository) ForProduct(productID string) ([]models.InventoryAlert, error) {
	var alerts []models.InventoryAlert
	if err := r.db.Where("product_id = ?", productID).Find(&alerts).Error; err != nil {
		logger.Error("alert select by product failed", "product_id", productID, "error", err)
		return nil, fmt.Errorf("alert select by product: %w", err)
	}
	return alerts, nil
}

// DeleteByID removes one alert. A missing row reports ErrNotFound.
func (r *AlertRepository) DeleteByID(id uint) error {
	res := r.db.Delete(&models.InventoryAlert{}, id)
	if res.Error != nil {
		logger.Error("alert delete failed", "id", id, "error", res.Error)
		return fmt.Errorf("alert delete: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// EnsureForProduct keeps the "exactly one open alert while stock is at or
// below threshold" rule. Above the threshold every alert for the product is
// cleared; at or below, one alert exists with the threshold snapshotted at
// creation time.
func (r *AlertRepository) EnsureForProduct(p *models.Product) error {
	if p.Stock > p.Threshold {
		return r.ClearForProduct(p.ID)
	}

	var existing models.InventoryAlert
	err := r.db.Where("product_id = ?", p.ID).First(&existing).Error
	if err == nil {
		return nil // one open alert already, nothing to do
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("alert lookup failed", "product_id", p.ID, "error", err)
		return fmt.Errorf("alert lookup: %w", err)
	}

	alert := models.InventoryAlert{
		ProductID: p.ID,
		Message:   fmt.Sprintf("%s is low on stock (%d left, threshold %d)", p.Name, p.Stock, p.Threshold),
		Threshold: p.Threshold,
	}
	if err := r.db.Create(&alert).Error; err != nil {
		logger.Error("alert insert failed", "product_id", p.ID, "error", err)
		return fmt.Errorf("alert insert: %w", err)
	}
	return nil
}

// ClearForProduct removes all alerts referencing a product.
func (r *AlertRepository) ClearForProduct(productID string) error {
	if err := r.db.Where("product_id = ?", productID).Delete(&models.InventoryAlert{}).Error; err != nil {
		logger.Error("alert clear failed", "product_id", productID, "error", err)
		return fmt.Errorf("alert clear: %w", err)
	}
	return nil
}
