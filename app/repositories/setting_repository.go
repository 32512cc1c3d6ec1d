package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stockroom/stockroom/app/models"
	"github.com/stockroom/stockroom/pkg/logger"
)

// SettingRepository handles the per-product inventory_settings rows.
type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// ForProduct returns the settings row for a product, or (nil, nil) when the
// product has none.
func (r *SettingRepository) ForProduct(productID string) (*models.InventorySetting, error) {
	var s models.InventorySetting
	err := r.db.Where("product_id = ?", productID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		logger.Error("setting select failed", "product_id", productID, "error", err)
		return nil, fmt.Errorf("setting select: %w", err)
	}
	return &s, nil
}

// Put creates or replaces the settings row for a product. product_id is
// unique, so this is a plain upsert on that key.
func (r *SettingRepository) Put(s *models.InventorySetting) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"low_stock_threshold", "auto_reorder", "updated_at"}),
	}).Create(s).Error
	if err != nil {
		logger.Error("setting upsert failed", "product_id", s.ProductID, "error", err)
		return fmt.Errorf("setting upsert: %w", err)
	}
	return nil
}
