package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stockroom/stockroom/app/models"
	"github.com/stockroom/stockroom/pkg/logger"
)

// ErrNotFound is returned by mutating operations whose target row does not
// exist. Lookups never return it; they report absence as a nil result.
var ErrNotFound = errors.New("record not found")

// ProductRepository handles database operations for Product. It holds the
// single shared connection handle injected at startup.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create persists a new product. An ID is assigned here, once, when the
// caller did not supply one (the import path carries IDs through).
func (r *ProductRepository) Create(p *models.Product) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.Status = models.ParseStatus(string(p.Status))

	if err := r.db.Create(p).Error; err != nil {
		logger.Error("product insert failed", "id", p.ID, "error", err)
		return fmt.Errorf("product insert: %w", err)
	}
	return nil
}

// GetByID looks up a product by primary key. Absence is not an error:
// it returns (nil, nil).
func (r *ProductRepository) GetByID(id string) (*models.Product, error) {
	var p models.Product
	err := r.db.Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		logger.Error("product select by id failed", "id", id, "error", err)
		return nil, fmt.Errorf("product select by id: %w", err)
	}
	return &p, nil
}

// GetByBarcode returns the product with the given barcode. Barcodes are not
// unique; the lowest ID wins so duplicate barcodes resolve deterministically.
func (r *ProductRepository) GetByBarcode(barcode string) (*models.Product, error) {
	var p models.Product
	err := r.db.Where("barcode = ?", barcode).Order("id").First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		logger.Error("product select by barcode failed", "barcode", barcode, "error", err)
		return nil, fmt.Errorf("product select by barcode: %w", err)
	}
	return &p, nil
}

// All returns every product.
func (r *ProductRepository) All() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		logger.Error("product select all failed", "error", err)
		return nil, fmt.Errorf("product select all: %w", err)
	}
	return products, nil
}

// Search matches the query as a case-insensitive substring of name or
// category. An empty query degenerates to %% and matches every row.
func (r *ProductRepository) Search(query string) ([]models.Product, error) {
	pattern := "%" + query + "%"

	var products []models.Product
	err := r.db.
		Where("name LIKE ? OR category LIKE ?", pattern, pattern).
		Find(&products).Error
	if err != nil {
		logger.Error("product search failed", "query", query, "error", err)
		return nil, fmt.Errorf("product search: %w", err)
	}
	return products, nil
}

// Update replaces the listed fields of an existing product. The caller is
// expected to pre-check existence; a missing row surfaces as ErrNotFound.
func (r *ProductRepository) Update(p *models.Product) error {
	p.Status = models.ParseStatus(string(p.Status))

	res := r.db.Model(&models.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"name":        p.Name,
		"sku":         p.SKU,
		"barcode":     p.Barcode,
		"category":    p.Category,
		"description": p.Description,
		"stock":       p.Stock,
		"threshold":   p.Threshold,
		"price":       p.Price,
		"status":      p.Status,
	})
	if res.Error != nil {
		logger.Error("product update failed", "id", p.ID, "error", res.Error)
		return fmt.Errorf("product update: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateStock sets only the stock quantity of one product.
func (r *ProductRepository) UpdateStock(id string, stock int) error {
	res := r.db.Model(&models.Product{}).Where("id = ?", id).Update("stock", stock)
	if res.Error != nil {
		logger.Error("stock update failed", "id", id, "error", res.Error)
		return fmt.Errorf("stock update: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Upsert inserts the product or, when a row with the same ID already exists,
// replaces its columns. Used only by the inventory CSV import; the product
// CSV import deliberately keeps plain-insert conflict semantics.
func (r *ProductRepository) Upsert(p *models.Product) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.Status = models.ParseStatus(string(p.Status))

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(p).Error
	if err != nil {
		logger.Error("product upsert failed", "id", p.ID, "error", err)
		return fmt.Errorf("product upsert: %w", err)
	}
	return nil
}

// Categories returns the distinct non-empty category values.
func (r *ProductRepository) Categories() ([]string, error) {
	var categories []string
	err := r.db.Model(&models.Product{}).
		Where("category IS NOT NULL AND category != ''").
		Distinct().
		Pluck("category", &categories).Error
	if err != nil {
		logger.Error("category select failed", "error", err)
		return nil, fmt.Errorf("category select: %w", err)
	}
	return categories, nil
}

// DeleteCascade removes a product together with every dependent row, inside
// one transaction. The order is fixed: alerts, then inventory settings,
// then the product, so a mid-sequence failure can never leave orphaned
// dependents; any step failing rolls the whole transaction back.
func (r *ProductRepository) DeleteCascade(id string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.InventoryAlert{}).Error; err != nil {
			return fmt.Errorf("delete alerts: %w", err)
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.InventorySetting{}).Error; err != nil {
			return fmt.Errorf("delete inventory settings: %w", err)
		}

		res := tx.Where("id = ?", id).Delete(&models.Product{})
		if res.Error != nil {
			return fmt.Errorf("delete product: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		logger.Error("cascading delete failed", "id", id, "error", err)
		return fmt.Errorf("product cascading delete: %w", err)
	}
	return nil
}
