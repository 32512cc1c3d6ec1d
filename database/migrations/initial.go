package migrations

import (
	"gorm.io/gorm"

	"github.com/stockroom/stockroom/app/models"
	"github.com/stockroom/stockroom/pkg/migration"
)

func init() {
	migration.Register("20260101000000_create_products_table", &CreateProductsTable{})
	migration.Register("20260101000001_create_alerts_table", &CreateAlertsTable{})
	migration.Register("20260101000002_create_inventory_settings_table", &CreateInventorySettingsTable{})
}

// -------- 0001: products --------

type CreateProductsTable struct{}

func (m *CreateProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (m *CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("products")
}

// -------- 0002: alerts --------

type CreateAlertsTable struct{}

func (m *CreateAlertsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.InventoryAlert{})
}

func (m *CreateAlertsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("alerts")
}

// -------- 0003: inventory_settings --------

type CreateInventorySettingsTable struct{}

func (m *CreateInventorySettingsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.InventorySetting{})
}

func (m *CreateInventorySettingsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("inventory_settings")
}
