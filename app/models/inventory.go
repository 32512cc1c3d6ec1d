package models

import "time"

// InventoryAlert flags a product whose stock fell to or below its reorder
// threshold. ProductID is a weak reference: no database-level constraint is
// assumed, the cascading product delete is what keeps alerts orphan-free.
type InventoryAlert struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID string    `gorm:"size:36;index;not null"   json:"product_id"`
	Message   string    `gorm:"type:text"                json:"message"`
	Threshold int       `gorm:"not null;default:0"       json:"threshold"`
	CreatedAt time.Time `json:"created_at"`
}

func (InventoryAlert) TableName() string { return "alerts" }

// InventorySetting holds per-product inventory tuning. At most one row per
// product; removed together with the product by the cascading delete.
type InventorySetting struct {
	ID                uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID         string    `gorm:"size:36;uniqueIndex;not null" json:"product_id"`
	LowStockThreshold int       `gorm:"not null;default:0"       json:"low_stock_threshold"`
	AutoReorder       bool      `gorm:"not null;default:false"   json:"auto_reorder"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (InventorySetting) TableName() string { return "inventory_settings" }
