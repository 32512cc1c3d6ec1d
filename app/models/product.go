package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a catalogue entry. The ID is a UUID assigned once at creation
// and never regenerated or reused.
type Product struct {
	ID          string    `gorm:"primaryKey;size:36"     json:"id"`
	Name        string    `gorm:"size:255;not null;index" json:"name"`
	SKU         string    `gorm:"size:100"               json:"sku"`
	Barcode     string    `gorm:"size:100;index"         json:"barcode"`
	Category    string    `gorm:"size:100;index"         json:"category"`
	Description string    `gorm:"type:text"              json:"description"`
	Stock       int       `gorm:"not null;default:0"     json:"stock"`
	Threshold   int       `gorm:"not null;default:0"     json:"threshold"`
	Price       float64   `gorm:"not null;default:0"     json:"price"`
	Status      Status    `gorm:"size:20"                json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AfterFind normalises the stored status tag so only canonical values leave
// the persistence layer, even if a foreign writer stored something else.
func (p *Product) AfterFind(_ *gorm.DB) error {
	p.Status = ParseStatus(string(p.Status))
	return nil
}

// InventoryItem is the narrow product view used by the inventory overview
// and the 4-column CSV pair.
type InventoryItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Barcode   string `json:"barcode"`
	Quantity  int    `json:"quantity"`
	Threshold int    `json:"threshold"`
	Status    Status `json:"status"`
}
