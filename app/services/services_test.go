package services_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/stockroom/stockroom/app/models"
	"github.com/stockroom/stockroom/app/repositories"
	"github.com/stockroom/stockroom/app/services"
	"github.com/stockroom/stockroom/pkg/database"
	"github.com/stockroom/stockroom/pkg/storage"
)

// testEnv bundles a throwaway database with the service layer built on it.
type testEnv struct {
	db        *gorm.DB
	products  *repositories.ProductRepository
	alerts    *repositories.AlertRepository
	settings  *repositories.SettingRepository
	disk      storage.Disk
	catalogue *services.ProductService
	csv       *services.CSVService
	inventory *services.InventoryService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.InventoryAlert{},
		&models.InventorySetting{},
	))

	products := repositories.NewProductRepository(db)
	alerts := repositories.NewAlertRepository(db)
	settings := repositories.NewSettingRepository(db)
	disk := storage.NewLocalDisk(t.TempDir(), "")

	return &testEnv{
		db:        db,
		products:  products,
		alerts:    alerts,
		settings:  settings,
		disk:      disk,
		catalogue: services.NewProductService(products, alerts),
		csv:       services.NewCSVService(products, disk),
		inventory: services.NewInventoryService(products, alerts, settings, disk),
	}
}

func seedProduct(t *testing.T, env *testEnv, id, name string, stock, threshold int) *models.Product {
	t.Helper()

	p := &models.Product{
		ID:        id,
		Name:      name,
		SKU:       "SKU-" + id,
		Barcode:   "400638133" + id,
		Category:  "Electronics",
		Stock:     stock,
		Threshold: threshold,
		Price:     12.50,
		Status:    models.StatusInStock,
	}
	require.NoError(t, env.products.Create(p))
	return p
}
