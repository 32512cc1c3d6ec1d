package controllers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/stockroom/stockroom/app/controllers"
	"github.com/stockroom/stockroom/app/models"
	"github.com/stockroom/stockroom/app/repositories"
	"github.com/stockroom/stockroom/app/services"
	"github.com/stockroom/stockroom/pkg/database"
	"github.com/stockroom/stockroom/pkg/router"
	"github.com/stockroom/stockroom/pkg/storage"
)

// envelope mirrors the JSON response shape for assertions.
type envelope struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

type testAPI struct {
	db       *gorm.DB
	products *repositories.ProductRepository
	alerts   *repositories.AlertRepository
	handler  http.Handler
}

func newTestAPI(t *testing.T) *testAPI {
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

	productController := controllers.NewProductController(
		services.NewProductService(products, alerts),
		services.NewCSVService(products, disk),
	)
	inventoryController := controllers.NewInventoryController(
		services.NewInventoryService(products, alerts, settings, disk),
	)

	r := router.New()
	api := r.Group("/api")

	p := api.Group("/products")
	p.Get("", "", productController.Index)
	p.Post("", "", productController.Store)
	p.Get("/search", "", productController.Search)
	p.Get("/scan", "", productController.Scan)
	p.Get("/categories", "", productController.Categories)
	p.Get("/export", "", productController.Export)
	p.Post("/import", "", productController.Import)
	p.Get("/{id}", "", productController.Show)
	p.Put("/{id}", "", productController.Update)
	p.Delete("/{id}", "", productController.Destroy)

	inv := api.Group("/inventory")
	inv.Get("", "", inventoryController.Overview)
	inv.Get("/alerts", "", inventoryController.Alerts)
	inv.Delete("/alerts/{id}", "", inventoryController.DeleteAlert)
	inv.Get("/export", "", inventoryController.Export)
	inv.Post("/import", "", inventoryController.Import)
	inv.Patch("/stock/{id}", "", inventoryController.UpdateStock)
	inv.Get("/settings/{id}", "", inventoryController.ShowSetting)
	inv.Put("/settings/{id}", "", inventoryController.PutSetting)

	return &testAPI{db: db, products: products, alerts: alerts, handler: r.Handler()}
}

// do runs one request through the full router and decodes the envelope.
func (a *testAPI) do(t *testing.T, method, target string, body io.Reader) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)

	var env envelope
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func (a *testAPI) seed(t *testing.T, id, name string, stock, threshold int) *models.Product {
	t.Helper()

	p := &models.Product{
		ID:        id,
		Name:      name,
		SKU:       "SKU-" + id,
		Barcode:   "BAR-" + id,
		Category:  "Electronics",
		Stock:     stock,
		Threshold: threshold,
		Price:     9.99,
		Status:    models.StatusInStock,
	}
	require.NoError(t, a.products.Create(p))
	return p
}
