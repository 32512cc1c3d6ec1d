package routes

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/stockroom/stockroom/app/controllers"
	"github.com/stockroom/stockroom/app/repositories"
	"github.com/stockroom/stockroom/app/services"
	"github.com/stockroom/stockroom/pkg/metrics"
	"github.com/stockroom/stockroom/pkg/response"
	"github.com/stockroom/stockroom/pkg/router"
	"github.com/stockroom/stockroom/pkg/storage"
)

// RegisterAPI wires every HTTP route onto the router.
func RegisterAPI(r *router.Router, db *gorm.DB) {
	products := repositories.NewProductRepository(db)
	alerts := repositories.NewAlertRepository(db)
	settings := repositories.NewSettingRepository(db)

	disk := storage.Default()

	productService := services.NewProductService(products, alerts)
	csvService := services.NewCSVService(products, disk)
	inventoryService := services.NewInventoryService(products, alerts, settings, disk)

	productController := controllers.NewProductController(productService, csvService)
	inventoryController := controllers.NewInventoryController(inventoryService)

	api := r.Group("/api")
	api.Get("/health", "health", func(w http.ResponseWriter, _ *http.Request) {
		response.Success(w, map[string]string{"status": "ok"})
	})

	p := api.Group("/products")
	p.Get("", "products.index", productController.Index)
	p.Post("", "products.store", productController.Store)
	p.Get("/search", "products.search", productController.Search)
	p.Get("/scan", "products.scan", productController.Scan)
	p.Get("/categories", "products.categories", productController.Categories)
	p.Get("/export", "products.export", productController.Export)
	p.Post("/import", "products.import", productController.Import)
	p.Get("/{id}", "products.show", productController.Show)
	p.Put("/{id}", "products.update", productController.Update)
	p.Delete("/{id}", "products.destroy", productController.Destroy)

	inv := api.Group("/inventory")
	inv.Get("", "inventory.index", inventoryController.Overview)
	inv.Get("/alerts", "inventory.alerts", inventoryController.Alerts)
	inv.Delete("/alerts/{id}", "inventory.alerts.destroy", inventoryController.DeleteAlert)
	inv.Get("/export", "inventory.export", inventoryController.Export)
	inv.Post("/import", "inventory.import", inventoryController.Import)
	inv.Patch("/stock/{id}", "inventory.stock", inventoryController.UpdateStock)
	inv.Get("/settings/{id}", "inventory.settings.show", inventoryController.ShowSetting)
	inv.Put("/settings/{id}", "inventory.settings.put", inventoryController.PutSetting)

	r.Get("/metrics", "metrics", metrics.Handler())
}
