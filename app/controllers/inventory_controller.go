package controllers

import (
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/stockroom/stockroom/app/models"
	"github.com/stockroom/stockroom/app/repositories"
	"github.com/stockroom/stockroom/app/services"
	"github.com/stockroom/stockroom/pkg/bind"
	"github.com/stockroom/stockroom/pkg/response"
	"github.com/stockroom/stockroom/pkg/router"
)

type stockInput struct {
	Stock int `json:"stock" validate:"gte=0"`
}

type settingInput struct {
	LowStockThreshold int  `json:"low_stock_threshold" validate:"gte=0"`
	AutoReorder       bool `json:"auto_reorder"`
}

type InventoryController struct {
	service *services.InventoryService
}

func NewInventoryController(service *services.InventoryService) *InventoryController {
	return &InventoryController{service: service}
}

// Overview returns the narrow inventory view of every product.
func (c *InventoryController) Overview(w http.ResponseWriter, r *http.Request) {
	items, err := c.service.Overview()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Error retrieving inventory")
		return
	}
	response.Success(w, items)
}

// UpdateStock sets the stock quantity of one product.
func (c *InventoryController) UpdateStock(w http.ResponseWriter, r *http.Request) {
	id := router.Param(r, "id")

	var in stockInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := c.service.UpdateStock(id, in.Stock); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "Product not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to update stock")
		return
	}
	response.Success(w, map[string]string{"message": "Stock updated"})
}

// Alerts lists every inventory alert.
func (c *InventoryController) Alerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := c.service.Alerts()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Error fetching alerts")
		return
	}
	response.Success(w, map[string]interface{}{"alerts": alerts})
}

// DeleteAlert removes one alert by numeric id.
func (c *InventoryController) DeleteAlert(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(router.Param(r, "id"), 10, 32)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid alert id")
		return
	}

	if err := c.service.DeleteAlert(uint(id)); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "Alert not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to delete alert")
		return
	}
	response.Success(w, map[string]string{"message": "Alert deleted"})
}

// ShowSetting returns the per-product inventory settings row.
func (c *InventoryController) ShowSetting(w http.ResponseWriter, r *http.Request) {
	setting, err := c.service.Setting(router.Param(r, "id"))
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch settings")
		return
	}
	if setting == nil {
		response.Error(w, http.StatusNotFound, "Settings not found")
		return
	}
	response.Success(w, setting)
}

// PutSetting creates or replaces the per-product settings row.
func (c *InventoryController) PutSetting(w http.ResponseWriter, r *http.Request) {
	id := router.Param(r, "id")

	var in settingInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	setting := &models.InventorySetting{
		ProductID:         id,
		LowStockThreshold: in.LowStockThreshold,
		AutoReorder:       in.AutoReorder,
	}
	if err := c.service.PutSetting(setting); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to save settings")
		return
	}
	response.Success(w, setting)
}

// Export streams the 4-column inventory CSV as an attachment.
func (c *InventoryController) Export(w http.ResponseWriter, r *http.Request) {
	data, err := c.service.Export()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "CSV export failed")
		return
	}
	response.Attachment(w, services.InventoryExportFile, "text/csv", data)
}

// Import stages the raw request body and runs the 4-column upsert pipeline.
func (c *InventoryController) Import(w http.ResponseWriter, r *http.Request) {
	staged, err := stageUpload(r.Body)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to stage upload")
		return
	}
	defer os.Remove(staged)

	result, err := c.service.ImportFile(staged)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "CSV import failed")
		return
	}
	response.Success(w, result)
}
