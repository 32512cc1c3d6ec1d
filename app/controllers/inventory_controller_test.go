package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockroom/stockroom/app/models"
)

func TestOverviewEndpoint(t *testing.T) {
	api := newTestAPI(t)
	api.seed(t, "p1", "Mouse", 25, 10)

	rec, env := api.do(t, http.MethodGet, "/api/inventory", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.InventoryItem
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ID)
	assert.Equal(t, 25, items[0].Quantity)
}

func TestStockPatchDrivesAlerts(t *testing.T) {
	api := newTestAPI(t)
	api.seed(t, "p1", "Mouse", 25, 10)

	rec, _ := api.do(t, http.MethodPatch, "/api/inventory/stock/p1", strings.NewReader(`{"stock":3}`))
	require.Equal(t, http.StatusOK, rec.Code)

	p, err := api.products.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, 3, p.Stock)

	alerts, err := api.alerts.ForProduct("p1")
	require.NoError(t, err)
	assert.Len(t, alerts, 1)
}

func TestStockPatchMissingProduct(t *testing.T) {
	api := newTestAPI(t)

	rec, _ := api.do(t, http.MethodPatch, "/api/inventory/stock/ghost", strings.NewReader(`{"stock":3}`))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStockPatchRejectsNegative(t *testing.T) {
	api := newTestAPI(t)
	api.seed(t, "p1", "Mouse", 25, 10)

	rec, env := api.do(t, http.MethodPatch, "/api/inventory/stock/p1", strings.NewReader(`{"stock":-4}`))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, env.Errors, "stock")
}

func TestAlertListAndDelete(t *testing.T) {
	api := newTestAPI(t)
	p := api.seed(t, "p1", "Mouse", 2, 10)
	require.NoError(t, api.alerts.EnsureForProduct(p))

	rec, env := api.do(t, http.MethodGet, "/api/inventory/alerts", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Alerts []models.InventoryAlert `json:"alerts"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Alerts, 1)

	rec, _ = api.do(t, http.MethodDelete, fmt.Sprintf("/api/inventory/alerts/%d", data.Alerts[0].ID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = api.do(t, http.MethodDelete, "/api/inventory/alerts/9999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = api.do(t, http.MethodDelete, "/api/inventory/alerts/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSettingsEndpoints(t *testing.T) {
	api := newTestAPI(t)
	api.seed(t, "p1", "Mouse", 25, 10)

	rec, _ := api.do(t, http.MethodGet, "/api/inventory/settings/p1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	body := `{"low_stock_threshold":15,"auto_reorder":true}`
	rec, _ = api.do(t, http.MethodPut, "/api/inventory/settings/p1", strings.NewReader(body))
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env := api.do(t, http.MethodGet, "/api/inventory/settings/p1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var setting models.InventorySetting
	require.NoError(t, json.Unmarshal(env.Data, &setting))
	assert.Equal(t, 15, setting.LowStockThreshold)
	assert.True(t, setting.AutoReorder)
}

func TestInventoryExportEndpoint(t *testing.T) {
	api := newTestAPI(t)
	api.seed(t, "p1", "Mouse", 25, 10)

	rec, _ := api.do(t, http.MethodGet, "/api/inventory/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "inventory_export.csv")
	assert.Contains(t, rec.Body.String(), "p1,Mouse,25,in-stock")
}

func TestInventoryImportEndpointUpserts(t *testing.T) {
	api := newTestAPI(t)
	api.seed(t, "p1", "Mouse", 25, 10)

	csv := "id,name,quantity,status\np1,Mouse,3,low-stock\n"
	rec, env := api.do(t, http.MethodPost, "/api/inventory/import", strings.NewReader(csv))
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Imported int `json:"imported"`
		Failed   int `json:"failed"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, 1, result.Imported)

	p, err := api.products.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, 3, p.Stock)
}
