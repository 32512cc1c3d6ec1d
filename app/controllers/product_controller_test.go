package controllers_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockroom/stockroom/app/models"
)

func TestStoreCreatesProduct(t *testing.T) {
	api := newTestAPI(t)

	body := `{"name":"Wireless Mouse","sku":"WM-1","barcode":"BAR-1","category":"Electronics","stock":25,"threshold":10,"price":24.99}`
	rec, env := api.do(t, http.MethodPost, "/api/products", strings.NewReader(body))

	require.Equal(t, http.StatusCreated, rec.Code)

	var data map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data["id"])
	assert.Equal(t, "Product added successfully", data["message"])

	p, err := api.products.GetByID(data["id"])
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Wireless Mouse", p.Name)
	assert.Equal(t, models.StatusInStock, p.Status, "omitted status must default to in-stock")
}

func TestStoreValidatesInput(t *testing.T) {
	api := newTestAPI(t)

	rec, env := api.do(t, http.MethodPost, "/api/products", strings.NewReader(`{"stock":-1}`))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, env.Errors, "name")
	assert.Contains(t, env.Errors, "stock")
}

func TestStoreRejectsMalformedJSON(t *testing.T) {
	api := newTestAPI(t)

	rec, _ := api.do(t, http.MethodPost, "/api/products", strings.NewReader(`{not json`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestShowAndShowMissing(t *testing.T) {
	api := newTestAPI(t)
	api.seed(t, "p1", "Mouse", 25, 10)

	rec, env := api.do(t, http.MethodGet, "/api/products/p1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var p models.Product
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.Equal(t, "Mouse", p.Name)

	rec, env = api.do(t, http.MethodGet, "/api/products/ghost", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Product not found", env.Message)
}

func TestScanRequiresBarcodeParam(t *testing.T) {
	api := newTestAPI(t)
	api.seed(t, "p1", "Mouse", 25, 10)

	rec, _ := api.do(t, http.MethodGet, "/api/products/scan", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, env := api.do(t, http.MethodGet, "/api/products/scan?barcode=BAR-p1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var p models.Product
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.Equal(t, "p1", p.ID)

	rec, _ = api.do(t, http.MethodGet, "/api/products/scan?barcode=0000", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchParamHandling(t *testing.T) {
	api := newTestAPI(t)
	api.seed(t, "p1", "Wireless Mouse", 25, 10)
	api.seed(t, "p2", "Desk Lamp", 4, 2)

	rec, _ := api.do(t, http.MethodGet, "/api/products/search", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "absent q is an error")

	rec, env := api.do(t, http.MethodGet, "/api/products/search?q=mouse", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var hits []models.Product
	require.NoError(t, json.Unmarshal(env.Data, &hits))
	assert.Len(t, hits, 1)

	rec, env = api.do(t, http.MethodGet, "/api/products/search?q=", nil)
	require.Equal(t, http.StatusOK, rec.Code, "present-but-empty q returns everything")
	require.NoError(t, json.Unmarshal(env.Data, &hits))
	assert.Len(t, hits, 2)
}

func TestUpdateMissingProductIs404(t *testing.T) {
	api := newTestAPI(t)

	body := `{"name":"Mouse","sku":"WM-1","barcode":"BAR-1","category":"Electronics"}`
	rec, _ := api.do(t, http.MethodPut, "/api/products/ghost", strings.NewReader(body))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateReplacesProduct(t *testing.T) {
	api := newTestAPI(t)
	api.seed(t, "p1", "Mouse", 25, 10)

	body := `{"name":"Trackball","sku":"TB-1","barcode":"BAR-p1","category":"Electronics","stock":3,"threshold":10,"price":59.99,"status":"low-stock"}`
	rec, _ := api.do(t, http.MethodPut, "/api/products/p1", strings.NewReader(body))
	require.Equal(t, http.StatusOK, rec.Code)

	p, err := api.products.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, "Trackball", p.Name)
	assert.Equal(t, models.StatusLowStock, p.Status)
}

func TestDestroyIsAtomicallyCascading(t *testing.T) {
	api := newTestAPI(t)
	p := api.seed(t, "p1", "Mouse", 2, 10)
	require.NoError(t, api.alerts.EnsureForProduct(p))

	rec, _ := api.do(t, http.MethodDelete, "/api/products/p1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	remaining, err := api.alerts.ForProduct("p1")
	require.NoError(t, err)
	assert.Empty(t, remaining)

	rec, _ = api.do(t, http.MethodDelete, "/api/products/p1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCategoriesEndpoint(t *testing.T) {
	api := newTestAPI(t)
	api.seed(t, "p1", "Mouse", 25, 10)
	api.seed(t, "p2", "Keyboard", 25, 10)

	rec, env := api.do(t, http.MethodGet, "/api/products/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var categories []string
	require.NoError(t, json.Unmarshal(env.Data, &categories))
	assert.Equal(t, []string{"Electronics"}, categories)
}

func TestExportEndpointStreamsAttachment(t *testing.T) {
	api := newTestAPI(t)
	api.seed(t, "p1", "Mouse", 25, 10)

	rec, _ := api.do(t, http.MethodGet, "/api/products/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "products_export.csv")
	assert.Contains(t, rec.Body.String(), "id,name,sku,barcode,category,stock,threshold,price,status")
	assert.Contains(t, rec.Body.String(), `"Mouse"`)
}

func TestImportEndpointReportsCounts(t *testing.T) {
	api := newTestAPI(t)

	csv := "id,name,sku,barcode,category,stock,threshold,price,status\n" +
		"p1,Mouse,SKU-1,BAR-1,Electronics,5,2,1.50,in-stock\n" +
		"p1,Dup,SKU-2,BAR-2,Electronics,5,2,1.50,in-stock\n"

	req := strings.NewReader(csv)
	rec, env := api.do(t, http.MethodPost, "/api/products/import", req)
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Imported int `json:"imported"`
		Failed   int `json:"failed"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Failed)
}
