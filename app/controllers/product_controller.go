package controllers

import (
	"errors"
	"io"
	"net/http"
	"os"

	"github.com/stockroom/stockroom/app/models"
	"github.com/stockroom/stockroom/app/repositories"
	"github.com/stockroom/stockroom/app/services"
	"github.com/stockroom/stockroom/pkg/bind"
	"github.com/stockroom/stockroom/pkg/logger"
	"github.com/stockroom/stockroom/pkg/response"
	"github.com/stockroom/stockroom/pkg/router"
)

// productInput is the JSON payload for create and update. Validation runs
// here, at the boundary; the repositories assume pre-validated input.
type productInput struct {
	Name        string  `json:"name"        validate:"required,max=255"`
	SKU         string  `json:"sku"         validate:"required,max=100"`
	Barcode     string  `json:"barcode"     validate:"required,max=100"`
	Category    string  `json:"category"    validate:"required,max=100"`
	Description string  `json:"description"`
	Stock       int     `json:"stock"       validate:"gte=0"`
	Threshold   int     `json:"threshold"   validate:"gte=0"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Status      string  `json:"status"      validate:"nullable,in=in-stock,low-stock,out-of-stock,unknown"`
}

func (in *productInput) toModel(id string) *models.Product {
	status := models.StatusInStock
	if in.Status != "" {
		status = models.ParseStatus(in.Status)
	}
	return &models.Product{
		ID:          id,
		Name:        in.Name,
		SKU:         in.SKU,
		Barcode:     in.Barcode,
		Category:    in.Category,
		Description: in.Description,
		Stock:       in.Stock,
		Threshold:   in.Threshold,
		Price:       in.Price,
		Status:      status,
	}
}

type ProductController struct {
	service *services.ProductService
	csv     *services.CSVService
}

func NewProductController(service *services.ProductService, csv *services.CSVService) *ProductController {
	return &ProductController{service: service, csv: csv}
}

// Index lists every product.
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	products, err := c.service.All()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to list products")
		return
	}
	response.Success(w, products)
}

// Store creates a product and returns its generated id.
func (c *ProductController) Store(w http.ResponseWriter, r *http.Request) {
	var in productInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	p := in.toModel("")
	if err := c.service.Create(p); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to insert product")
		return
	}
	response.Created(w, map[string]string{"id": p.ID, "message": "Product added successfully"})
}

// Show returns one product by id.
func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	p, err := c.service.Get(router.Param(r, "id"))
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch product")
		return
	}
	if p == nil {
		response.Error(w, http.StatusNotFound, "Product not found")
		return
	}
	response.Success(w, p)
}

// Scan looks a product up by barcode (?barcode=).
func (c *ProductController) Scan(w http.ResponseWriter, r *http.Request) {
	if !r.URL.Query().Has("barcode") {
		response.Error(w, http.StatusBadRequest, "Missing barcode")
		return
	}

	p, err := c.service.GetByBarcode(r.URL.Query().Get("barcode"))
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch product")
		return
	}
	if p == nil {
		response.Error(w, http.StatusNotFound, "Product not found")
		return
	}
	response.Success(w, p)
}

// Search matches ?q= against name or category; an empty q returns everything.
func (c *ProductController) Search(w http.ResponseWriter, r *http.Request) {
	if !r.URL.Query().Has("q") {
		response.Error(w, http.StatusBadRequest, "Missing search query")
		return
	}

	products, err := c.service.Search(r.URL.Query().Get("q"))
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Search failed")
		return
	}
	response.Success(w, products)
}

// Update fully replaces a product's fields. Existence is pre-checked so a
// missing id maps to 404, not a write failure.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id := router.Param(r, "id")

	var in productInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	existing, err := c.service.Get(id)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to fetch product")
		return
	}
	if existing == nil {
		response.Error(w, http.StatusNotFound, "Product not found")
		return
	}

	if err := c.service.Update(in.toModel(id)); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to update product")
		return
	}
	response.Success(w, map[string]string{"message": "Product updated successfully"})
}

// Destroy removes a product and its dependent rows atomically.
func (c *ProductController) Destroy(w http.ResponseWriter, r *http.Request) {
	err := c.service.Delete(router.Param(r, "id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "Product not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}
	response.Success(w, map[string]string{"message": "Product and associated records deleted successfully"})
}

// Categories lists the distinct non-empty categories.
func (c *ProductController) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.service.Categories()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to list categories")
		return
	}
	response.Success(w, categories)
}

// Export streams the full catalogue as a CSV attachment. The same bytes are
// persisted at the fixed export location as a side effect.
func (c *ProductController) Export(w http.ResponseWriter, r *http.Request) {
	data, err := c.csv.Export()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "CSV export failed")
		return
	}
	response.Attachment(w, services.ProductExportFile, "text/csv", data)
}

// Import stages the raw request body to a temporary file and runs it through
// the product CSV pipeline. Row failures are reported in the counters, never
// as a request failure.
func (c *ProductController) Import(w http.ResponseWriter, r *http.Request) {
	staged, err := stageUpload(r.Body)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to stage upload")
		return
	}
	defer os.Remove(staged)

	result, err := c.csv.ImportFile(staged)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "CSV import failed")
		return
	}
	response.Success(w, result)
}

// stageUpload copies an upload body to a temp file and returns its path.
func stageUpload(body io.Reader) (string, error) {
	f, err := os.CreateTemp("", "stockroom-import-*.csv")
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		logger.Error("staging upload failed", "path", f.Name(), "error", err)
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
