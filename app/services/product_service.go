package services

import (
	"github.com/stockroom/stockroom/app/models"
	"github.com/stockroom/stockroom/app/repositories"
	"github.com/stockroom/stockroom/pkg/logger"
)

// ProductService fronts the product repository and keeps alert bookkeeping
// in step with catalogue writes.
type ProductService struct {
	products *repositories.ProductRepository
	alerts   *repositories.AlertRepository
}

func NewProductService(products *repositories.ProductRepository, alerts *repositories.AlertRepository) *ProductService {
	return &ProductService{products: products, alerts: alerts}
}

// Create inserts a product and evaluates its low-stock alert.
func (s *ProductService) Create(p *models.Product) error {
	if err := s.products.Create(p); err != nil {
		return err
	}
	s.syncAlert(p)
	return nil
}

// Update replaces a product's fields and re-evaluates its alert.
func (s *ProductService) Update(p *models.Product) error {
	if err := s.products.Update(p); err != nil {
		return err
	}
	s.syncAlert(p)
	return nil
}

func (s *ProductService) Get(id string) (*models.Product, error) {
	return s.products.GetByID(id)
}

func (s *ProductService) GetByBarcode(barcode string) (*models.Product, error) {
	return s.products.GetByBarcode(barcode)
}

func (s *ProductService) All() ([]models.Product, error) {
	return s.products.All()
}

func (s *ProductService) Search(query string) ([]models.Product, error) {
	return s.products.Search(query)
}

func (s *ProductService) Categories() ([]string, error) {
	return s.products.Categories()
}

// Delete removes the product and all dependent rows atomically.
func (s *ProductService) Delete(id string) error {
	return s.products.DeleteCascade(id)
}

// syncAlert applies the low-stock rule after a write. Alert bookkeeping
// failures are logged, never surfaced as a write failure.
func (s *ProductService) syncAlert(p *models.Product) {
	if err := s.alerts.EnsureForProduct(p); err != nil {
		logger.Warn("alert sync failed", "product_id", p.ID, "error", err)
	}
}
