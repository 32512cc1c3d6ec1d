package services

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/stockroom/stockroom/app/models"
	"github.com/stockroom/stockroom/app/repositories"
	"github.com/stockroom/stockroom/config"
	"github.com/stockroom/stockroom/pkg/logger"
	"github.com/stockroom/stockroom/pkg/metrics"
	"github.com/stockroom/stockroom/pkg/storage"
)

// InventoryExportFile is the fixed name of the persisted inventory export.
const InventoryExportFile = "inventory_export.csv"

const inventoryCSVHeader = "id,name,quantity,status"

// InventoryService drives the inventory overview, stock adjustments, alert
// listing and the narrow 4-column CSV pair.
//
// Its import path upserts on id rather than inserting, so re-importing an
// export overwrites rows instead of failing on key conflicts. That conflict
// policy is a deliberate difference from CSVService and must stay distinct.
type InventoryService struct {
	products *repositories.ProductRepository
	alerts   *repositories.AlertRepository
	settings *repositories.SettingRepository
	disk     storage.Disk
}

func NewInventoryService(
	products *repositories.ProductRepository,
	alerts *repositories.AlertRepository,
	settings *repositories.SettingRepository,
	disk storage.Disk,
) *InventoryService {
	return &InventoryService{products: products, alerts: alerts, settings: settings, disk: disk}
}

// Overview returns the narrow per-product inventory view.
func (s *InventoryService) Overview() ([]models.InventoryItem, error) {
	products, err := s.products.All()
	if err != nil {
		return nil, fmt.Errorf("inventory overview: %w", err)
	}

	items := make([]models.InventoryItem, 0, len(products))
	for _, p := range products {
		items = append(items, models.InventoryItem{
			ID:        p.ID,
			Name:      p.Name,
			Barcode:   p.Barcode,
			Quantity:  p.Stock,
			Threshold: p.Threshold,
			Status:    p.Status,
		})
	}
	return items, nil
}

// UpdateStock sets a product's stock quantity and re-evaluates its alert:
// at or below threshold exactly one open alert exists, above it none.
func (s *InventoryService) UpdateStock(productID string, stock int) error {
	if err := s.products.UpdateStock(productID, stock); err != nil {
		return err
	}

	p, err := s.products.GetByID(productID)
	if err != nil || p == nil {
		return err
	}
	if err := s.alerts.EnsureForProduct(p); err != nil {
		// Stock write already landed; alert bookkeeping failure is logged,
		// not surfaced as a stock-update failure.
		logger.Warn("alert sync failed after stock update", "product_id", productID, "error", err)
	}
	return nil
}

// Alerts lists every inventory alert.
func (s *InventoryService) Alerts() ([]models.InventoryAlert, error) {
	return s.alerts.All()
}

// DeleteAlert removes one alert row.
func (s *InventoryService) DeleteAlert(id uint) error {
	return s.alerts.DeleteByID(id)
}

// Setting returns the per-product inventory settings row, if any.
func (s *InventoryService) Setting(productID string) (*models.InventorySetting, error) {
	return s.settings.ForProduct(productID)
}

// PutSetting creates or replaces the per-product settings row.
func (s *InventoryService) PutSetting(setting *models.InventorySetting) error {
	return s.settings.Put(setting)
}

// Export renders the 4-column inventory view as CSV, persists it at the
// fixed export location and returns the bytes.
func (s *InventoryService) Export() ([]byte, error) {
	items, err := s.Overview()
	if err != nil {
		return nil, fmt.Errorf("inventory export: %w", err)
	}

	var b strings.Builder
	b.WriteString(inventoryCSVHeader + "\n")
	for _, it := range items {
		fmt.Fprintf(&b, "%s,%s,%d,%s\n", it.ID, it.Name, it.Quantity, it.Status)
	}

	data := []byte(b.String())
	target := path.Join(config.ExportDir(), InventoryExportFile)
	if err := s.disk.Put(target, data); err != nil {
		return nil, fmt.Errorf("inventory export: persist %s: %w", target, err)
	}

	logger.Info("inventory exported", "rows", len(items), "path", target)
	return data, nil
}

// ImportFile runs Import over a staged file.
func (s *InventoryService) ImportFile(filePath string) (ImportResult, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return ImportResult{}, fmt.Errorf("inventory import: open %s: %w", filePath, err)
	}
	defer f.Close()
	return s.Import(f)
}

// Import parses 4-column rows and upserts each onto the products table.
// Row failures are counted and skipped, same tolerance as the product
// pipeline; only the conflict policy differs.
func (s *InventoryService) Import(r io.Reader) (ImportResult, error) {
	var res ImportResult

	scanner := bufio.NewScanner(r)
	header := true
	line := 0
	for scanner.Scan() {
		line++
		row := strings.TrimSpace(scanner.Text())
		if row == "" {
			continue
		}
		if header {
			header = false
			continue
		}

		item, err := inventoryFromCSVRow(row)
		if err != nil {
			logger.Warn("inventory import row rejected", "line", line, "error", err)
			res.Failed++
			continue
		}
		if err := s.products.Upsert(item); err != nil {
			res.Failed++
			continue
		}
		res.Imported++
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("inventory import: read: %w", err)
	}

	metrics.CSVRowsImported.WithLabelValues("inventory").Add(float64(res.Imported))
	metrics.CSVRowsFailed.WithLabelValues("inventory").Add(float64(res.Failed))
	logger.Info("inventory imported", "imported", res.Imported, "failed", res.Failed)
	return res, nil
}

func inventoryFromCSVRow(row string) (*models.Product, error) {
	fields := strings.Split(row, ",")
	if len(fields) != 4 {
		return nil, fmt.Errorf("expected 4 columns, got %d", len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	quantity, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, fmt.Errorf("quantity %q: %w", fields[2], err)
	}

	status := models.StatusInStock
	if fields[3] != "" {
		status = models.ParseStatus(fields[3])
	}

	return &models.Product{
		ID:     fields[0], // blank → generated on insert
		Name:   fields[1],
		Stock:  quantity,
		Status: status,
	}, nil
}
