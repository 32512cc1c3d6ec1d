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

// ProductExportFile is the fixed name of the persisted product export,
// also used as the download attachment filename.
const ProductExportFile = "products_export.csv"

const productCSVHeader = "id,name,sku,barcode,category,stock,threshold,price,status"

// ImportResult reports how a CSV import went. A non-zero Failed count is not
// an error: failed rows are isolated, counted and skipped.
type ImportResult struct {
	Imported int `json:"imported"`
	Failed   int `json:"failed"`
}

// CSVService is the 9-column product import/export pipeline.
//
// The two directions are asymmetric format contracts: export quotes every
// text field (embedded quotes doubled), while the import reader is a plain
// trimmed comma split with no quote-escape handling. Field values containing
// commas do not survive a round trip; the column-count check rejects such
// rows as failed instead of silently mangling them.
type CSVService struct {
	products *repositories.ProductRepository
	disk     storage.Disk
}

func NewCSVService(products *repositories.ProductRepository, disk storage.Disk) *CSVService {
	return &CSVService{products: products, disk: disk}
}

// Export renders every product as CSV, persists it at the fixed export
// location on the storage disk, and returns the same bytes for direct
// delivery.
func (s *CSVService) Export() ([]byte, error) {
	products, err := s.products.All()
	if err != nil {
		return nil, fmt.Errorf("csv export: %w", err)
	}

	var b strings.Builder
	b.WriteString(productCSVHeader + "\n")
	for _, p := range products {
		b.WriteString(productToCSVRow(&p) + "\n")
	}

	data := []byte(b.String())
	target := path.Join(config.ExportDir(), ProductExportFile)
	if err := s.disk.Put(target, data); err != nil {
		return nil, fmt.Errorf("csv export: persist %s: %w", target, err)
	}

	logger.Info("products exported", "rows", len(products), "path", target)
	return data, nil
}

// ImportFile runs Import over a staged file. The HTTP boundary stages the
// uploaded body to a temporary file before handing it here.
func (s *CSVService) ImportFile(filePath string) (ImportResult, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return ImportResult{}, fmt.Errorf("csv import: open %s: %w", filePath, err)
	}
	defer f.Close()
	return s.Import(f)
}

// Import parses 9-column CSV rows and inserts each as a product. A blank id
// gets a generated one; a blank status defaults to in-stock. A failing row
// is counted and skipped, never aborting the batch; the returned error
// covers read failures only.
func (s *CSVService) Import(r io.Reader) (ImportResult, error) {
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

		p, err := productFromCSVRow(row)
		if err != nil {
			logger.Warn("import row rejected", "line", line, "error", err)
			res.Failed++
			continue
		}
		if err := s.products.Create(p); err != nil {
			res.Failed++
			continue
		}
		res.Imported++
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("csv import: read: %w", err)
	}

	metrics.CSVRowsImported.WithLabelValues("products").Add(float64(res.Imported))
	metrics.CSVRowsFailed.WithLabelValues("products").Add(float64(res.Failed))
	logger.Info("products imported", "imported", res.Imported, "failed", res.Failed)
	return res, nil
}

// productToCSVRow renders one product. Text fields are quoted with embedded
// quotes doubled; numeric fields stay bare.
func productToCSVRow(p *models.Product) string {
	return strings.Join([]string{
		csvQuote(p.ID),
		csvQuote(p.Name),
		csvQuote(p.SKU),
		csvQuote(p.Barcode),
		csvQuote(p.Category),
		strconv.Itoa(p.Stock),
		strconv.Itoa(p.Threshold),
		strconv.FormatFloat(p.Price, 'f', -1, 64),
		csvQuote(p.Status.String()),
	}, ",")
}

func productFromCSVRow(row string) (*models.Product, error) {
	fields := strings.Split(row, ",")
	if len(fields) != 9 {
		return nil, fmt.Errorf("expected 9 columns, got %d", len(fields))
	}
	for i := range fields {
		fields[i] = unquoteField(strings.TrimSpace(fields[i]))
	}

	stock, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("stock %q: %w", fields[5], err)
	}
	threshold, err := strconv.Atoi(fields[6])
	if err != nil {
		return nil, fmt.Errorf("threshold %q: %w", fields[6], err)
	}
	price, err := strconv.ParseFloat(fields[7], 64)
	if err != nil {
		return nil, fmt.Errorf("price %q: %w", fields[7], err)
	}

	status := models.StatusInStock
	if fields[8] != "" {
		status = models.ParseStatus(fields[8])
	}

	return &models.Product{
		ID:        fields[0], // blank → generated on insert
		Name:      fields[1],
		SKU:       fields[2],
		Barcode:   fields[3],
		Category:  fields[4],
		Stock:     stock,
		Threshold: threshold,
		Price:     price,
		Status:    status,
	}, nil
}

func csvQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// unquoteField strips one pair of surrounding quotes so exported files read
// back cleanly. Embedded escaping is deliberately not interpreted.
func unquoteField(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
