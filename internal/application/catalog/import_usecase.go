package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/width"

	"github.com/jhoicas/Cotizaciones-api/internal/application/dto"
	"github.com/jhoicas/Cotizaciones-api/internal/application/storecall"
	"github.com/jhoicas/Cotizaciones-api/internal/domain"
	"github.com/jhoicas/Cotizaciones-api/internal/domain/entity"
	"github.com/jhoicas/Cotizaciones-api/internal/domain/repository"
)

// Encabezados aceptados por campo, en orden de prioridad. La comparación distingue
// mayúsculas y se hace tras recortar espacios y pasar caracteres de ancho completo a medio ancho.
var (
	NameHeaders  = []string{"型號", "品名", "產品名稱", "產品", "name", "Name", "NAME", "model", "Model"}
	PriceHeaders = []string{"經銷價", "牌價", "dealer_price", "DealerPrice", "price", "Price", "PRICE"}
	SpecHeaders  = []string{"規格", "spec", "Spec", "SPEC", "specification"}
)

// ColumnMap índices de columna resueltos; Spec es -1 si el archivo no la trae.
type ColumnMap struct {
	Name, Price, Spec                   int
	NameHeader, PriceHeader, SpecHeader string
}

// MapColumns resuelve las columnas de nombre, precio y especificación.
// Sin columna de nombre o de precio devuelve domain.ErrSchemaMismatch.
func MapColumns(headers []string) (ColumnMap, error) {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		key := normalizeHeader(h)
		if _, dup := index[key]; !dup {
			index[key] = i
		}
	}
	find := func(candidates []string) (int, string) {
		for _, c := range candidates {
			if i, ok := index[c]; ok {
				return i, c
			}
		}
		return -1, ""
	}

	var m ColumnMap
	m.Name, m.NameHeader = find(NameHeaders)
	m.Price, m.PriceHeader = find(PriceHeaders)
	m.Spec, m.SpecHeader = find(SpecHeaders)
	if m.Name < 0 || m.Price < 0 {
		return m, fmt.Errorf("%w: se requiere una columna de nombre (%s) y una de precio (%s); encontradas: %s",
			domain.ErrSchemaMismatch,
			strings.Join(NameHeaders[:3], ", "), strings.Join(PriceHeaders[:2], ", "),
			strings.Join(headers, ", "))
	}
	return m, nil
}

func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return strings.TrimSpace(width.Fold.String(h))
}

// priceCleaner quita separadores de miles, símbolos de moneda y espacios.
var priceCleaner = strings.NewReplacer(",", "", "NT$", "", "US$", "", "$", "", "元", "", " ", "", "\u00a0", "")

// ParsePrice interpreta una celda de precio. Vacía, ilegible o negativa vale 0.
func ParsePrice(cell string) decimal.Decimal {
	s := priceCleaner.Replace(width.Fold.String(strings.TrimSpace(cell)))
	if s == "" {
		return decimal.Zero
	}
	p, err := decimal.NewFromString(s)
	if err != nil || p.IsNegative() {
		return decimal.Zero
	}
	return p
}

// ImportProductsUseCase importa productos desde una tabla ya leída.
type ImportProductsUseCase struct {
	repo    repository.ProductRepository
	timeout time.Duration
}

// NewImportProductsUseCase construye el caso de uso.
func NewImportProductsUseCase(repo repository.ProductRepository, timeout time.Duration) *ImportProductsUseCase {
	return &ImportProductsUseCase{repo: repo, timeout: timeout}
}

// Import valida encabezados, arma los productos y los escribe en un solo lote.
// Las filas sin nombre se omiten. Si el esquema no coincide no se escribe nada.
func (uc *ImportProductsUseCase) Import(ctx context.Context, table dto.Table) (*dto.ImportProductsResponse, error) {
	cols, err := MapColumns(table.Headers)
	if err != nil {
		return nil, err
	}
	resp := &dto.ImportProductsResponse{Columns: map[string]string{
		"name":  cols.NameHeader,
		"price": cols.PriceHeader,
	}}
	if cols.Spec >= 0 {
		resp.Columns["spec"] = cols.SpecHeader
	}

	now := time.Now().UTC()
	products := make([]*entity.Product, 0, len(table.Rows))
	for _, row := range table.Rows {
		name := strings.TrimSpace(cell(row, cols.Name))
		if name == "" {
			resp.Skipped++
			continue
		}
		p := &entity.Product{
			ID:          uuid.New().String(),
			Name:        name,
			DealerPrice: ParsePrice(cell(row, cols.Price)),
			CreatedAt:   now,
		}
		if cols.Spec >= 0 {
			p.Spec = strings.TrimSpace(cell(row, cols.Spec))
		}
		products = append(products, p)
	}
	if len(products) == 0 {
		return resp, nil
	}

	ctx, cancel := storecall.WithTimeout(ctx, uc.timeout)
	defer cancel()
	if err := uc.repo.CreateBatch(ctx, products); err != nil {
		return nil, fmt.Errorf("importar productos: %w", err)
	}
	resp.Imported = len(products)
	return resp, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
