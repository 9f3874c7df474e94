package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Spec        string          `json:"spec"`
	DealerPrice decimal.Decimal `json:"dealer_price"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Spec        string          `json:"spec,omitempty"`
	DealerPrice decimal.Decimal `json:"dealer_price"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ProductListResponse catálogo completo. Degraded indica que el almacén no respondió.
type ProductListResponse struct {
	Items    []ProductResponse `json:"items"`
	Degraded bool              `json:"degraded,omitempty"`
}

// ImportProductsResponse resultado de la importación masiva.
// Columns indica qué encabezado del archivo se usó para cada campo.
type ImportProductsResponse struct {
	Imported int               `json:"imported"`
	Skipped  int               `json:"skipped"`
	Columns  map[string]string `json:"columns"`
}
