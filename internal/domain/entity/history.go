package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// HistoryEntry es una línea de cotización junto con los datos de su cabecera y cliente.
// Lo produce la búsqueda de historial de precios (lectura).
type HistoryEntry struct {
	ItemID              int64
	QuoteDate           time.Time
	QuoteNumber         string
	ClientName          string
	ProductName         string
	Quantity            int
	UnitPrice           decimal.Decimal
	DealerPriceSnapshot decimal.Decimal
}

// DashboardStats agregados del panel principal.
type DashboardStats struct {
	QuotationCount int
	TotalAmount    decimal.Decimal
}
