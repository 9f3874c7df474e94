package dto

import "github.com/shopspring/decimal"

// HistoryQuery parámetros de GET /api/history.
type HistoryQuery struct {
	Keyword string `query:"q"`
	PageRequest
}

// HistoryEntryResponse línea histórica con el índice de descuento derivado.
// DiscountRatio es nulo cuando el precio de distribuidor capturado es cero.
type HistoryEntryResponse struct {
	ItemID          int64            `json:"item_id"`
	QuoteDate       string           `json:"quote_date"`
	QuoteNumber     string           `json:"quote_number"`
	ClientName      string           `json:"client_name"`
	ProductName     string           `json:"product_name"`
	Quantity        int              `json:"quantity"`
	UnitPrice       decimal.Decimal  `json:"unit_price"`
	DealerPrice     decimal.Decimal  `json:"dealer_price"`
	DiscountRatio   *decimal.Decimal `json:"discount_ratio"`
	DiscountPercent string           `json:"discount_percent,omitempty"`
}

// HistoryPageResponse página del historial. HasMore es verdadero cuando la página vino
// completa; NextOffset es el desplazamiento de la siguiente página.
type HistoryPageResponse struct {
	Items      []HistoryEntryResponse `json:"items"`
	Offset     int                    `json:"offset"`
	Limit      int                    `json:"limit"`
	HasMore    bool                   `json:"has_more"`
	NextOffset int                    `json:"next_offset"`
	Degraded   bool                   `json:"degraded,omitempty"`
}
