package dto

import "github.com/shopspring/decimal"

// SubmitQuotationRequest body para POST /api/quotations.
// Date es opcional (AAAA-MM-DD); vacío usa la fecha del día.
type SubmitQuotationRequest struct {
	ClientID string                 `json:"client_id"`
	Date     string                 `json:"date,omitempty"`
	Items    []QuotationItemRequest `json:"items"`
}

// QuotationItemRequest línea de cotización. DealerPrice es el precio de distribuidor
// capturado al cargar la línea; se guarda tal cual como snapshot.
type QuotationItemRequest struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	DealerPrice decimal.Decimal `json:"dealer_price"`
}

// QuotationItemResponse línea guardada.
type QuotationItemResponse struct {
	ID          int64           `json:"id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	DealerPrice decimal.Decimal `json:"dealer_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// QuotationResponse cotización con sus líneas para GET /api/quotations/:number.
type QuotationResponse struct {
	DocumentNumber string                  `json:"document_number"`
	QuotationID    string                  `json:"quotation_id"`
	Date           string                  `json:"date"`
	ClientID       string                  `json:"client_id"`
	ClientName     string                  `json:"client_name"`
	Items          []QuotationItemResponse `json:"items"`
	Total          decimal.Decimal         `json:"total"`
}

// SubmitQuotationResponse resultado del alta: la cotización más las líneas con precio anómalo.
type SubmitQuotationResponse struct {
	QuotationResponse
	Anomalies []PriceAnomaly `json:"anomalies"`
}

// PriceAnomaly línea cuyo precio quedó por debajo del umbral respecto del precio de distribuidor.
type PriceAnomaly struct {
	Position    int             `json:"position"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	DealerPrice decimal.Decimal `json:"dealer_price"`
	Ratio       decimal.Decimal `json:"ratio"`
	Percent     string          `json:"percent"`
}

// PriceCheckRequest body para POST /api/pricing/check.
// Si ReferencePrice es cero y hay ProductName, la referencia sale del catálogo.
type PriceCheckRequest struct {
	ProductName    string          `json:"product_name,omitempty"`
	ReferencePrice decimal.Decimal `json:"reference_price"`
	EnteredPrice   decimal.Decimal `json:"entered_price"`
}

// PriceCheckResponse resultado de la verificación. Ratio es nulo si no está definido.
type PriceCheckResponse struct {
	ReferencePrice decimal.Decimal  `json:"reference_price"`
	Flagged        bool             `json:"flagged"`
	Ratio          *decimal.Decimal `json:"ratio"`
	Percent        string           `json:"percent,omitempty"`
	Warning        string           `json:"warning,omitempty"`
}
