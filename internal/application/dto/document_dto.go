package dto

import "github.com/shopspring/decimal"

// QuoteDocument datos que necesita el generador de PDF.
// Subtotal, impuesto y total los calcula el generador.
type QuoteDocument struct {
	DocumentNumber string             `json:"document_number"`
	Date           string             `json:"date"`
	ClientName     string             `json:"client_name"`
	Items          []QuoteDocumentRow `json:"items"`
}

// QuoteDocumentRow línea del documento.
type QuoteDocumentRow struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// RenderOptions opciones del documento.
type RenderOptions struct {
	WithStamp bool `json:"with_stamp" query:"stamp"`
}

// RenderDocumentRequest body para POST /api/quotations/pdf.
type RenderDocumentRequest struct {
	Document QuoteDocument `json:"document"`
	Options  RenderOptions `json:"options"`
}
