package dto

import "github.com/shopspring/decimal"

// DashboardStatsResponse respuesta de GET /api/dashboard/stats.
// Degraded indica que el almacén no respondió y los valores son cero.
type DashboardStatsResponse struct {
	QuotationCount int             `json:"quotation_count"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Degraded       bool            `json:"degraded,omitempty"`
}
