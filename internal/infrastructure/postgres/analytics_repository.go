package postgres

import (
	"context"

	"github.com/jhoicas/Cotizaciones-api/internal/domain/entity"
	"github.com/jhoicas/Cotizaciones-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el panel y el historial de precios.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// DashboardStats cuenta cotizaciones y suma unit_price * quantity de todos los ítems.
// Usa COALESCE para devolver cero si no hay ítems.
func (r *AnalyticsRepo) DashboardStats(ctx context.Context) (entity.DashboardStats, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM quotations)                                       AS quotation_count,
	    (SELECT COALESCE(SUM(unit_price * quantity), 0) FROM quotation_items)   AS total_amount`

	var stats entity.DashboardStats
	if err := r.q.QueryRow(ctx, query).Scan(&stats.QuotationCount, &stats.TotalAmount); err != nil {
		return entity.DashboardStats{}, wrapErr("analytics.DashboardStats", err)
	}
	return stats, nil
}

// SearchProductHistory une ítems con su cotización y cliente en una sola consulta.
// Coincidencia por subcadena sin distinguir mayúsculas; más reciente primero por ID de ítem.
func (r *AnalyticsRepo) SearchProductHistory(
	ctx context.Context,
	keyword string,
	offset, limit int,
) ([]*entity.HistoryEntry, error) {
	const query = `
	SELECT
	    i.id,
	    q.date,
	    q.quote_no,
	    COALESCE(c.name, '')  AS client_name,
	    i.product_name,
	    i.quantity,
	    i.unit_price,
	    i.dealer_price_snapshot
	FROM quotation_items i
	JOIN quotations   q ON q.id = i.quotation_id
	LEFT JOIN clients c ON c.id = q.client_id
	WHERE i.product_name ILIKE $1 ESCAPE '\'
	ORDER BY i.id DESC
	LIMIT $2 OFFSET $3`

	rows, err := r.q.Query(ctx, query, containsPattern(keyword), limit, offset)
	if err != nil {
		return nil, wrapErr("analytics.SearchProductHistory", err)
	}
	defer rows.Close()

	var list []*entity.HistoryEntry
	for rows.Next() {
		var h entity.HistoryEntry
		if err := rows.Scan(
			&h.ItemID, &h.QuoteDate, &h.QuoteNumber, &h.ClientName,
			&h.ProductName, &h.Quantity, &h.UnitPrice, &h.DealerPriceSnapshot,
		); err != nil {
			return nil, wrapErr("analytics.SearchProductHistory scan", err)
		}
		list = append(list, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("analytics.SearchProductHistory", err)
	}
	return list, nil
}
