package sqlite

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cotizaciones-api/internal/domain/entity"
	"github.com/jhoicas/Cotizaciones-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de lectura sobre SQLite.
type AnalyticsRepo struct {
	q DBTX
}

// NewAnalyticsRepository construye el adaptador.
func NewAnalyticsRepository(q DBTX) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// DashboardStats suma en Go con decimal: los precios se guardan como TEXT y SUM de SQLite
// los convertiría a coma flotante.
func (r *AnalyticsRepo) DashboardStats(ctx context.Context) (entity.DashboardStats, error) {
	var stats entity.DashboardStats
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM quotations`).Scan(&stats.QuotationCount); err != nil {
		return entity.DashboardStats{}, wrapErr("analytics.DashboardStats", err)
	}

	rows, err := r.q.QueryContext(ctx, `SELECT unit_price, quantity FROM quotation_items`)
	if err != nil {
		return entity.DashboardStats{}, wrapErr("analytics.DashboardStats", err)
	}
	defer rows.Close()
	total := decimal.Zero
	for rows.Next() {
		var price decimal.Decimal
		var qty int64
		if err := rows.Scan(&price, &qty); err != nil {
			return entity.DashboardStats{}, wrapErr("analytics.DashboardStats scan", err)
		}
		total = total.Add(price.Mul(decimal.NewFromInt(qty)))
	}
	if err := rows.Err(); err != nil {
		return entity.DashboardStats{}, wrapErr("analytics.DashboardStats", err)
	}
	stats.TotalAmount = total
	return stats, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchProductHistory coincidencia por subcadena sin distinguir mayúsculas (casefold Unicode),
// más reciente primero por ID de ítem.
func (r *AnalyticsRepo) SearchProductHistory(
	ctx context.Context,
	keyword string,
	offset, limit int,
) ([]*entity.HistoryEntry, error) {
	const query = `
	SELECT i.id, q.date, q.quote_no, COALESCE(c.name, ''), i.product_name,
	       i.quantity, i.unit_price, i.dealer_price_snapshot
	FROM quotation_items i
	JOIN quotations   q ON q.id = i.quotation_id
	LEFT JOIN clients c ON c.id = q.client_id
	WHERE casefold(i.product_name) LIKE casefold(?) ESCAPE '\'
	ORDER BY i.id DESC
	LIMIT ? OFFSET ?`

	rows, err := r.q.QueryContext(ctx, query, "%"+likeEscaper.Replace(keyword)+"%", limit, offset)
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
