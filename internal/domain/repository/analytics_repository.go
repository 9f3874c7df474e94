package repository

import (
	"context"

	"github.com/jhoicas/Cotizaciones-api/internal/domain/entity"
)

// AnalyticsRepository define las consultas de lectura del panel y del historial de precios.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// DashboardStats cuenta las cotizaciones y suma unit_price * quantity de todos los ítems.
	// Recorre todos los ítems en cada llamada.
	DashboardStats(ctx context.Context) (entity.DashboardStats, error)

	// SearchProductHistory busca ítems cuyo nombre de producto contenga keyword
	// (sin distinguir mayúsculas), del más reciente al más antiguo por ID de ítem.
	SearchProductHistory(
		ctx context.Context,
		keyword string,
		offset, limit int,
	) ([]*entity.HistoryEntry, error)
}
