// Package analytics contiene los casos de uso de lectura: el panel principal y la
// búsqueda en el historial de precios cotizados.
package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cotizaciones-api/internal/application/dto"
	"github.com/jhoicas/Cotizaciones-api/internal/application/storecall"
	"github.com/jhoicas/Cotizaciones-api/internal/domain/repository"
	"github.com/jhoicas/Cotizaciones-api/pkg/logger"
)

// DashboardUseCase calcula la cantidad de cotizaciones y el monto total cotizado.
//
// Fuente de datos: AnalyticsRepository (consultas read-only). Si el almacén no responde
// devuelve ceros marcados como degradados en lugar de un error.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	timeout       time.Duration
	log           *logger.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, timeout time.Duration, log *logger.Logger) *DashboardUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &DashboardUseCase{analyticsRepo: analyticsRepo, timeout: timeout, log: log}
}

// Stats devuelve (cantidad, total). Sin efectos: llamadas repetidas sin escrituras
// intermedias devuelven lo mismo.
func (uc *DashboardUseCase) Stats(ctx context.Context) *dto.DashboardStatsResponse {
	ctx, cancel := storecall.WithTimeout(ctx, uc.timeout)
	defer cancel()

	stats, err := uc.analyticsRepo.DashboardStats(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("panel: almacén no disponible, se muestran ceros")
		return &dto.DashboardStatsResponse{TotalAmount: decimal.Zero, Degraded: true}
	}
	return &dto.DashboardStatsResponse{
		QuotationCount: stats.QuotationCount,
		TotalAmount:    stats.TotalAmount,
	}
}
