package analytics

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Cotizaciones-api/internal/application/dto"
	"github.com/jhoicas/Cotizaciones-api/internal/application/storecall"
	"github.com/jhoicas/Cotizaciones-api/internal/domain/pricing"
	"github.com/jhoicas/Cotizaciones-api/internal/domain/repository"
	"github.com/jhoicas/Cotizaciones-api/pkg/logger"
)

const (
	DefaultHistoryPageSize = 10
	MaxHistoryPageSize     = 100
)

// HistoryUseCase busca líneas cotizadas por nombre de producto, página a página.
type HistoryUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	pageSize      int
	timeout       time.Duration
	log           *logger.Logger
}

// NewHistoryUseCase construye el caso de uso. pageSize <= 0 usa DefaultHistoryPageSize.
func NewHistoryUseCase(analyticsRepo repository.AnalyticsRepository, pageSize int, timeout time.Duration, log *logger.Logger) *HistoryUseCase {
	if pageSize <= 0 {
		pageSize = DefaultHistoryPageSize
	}
	if log == nil {
		log = logger.Nop()
	}
	return &HistoryUseCase{analyticsRepo: analyticsRepo, pageSize: pageSize, timeout: timeout, log: log}
}

// Search devuelve una página del historial. HasMore es verdadero cuando la página vino
// completa (len == limit): si el total es múltiplo exacto del límite, la última página
// pedida vendrá vacía. Sin conexión devuelve una página vacía marcada como degradada.
func (uc *HistoryUseCase) Search(ctx context.Context, q dto.HistoryQuery) *dto.HistoryPageResponse {
	q.Normalize(uc.pageSize, MaxHistoryPageSize)
	keyword := strings.TrimSpace(q.Keyword)

	resp := &dto.HistoryPageResponse{
		Items:      []dto.HistoryEntryResponse{},
		Offset:     q.Offset,
		Limit:      q.Limit,
		NextOffset: q.Offset,
	}

	ctx, cancel := storecall.WithTimeout(ctx, uc.timeout)
	defer cancel()

	rows, err := uc.analyticsRepo.SearchProductHistory(ctx, keyword, q.Offset, q.Limit)
	if err != nil {
		uc.log.Warn().Err(err).Str("keyword", keyword).Msg("historial: almacén no disponible")
		resp.Degraded = true
		return resp
	}

	for _, h := range rows {
		entry := dto.HistoryEntryResponse{
			ItemID:      h.ItemID,
			QuoteDate:   h.QuoteDate.Format("2006-01-02"),
			QuoteNumber: h.QuoteNumber,
			ClientName:  h.ClientName,
			ProductName: h.ProductName,
			Quantity:    h.Quantity,
			UnitPrice:   h.UnitPrice,
			DealerPrice: h.DealerPriceSnapshot,
		}
		if ratio := pricing.DiscountRatio(h.UnitPrice, h.DealerPriceSnapshot); ratio != nil {
			r := ratio.Round(4)
			entry.DiscountRatio = &r
			entry.DiscountPercent = pricing.Result{Ratio: *ratio, HasRatio: true}.Percent()
		}
		resp.Items = append(resp.Items, entry)
	}
	resp.HasMore = len(rows) == q.Limit
	resp.NextOffset = q.Offset + len(rows)
	return resp
}
