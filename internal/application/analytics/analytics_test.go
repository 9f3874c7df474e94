package analytics_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cotizaciones-api/internal/application/analytics"
	"github.com/jhoicas/Cotizaciones-api/internal/application/dto"
	"github.com/jhoicas/Cotizaciones-api/internal/domain"
	"github.com/jhoicas/Cotizaciones-api/internal/domain/entity"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type fakeAnalytics struct {
	stats   entity.DashboardStats
	history []*entity.HistoryEntry
	err     error

	gotKeyword          string
	gotOffset, gotLimit int
}

func (f *fakeAnalytics) DashboardStats(context.Context) (entity.DashboardStats, error) {
	return f.stats, f.err
}

func (f *fakeAnalytics) SearchProductHistory(_ context.Context, keyword string, offset, limit int) ([]*entity.HistoryEntry, error) {
	f.gotKeyword, f.gotOffset, f.gotLimit = keyword, offset, limit
	if f.err != nil {
		return nil, f.err
	}
	end := offset + limit
	if end > len(f.history) {
		end = len(f.history)
	}
	if offset >= len(f.history) {
		return nil, nil
	}
	return f.history[offset:end], nil
}

func entries(n int) []*entity.HistoryEntry {
	out := make([]*entity.HistoryEntry, 0, n)
	for i := n; i >= 1; i-- {
		out = append(out, &entity.HistoryEntry{
			ItemID:              int64(i),
			QuoteDate:           time.Date(2025, 1, i%28+1, 0, 0, 0, 0, time.UTC),
			QuoteNumber:         fmt.Sprintf("QUO-202501-%03d", i),
			ClientName:          "Acme",
			ProductName:         "Widget",
			Quantity:            1,
			UnitPrice:           d("5200"),
			DealerPriceSnapshot: d("10000"),
		})
	}
	return out
}

func TestDashboard_Idempotente(t *testing.T) {
	repo := &fakeAnalytics{stats: entity.DashboardStats{QuotationCount: 3, TotalAmount: d("1234.5")}}
	uc := analytics.NewDashboardUseCase(repo, time.Second, nil)

	first := uc.Stats(context.Background())
	second := uc.Stats(context.Background())

	assert.Equal(t, first, second)
	assert.Equal(t, 3, first.QuotationCount)
	assert.True(t, d("1234.5").Equal(first.TotalAmount))
	assert.False(t, first.Degraded)
}

func TestDashboard_SinConexionDevuelveCeros(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeAnalytics{err: domain.ErrConnectivity}, time.Second, nil)

	stats := uc.Stats(context.Background())

	assert.Zero(t, stats.QuotationCount)
	assert.True(t, stats.TotalAmount.IsZero())
	assert.True(t, stats.Degraded)
}

func TestHistory_PaginaCompletaIndicaMas(t *testing.T) {
	repo := &fakeAnalytics{history: entries(25)}
	uc := analytics.NewHistoryUseCase(repo, 10, time.Second, nil)

	page := uc.Search(context.Background(), dto.HistoryQuery{Keyword: "  widget "})
	require.Len(t, page.Items, 10)
	assert.True(t, page.HasMore)
	assert.Equal(t, 10, page.NextOffset)
	assert.Equal(t, "widget", repo.gotKeyword)
	assert.Equal(t, int64(25), page.Items[0].ItemID)

	last := uc.Search(context.Background(), dto.HistoryQuery{Keyword: "widget", PageRequest: dto.PageRequest{Offset: 20}})
	assert.Len(t, last.Items, 5)
	assert.False(t, last.HasMore)
	assert.Equal(t, 25, last.NextOffset)
}

func TestHistory_LimiteExactoDejaPaginaVacia(t *testing.T) {
	uc := analytics.NewHistoryUseCase(&fakeAnalytics{history: entries(10)}, 10, time.Second, nil)

	first := uc.Search(context.Background(), dto.HistoryQuery{})
	assert.True(t, first.HasMore)

	next := uc.Search(context.Background(), dto.HistoryQuery{PageRequest: dto.PageRequest{Offset: first.NextOffset}})
	assert.Empty(t, next.Items)
	assert.False(t, next.HasMore)
}

func TestHistory_IndiceDeDescuento(t *testing.T) {
	h := entries(2)
	h[1].DealerPriceSnapshot = decimal.Zero
	uc := analytics.NewHistoryUseCase(&fakeAnalytics{history: h}, 10, time.Second, nil)

	page := uc.Search(context.Background(), dto.HistoryQuery{})
	require.Len(t, page.Items, 2)
	require.NotNil(t, page.Items[0].DiscountRatio)
	assert.True(t, d("0.52").Equal(*page.Items[0].DiscountRatio))
	assert.Equal(t, "52%", page.Items[0].DiscountPercent)
	assert.Nil(t, page.Items[1].DiscountRatio)
	assert.Empty(t, page.Items[1].DiscountPercent)
}

func TestHistory_LimitesDePagina(t *testing.T) {
	repo := &fakeAnalytics{}
	uc := analytics.NewHistoryUseCase(repo, 0, time.Second, nil)

	uc.Search(context.Background(), dto.HistoryQuery{PageRequest: dto.PageRequest{Limit: 1000, Offset: -5}})
	assert.Equal(t, analytics.MaxHistoryPageSize, repo.gotLimit)
	assert.Equal(t, 0, repo.gotOffset)

	uc.Search(context.Background(), dto.HistoryQuery{})
	assert.Equal(t, analytics.DefaultHistoryPageSize, repo.gotLimit)
}

func TestHistory_SinConexionPaginaVacia(t *testing.T) {
	uc := analytics.NewHistoryUseCase(&fakeAnalytics{err: domain.ErrConnectivity}, 10, time.Second, nil)

	page := uc.Search(context.Background(), dto.HistoryQuery{Keyword: "x"})

	assert.Empty(t, page.Items)
	assert.False(t, page.HasMore)
	assert.True(t, page.Degraded)
}
