package quotation_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cotizaciones-api/internal/application/dto"
	"github.com/jhoicas/Cotizaciones-api/internal/application/quotation"
	"github.com/jhoicas/Cotizaciones-api/internal/domain"
	"github.com/jhoicas/Cotizaciones-api/internal/domain/entity"
	"github.com/jhoicas/Cotizaciones-api/internal/domain/numbering"
	"github.com/jhoicas/Cotizaciones-api/internal/domain/pricing"
)

const clientID = "c-1"

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func fixedNow() time.Time { return time.Date(2025, time.January, 20, 9, 30, 0, 0, time.UTC) }

type harness struct {
	clients    *fakeClients
	quotations *fakeQuotations
	tx         *fakeTx
	uc         *quotation.SubmitQuotationUseCase
}

func newHarness(atomic bool) *harness {
	h := &harness{
		clients:    newFakeClients(&entity.Client{ID: clientID, Name: "Acme Ltd."}),
		quotations: &fakeQuotations{},
	}
	h.tx = &fakeTx{base: h.quotations}
	gen := numbering.NewGenerator("QUO", h.quotations)
	h.uc = quotation.NewSubmitQuotationUseCase(
		h.clients, h.quotations, gen, h.tx, pricing.NewChecker(pricing.DefaultThreshold),
		quotation.SubmitConfig{AtomicWrites: atomic, StoreTimeout: time.Second}, nil,
	).WithClock(fixedNow)
	return h
}

func validRequest() dto.SubmitQuotationRequest {
	return dto.SubmitQuotationRequest{
		ClientID: clientID,
		Items: []dto.QuotationItemRequest{
			{ProductName: "Widget", Quantity: 2, UnitPrice: d("5000"), DealerPrice: d("10000")},
			{ProductName: "Gadget", Quantity: 1, UnitPrice: d("7000"), DealerPrice: d("10000")},
		},
	}
}

func TestSubmit_GuardaYNumera(t *testing.T) {
	h := newHarness(false)
	h.quotations.latest, h.quotations.found = "QUO-202501-007", true

	resp, err := h.uc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "QUO-202501-008", resp.DocumentNumber)
	assert.Equal(t, "2025-01-20", resp.Date)
	assert.Equal(t, "Acme Ltd.", resp.ClientName)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, int64(1), resp.Items[0].ID)
	assert.True(t, d("17000").Equal(resp.Total))

	require.Len(t, h.quotations.headers, 1)
	require.Len(t, h.quotations.items, 2)
	assert.Equal(t, h.quotations.headers[0].ID, h.quotations.items[1].QuotationID)
	assert.Equal(t, 1, h.quotations.items[1].Position)
	assert.True(t, d("10000").Equal(h.quotations.items[0].DealerPriceSnapshot))
	assert.Equal(t, 0, h.tx.runs)

	require.Len(t, resp.Anomalies, 1)
	assert.Equal(t, "Widget", resp.Anomalies[0].ProductName)
	assert.Equal(t, "50%", resp.Anomalies[0].Percent)
}

func TestSubmit_FechaExplicita(t *testing.T) {
	h := newHarness(false)
	req := validRequest()
	req.Date = "2024-12-31"

	resp, err := h.uc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "2024-12-31", resp.Date)
	// el número sigue el mes en curso
	assert.Equal(t, "QUO-202501-001", resp.DocumentNumber)
}

func TestSubmit_ValidacionSinEscrituras(t *testing.T) {
	cases := map[string]func(*dto.SubmitQuotationRequest){
		"sin cliente":     func(r *dto.SubmitQuotationRequest) { r.ClientID = " " },
		"sin ítems":       func(r *dto.SubmitQuotationRequest) { r.Items = nil },
		"cantidad cero":   func(r *dto.SubmitQuotationRequest) { r.Items[1].Quantity = 0 },
		"sin producto":    func(r *dto.SubmitQuotationRequest) { r.Items[0].ProductName = "" },
		"precio negativo": func(r *dto.SubmitQuotationRequest) { r.Items[0].UnitPrice = d("-1") },
		"fecha inválida":  func(r *dto.SubmitQuotationRequest) { r.Date = "20/01/2025" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			h := newHarness(false)
			req := validRequest()
			mutate(&req)

			_, err := h.uc.Submit(context.Background(), req)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Zero(t, h.quotations.writes())
			assert.Zero(t, h.quotations.lookupCalls)
			assert.Zero(t, h.clients.calls)
		})
	}
}

func TestSubmit_ClienteInexistente(t *testing.T) {
	h := newHarness(false)
	req := validRequest()
	req.ClientID = "otro"

	_, err := h.uc.Submit(context.Background(), req)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, h.quotations.writes())
}

func TestSubmit_SinConexionAlNumerar(t *testing.T) {
	h := newHarness(false)
	h.quotations.lookupErr = fmt.Errorf("%w: timeout", domain.ErrConnectivity)

	_, err := h.uc.Submit(context.Background(), validRequest())

	assert.ErrorIs(t, err, domain.ErrConnectivity)
	assert.Zero(t, h.quotations.writes())
}

func TestSubmit_NumeroDuplicadoEnCabecera(t *testing.T) {
	h := newHarness(false)
	h.quotations.headerErr = fmt.Errorf("insert quotation: %w", domain.ErrDuplicate)

	_, err := h.uc.Submit(context.Background(), validRequest())

	assert.ErrorIs(t, err, domain.ErrHeaderWriteFailed)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Contains(t, err.Error(), "QUO-202501-001")
	assert.Zero(t, h.quotations.itemsCalls)
}

func TestSubmit_FalloEnItemsDejaCabecera(t *testing.T) {
	h := newHarness(false)
	h.quotations.itemsErr = errBoom

	_, err := h.uc.Submit(context.Background(), validRequest())

	assert.ErrorIs(t, err, domain.ErrItemsWriteFailed)
	assert.ErrorIs(t, err, errBoom)
	assert.NotErrorIs(t, err, domain.ErrHeaderWriteFailed)
	assert.Len(t, h.quotations.headers, 1)
	assert.Empty(t, h.quotations.items)
}

func TestSubmit_ModoAtomico(t *testing.T) {
	h := newHarness(true)

	resp, err := h.uc.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, h.tx.runs)
	assert.Len(t, h.quotations.headers, 1)
	assert.Len(t, h.quotations.items, 2)
	assert.Equal(t, "QUO-202501-001", resp.DocumentNumber)
}

func TestSubmit_ModoAtomicoDeshaceCabecera(t *testing.T) {
	h := newHarness(true)
	h.quotations.itemsErr = errBoom

	_, err := h.uc.Submit(context.Background(), validRequest())

	assert.ErrorIs(t, err, domain.ErrItemsWriteFailed)
	assert.Equal(t, 1, h.tx.rolledBack)
	assert.Empty(t, h.quotations.headers)
}
