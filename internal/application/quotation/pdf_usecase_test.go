package quotation_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cotizaciones-api/internal/application/dto"
	"github.com/jhoicas/Cotizaciones-api/internal/application/quotation"
	"github.com/jhoicas/Cotizaciones-api/internal/domain"
)

func TestPDF_RenderDesdeCotizacionGuardada(t *testing.T) {
	h := newHarness(false)
	saved, err := h.uc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	renderer := &fakeRenderer{}
	getter := quotation.NewGetQuotationUseCase(h.quotations, h.clients, time.Second)
	uc := quotation.NewPDFUseCase(getter, renderer)

	pdf, filename, err := uc.Render(context.Background(), saved.DocumentNumber, dto.RenderOptions{WithStamp: true})
	require.NoError(t, err)

	assert.Equal(t, "Quotation_QUO-202501-001.pdf", filename)
	assert.NotEmpty(t, pdf)
	assert.True(t, renderer.opts.WithStamp)
	assert.Equal(t, "Acme Ltd.", renderer.last.ClientName)
	require.Len(t, renderer.last.Items, 2)
	assert.Equal(t, "Widget", renderer.last.Items[0].Name)
	assert.Equal(t, 2, renderer.last.Items[0].Quantity)
}

func TestPDF_CotizacionInexistente(t *testing.T) {
	h := newHarness(false)
	uc := quotation.NewPDFUseCase(quotation.NewGetQuotationUseCase(h.quotations, h.clients, time.Second), &fakeRenderer{})

	_, _, err := uc.Render(context.Background(), "QUO-209901-001", dto.RenderOptions{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPDF_DocumentoInvalido(t *testing.T) {
	renderer := &fakeRenderer{}
	uc := quotation.NewPDFUseCase(nil, renderer)

	_, _, err := uc.RenderDocument(dto.QuoteDocument{DocumentNumber: "QUO-202501-001"}, dto.RenderOptions{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, renderer.calls)
}

func TestPDF_ErrorDelGenerador(t *testing.T) {
	renderer := &fakeRenderer{err: errBoom}
	uc := quotation.NewPDFUseCase(nil, renderer)
	doc := dto.QuoteDocument{
		DocumentNumber: "QUO-202501-001",
		Items:          []dto.QuoteDocumentRow{{Name: "A", UnitPrice: d("1"), Quantity: 1}},
	}

	_, _, err := uc.RenderDocument(doc, dto.RenderOptions{})
	assert.ErrorIs(t, err, errBoom)
}
