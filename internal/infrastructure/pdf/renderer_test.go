package pdf_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cotizaciones-api/internal/application/dto"
	"github.com/jhoicas/Cotizaciones-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Cotizaciones-api/pkg/config"
)

func sampleDoc() dto.QuoteDocument {
	return dto.QuoteDocument{
		DocumentNumber: "QUO-202501-008",
		Date:           "2025-01-15",
		ClientName:     "ACME S.A.",
		Items: []dto.QuoteDocumentRow{
			{Name: "Breaker NF-32", UnitPrice: decimal.NewFromInt(1200), Quantity: 3},
			{Name: "Contactor S-T10", UnitPrice: decimal.RequireFromString("450.5"), Quantity: 2},
		},
	}
}

func TestComputeTotals(t *testing.T) {
	got := pdf.ComputeTotals(sampleDoc(), decimal.RequireFromString("0.05"))
	assert.True(t, got.Subtotal.Equal(decimal.NewFromInt(4501)), got.Subtotal.String())
	assert.True(t, got.Tax.Equal(decimal.RequireFromString("225.05")), got.Tax.String())
	assert.True(t, got.Total.Equal(decimal.RequireFromString("4726.05")), got.Total.String())
}

func TestFormatAmount_SeparadorDeMiles(t *testing.T) {
	assert.Equal(t, "0", pdf.FormatAmount(decimal.Zero))
	assert.Equal(t, "999", pdf.FormatAmount(decimal.NewFromInt(999)))
	assert.Equal(t, "1,235", pdf.FormatAmount(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "1,000,000", pdf.FormatAmount(decimal.NewFromInt(1000000)))
}

func TestRender_GeneraPDF(t *testing.T) {
	r, err := pdf.NewMarotoRenderer(
		config.CompanyConfig{Name: "Electro SA", TaxID: "900123", Representative: "Ana", SalesRep: "Luis"},
		config.PDFConfig{TaxRate: 0.05, ValidityDays: 15, DeliveryNote: "Entrega en obra", QRContent: "https://example.com"},
	)
	require.NoError(t, err)

	out, err := r.Render(sampleDoc(), dto.RenderOptions{WithStamp: true})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRender_SinItems(t *testing.T) {
	r, err := pdf.NewMarotoRenderer(config.CompanyConfig{Name: "Electro SA"}, config.PDFConfig{TaxRate: 0.05})
	require.NoError(t, err)

	out, err := r.Render(dto.QuoteDocument{DocumentNumber: "X", Date: "2025-01-01", ClientName: "C"}, dto.RenderOptions{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestNewMarotoRenderer_FuenteInexistente(t *testing.T) {
	_, err := pdf.NewMarotoRenderer(config.CompanyConfig{}, config.PDFConfig{FontPath: filepath.Join(t.TempDir(), "no.ttf")})
	assert.Error(t, err)
}
