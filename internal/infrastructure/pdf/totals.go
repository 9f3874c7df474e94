package pdf

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/Cotizaciones-api/internal/application/dto"
)

// Totals importes del documento.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals suma precio×cantidad de cada línea y aplica la tasa de impuesto.
func ComputeTotals(doc dto.QuoteDocument, taxRate decimal.Decimal) Totals {
	sub := decimal.Zero
	for _, it := range doc.Items {
		sub = sub.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	tax := sub.Mul(taxRate)
	return Totals{Subtotal: sub, Tax: tax, Total: sub.Add(tax)}
}

var printer = message.NewPrinter(language.English)

// FormatAmount redondea a entero y separa miles con coma: 1234.5 → "1,235".
func FormatAmount(d decimal.Decimal) string {
	return printer.Sprintf("%d", d.Round(0).IntPart())
}
