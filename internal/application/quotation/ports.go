package quotation

import (
	"context"

	"github.com/jhoicas/Cotizaciones-api/internal/application/dto"
	"github.com/jhoicas/Cotizaciones-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con un repositorio de cotizaciones atado a ella.
// Lo usa el modo de escritura atómica.
type TxRunner interface {
	RunQuotation(ctx context.Context, fn func(quotations repository.QuotationRepository) error) error
}

// Renderer genera el PDF de una cotización. Calcula subtotal, impuesto y total.
type Renderer interface {
	Render(doc dto.QuoteDocument, opts dto.RenderOptions) ([]byte, error)
}
