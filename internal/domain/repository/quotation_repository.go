package repository

import (
	"context"

	"github.com/jhoicas/Cotizaciones-api/internal/domain/entity"
)

// QuotationRepository define el puerto de persistencia para Quotation e ítems.
// Cabecera e ítems se escriben en dos llamadas separadas; la atomicidad depende del caller.
type QuotationRepository interface {
	// CreateHeader inserta la cabecera. Un número repetido devuelve domain.ErrDuplicate.
	CreateHeader(ctx context.Context, quotation *entity.Quotation) error
	// CreateItems inserta los ítems y asigna su ID de fila.
	CreateItems(ctx context.Context, items []*entity.QuotationItem) error
	// LatestNumberWithPrefix devuelve el número más alto con el prefijo dado
	// (ordenado por longitud y luego lexicográficamente).
	LatestNumberWithPrefix(ctx context.Context, prefix string) (string, bool, error)
	GetByNumber(ctx context.Context, number string) (*entity.Quotation, error)
	ListItems(ctx context.Context, quotationID string) ([]*entity.QuotationItem, error)
}
