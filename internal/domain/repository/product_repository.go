package repository

import (
	"context"

	"github.com/jhoicas/Cotizaciones-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	// CreateBatch inserta todos los productos en un solo envío (importación masiva).
	CreateBatch(ctx context.Context, products []*entity.Product) error
	List(ctx context.Context) ([]*entity.Product, error)
	// GetByName devuelve el producto más reciente con ese nombre exacto.
	GetByName(ctx context.Context, name string) (*entity.Product, error)
}
