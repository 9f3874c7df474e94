package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// DealerPrice es el precio de referencia (經銷價) usado como denominador del índice de descuento.
// No se versiona: el historial de precios se reconstruye desde los ítems de cotización.
type Product struct {
	ID          string
	Name        string
	Spec        string
	DealerPrice decimal.Decimal
	CreatedAt   time.Time
}
