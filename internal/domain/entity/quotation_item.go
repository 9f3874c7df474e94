package entity

import "github.com/shopspring/decimal"

// QuotationItem representa una línea de la cotización.
// ProductName se guarda como texto (no FK) para desacoplar el histórico del catálogo vivo.
// DealerPriceSnapshot se copia al momento de cotizar y nunca se recalcula desde products.
type QuotationItem struct {
	ID                  int64 // asignado por el almacén, creciente
	QuotationID         string
	Position            int
	ProductName         string
	Quantity            int
	UnitPrice           decimal.Decimal
	DealerPriceSnapshot decimal.Decimal
}

// Subtotal devuelve UnitPrice * Quantity.
func (i *QuotationItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
