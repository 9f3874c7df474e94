// Package pricing contiene la verificación de precios anómalos frente al precio de
// referencia (precio de distribuidor) y el índice de descuento derivado del historial.
package pricing

import "github.com/shopspring/decimal"

// DefaultThreshold un precio por debajo del 60% del precio de referencia se marca.
var DefaultThreshold = decimal.RequireFromString("0.6")

// Result resultado de la verificación de un precio ingresado.
// HasRatio es falso cuando alguno de los precios es <= 0 (índice no definido).
type Result struct {
	Flagged  bool
	Ratio    decimal.Decimal
	HasRatio bool
}

// Percent devuelve el índice como porcentaje entero ("55%"), o "" si no está definido.
func (r Result) Percent() string {
	if !r.HasRatio {
		return ""
	}
	return r.Ratio.Mul(decimal.NewFromInt(100)).Round(0).String() + "%"
}

// Checker aplica el umbral configurado. El valor cero usa DefaultThreshold.
type Checker struct {
	Threshold decimal.Decimal
}

// NewChecker construye un verificador; threshold <= 0 usa DefaultThreshold.
func NewChecker(threshold decimal.Decimal) Checker {
	if !threshold.IsPositive() {
		threshold = DefaultThreshold
	}
	return Checker{Threshold: threshold}
}

// Check compara el precio ingresado con el de referencia. Función total, sin errores.
func (c Checker) Check(reference, entered decimal.Decimal) Result {
	if !reference.IsPositive() || !entered.IsPositive() {
		return Result{}
	}
	threshold := c.Threshold
	if !threshold.IsPositive() {
		threshold = DefaultThreshold
	}
	ratio := entered.Div(reference)
	return Result{
		Flagged:  ratio.LessThan(threshold),
		Ratio:    ratio,
		HasRatio: true,
	}
}

// Check usa el umbral por defecto.
func Check(reference, entered decimal.Decimal) Result {
	return Checker{Threshold: DefaultThreshold}.Check(reference, entered)
}

// DiscountRatio índice de descuento de una línea histórica: precio unitario / precio de
// distribuidor capturado. Devuelve nil si la captura es <= 0.
func DiscountRatio(unitPrice, dealerSnapshot decimal.Decimal) *decimal.Decimal {
	if !dealerSnapshot.IsPositive() {
		return nil
	}
	r := unitPrice.Div(dealerSnapshot)
	return &r
}
