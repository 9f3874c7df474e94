// Package numbering genera los números de documento de las cotizaciones con el formato
// {PREFIJO}-{AAAAMM}-{secuencia}, reiniciando la secuencia cada mes.
package numbering

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultPrefix prefijo de documento por defecto.
const DefaultPrefix = "QUO"

// Lookup devuelve el número más alto ya almacenado que comienza con prefix.
// found es falso si no hay ninguno; err indica que el almacén no respondió.
type Lookup interface {
	LatestNumberWithPrefix(ctx context.Context, prefix string) (number string, found bool, err error)
}

// LookupFunc adapta una función a Lookup.
type LookupFunc func(ctx context.Context, prefix string) (string, bool, error)

func (f LookupFunc) LatestNumberWithPrefix(ctx context.Context, prefix string) (string, bool, error) {
	return f(ctx, prefix)
}

// Number número generado. Offline indica que no se pudo consultar el almacén y el valor
// es el marcador {PREFIJO}-{AAAAMM}-000, que no debe persistirse.
type Number struct {
	Value   string
	Offline bool
}

// Generator calcula el siguiente número del período en curso.
type Generator struct {
	Prefix string
	Lookup Lookup
}

// NewGenerator crea un generador; prefix vacío usa DefaultPrefix.
func NewGenerator(prefix string, lookup Lookup) *Generator {
	if strings.TrimSpace(prefix) == "" {
		prefix = DefaultPrefix
	}
	return &Generator{Prefix: prefix, Lookup: lookup}
}

// Next devuelve el siguiente número para el mes de now. No reserva el número: dos
// llamadas concurrentes pueden obtener el mismo valor y la unicidad la garantiza el almacén.
func (g *Generator) Next(ctx context.Context, now time.Time) Number {
	base := g.prefix()
	monthPrefix := Prefix(base, now)
	if g.Lookup == nil {
		return Number{Value: Format(base, now, 0), Offline: true}
	}
	last, found, err := g.Lookup.LatestNumberWithPrefix(ctx, monthPrefix)
	if err != nil {
		return Number{Value: Format(base, now, 0), Offline: true}
	}
	if !found {
		return Number{Value: Format(base, now, 1)}
	}
	seq, err := ParseSequence(last)
	if err != nil {
		return Number{Value: Format(base, now, 0), Offline: true}
	}
	return Number{Value: Format(base, now, seq+1)}
}

func (g *Generator) prefix() string {
	if g.Prefix == "" {
		return DefaultPrefix
	}
	return g.Prefix
}

// Period devuelve AAAAMM para now.
func Period(now time.Time) string {
	return now.Format("200601")
}

// Prefix devuelve "{base}-{AAAAMM}-", el prefijo compartido por los números del mes.
func Prefix(base string, now time.Time) string {
	return base + "-" + Period(now) + "-"
}

// Format arma el número con la secuencia en al menos tres dígitos.
func Format(base string, now time.Time, seq int) string {
	return fmt.Sprintf("%s%03d", Prefix(base, now), seq)
}

// ParseSequence extrae la secuencia que sigue al último guion.
func ParseSequence(number string) (int, error) {
	i := strings.LastIndex(number, "-")
	if i < 0 || i == len(number)-1 {
		return 0, fmt.Errorf("número de documento sin secuencia: %q", number)
	}
	seq, err := strconv.Atoi(number[i+1:])
	if err != nil || seq < 0 {
		return 0, fmt.Errorf("secuencia inválida en %q", number)
	}
	return seq, nil
}
