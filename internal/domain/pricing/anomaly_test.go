package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cotizaciones-api/internal/domain/pricing"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCheck_Ejemplos(t *testing.T) {
	cases := []struct {
		name     string
		ref, ent string
		flagged  bool
		hasRatio bool
		ratio    string
		percent  string
	}{
		{"mitad del precio", "10000", "5000", true, true, "0.5", "50%"},
		{"70 por ciento", "10000", "7000", false, true, "0.7", "70%"},
		{"justo en el umbral", "10000", "6000", false, true, "0.6", "60%"},
		{"55 por ciento", "200", "110", true, true, "0.55", "55%"},
		{"referencia cero", "0", "100", false, false, "0", ""},
		{"precio cero", "100", "0", false, false, "0", ""},
		{"referencia negativa", "-5", "100", false, false, "0", ""},
		{"sobreprecio", "100", "150", false, true, "1.5", "150%"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := pricing.Check(d(tc.ref), d(tc.ent))
			assert.Equal(t, tc.flagged, r.Flagged)
			assert.Equal(t, tc.hasRatio, r.HasRatio)
			if tc.hasRatio {
				assert.True(t, d(tc.ratio).Equal(r.Ratio), "ratio %s", r.Ratio)
			}
			assert.Equal(t, tc.percent, r.Percent())
		})
	}
}

// flagged == (r > 0 && p > 0 && p/r < 0.6) sobre una grilla de precios.
func TestCheck_Propiedad(t *testing.T) {
	for r := int64(0); r <= 2000; r += 125 {
		for p := int64(0); p <= 2000; p += 75 {
			ref, ent := decimal.NewFromInt(r), decimal.NewFromInt(p)
			want := r > 0 && p > 0 && float64(p)/float64(r) < 0.6
			assert.Equal(t, want, pricing.Check(ref, ent).Flagged, "r=%d p=%d", r, p)
		}
	}
}

func TestChecker_UmbralConfigurado(t *testing.T) {
	c := pricing.NewChecker(d("0.8"))
	assert.True(t, c.Check(d("100"), d("75")).Flagged)
	assert.False(t, pricing.Check(d("100"), d("75")).Flagged)

	def := pricing.NewChecker(decimal.Zero)
	assert.True(t, def.Threshold.Equal(pricing.DefaultThreshold))
}

func TestDiscountRatio(t *testing.T) {
	r := pricing.DiscountRatio(d("5200"), d("10000"))
	require.NotNil(t, r)
	assert.True(t, d("0.52").Equal(*r))

	assert.Nil(t, pricing.DiscountRatio(d("5200"), decimal.Zero))
}
