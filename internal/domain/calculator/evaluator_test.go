package calculator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cotizaciones-api/internal/domain/calculator"
)

func TestEvaluate_Precedencia(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"500*0.8", "400"},
		{"1 + 2 * 3", "7"},
		{"10 - 4 - 3", "3"},
		{"100 / 4 / 5", "5"},
		{"2 + 10 / 4", "4.5"},
		{"-5 + 3", "-2"},
		{"8 × -2", "-16"},
		{"9 ÷ 3", "3"},
		{"0.1 + 0.2", "0.3"},
		{"5. + .5", "5.5"},
		{"  42  ", "42"},
		{"1 ÷ 3 × 3", "1"},
		{"2 / 3", "0.6666666667"},
		{"10 / 4 * 4", "10"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := calculator.Evaluate(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, calculator.FormatNumber(got))
		})
	}
}

func TestEvaluate_Errores(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"import os", calculator.ErrInvalidCharacter},
		{"(1+2)", calculator.ErrInvalidCharacter},
		{"2^3", calculator.ErrInvalidCharacter},
		{"", calculator.ErrMalformedExpression},
		{"5 +", calculator.ErrMalformedExpression},
		{"* 5", calculator.ErrMalformedExpression},
		{"1.2.3", calculator.ErrMalformedExpression},
		{"4 5", calculator.ErrMalformedExpression},
		{"8 / 0", calculator.ErrDivisionByZero},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			_, err := calculator.Evaluate(tc.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, calculator.ErrEvaluation, "todo fallo debe clasificarse como error de evaluación")
		})
	}
}
