package calculator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cotizaciones-api/internal/domain/calculator"
)

func press(k calculator.Keypad, keys ...calculator.Key) calculator.Keypad {
	for _, key := range keys {
		k = k.Press(key)
	}
	return k
}

func TestKeypad_MultiplicacionAgregaHistorial(t *testing.T) {
	k := press(calculator.NewKeypad(), "5", "0", "0", calculator.KeyMul, "2", calculator.KeyEquals)

	assert.Equal(t, "1000", k.Current)
	assert.Empty(t, k.Expression)
	assert.True(t, k.FreshEntry)
	require.Len(t, k.History, 1)
	assert.Equal(t, "500 × 2 = 1000", k.History[0])
}

func TestKeypad_DivisionPorCeroMuestraError(t *testing.T) {
	k := press(calculator.NewKeypad(), "8", calculator.KeyDiv, "0", calculator.KeyEquals)

	assert.Equal(t, calculator.ErrorDisplay, k.Current)
	assert.True(t, k.FreshEntry)
	assert.Empty(t, k.History)

	// la sesión sigue usable: el siguiente dígito reemplaza el "Error"
	k = k.Press("7")
	assert.Equal(t, "7", k.Current)
}

func TestKeypad_HistorialMasRecientePrimero(t *testing.T) {
	k := press(calculator.NewKeypad(), "1", calculator.KeyAdd, "1", calculator.KeyEquals)
	k = press(k, calculator.KeyMul, "3", calculator.KeyEquals)

	require.Len(t, k.History, 2)
	assert.Equal(t, "2 × 3 = 6", k.History[0])
	assert.Equal(t, "1 + 1 = 2", k.History[1])

	k = k.Press(calculator.KeyClearHistory)
	assert.Empty(t, k.History)
	assert.Equal(t, "6", k.Current, "limpiar historial no toca la pantalla")
}

func TestKeypad_EntradaDeDigitos(t *testing.T) {
	k := calculator.NewKeypad()
	assert.Equal(t, "0", k.Current)

	k = press(k, "0", "0")
	assert.Equal(t, "0", k.Current, "ceros iniciales no se acumulan")

	k = press(k, "1", "2")
	assert.Equal(t, "12", k.Current)

	k = press(k, calculator.KeyDecimal, "5", calculator.KeyDecimal, "0")
	assert.Equal(t, "12.50", k.Current, "el segundo punto es ignorado")

	k = press(k, calculator.KeyAdd, calculator.KeyDecimal, "5")
	assert.Equal(t, "0.5", k.Current, "punto tras operador inicia 0.")
	assert.Equal(t, "12.50 +", k.Expression)
}

func TestKeypad_CambioDeSigno(t *testing.T) {
	k := calculator.NewKeypad().Press(calculator.KeySign)
	assert.Equal(t, "0", k.Current, "no se niega el cero")

	k = press(k, "4", calculator.KeySign)
	assert.Equal(t, "-4", k.Current)
	k = k.Press(calculator.KeySign)
	assert.Equal(t, "4", k.Current)

	k = press(k, calculator.KeySign, calculator.KeySub, "6", calculator.KeyEquals)
	assert.Equal(t, "-10", k.Current)
	assert.Equal(t, "-4 - 6 = -10", k.History[0])
}

func TestKeypad_Porcentaje(t *testing.T) {
	k := press(calculator.NewKeypad(), "5", calculator.KeyPercent)
	assert.Equal(t, "0.05", k.Current)

	k = press(calculator.NewKeypad(), "2", "0", "0", calculator.KeyMul, "1", "5", calculator.KeyPercent, calculator.KeyEquals)
	assert.Equal(t, "30", k.Current)
	assert.Equal(t, "200 × 0.15 = 30", k.History[0])
}

func TestKeypad_DivisionPeriodica(t *testing.T) {
	k := press(calculator.NewKeypad(), "1", calculator.KeyDiv, "3", calculator.KeyEquals)
	assert.Equal(t, "0.3333333333", k.Current)
	assert.Equal(t, "1 ÷ 3 = 0.3333333333", k.History[0])

	k, v, err := k.EnterExpression("1 ÷ 3 × 3")
	require.NoError(t, err)
	assert.Equal(t, "1", calculator.FormatNumber(v))
	assert.Equal(t, "1 ÷ 3 × 3 = 1", k.History[0])
}

func TestKeypad_IgualSinExpresionNoHaceNada(t *testing.T) {
	k := press(calculator.NewKeypad(), "9")
	assert.Equal(t, k, k.Press(calculator.KeyEquals))
}

func TestKeypad_BorrarYLimpiar(t *testing.T) {
	k := press(calculator.NewKeypad(), "1", "2", "3", calculator.KeyBackspace)
	assert.Equal(t, "12", k.Current)
	assert.False(t, k.FreshEntry)

	k = press(k, calculator.KeyBackspace, calculator.KeyBackspace)
	assert.Equal(t, "0", k.Current)
	assert.True(t, k.FreshEntry)

	k = press(k, "7", calculator.KeyAdd, "3", calculator.KeyClear)
	assert.Equal(t, "0", k.Current)
	assert.Empty(t, k.Expression)
	assert.True(t, k.FreshEntry)
}

func TestKeypad_PressNoModificaElEstadoAnterior(t *testing.T) {
	before := press(calculator.NewKeypad(), "2", calculator.KeyAdd, "2", calculator.KeyEquals)
	after := press(before, calculator.KeyAdd, "1", calculator.KeyEquals)

	assert.Len(t, before.History, 1)
	assert.Len(t, after.History, 2)
}

func TestKeypad_EntradaLibre(t *testing.T) {
	k, v, err := calculator.NewKeypad().EnterExpression(" 500*0.8 ")
	require.NoError(t, err)
	assert.Equal(t, "400", calculator.FormatNumber(v))
	assert.Equal(t, []string{"500*0.8 = 400"}, k.History)

	same, _, err := k.EnterExpression("rm -rf")
	assert.ErrorIs(t, err, calculator.ErrInvalidCharacter)
	assert.Equal(t, k, same)
}

func TestParseKey(t *testing.T) {
	for in, want := range map[string]calculator.Key{
		"7": "7", "*": calculator.KeyMul, "/": calculator.KeyDiv, "Enter": calculator.KeyEquals,
		"backspace": calculator.KeyBackspace, "±": calculator.KeySign, "clear_history": calculator.KeyClearHistory,
	} {
		got, err := calculator.ParseKey(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := calculator.ParseKey("^")
	assert.Error(t, err)
}
