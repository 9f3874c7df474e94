package calculator

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Key tecla del teclado de la calculadora.
type Key string

// Teclas reconocidas por Press. Los dígitos son Key("0") … Key("9").
const (
	KeyDecimal      Key = "."
	KeySign         Key = "±"
	KeyAdd          Key = "+"
	KeySub          Key = "-"
	KeyMul          Key = "×"
	KeyDiv          Key = "÷"
	KeyPercent      Key = "%"
	KeyEquals       Key = "="
	KeyClear        Key = "C"
	KeyBackspace    Key = "⌫"
	KeyClearHistory Key = "clear_history"
)

// ErrorDisplay valor que muestra la pantalla cuando la evaluación falla.
const ErrorDisplay = "Error"

// keyAliases nombres alternativos aceptados desde teclado físico o JSON.
var keyAliases = map[string]Key{
	"*":         KeyMul,
	"x":         KeyMul,
	"/":         KeyDiv,
	"+/-":       KeySign,
	"neg":       KeySign,
	"enter":     KeyEquals,
	"c":         KeyClear,
	"clear":     KeyClear,
	"esc":       KeyClear,
	"backspace": KeyBackspace,
}

// ParseKey normaliza una tecla recibida como texto.
func ParseKey(s string) (Key, error) {
	if k, ok := keyAliases[strings.ToLower(s)]; ok {
		return k, nil
	}
	k := Key(s)
	if k.isDigit() {
		return k, nil
	}
	switch k {
	case KeyDecimal, KeySign, KeyAdd, KeySub, KeyMul, KeyDiv, KeyPercent,
		KeyEquals, KeyClear, KeyBackspace, KeyClearHistory:
		return k, nil
	}
	return "", fmt.Errorf("%w: tecla desconocida %q", ErrInvalidCharacter, s)
}

func (k Key) isDigit() bool {
	return len(k) == 1 && k[0] >= '0' && k[0] <= '9'
}

func (k Key) isOperator() bool {
	return k == KeyAdd || k == KeySub || k == KeyMul || k == KeyDiv
}

// Keypad estado de la calculadora de una sesión.
//
//   - Current: operando que se está escribiendo (lo que muestra la pantalla).
//   - Expression: "operando operador" pendiente, vacío si no hay operación en curso.
//   - FreshEntry: el próximo dígito inicia un operando nuevo.
//   - History: "expresión = resultado", el más reciente primero.
type Keypad struct {
	Current    string   `json:"current"`
	Expression string   `json:"expression"`
	FreshEntry bool     `json:"fresh_entry"`
	History    []string `json:"history"`
}

// NewKeypad estado inicial: pantalla en "0", sin expresión pendiente.
func NewKeypad() Keypad {
	return Keypad{Current: "0", FreshEntry: true}
}

// Press aplica una tecla y devuelve el nuevo estado. No modifica el receptor.
func (k Keypad) Press(key Key) Keypad {
	next := k
	switch {
	case key.isDigit():
		if k.FreshEntry || k.Current == "0" {
			next.Current = string(key)
		} else {
			next.Current = k.Current + string(key)
		}
		next.FreshEntry = false

	case key == KeyDecimal:
		if k.FreshEntry {
			next.Current = "0."
			next.FreshEntry = false
		} else if !strings.Contains(k.Current, ".") {
			next.Current = k.Current + "."
		}

	case key == KeySign:
		if k.Current == "0" || k.Current == ErrorDisplay {
			break
		}
		if strings.HasPrefix(k.Current, "-") {
			next.Current = k.Current[1:]
		} else {
			next.Current = "-" + k.Current
		}

	case key.isOperator():
		if k.Current == ErrorDisplay {
			break
		}
		next.Expression = k.Current + " " + string(key)
		next.FreshEntry = true

	case key == KeyPercent:
		v, err := decimal.NewFromString(k.Current)
		if err != nil {
			break
		}
		next.Current = FormatNumber(v.Div(decimal.NewFromInt(100)))

	case key == KeyEquals:
		if k.Expression == "" {
			break
		}
		full := k.Expression + " " + k.Current
		v, err := Evaluate(full)
		if err != nil {
			next.Current = ErrorDisplay
			next.FreshEntry = true
			break
		}
		res := FormatNumber(v)
		next.History = prepend(k.History, full+" = "+res)
		next.Current = res
		next.Expression = ""
		next.FreshEntry = true

	case key == KeyClear:
		next.Current = "0"
		next.Expression = ""
		next.FreshEntry = true

	case key == KeyBackspace:
		runes := []rune(k.Current)
		if len(runes) > 1 && k.Current != ErrorDisplay {
			next.Current = string(runes[:len(runes)-1])
			if next.Current == "-" {
				next.Current = "0"
				next.FreshEntry = true
			}
		} else {
			next.Current = "0"
			next.FreshEntry = true
		}

	case key == KeyClearHistory:
		next.History = nil
	}
	return next
}

// EnterExpression evalúa la entrada libre del teclado físico ("500*0.8").
// Si es válida agrega "entrada = resultado" al historial; si no, devuelve el error
// sin modificar el estado.
func (k Keypad) EnterExpression(input string) (Keypad, decimal.Decimal, error) {
	input = strings.TrimSpace(input)
	v, err := Evaluate(input)
	if err != nil {
		return k, decimal.Zero, err
	}
	next := k
	next.History = prepend(k.History, input+" = "+FormatNumber(v))
	return next, v, nil
}

// prepend copia el historial para no compartir el arreglo con el estado anterior.
func prepend(history []string, entry string) []string {
	out := make([]string, 0, len(history)+1)
	out = append(out, entry)
	return append(out, history...)
}
