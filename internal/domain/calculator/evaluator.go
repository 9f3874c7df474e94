// Package calculator implementa la calculadora rápida de la pantalla de cotización:
// un evaluador aritmético mínimo (+ - × ÷ con precedencia y negación unaria) y el
// teclado con estado explícito que se transforma con Press.
//
// Nunca se invoca un intérprete de propósito general sobre la entrada del usuario.
package calculator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Errores de evaluación. Todos envuelven ErrEvaluation.
var (
	ErrEvaluation          = errors.New("expresión no evaluable")
	ErrInvalidCharacter    = fmt.Errorf("%w: carácter no permitido", ErrEvaluation)
	ErrMalformedExpression = fmt.Errorf("%w: expresión mal formada", ErrEvaluation)
	ErrDivisionByZero      = fmt.Errorf("%w: división por cero", ErrEvaluation)
)

// allowedChars conjunto aceptado por la entrada libre (incluye los operadores de pantalla).
const allowedChars = "0123456789.+-*/ ×÷"

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokOp
)

type token struct {
	kind tokenKind
	num  decimal.Decimal
	op   rune
	text string
}

// Evaluate evalúa una expresión aritmética simple: literales numéricos, + - * / (o × ÷),
// negación unaria y espacios. * y / tienen precedencia sobre + y -, de izquierda a derecha.
// No se admiten paréntesis.
func Evaluate(input string) (decimal.Decimal, error) {
	for _, r := range input {
		if !strings.ContainsRune(allowedChars, r) {
			return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidCharacter, r)
		}
	}
	toks, err := tokenize(input)
	if err != nil {
		return decimal.Zero, err
	}
	if len(toks) == 0 {
		return decimal.Zero, fmt.Errorf("%w: vacía", ErrMalformedExpression)
	}
	p := &parser{toks: toks}
	v, err := p.expr()
	if err != nil {
		return decimal.Zero, err
	}
	if p.pos != len(p.toks) {
		return decimal.Zero, fmt.Errorf("%w: sobra %q", ErrMalformedExpression, p.toks[p.pos].text)
	}
	return v, nil
}

// displayPlaces decimales visibles; la división interna conserva divisionPlaces.
const (
	displayPlaces  = 10
	divisionPlaces = 16
)

// FormatNumber formato general: redondea a displayPlaces y quita los ceros finales,
// de modo que 1 ÷ 3 × 3 se muestra como "1".
func FormatNumber(d decimal.Decimal) string {
	return d.Round(displayPlaces).String()
}

func tokenize(input string) ([]token, error) {
	var toks []token
	runes := []rune(input)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case r == ' ':
			i++
		case r == '.' || (r >= '0' && r <= '9'):
			start := i
			for i < len(runes) && (runes[i] == '.' || (runes[i] >= '0' && runes[i] <= '9')) {
				i++
			}
			lit := string(runes[start:i])
			num, err := parseLiteral(lit)
			if err != nil {
				return nil, err
			}
			toks = append(toks, token{kind: tokNumber, num: num, text: lit})
		default:
			op := r
			switch r {
			case '×':
				op = '*'
			case '÷':
				op = '/'
			}
			toks = append(toks, token{kind: tokOp, op: op, text: string(r)})
			i++
		}
	}
	return toks, nil
}

// parseLiteral acepta "5", "5.", ".5" y "5.25"; rechaza "." y "1.2.3".
func parseLiteral(lit string) (decimal.Decimal, error) {
	if strings.Count(lit, ".") > 1 || lit == "." {
		return decimal.Zero, fmt.Errorf("%w: número %q", ErrMalformedExpression, lit)
	}
	if strings.HasPrefix(lit, ".") {
		lit = "0" + lit
	}
	lit = strings.TrimSuffix(lit, ".")
	d, err := decimal.NewFromString(lit)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: número %q", ErrMalformedExpression, lit)
	}
	return d, nil
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peekOp(ops ...rune) (rune, bool) {
	if p.pos >= len(p.toks) || p.toks[p.pos].kind != tokOp {
		return 0, false
	}
	for _, op := range ops {
		if p.toks[p.pos].op == op {
			return op, true
		}
	}
	return 0, false
}

// expr := term (('+' | '-') term)*
func (p *parser) expr() (decimal.Decimal, error) {
	left, err := p.term()
	if err != nil {
		return decimal.Zero, err
	}
	for {
		op, ok := p.peekOp('+', '-')
		if !ok {
			return left, nil
		}
		p.pos++
		right, err := p.term()
		if err != nil {
			return decimal.Zero, err
		}
		if op == '+' {
			left = left.Add(right)
		} else {
			left = left.Sub(right)
		}
	}
}

// term := unary (('*' | '/') unary)*
func (p *parser) term() (decimal.Decimal, error) {
	left, err := p.unary()
	if err != nil {
		return decimal.Zero, err
	}
	for {
		op, ok := p.peekOp('*', '/')
		if !ok {
			return left, nil
		}
		p.pos++
		right, err := p.unary()
		if err != nil {
			return decimal.Zero, err
		}
		if op == '*' {
			left = left.Mul(right)
			continue
		}
		if right.IsZero() {
			return decimal.Zero, ErrDivisionByZero
		}
		left = left.DivRound(right, divisionPlaces)
	}
}

// unary := '-' unary | number
func (p *parser) unary() (decimal.Decimal, error) {
	if _, ok := p.peekOp('-'); ok {
		p.pos++
		v, err := p.unary()
		if err != nil {
			return decimal.Zero, err
		}
		return v.Neg(), nil
	}
	if p.pos >= len(p.toks) {
		return decimal.Zero, fmt.Errorf("%w: falta un operando", ErrMalformedExpression)
	}
	t := p.toks[p.pos]
	if t.kind != tokNumber {
		return decimal.Zero, fmt.Errorf("%w: operador inesperado %q", ErrMalformedExpression, t.text)
	}
	p.pos++
	return t.num, nil
}
