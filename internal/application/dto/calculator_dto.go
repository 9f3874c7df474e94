package dto

import "github.com/jhoicas/Cotizaciones-api/internal/domain/calculator"

// EvaluateRequest body para POST /api/calculator/evaluate. State es opcional: si viene,
// el resultado se agrega a su historial.
type EvaluateRequest struct {
	Expression string             `json:"expression"`
	State      *calculator.Keypad `json:"state,omitempty"`
}

// EvaluateResponse resultado y estado actualizado.
type EvaluateResponse struct {
	Result string            `json:"result"`
	State  calculator.Keypad `json:"state"`
}

// KeypadPressRequest body para POST /api/calculator/press: (estado, tecla) -> nuevo estado.
// Un estado nulo equivale a la calculadora recién abierta.
type KeypadPressRequest struct {
	State *calculator.Keypad `json:"state,omitempty"`
	Key   string             `json:"key"`
}
