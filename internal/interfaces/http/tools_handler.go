package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cotizaciones-api/internal/application/catalog"
	"github.com/jhoicas/Cotizaciones-api/internal/application/dto"
	"github.com/jhoicas/Cotizaciones-api/internal/domain/calculator"
	"github.com/jhoicas/Cotizaciones-api/internal/domain/pricing"
)

// ToolsHandler verificación de precio y calculadora. Solo la verificación por
// nombre de producto consulta el catálogo.
type ToolsHandler struct {
	checker  pricing.Checker
	products *catalog.ProductUseCase
}

// NewToolsHandler construye el handler.
func NewToolsHandler(checker pricing.Checker, products *catalog.ProductUseCase) *ToolsHandler {
	return &ToolsHandler{checker: checker, products: products}
}

// CheckPrice godoc
// @Summary      Verificar si un precio está por debajo del umbral respecto al de referencia
// @Tags         pricing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PriceCheckRequest  true  "precio de referencia (o producto) e ingresado"
// @Success      200   {object}  dto.PriceCheckResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pricing/check [post]
func (h *ToolsHandler) CheckPrice(c *fiber.Ctx) error {
	var in dto.PriceCheckRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	reference := in.ReferencePrice
	if reference.IsZero() && in.ProductName != "" && h.products != nil {
		price, err := h.products.ReferencePrice(c.UserContext(), in.ProductName)
		if err != nil {
			return respondError(c, err)
		}
		reference = price
	}
	res := h.checker.Check(reference, in.EnteredPrice)
	out := dto.PriceCheckResponse{ReferencePrice: reference, Flagged: res.Flagged, Percent: res.Percent()}
	if res.HasRatio {
		ratio := res.Ratio.Round(4)
		out.Ratio = &ratio
	}
	if res.Flagged {
		out.Warning = fmt.Sprintf("el precio ingresado es %s del precio de referencia", res.Percent())
	}
	return c.JSON(out)
}

// Evaluate godoc
// @Summary      Evaluar una expresión aritmética
// @Tags         calculator
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EvaluateRequest  true  "expresión y estado opcional"
// @Success      200   {object}  dto.EvaluateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/calculator/evaluate [post]
func (h *ToolsHandler) Evaluate(c *fiber.Ctx) error {
	var in dto.EvaluateRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	state := calculator.NewKeypad()
	if in.State != nil {
		state = *in.State
	}
	next, v, err := state.EnterExpression(in.Expression)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.EvaluateResponse{Result: calculator.FormatNumber(v), State: next})
}

// Press godoc
// @Summary      Presionar una tecla de la calculadora
// @Tags         calculator
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.KeypadPressRequest  true  "estado y tecla"
// @Success      200   {object}  calculator.Keypad
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/calculator/press [post]
func (h *ToolsHandler) Press(c *fiber.Ctx) error {
	var in dto.KeypadPressRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	key, err := calculator.ParseKey(in.Key)
	if err != nil {
		return respondError(c, err)
	}
	state := calculator.NewKeypad()
	if in.State != nil {
		state = *in.State
	}
	return c.JSON(state.Press(key))
}
