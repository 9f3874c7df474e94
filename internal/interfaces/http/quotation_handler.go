package http

import (
	"mime"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cotizaciones-api/internal/application/dto"
	"github.com/jhoicas/Cotizaciones-api/internal/application/quotation"
)

// QuotationHandler alta, consulta y PDF de cotizaciones (protegido).
type QuotationHandler struct {
	submit *quotation.SubmitQuotationUseCase
	get    *quotation.GetQuotationUseCase
	pdf    *quotation.PDFUseCase
}

// NewQuotationHandler construye el handler.
func NewQuotationHandler(submit *quotation.SubmitQuotationUseCase, get *quotation.GetQuotationUseCase, pdf *quotation.PDFUseCase) *QuotationHandler {
	return &QuotationHandler{submit: submit, get: get, pdf: pdf}
}

// Submit godoc
// @Summary      Registrar cotización
// @Description  Asigna el siguiente número del mes, guarda cabecera e ítems y devuelve las alertas de precio.
// @Tags         quotations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitQuotationRequest  true  "cliente, fecha e ítems"
// @Success      201   {object}  dto.SubmitQuotationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/quotations [post]
func (h *QuotationHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitQuotationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.submit.Submit(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByNumber godoc
// @Summary      Obtener cotización por número
// @Tags         quotations
// @Security     Bearer
// @Produce      json
// @Param        number  path  string  true  "número de cotización"
// @Success      200  {object}  dto.QuotationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotations/{number} [get]
func (h *QuotationHandler) GetByNumber(c *fiber.Ctx) error {
	out, err := h.get.Get(c.UserContext(), c.Params("number"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Descargar PDF de una cotización guardada
// @Tags         quotations
// @Security     Bearer
// @Produce      application/pdf
// @Param        number  path   string  true   "número de cotización"
// @Param        stamp   query  bool    false  "incluir sello"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotations/{number}/pdf [get]
func (h *QuotationHandler) PDF(c *fiber.Ctx) error {
	var opts dto.RenderOptions
	if err := c.QueryParser(&opts); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	pdfBytes, filename, err := h.pdf.Render(c.UserContext(), c.Params("number"), opts)
	if err != nil {
		return respondError(c, err)
	}
	return sendPDF(c, pdfBytes, filename)
}

// RenderDocument godoc
// @Summary      Generar PDF a partir de datos del caller
// @Tags         quotations
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.RenderDocumentRequest  true  "documento y opciones"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/quotations/pdf [post]
func (h *QuotationHandler) RenderDocument(c *fiber.Ctx) error {
	var in dto.RenderDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	pdfBytes, filename, err := h.pdf.RenderDocument(in.Document, in.Options)
	if err != nil {
		return respondError(c, err)
	}
	return sendPDF(c, pdfBytes, filename)
}

func sendPDF(c *fiber.Ctx, pdfBytes []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": filename})
	if disposition == "" {
		disposition = "attachment"
	}
	c.Set(fiber.HeaderContentDisposition, disposition)
	return c.Send(pdfBytes)
}
