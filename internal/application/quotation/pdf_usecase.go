package quotation

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Cotizaciones-api/internal/application/dto"
	"github.com/jhoicas/Cotizaciones-api/internal/domain"
)

// PDFUseCase genera el PDF de una cotización guardada o de datos provistos por el caller.
type PDFUseCase struct {
	getter   *GetQuotationUseCase
	renderer Renderer
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(getter *GetQuotationUseCase, renderer Renderer) *PDFUseCase {
	return &PDFUseCase{getter: getter, renderer: renderer}
}

// Render carga la cotización por número y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la cotización no existe.
func (uc *PDFUseCase) Render(ctx context.Context, number string, opts dto.RenderOptions) ([]byte, string, error) {
	q, err := uc.getter.Get(ctx, number)
	if err != nil {
		return nil, "", err
	}
	return uc.RenderDocument(DocumentFromResponse(*q), opts)
}

// RenderDocument genera el PDF a partir de un documento armado por el caller
// (por ejemplo la respuesta de Submit, sin volver a leer el almacén).
func (uc *PDFUseCase) RenderDocument(doc dto.QuoteDocument, opts dto.RenderOptions) ([]byte, string, error) {
	if err := validateDocument(doc); err != nil {
		return nil, "", err
	}
	pdfBytes, err := uc.renderer.Render(doc, opts)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, Filename(doc.DocumentNumber), nil
}

// Filename nombre de descarga del PDF.
func Filename(documentNumber string) string {
	return fmt.Sprintf("Quotation_%s.pdf", documentNumber)
}

func validateDocument(doc dto.QuoteDocument) error {
	if strings.TrimSpace(doc.DocumentNumber) == "" {
		return fmt.Errorf("%w: documento sin número", domain.ErrInvalidInput)
	}
	if len(doc.Items) == 0 {
		return fmt.Errorf("%w: documento sin ítems", domain.ErrInvalidInput)
	}
	for i, it := range doc.Items {
		if it.Quantity <= 0 || it.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: línea %d inválida", domain.ErrInvalidInput, i+1)
		}
	}
	return nil
}
