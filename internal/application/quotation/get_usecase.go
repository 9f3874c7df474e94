package quotation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Cotizaciones-api/internal/application/dto"
	"github.com/jhoicas/Cotizaciones-api/internal/application/storecall"
	"github.com/jhoicas/Cotizaciones-api/internal/domain"
	"github.com/jhoicas/Cotizaciones-api/internal/domain/repository"
)

// GetQuotationUseCase recupera una cotización guardada con sus líneas y el nombre del cliente.
type GetQuotationUseCase struct {
	quotations repository.QuotationRepository
	clients    repository.ClientRepository
	timeout    time.Duration
}

// NewGetQuotationUseCase construye el caso de uso.
func NewGetQuotationUseCase(quotations repository.QuotationRepository, clients repository.ClientRepository, timeout time.Duration) *GetQuotationUseCase {
	return &GetQuotationUseCase{quotations: quotations, clients: clients, timeout: timeout}
}

// Get busca por número de documento. domain.ErrNotFound si no existe.
func (uc *GetQuotationUseCase) Get(ctx context.Context, number string) (*dto.QuotationResponse, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, fmt.Errorf("%w: número de documento vacío", domain.ErrInvalidInput)
	}
	ctx, cancel := storecall.WithTimeout(ctx, uc.timeout)
	defer cancel()

	q, err := uc.quotations.GetByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("obtener cotización: %w", err)
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.quotations.ListItems(ctx, q.ID)
	if err != nil {
		return nil, fmt.Errorf("obtener ítems: %w", err)
	}
	clientName := ""
	if client, err := uc.clients.GetByID(ctx, q.ClientID); err == nil && client != nil {
		clientName = client.Name
	}
	resp := toQuotationResponse(q, clientName, items)
	return &resp, nil
}
