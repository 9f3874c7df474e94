// Package catalog contiene los casos de uso de clientes y productos, incluida la
// importación masiva de productos desde hojas de cálculo.
package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Cotizaciones-api/internal/application/dto"
	"github.com/jhoicas/Cotizaciones-api/internal/application/storecall"
	"github.com/jhoicas/Cotizaciones-api/internal/domain"
	"github.com/jhoicas/Cotizaciones-api/internal/domain/entity"
	"github.com/jhoicas/Cotizaciones-api/internal/domain/repository"
	"github.com/jhoicas/Cotizaciones-api/pkg/logger"
)

// ClientUseCase casos de uso para clientes. Los clientes no se editan ni se eliminan.
type ClientUseCase struct {
	repo    repository.ClientRepository
	timeout time.Duration
	log     *logger.Logger
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository, timeout time.Duration, log *logger.Logger) *ClientUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ClientUseCase{repo: repo, timeout: timeout, log: log}
}

// Create crea un nuevo cliente. El nombre es obligatorio.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre del cliente es obligatorio", domain.ErrInvalidInput)
	}
	client := &entity.Client{
		ID:            uuid.New().String(),
		Name:          name,
		TaxID:         strings.TrimSpace(in.TaxID),
		ContactPerson: strings.TrimSpace(in.ContactPerson),
		Phone:         strings.TrimSpace(in.Phone),
		Address:       strings.TrimSpace(in.Address),
		CreatedAt:     time.Now().UTC(),
	}
	ctx, cancel := storecall.WithTimeout(ctx, uc.timeout)
	defer cancel()
	if err := uc.repo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("crear cliente: %w", err)
	}
	return toClientResponse(client), nil
}

// Get obtiene un cliente por ID. domain.ErrNotFound si no existe.
func (uc *ClientUseCase) Get(ctx context.Context, id string) (*dto.ClientResponse, error) {
	ctx, cancel := storecall.WithTimeout(ctx, uc.timeout)
	defer cancel()
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener cliente: %w", err)
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// List lista todos los clientes. Sin conexión devuelve una lista vacía marcada como degradada.
func (uc *ClientUseCase) List(ctx context.Context) *dto.ClientListResponse {
	ctx, cancel := storecall.WithTimeout(ctx, uc.timeout)
	defer cancel()
	out := &dto.ClientListResponse{Items: []dto.ClientResponse{}}
	clients, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("clientes: almacén no disponible")
		out.Degraded = true
		return out
	}
	for _, c := range clients {
		out.Items = append(out.Items, *toClientResponse(c))
	}
	return out
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:            c.ID,
		Name:          c.Name,
		TaxID:         c.TaxID,
		ContactPerson: c.ContactPerson,
		Phone:         c.Phone,
		Address:       c.Address,
		CreatedAt:     c.CreatedAt,
	}
}
