package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Cotizaciones-api/internal/application/dto"
	"github.com/jhoicas/Cotizaciones-api/internal/application/storecall"
	"github.com/jhoicas/Cotizaciones-api/internal/domain"
	"github.com/jhoicas/Cotizaciones-api/internal/domain/entity"
	"github.com/jhoicas/Cotizaciones-api/internal/domain/repository"
	"github.com/jhoicas/Cotizaciones-api/pkg/logger"
)

// ProductUseCase alta y listado del catálogo. El precio de distribuidor no se versiona.
type ProductUseCase struct {
	repo    repository.ProductRepository
	timeout time.Duration
	log     *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, timeout time.Duration, log *logger.Logger) *ProductUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ProductUseCase{repo: repo, timeout: timeout, log: log}
}

// Create crea un producto. Nombre obligatorio, precio de distribuidor >= 0.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre del producto es obligatorio", domain.ErrInvalidInput)
	}
	if in.DealerPrice.IsNegative() {
		return nil, fmt.Errorf("%w: el precio de distribuidor no puede ser negativo", domain.ErrInvalidInput)
	}
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        name,
		Spec:        strings.TrimSpace(in.Spec),
		DealerPrice: in.DealerPrice,
		CreatedAt:   time.Now().UTC(),
	}
	ctx, cancel := storecall.WithTimeout(ctx, uc.timeout)
	defer cancel()
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("crear producto: %w", err)
	}
	return toProductResponse(product), nil
}

// List devuelve el catálogo. Sin conexión devuelve una lista vacía marcada como degradada.
func (uc *ProductUseCase) List(ctx context.Context) *dto.ProductListResponse {
	ctx, cancel := storecall.WithTimeout(ctx, uc.timeout)
	defer cancel()
	out := &dto.ProductListResponse{Items: []dto.ProductResponse{}}
	products, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("productos: almacén no disponible")
		out.Degraded = true
		return out
	}
	for _, p := range products {
		out.Items = append(out.Items, *toProductResponse(p))
	}
	return out
}

// ReferencePrice precio de distribuidor del catálogo para el nombre exacto del producto.
// Devuelve ErrNotFound si el producto no está en el catálogo.
func (uc *ProductUseCase) ReferencePrice(ctx context.Context, name string) (decimal.Decimal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return decimal.Zero, fmt.Errorf("%w: el nombre del producto es obligatorio", domain.ErrInvalidInput)
	}
	ctx, cancel := storecall.WithTimeout(ctx, uc.timeout)
	defer cancel()
	p, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return decimal.Zero, fmt.Errorf("buscar producto %q: %w", name, err)
	}
	if p == nil {
		return decimal.Zero, fmt.Errorf("%w: producto %q", domain.ErrNotFound, name)
	}
	return p.DealerPrice, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Spec:        p.Spec,
		DealerPrice: p.DealerPrice,
		CreatedAt:   p.CreatedAt,
	}
}
