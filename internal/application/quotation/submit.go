package quotation

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
	"github.com/jhoicas/Cotizaciones-api/internal/domain/numbering"
	"github.com/jhoicas/Cotizaciones-api/internal/domain/pricing"
	"github.com/jhoicas/Cotizaciones-api/internal/domain/repository"
	"github.com/jhoicas/Cotizaciones-api/pkg/logger"
)

// SubmitConfig opciones del alta de cotizaciones.
type SubmitConfig struct {
	// AtomicWrites escribe cabecera e ítems en una sola transacción (requiere TxRunner).
	AtomicWrites bool
	StoreTimeout time.Duration
}

// SubmitQuotationUseCase valida, numera y guarda una cotización.
//
// Orden: validación completa -> número de documento -> cabecera -> ítems.
// Sin modo atómico un fallo en los ítems deja la cabecera guardada sin líneas; el error
// ErrItemsWriteFailed lo informa y no hay reintento automático.
type SubmitQuotationUseCase struct {
	clients    repository.ClientRepository
	quotations repository.QuotationRepository
	numbers    *numbering.Generator
	txRunner   TxRunner
	checker    pricing.Checker
	cfg        SubmitConfig
	log        *logger.Logger
	now        func() time.Time
}

// NewSubmitQuotationUseCase construye el caso de uso. txRunner puede ser nil si AtomicWrites es falso.
func NewSubmitQuotationUseCase(
	clients repository.ClientRepository,
	quotations repository.QuotationRepository,
	numbers *numbering.Generator,
	txRunner TxRunner,
	checker pricing.Checker,
	cfg SubmitConfig,
	log *logger.Logger,
) *SubmitQuotationUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &SubmitQuotationUseCase{
		clients:    clients,
		quotations: quotations,
		numbers:    numbers,
		txRunner:   txRunner,
		checker:    checker,
		cfg:        cfg,
		log:        log,
		now:        time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *SubmitQuotationUseCase) WithClock(now func() time.Time) *SubmitQuotationUseCase {
	uc.now = now
	return uc
}

// Submit guarda la cotización y devuelve el número asignado, las líneas y las anomalías de precio.
//
// Errores:
//   - domain.ErrInvalidInput      datos incompletos o cliente inexistente (sin escrituras).
//   - domain.ErrConnectivity      no se pudo consultar el almacén para numerar (sin escrituras).
//   - domain.ErrHeaderWriteFailed falló la cabecera; con número repetido también es domain.ErrDuplicate.
//   - domain.ErrItemsWriteFailed  falló el guardado de ítems.
func (uc *SubmitQuotationUseCase) Submit(ctx context.Context, in dto.SubmitQuotationRequest) (*dto.SubmitQuotationResponse, error) {
	now := uc.now()
	date, err := validateSubmit(in, now)
	if err != nil {
		return nil, err
	}

	cctx, cancel := storecall.WithTimeout(ctx, uc.cfg.StoreTimeout)
	client, err := uc.clients.GetByID(cctx, in.ClientID)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("consultar cliente: %w", err)
	}
	if client == nil {
		return nil, fmt.Errorf("%w: el cliente %q no existe", domain.ErrInvalidInput, in.ClientID)
	}

	nctx, cancel := storecall.WithTimeout(ctx, uc.cfg.StoreTimeout)
	number := uc.numbers.Next(nctx, now)
	cancel()
	if number.Offline {
		uc.log.Warn().Str("quote_no", number.Value).Msg("sin conexión al generar número de documento")
		return nil, fmt.Errorf("%w: no se pudo generar el número de documento", domain.ErrConnectivity)
	}

	header := &entity.Quotation{
		ID:        uuid.New().String(),
		Number:    number.Value,
		ClientID:  client.ID,
		Date:      date,
		CreatedAt: now.UTC(),
	}
	items := make([]*entity.QuotationItem, 0, len(in.Items))
	for i, it := range in.Items {
		items = append(items, &entity.QuotationItem{
			QuotationID:         header.ID,
			Position:            i,
			ProductName:         strings.TrimSpace(it.ProductName),
			Quantity:            it.Quantity,
			UnitPrice:           it.UnitPrice,
			DealerPriceSnapshot: it.DealerPrice,
		})
	}

	if uc.cfg.AtomicWrites && uc.txRunner != nil {
		err = uc.txRunner.RunQuotation(ctx, func(repo repository.QuotationRepository) error {
			return uc.write(ctx, repo, header, items)
		})
	} else {
		err = uc.write(ctx, uc.quotations, header, items)
	}
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("quote_no", header.Number).Int("items", len(items)).Msg("cotización guardada")

	header.Items = items
	resp := &dto.SubmitQuotationResponse{
		QuotationResponse: toQuotationResponse(header, client.Name, items),
		Anomalies:         uc.anomalies(items),
	}
	return resp, nil
}

func (uc *SubmitQuotationUseCase) write(ctx context.Context, repo repository.QuotationRepository, header *entity.Quotation, items []*entity.QuotationItem) error {
	hctx, cancel := storecall.WithTimeout(ctx, uc.cfg.StoreTimeout)
	err := repo.CreateHeader(hctx, header)
	cancel()
	if err != nil {
		uc.log.Warn().Err(err).Str("quote_no", header.Number).Msg("no se pudo guardar la cabecera")
		return fmt.Errorf("%w (%s): %w", domain.ErrHeaderWriteFailed, header.Number, err)
	}

	ictx, cancel := storecall.WithTimeout(ctx, uc.cfg.StoreTimeout)
	err = repo.CreateItems(ictx, items)
	cancel()
	if err != nil {
		uc.log.Error().Err(err).Str("quote_no", header.Number).Bool("atomic", uc.cfg.AtomicWrites).
			Msg("no se pudieron guardar los ítems")
		return fmt.Errorf("%w (%s): %w", domain.ErrItemsWriteFailed, header.Number, err)
	}
	return nil
}

func (uc *SubmitQuotationUseCase) anomalies(items []*entity.QuotationItem) []dto.PriceAnomaly {
	out := []dto.PriceAnomaly{}
	for _, it := range items {
		res := uc.checker.Check(it.DealerPriceSnapshot, it.UnitPrice)
		if !res.Flagged {
			continue
		}
		out = append(out, dto.PriceAnomaly{
			Position:    it.Position,
			ProductName: it.ProductName,
			UnitPrice:   it.UnitPrice,
			DealerPrice: it.DealerPriceSnapshot,
			Ratio:       res.Ratio,
			Percent:     res.Percent(),
		})
	}
	return out
}

// validateSubmit revisa toda la entrada antes de cualquier escritura y devuelve la fecha.
func validateSubmit(in dto.SubmitQuotationRequest, now time.Time) (time.Time, error) {
	if strings.TrimSpace(in.ClientID) == "" {
		return time.Time{}, fmt.Errorf("%w: debe seleccionar un cliente", domain.ErrInvalidInput)
	}
	if len(in.Items) == 0 {
		return time.Time{}, fmt.Errorf("%w: la cotización no tiene ítems", domain.ErrInvalidInput)
	}
	for i, it := range in.Items {
		if strings.TrimSpace(it.ProductName) == "" {
			return time.Time{}, fmt.Errorf("%w: ítem %d sin nombre de producto", domain.ErrInvalidInput, i+1)
		}
		if it.Quantity <= 0 {
			return time.Time{}, fmt.Errorf("%w: ítem %d con cantidad %d", domain.ErrInvalidInput, i+1, it.Quantity)
		}
		if it.UnitPrice.LessThan(decimal.Zero) || it.DealerPrice.LessThan(decimal.Zero) {
			return time.Time{}, fmt.Errorf("%w: ítem %d con precio negativo", domain.ErrInvalidInput, i+1)
		}
	}
	if in.Date == "" {
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha %q (use AAAA-MM-DD)", domain.ErrInvalidInput, in.Date)
	}
	return date, nil
}
