package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Cotizaciones-api/internal/domain/entity"
	"github.com/jhoicas/Cotizaciones-api/internal/domain/repository"
)

var _ repository.QuotationRepository = (*QuotationRepo)(nil)

// QuotationRepo implementación de QuotationRepository (usable con pool o tx).
type QuotationRepo struct {
	q Querier
}

// NewQuotationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuotationRepository(q Querier) *QuotationRepo {
	return &QuotationRepo{q: q}
}

// CreateHeader persiste la cabecera. quote_no es UNIQUE: un número repetido devuelve ErrDuplicate.
func (r *QuotationRepo) CreateHeader(ctx context.Context, quotation *entity.Quotation) error {
	if quotation.ID == "" {
		quotation.ID = uuid.New().String()
	}
	if quotation.CreatedAt.IsZero() {
		quotation.CreatedAt = time.Now().UTC()
	}
	query := `
		INSERT INTO quotations (id, quote_no, client_id, date, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		quotation.ID, quotation.Number, quotation.ClientID, quotation.Date, quotation.CreatedAt,
	)
	if err != nil {
		return wrapErr("insert quotation", err)
	}
	return nil
}

// CreateItems inserta las líneas en un pgx.Batch y asigna el ID generado a cada ítem.
func (r *QuotationRepo) CreateItems(ctx context.Context, items []*entity.QuotationItem) error {
	if len(items) == 0 {
		return nil
	}
	const query = `
		INSERT INTO quotation_items (quotation_id, position, product_name, quantity, unit_price, dealer_price_snapshot)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	b := &pgx.Batch{}
	for _, it := range items {
		b.Queue(query, it.QuotationID, it.Position, it.ProductName, it.Quantity, it.UnitPrice, it.DealerPriceSnapshot)
	}
	br := r.q.SendBatch(ctx, b)
	for _, it := range items {
		if err := br.QueryRow().Scan(&it.ID); err != nil {
			_ = br.Close()
			return wrapErr("insert quotation items", err)
		}
	}
	if err := br.Close(); err != nil {
		return wrapErr("insert quotation items", err)
	}
	return nil
}

// LatestNumberWithPrefix devuelve el número más alto con el prefijo. Se ordena primero por
// longitud para que QUO-202501-1000 quede por encima de QUO-202501-999.
func (r *QuotationRepo) LatestNumberWithPrefix(ctx context.Context, prefix string) (string, bool, error) {
	const query = `
		SELECT quote_no FROM quotations
		WHERE quote_no LIKE $1 ESCAPE '\'
		ORDER BY length(quote_no) DESC, quote_no DESC
		LIMIT 1`
	var number string
	err := r.q.QueryRow(ctx, query, prefixPattern(prefix)).Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, wrapErr("latest quote number", err)
	}
	return number, true, nil
}

// GetByNumber obtiene la cabecera por número de documento. Devuelve nil, nil si no existe.
func (r *QuotationRepo) GetByNumber(ctx context.Context, number string) (*entity.Quotation, error) {
	const query = `SELECT id, quote_no, client_id, date, created_at FROM quotations WHERE quote_no = $1`
	var q entity.Quotation
	err := r.q.QueryRow(ctx, query, number).Scan(&q.ID, &q.Number, &q.ClientID, &q.Date, &q.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get quotation", err)
	}
	return &q, nil
}

// ListItems devuelve las líneas de la cotización en el orden en que se cargaron.
func (r *QuotationRepo) ListItems(ctx context.Context, quotationID string) ([]*entity.QuotationItem, error) {
	const query = `
		SELECT id, quotation_id, position, product_name, quantity, unit_price, dealer_price_snapshot
		FROM quotation_items WHERE quotation_id = $1 ORDER BY position, id`
	rows, err := r.q.Query(ctx, query, quotationID)
	if err != nil {
		return nil, wrapErr("list quotation items", err)
	}
	defer rows.Close()
	var list []*entity.QuotationItem
	for rows.Next() {
		var it entity.QuotationItem
		if err := rows.Scan(&it.ID, &it.QuotationID, &it.Position, &it.ProductName, &it.Quantity, &it.UnitPrice, &it.DealerPriceSnapshot); err != nil {
			return nil, wrapErr("scan quotation item", err)
		}
		list = append(list, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("list quotation items", err)
	}
	return list, nil
}
