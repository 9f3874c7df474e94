package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Cotizaciones-api/internal/domain/entity"
	"github.com/jhoicas/Cotizaciones-api/internal/domain/repository"
)

var _ repository.QuotationRepository = (*QuotationRepo)(nil)

// QuotationRepo implementación de QuotationRepository sobre SQLite (db o tx).
type QuotationRepo struct {
	q DBTX
}

// NewQuotationRepository construye el adaptador.
func NewQuotationRepository(q DBTX) *QuotationRepo {
	return &QuotationRepo{q: q}
}

// CreateHeader persiste la cabecera. quote_no es UNIQUE.
func (r *QuotationRepo) CreateHeader(ctx context.Context, quotation *entity.Quotation) error {
	if quotation.ID == "" {
		quotation.ID = uuid.New().String()
	}
	if quotation.CreatedAt.IsZero() {
		quotation.CreatedAt = time.Now().UTC()
	}
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO quotations (id, quote_no, client_id, date, created_at) VALUES (?, ?, ?, ?, ?)`,
		quotation.ID, quotation.Number, quotation.ClientID, quotation.Date, quotation.CreatedAt,
	)
	if err != nil {
		return wrapErr("insert quotation", err)
	}
	return nil
}

// CreateItems inserta las líneas y asigna el ID autoincremental a cada ítem.
func (r *QuotationRepo) CreateItems(ctx context.Context, items []*entity.QuotationItem) error {
	const query = `
		INSERT INTO quotation_items (quotation_id, position, product_name, quantity, unit_price, dealer_price_snapshot)
		VALUES (?, ?, ?, ?, ?, ?)`
	for _, it := range items {
		res, err := r.q.ExecContext(ctx, query,
			it.QuotationID, it.Position, it.ProductName, it.Quantity, it.UnitPrice, it.DealerPriceSnapshot,
		)
		if err != nil {
			return wrapErr("insert quotation items", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return wrapErr("insert quotation items", err)
		}
		it.ID = id
	}
	return nil
}

// LatestNumberWithPrefix compara el prefijo con substr (LIKE en SQLite ignora mayúsculas)
// y ordena por longitud para que las secuencias de cuatro dígitos queden primero.
func (r *QuotationRepo) LatestNumberWithPrefix(ctx context.Context, prefix string) (string, bool, error) {
	const query = `
		SELECT quote_no FROM quotations
		WHERE substr(quote_no, 1, length(?1)) = ?1
		ORDER BY length(quote_no) DESC, quote_no DESC
		LIMIT 1`
	var number string
	if err := r.q.QueryRowContext(ctx, query, prefix).Scan(&number); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, wrapErr("latest quote number", err)
	}
	return number, true, nil
}

// GetByNumber obtiene la cabecera por número. Devuelve nil, nil si no existe.
func (r *QuotationRepo) GetByNumber(ctx context.Context, number string) (*entity.Quotation, error) {
	var q entity.Quotation
	err := r.q.QueryRowContext(ctx,
		`SELECT id, quote_no, client_id, date, created_at FROM quotations WHERE quote_no = ?`, number,
	).Scan(&q.ID, &q.Number, &q.ClientID, &q.Date, &q.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get quotation", err)
	}
	return &q, nil
}

// ListItems devuelve las líneas en el orden en que se cargaron.
func (r *QuotationRepo) ListItems(ctx context.Context, quotationID string) ([]*entity.QuotationItem, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, quotation_id, position, product_name, quantity, unit_price, dealer_price_snapshot
		FROM quotation_items WHERE quotation_id = ? ORDER BY position, id`, quotationID)
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
