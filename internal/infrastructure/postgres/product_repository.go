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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const (
	productColumns     = `id, name, spec, dealer_price, created_at`
	insertProductQuery = `INSERT INTO products (` + productColumns + `) VALUES ($1, $2, $3, $4, $5)`
)

func prepareProduct(p *entity.Product, now time.Time) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
}

// Create persiste un producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	prepareProduct(product, time.Now().UTC())
	_, err := r.q.Exec(ctx, insertProductQuery,
		product.ID, product.Name, product.Spec, product.DealerPrice, product.CreatedAt,
	)
	if err != nil {
		return wrapErr("insert product", err)
	}
	return nil
}

// CreateBatch inserta todos los productos en un único pgx.Batch. El batch se ejecuta como
// una transacción implícita: si una fila falla no queda ninguna escrita.
func (r *ProductRepo) CreateBatch(ctx context.Context, products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}
	now := time.Now().UTC()
	b := &pgx.Batch{}
	for _, p := range products {
		prepareProduct(p, now)
		b.Queue(insertProductQuery, p.ID, p.Name, p.Spec, p.DealerPrice, p.CreatedAt)
	}
	br := r.q.SendBatch(ctx, b)
	for range products {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return wrapErr("insert product batch", err)
		}
	}
	if err := br.Close(); err != nil {
		return wrapErr("insert product batch", err)
	}
	return nil
}

// List devuelve el catálogo ordenado por nombre.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY name, created_at DESC`)
	if err != nil {
		return nil, wrapErr("list products", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Spec, &p.DealerPrice, &p.CreatedAt); err != nil {
			return nil, wrapErr("scan product", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("list products", err)
	}
	return list, nil
}

// GetByName obtiene el producto más reciente con ese nombre. Devuelve nil, nil si no existe.
func (r *ProductRepo) GetByName(ctx context.Context, name string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE name = $1 ORDER BY created_at DESC LIMIT 1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, name).Scan(&p.ID, &p.Name, &p.Spec, &p.DealerPrice, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get product by name", err)
	}
	return &p, nil
}
