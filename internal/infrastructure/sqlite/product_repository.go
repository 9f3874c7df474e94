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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre SQLite.
// CreateBatch necesita el *sql.DB para abrir su propia transacción cuando no se le pasa una.
type ProductRepo struct {
	q  DBTX
	db *sql.DB
}

// NewProductRepository construye el adaptador sobre la base.
func NewProductRepository(db *sql.DB) *ProductRepo {
	return &ProductRepo{q: db, db: db}
}

const (
	productColumns     = `id, name, spec, dealer_price, created_at`
	insertProductQuery = `INSERT INTO products (` + productColumns + `) VALUES (?, ?, ?, ?, ?)`
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
	_, err := r.q.ExecContext(ctx, insertProductQuery,
		product.ID, product.Name, product.Spec, product.DealerPrice, product.CreatedAt,
	)
	if err != nil {
		return wrapErr("insert product", err)
	}
	return nil
}

// CreateBatch inserta todos los productos en una transacción con una sentencia preparada.
func (r *ProductRepo) CreateBatch(ctx context.Context, products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return wrapErr("begin product batch", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, insertProductQuery)
	if err != nil {
		return wrapErr("prepare product batch", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, p := range products {
		prepareProduct(p, now)
		if _, err := stmt.ExecContext(ctx, p.ID, p.Name, p.Spec, p.DealerPrice, p.CreatedAt); err != nil {
			return wrapErr("insert product batch", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return wrapErr("commit product batch", err)
	}
	return nil
}

// List devuelve el catálogo ordenado por nombre.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+productColumns+` FROM products ORDER BY name, created_at DESC`)
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
	var p entity.Product
	err := r.q.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE name = ? ORDER BY created_at DESC LIMIT 1`, name,
	).Scan(&p.ID, &p.Name, &p.Spec, &p.DealerPrice, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get product by name", err)
	}
	return &p, nil
}
