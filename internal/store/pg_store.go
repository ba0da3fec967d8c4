package store

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	perrors "github.com/abgdnv/inventory/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `id, name, description, price, quantity`

const (
	insertProductSQL = `INSERT INTO products (name, description, price, quantity)
		VALUES ($1, $2, $3, $4) RETURNING ` + productColumns

	findByIDSQL = `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	findByNameSQL = `SELECT ` + productColumns + ` FROM products WHERE name = $1`

	listProductsSQL = `SELECT ` + productColumns + ` FROM products ORDER BY id OFFSET $1 LIMIT $2`

	searchProductsSQL = `SELECT ` + productColumns + ` FROM products
		WHERE name ILIKE $1 OR description ILIKE $1 ORDER BY id OFFSET $2 LIMIT $3`

	replaceProductSQL = `UPDATE products SET name = $2, description = $3, price = $4, quantity = $5
		WHERE id = $1 RETURNING ` + productColumns

	removeProductSQL = `DELETE FROM products WHERE id = $1 RETURNING ` + productColumns

	decrementQuantitySQL = `UPDATE products SET quantity = quantity - $2
		WHERE id = $1 AND quantity >= $2 RETURNING ` + productColumns
)

// uniqueViolation is the SQLSTATE for unique_violation.
const uniqueViolation = "23505"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// PgStore implements ProductStore using PostgreSQL as the data store.
type PgStore struct {
	db *pgxpool.Pool
}

var _ ProductStore = (*PgStore)(nil)

// NewPgStore creates a new instance of ProductStore using a PostgreSQL connection pool.
func NewPgStore(dbp *pgxpool.Pool) *PgStore {
	return &PgStore{db: dbp}
}

func (p *PgStore) Insert(ctx context.Context, fields ProductFields) (Product, error) {
	product, err := p.queryOne(ctx, insertProductSQL, fields.Name, fields.Description, fields.Price, fields.Quantity)
	if err != nil {
		return Product{}, fmt.Errorf("failed to insert product %q: %w", fields.Name, err)
	}
	return product, nil
}

func (p *PgStore) FindByID(ctx context.Context, id int64) (Product, error) {
	product, err := p.queryOne(ctx, findByIDSQL, id)
	if err != nil {
		return Product{}, fmt.Errorf("failed to find product %d: %w", id, err)
	}
	return product, nil
}

func (p *PgStore) FindByName(ctx context.Context, name string) (Product, error) {
	product, err := p.queryOne(ctx, findByNameSQL, name)
	if err != nil {
		return Product{}, fmt.Errorf("failed to find product %q: %w", name, err)
	}
	return product, nil
}

func (p *PgStore) List(ctx context.Context, offset, limit int32) ([]Product, error) {
	products, err := p.queryMany(ctx, listProductsSQL, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (p *PgStore) Search(ctx context.Context, term string, offset, limit int32) ([]Product, error) {
	pattern := "%" + likeEscaper.Replace(term) + "%"
	products, err := p.queryMany(ctx, searchProductsSQL, pattern, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search products for %q: %w", term, err)
	}
	return products, nil
}

func (p *PgStore) Replace(ctx context.Context, product Product) (Product, error) {
	updated, err := p.queryOne(ctx, replaceProductSQL,
		product.ID, product.Name, product.Description, product.Price, product.Quantity)
	if err != nil {
		return Product{}, fmt.Errorf("failed to update product %d: %w", product.ID, err)
	}
	return updated, nil
}

func (p *PgStore) Remove(ctx context.Context, id int64) (Product, error) {
	removed, err := p.queryOne(ctx, removeProductSQL, id)
	if err != nil {
		return Product{}, fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	return removed, nil
}

// DecrementQuantity relies on the quantity guard in the UPDATE. When no row comes back the
// product is looked up again to tell a missing product from short stock.
func (p *PgStore) DecrementQuantity(ctx context.Context, id int64, n int32) (Product, error) {
	updated, err := p.queryOne(ctx, decrementQuantitySQL, id, n)
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, perrors.ErrProductNotFound) {
		return Product{}, fmt.Errorf("failed to sell product %d: %w", id, err)
	}
	if _, findErr := p.FindByID(ctx, id); findErr != nil {
		return Product{}, findErr
	}
	return Product{}, fmt.Errorf("product %d: %w", id, perrors.ErrInsufficientStock)
}

func (p *PgStore) Ping(ctx context.Context) error {
	if err := p.db.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", perrors.ErrStoreUnavailable, err)
	}
	return nil
}

func (p *PgStore) queryOne(ctx context.Context, sql string, args ...any) (Product, error) {
	rows, err := p.db.Query(ctx, sql, args...)
	if err != nil {
		return Product{}, mapError(err)
	}
	product, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Product])
	if err != nil {
		return Product{}, mapError(err)
	}
	return product, nil
}

func (p *PgStore) queryMany(ctx context.Context, sql string, args ...any) ([]Product, error) {
	rows, err := p.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err)
	}
	products, err := pgx.CollectRows(rows, pgx.RowToStructByName[Product])
	if err != nil {
		return nil, mapError(err)
	}
	return products, nil
}

// mapError translates driver errors into the sentinel errors of this module.
func mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return perrors.ErrProductNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", perrors.ErrDuplicateName, pgErr.Detail)
	}
	var connectErr *pgconn.ConnectError
	var netErr net.Error
	if errors.As(err, &connectErr) || errors.As(err, &netErr) || pgconn.Timeout(err) {
		return fmt.Errorf("%w: %w", perrors.ErrStoreUnavailable, err)
	}
	return err
}
