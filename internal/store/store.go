// Package store provides an interface for product storage operations.
package store

import (
	"context"
)

// Product is a persisted product row.
type Product struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Price       float64 `db:"price"`
	Quantity    int32   `db:"quantity"`
}

// ProductFields holds every writable column of a product.
type ProductFields struct {
	Name        string
	Description string
	Price       float64
	Quantity    int32
}

// ProductStore is an interface for product storage operations.
// Every method is atomic for a single row. Connectivity failures are reported as ErrStoreUnavailable.
type ProductStore interface {
	// Insert stores a new product under a fresh id.
	// Returns ErrDuplicateName if another product already uses the name.
	Insert(ctx context.Context, fields ProductFields) (Product, error)

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int64) (Product, error)

	// FindByName retrieves a single product by its exact name.
	// Returns ErrProductNotFound if no product has that name.
	FindByName(ctx context.Context, name string) (Product, error)

	// List returns at most limit products in id order, skipping the first offset.
	List(ctx context.Context, offset, limit int32) ([]Product, error)

	// Search is List restricted to products whose name or description contains term, ignoring case.
	Search(ctx context.Context, term string, offset, limit int32) ([]Product, error)

	// Replace overwrites every writable field of the product with p.ID.
	// Returns ErrProductNotFound or ErrDuplicateName.
	Replace(ctx context.Context, p Product) (Product, error)

	// Remove deletes a product and returns the row as it was before deletion.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Remove(ctx context.Context, id int64) (Product, error)

	// DecrementQuantity lowers quantity by n unless that would make it negative.
	// Returns ErrProductNotFound or ErrInsufficientStock.
	DecrementQuantity(ctx context.Context, id int64, n int32) (Product, error)

	// Ping reports whether the store can serve requests.
	Ping(ctx context.Context) error
}
