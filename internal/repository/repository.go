// Package repository provides typed product operations over a ProductStore.
// Absence is reported as found=false instead of an error.
package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	perrors "github.com/abgdnv/inventory/internal/errors"
	"github.com/abgdnv/inventory/internal/store"
	"github.com/abgdnv/inventory/pkg/messaging"
	"github.com/abgdnv/inventory/pkg/messaging/events"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
)

// ProductRepository defines the product operations offered to the transports.
type ProductRepository interface {
	// GetProduct returns the product with the given id, or found=false.
	GetProduct(ctx context.Context, id int64) (ProductDto, bool, error)

	// GetProductByName returns the product with exactly that name, or found=false.
	GetProductByName(ctx context.Context, name string) (ProductDto, bool, error)

	// GetProducts returns at most limit products in id order after skipping skip of them.
	// A skip past the end yields an empty slice.
	GetProducts(ctx context.Context, skip, limit int32) ([]ProductDto, error)

	// SearchProducts is GetProducts restricted to products whose name or description
	// contains query, ignoring case.
	SearchProducts(ctx context.Context, query string, skip, limit int32) ([]ProductDto, error)

	// CreateProduct stores a new product. Returns ErrDuplicateName if the name is taken.
	CreateProduct(ctx context.Context, product ProductCreateDto) (ProductDto, error)

	// UpdateProduct overwrites the supplied fields of an existing product.
	// Returns found=false without side effects when the product does not exist.
	UpdateProduct(ctx context.Context, id int64, update ProductUpdateDto) (ProductDto, bool, error)

	// DeleteProduct removes a product and returns its last state.
	DeleteProduct(ctx context.Context, id int64) (ProductDto, bool, error)

	// SellProduct lowers the stock by quantity. Returns ErrInsufficientStock when the
	// stock is smaller than quantity.
	SellProduct(ctx context.Context, id int64, quantity int32) (ProductDto, bool, error)

	// Ping reports whether the underlying store is reachable.
	Ping(ctx context.Context) error
}

// Repository implements ProductRepository.
type Repository struct {
	store     store.ProductStore
	publisher messaging.Publisher
	created   metric.Int64Counter
	updated   metric.Int64Counter
	deleted   metric.Int64Counter
	sold      metric.Int64Counter
}

var _ ProductRepository = (*Repository)(nil)

// NewRepository creates a repository over productStore. Events go to publisher after every
// successful mutation.
func NewRepository(productStore store.ProductStore, publisher messaging.Publisher) *Repository {
	if publisher == nil {
		publisher = messaging.NopPublisher{}
	}
	meter := otel.Meter("inventory")
	return &Repository{
		store:     productStore,
		publisher: publisher,
		created:   mustCounter(meter, "products_created", "Total number of created products"),
		updated:   mustCounter(meter, "products_updated", "Total number of updated products"),
		deleted:   mustCounter(meter, "products_deleted", "Total number of deleted products"),
		sold:      mustCounter(meter, "products_sold", "Total number of product units sold"),
	}
}

func mustCounter(meter metric.Meter, name, description string) metric.Int64Counter {
	counter, err := meter.Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		panic(fmt.Sprintf("failed to create %s counter: %v", name, err))
	}
	return counter
}

func (r *Repository) GetProduct(ctx context.Context, id int64) (ProductDto, bool, error) {
	product, err := r.store.FindByID(ctx, id)
	return found(product, err)
}

func (r *Repository) GetProductByName(ctx context.Context, name string) (ProductDto, bool, error) {
	product, err := r.store.FindByName(ctx, name)
	return found(product, err)
}

func (r *Repository) GetProducts(ctx context.Context, skip, limit int32) ([]ProductDto, error) {
	skip, limit = bounds(skip, limit)
	products, err := r.store.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return toDtos(products), nil
}

func (r *Repository) SearchProducts(ctx context.Context, query string, skip, limit int32) ([]ProductDto, error) {
	skip, limit = bounds(skip, limit)
	products, err := r.store.Search(ctx, query, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return toDtos(products), nil
}

func (r *Repository) CreateProduct(ctx context.Context, product ProductCreateDto) (ProductDto, error) {
	created, err := r.store.Insert(ctx, product.fields())
	if err != nil {
		return ProductDto{}, fmt.Errorf("failed to create product: %w", err)
	}
	r.publish(ctx, events.ProductCreated, created, 0)
	r.created.Add(ctx, 1)
	return toDto(created), nil
}

func (r *Repository) UpdateProduct(ctx context.Context, id int64, update ProductUpdateDto) (ProductDto, bool, error) {
	current, err := r.store.FindByID(ctx, id)
	if err != nil {
		return found(current, err)
	}
	updated, err := r.store.Replace(ctx, update.apply(current))
	if err != nil {
		if errors.Is(err, perrors.ErrProductNotFound) {
			return ProductDto{}, false, nil
		}
		return ProductDto{}, false, fmt.Errorf("failed to update product %d: %w", id, err)
	}
	r.publish(ctx, events.ProductUpdated, updated, 0)
	r.updated.Add(ctx, 1)
	return toDto(updated), true, nil
}

func (r *Repository) DeleteProduct(ctx context.Context, id int64) (ProductDto, bool, error) {
	removed, err := r.store.Remove(ctx, id)
	if err != nil {
		return found(removed, err)
	}
	r.publish(ctx, events.ProductDeleted, removed, 0)
	r.deleted.Add(ctx, 1)
	return toDto(removed), true, nil
}

func (r *Repository) SellProduct(ctx context.Context, id int64, quantity int32) (ProductDto, bool, error) {
	if quantity <= 0 {
		return ProductDto{}, false, perrors.ErrInvalidQuantity
	}
	sold, err := r.store.DecrementQuantity(ctx, id, quantity)
	if err != nil {
		return found(sold, err)
	}
	r.publish(ctx, events.ProductSold, sold, quantity)
	r.sold.Add(ctx, int64(quantity))
	return toDto(sold), true, nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}

// publish sends a product event. Failures are logged only.
func (r *Repository) publish(ctx context.Context, kind events.ProductKind, p store.Product, quantity int32) {
	carrier := make(propagation.MapCarrier)
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	event := events.ProductEvent{
		Kind: kind,
		Product: events.ProductSnapshot{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Quantity:    p.Quantity,
		},
		Quantity:   quantity,
		OccurredAt: time.Now().UTC(),
		Carrier:    carrier,
	}
	if err := r.publisher.Publish(ctx, event); err != nil {
		slog.ErrorContext(ctx, "Failed to publish product event", "kind", kind, "id", p.ID, "error", err)
	}
}

// found converts a store lookup into the (value, found, error) form.
func found(p store.Product, err error) (ProductDto, bool, error) {
	if err != nil {
		if errors.Is(err, perrors.ErrProductNotFound) {
			return ProductDto{}, false, nil
		}
		return ProductDto{}, false, err
	}
	return toDto(p), true, nil
}

func bounds(skip, limit int32) (int32, int32) {
	return max(skip, 0), max(limit, 0)
}
