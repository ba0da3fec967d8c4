package store

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	perrors "github.com/abgdnv/inventory/internal/errors"
)

// MemoryStore implements ProductStore in process memory. Ids start at 1 and are never reused.
type MemoryStore struct {
	mu       sync.RWMutex
	products map[int64]Product
	byName   map[string]int64
	nextID   int64
}

var _ ProductStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products: make(map[int64]Product),
		byName:   make(map[string]int64),
		nextID:   1,
	}
}

func (s *MemoryStore) Insert(ctx context.Context, fields ProductFields) (Product, error) {
	if err := ctx.Err(); err != nil {
		return Product{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byName[fields.Name]; taken {
		return Product{}, fmt.Errorf("%w: %q", perrors.ErrDuplicateName, fields.Name)
	}
	product := Product{
		ID:          s.nextID,
		Name:        fields.Name,
		Description: fields.Description,
		Price:       fields.Price,
		Quantity:    fields.Quantity,
	}
	s.nextID++
	s.products[product.ID] = product
	s.byName[product.Name] = product.ID
	return product, nil
}

func (s *MemoryStore) FindByID(ctx context.Context, id int64) (Product, error) {
	if err := ctx.Err(); err != nil {
		return Product{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[id]
	if !ok {
		return Product{}, perrors.ErrProductNotFound
	}
	return product, nil
}

func (s *MemoryStore) FindByName(ctx context.Context, name string) (Product, error) {
	if err := ctx.Err(); err != nil {
		return Product{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byName[name]
	if !ok {
		return Product{}, perrors.ErrProductNotFound
	}
	return s.products[id], nil
}

func (s *MemoryStore) List(ctx context.Context, offset, limit int32) ([]Product, error) {
	return s.filter(ctx, offset, limit, func(Product) bool { return true })
}

func (s *MemoryStore) Search(ctx context.Context, term string, offset, limit int32) ([]Product, error) {
	needle := strings.ToLower(term)
	return s.filter(ctx, offset, limit, func(p Product) bool {
		return strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle)
	})
}

func (s *MemoryStore) Replace(ctx context.Context, p Product) (Product, error) {
	if err := ctx.Err(); err != nil {
		return Product{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.products[p.ID]
	if !ok {
		return Product{}, perrors.ErrProductNotFound
	}
	if owner, taken := s.byName[p.Name]; taken && owner != p.ID {
		return Product{}, fmt.Errorf("%w: %q", perrors.ErrDuplicateName, p.Name)
	}
	delete(s.byName, current.Name)
	s.byName[p.Name] = p.ID
	s.products[p.ID] = p
	return p, nil
}

func (s *MemoryStore) Remove(ctx context.Context, id int64) (Product, error) {
	if err := ctx.Err(); err != nil {
		return Product{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return Product{}, perrors.ErrProductNotFound
	}
	delete(s.products, id)
	delete(s.byName, product.Name)
	return product, nil
}

func (s *MemoryStore) DecrementQuantity(ctx context.Context, id int64, n int32) (Product, error) {
	if err := ctx.Err(); err != nil {
		return Product{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return Product{}, perrors.ErrProductNotFound
	}
	if product.Quantity < n {
		return Product{}, fmt.Errorf("product %d: %w", id, perrors.ErrInsufficientStock)
	}
	product.Quantity -= n
	s.products[id] = product
	return product, nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemoryStore) filter(ctx context.Context, offset, limit int32, match func(Product) bool) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Product, 0)
	if limit <= 0 {
		return result, nil
	}
	skipped := int32(0)
	for _, id := range slices.Sorted(maps.Keys(s.products)) {
		p := s.products[id]
		if !match(p) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		result = append(result, p)
		if int32(len(result)) == limit {
			break
		}
	}
	return result, nil
}
