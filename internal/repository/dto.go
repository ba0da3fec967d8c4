package repository

import "github.com/abgdnv/inventory/internal/store"

// ProductDto is the product as seen by callers of the repository.
type ProductDto struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int32   `json:"quantity"`
}

// ProductCreateDto carries a new product. Fields are pointers so that a missing field
// fails "required" while an explicit zero value passes.
type ProductCreateDto struct {
	Name        *string  `json:"name"        validate:"required,min=1,max=255"`
	Description *string  `json:"description" validate:"required,max=255"`
	Price       *float64 `json:"price"       validate:"required,gte=0"`
	Quantity    *int32   `json:"quantity"    validate:"required,gte=0"`
}

// ProductUpdateDto carries a partial update. Nil fields are left unchanged.
type ProductUpdateDto struct {
	Name        *string  `json:"name"        validate:"omitempty,min=1,max=255"`
	Description *string  `json:"description" validate:"omitempty,max=255"`
	Price       *float64 `json:"price"       validate:"omitempty,gte=0"`
	Quantity    *int32   `json:"quantity"    validate:"omitempty,gte=0"`
}

// SellDto is the body of a sale.
type SellDto struct {
	Quantity *int32 `json:"quantity" validate:"required,gt=0"`
}

// AsUpdate turns a full creation body into an update that overwrites every field.
func (c ProductCreateDto) AsUpdate() ProductUpdateDto {
	return ProductUpdateDto{
		Name:        c.Name,
		Description: c.Description,
		Price:       c.Price,
		Quantity:    c.Quantity,
	}
}

func (c ProductCreateDto) fields() store.ProductFields {
	return store.ProductFields{
		Name:        deref(c.Name),
		Description: deref(c.Description),
		Price:       deref(c.Price),
		Quantity:    deref(c.Quantity),
	}
}

// apply overwrites the supplied fields of p.
func (u ProductUpdateDto) apply(p store.Product) store.Product {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Quantity != nil {
		p.Quantity = *u.Quantity
	}
	return p
}

func toDto(p store.Product) ProductDto {
	return ProductDto{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
	}
}

func toDtos(products []store.Product) []ProductDto {
	dtos := make([]ProductDto, len(products))
	for i, p := range products {
		dtos[i] = toDto(p)
	}
	return dtos
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
