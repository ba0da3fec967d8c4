package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/abgdnv/inventory/pkg/messaging"
)

// ProductKind identifies what happened to a product.
type ProductKind string

const (
	ProductCreated ProductKind = "created"
	ProductUpdated ProductKind = "updated"
	ProductDeleted ProductKind = "deleted"
	ProductSold    ProductKind = "sold"
)

// ProductSnapshot is the product state carried by an event.
type ProductSnapshot struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int32   `json:"quantity"`
}

// ProductEvent is published after a product mutation commits.
// For deletions Product holds the last state before removal.
// Quantity is set only for sales.
type ProductEvent struct {
	Kind       ProductKind       `json:"kind"`
	Product    ProductSnapshot   `json:"product"`
	Quantity   int32             `json:"quantity,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
	Carrier    map[string]string `json:"carrier,omitempty"`
}

func (e ProductEvent) Subject() string {
	switch e.Kind {
	case ProductCreated:
		return messaging.ProductCreatedSubject
	case ProductUpdated:
		return messaging.ProductUpdatedSubject
	case ProductDeleted:
		return messaging.ProductDeletedSubject
	case ProductSold:
		return messaging.ProductSoldSubject
	default:
		return fmt.Sprintf("products.%s", e.Kind)
	}
}

func (e ProductEvent) Payload() ([]byte, error) {
	return json.Marshal(e)
}

// DecodeProductEvent parses a payload produced by ProductEvent.Payload.
func DecodeProductEvent(data []byte) (ProductEvent, error) {
	var e ProductEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return ProductEvent{}, fmt.Errorf("failed to decode product event: %w", err)
	}
	return e, nil
}
