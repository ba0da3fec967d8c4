// Package errors provides the sentinel errors shared by the store, repository and transports.
package errors

import "errors"

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrDuplicateName     = errors.New("product name already exists")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrStoreUnavailable  = errors.New("product store unavailable")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
)
