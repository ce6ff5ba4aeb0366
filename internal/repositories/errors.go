package repositories

import "errors"

var (
	// ErrProductNotFound is returned by GetByID when no product exists for a
	// well-formed id. Callers resolving order items treat this as "skip".
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidProductID is returned when an id is not a valid object id
	// hex string. Unlike a missing product, this is a hard failure.
	ErrInvalidProductID = errors.New("invalid product id")
)
