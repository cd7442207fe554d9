package store

import (
	"context"
	"errors"

	"catalog/models"
)

// Store is what the route handlers program against. Implementations must
// send reads to the replica and writes to the primary.
type Store interface {
	// List returns one page of products ordered by ascending id. The slice
	// is never nil.
	List(ctx context.Context, limit, offset int) ([]models.Product, error)
	// Create inserts the product and returns the stored row, id included.
	Create(ctx context.Context, p models.NewProduct) (models.Product, error)
	// Update rewrites exactly the fields carried by the patch and returns
	// the full row after the change.
	Update(ctx context.Context, id int, patch models.ProductPatch) (models.Product, error)
}

var (
	// ErrNotFound reports an update whose id matched no row.
	ErrNotFound = errors.New("product not found")
	// ErrNoRowReturned reports a write whose RETURNING clause came back empty.
	ErrNoRowReturned = errors.New("no row returned")
)
