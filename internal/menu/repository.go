package menu

import (
	"context"
	"errors"
)

var ErrItemNotFound = errors.New("menu item not found")

// Repository defines read access to the menu catalog.
// Order placement and recommendations depend ONLY on this interface.
type Repository interface {

	// List returns the full catalog in stable catalog order.
	List(ctx context.Context) ([]Item, error)

	// Get returns the item with the given id, or ErrItemNotFound.
	Get(ctx context.Context, id string) (*Item, error)
}
