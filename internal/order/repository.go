package order

import "context"

// Repository defines all database operations for orders.
type Repository interface {

	// Insert writes one order row atomically.
	Insert(ctx context.Context, o *Order) error

	// MostRecentForUser returns the newest order for the user by created_at,
	// or (nil, nil) when the user has never ordered.
	MostRecentForUser(ctx context.Context, userID string) (*Order, error)

	// ListForUser returns the user's full order history, newest first.
	ListForUser(ctx context.Context, userID string) ([]Order, error)
}
