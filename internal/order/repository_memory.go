package order

import (
	"context"
	"time"
)

// InMemoryRepository backs tests and local development.
type InMemoryRepository struct {
	orders []Order
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Insert(ctx context.Context, o *Order) error {
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	r.orders = append(r.orders, *o)
	return nil
}

func (r *InMemoryRepository) MostRecentForUser(ctx context.Context, userID string) (*Order, error) {
	var latest *Order
	for i := range r.orders {
		o := &r.orders[i]
		if o.UserID != userID {
			continue
		}
		if latest == nil || o.CreatedAt.After(latest.CreatedAt) {
			latest = o
		}
	}
	if latest == nil {
		return nil, nil
	}
	out := *latest
	return &out, nil
}

func (r *InMemoryRepository) ListForUser(ctx context.Context, userID string) ([]Order, error) {
	var out []Order
	for i := len(r.orders) - 1; i >= 0; i-- {
		if r.orders[i].UserID == userID {
			out = append(out, r.orders[i])
		}
	}
	return out, nil
}

// Len reports how many orders have been persisted.
func (r *InMemoryRepository) Len() int {
	return len(r.orders)
}
