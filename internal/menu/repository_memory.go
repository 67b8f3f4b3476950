package menu

import "context"

// InMemoryRepository backs tests and local development.
type InMemoryRepository struct {
	items []Item
}

func NewInMemoryRepository(items []Item) *InMemoryRepository {
	return &InMemoryRepository{items: items}
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Item, error) {
	out := make([]Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*Item, error) {
	for i := range r.items {
		if r.items[i].ID == id {
			it := r.items[i]
			return &it, nil
		}
	}
	return nil, ErrItemNotFound
}
