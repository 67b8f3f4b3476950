package order

import (
	"context"
	"errors"
	"testing"

	"github.com/Suj93s/campus-cafe-craft/internal/menu"
)

func testMenu() menu.Repository {
	return menu.NewInMemoryRepository([]menu.Item{
		{ID: "tea", Name: "Tea", Price: 10, Protein: 1, Carbs: 7, Fat: 1.5},
		{ID: "cutlet", Name: "Cutlet", Price: 15, Protein: 8, Carbs: 18, Fat: 10},
		{ID: "cream-bun", Name: "Cream Bun", Price: 20, Protein: 5, Carbs: 35, Fat: 9},
	})
}

func TestPlaceOrderTotals(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(testMenu(), repo)

	o, err := service.PlaceOrder(context.Background(), "user-1", []LineRequest{
		{ID: "tea", Quantity: 2},
		{ID: "cutlet", Quantity: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if o.TotalPrice != 35 {
		t.Errorf("expected total price 35, got %v", o.TotalPrice)
	}
	if o.TotalProtein != 2*1+8 {
		t.Errorf("expected total protein 10, got %v", o.TotalProtein)
	}
	if o.TotalCarbs != 2*7+18 {
		t.Errorf("expected total carbs 32, got %v", o.TotalCarbs)
	}
	if o.TotalFat != 2*1.5+10 {
		t.Errorf("expected total fat 13, got %v", o.TotalFat)
	}

	if o.PaymentMethod != "qr" || o.PaymentStatus != "completed" {
		t.Errorf("unexpected payment fields: %s/%s", o.PaymentMethod, o.PaymentStatus)
	}
	if o.ID == "" {
		t.Error("expected generated order id")
	}
}

func TestPlaceOrderSnapshotsLinesInInputOrder(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(testMenu(), repo)

	o, err := service.PlaceOrder(context.Background(), "user-1", []LineRequest{
		{ID: "cream-bun", Quantity: 1},
		{ID: "tea", Quantity: 3},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(o.Items) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(o.Items))
	}
	if o.Items[0].ID != "cream-bun" || o.Items[1].ID != "tea" {
		t.Errorf("line items out of input order: %+v", o.Items)
	}
	if o.Items[1].Quantity != 3 || o.Items[1].Price != 10 {
		t.Errorf("bad snapshot for tea line: %+v", o.Items[1])
	}
	if o.Items[0].Name != "Cream Bun" {
		t.Errorf("expected snapshot to carry the menu name, got %q", o.Items[0].Name)
	}
}

func TestPlaceOrderUnknownItemPersistsNothing(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(testMenu(), repo)

	_, err := service.PlaceOrder(context.Background(), "user-1", []LineRequest{
		{ID: "tea", Quantity: 1},
		{ID: "samosa", Quantity: 1},
	})
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}

	if repo.Len() != 0 {
		t.Errorf("expected no persisted orders after failed call, got %d", repo.Len())
	}
}

func TestPlaceOrderInvalidInput(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(testMenu(), repo)

	cases := []struct {
		name  string
		lines []LineRequest
	}{
		{"empty", nil},
		{"zero quantity", []LineRequest{{ID: "tea", Quantity: 0}}},
		{"negative quantity", []LineRequest{{ID: "tea", Quantity: -2}}},
		{"missing id", []LineRequest{{Quantity: 1}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.PlaceOrder(context.Background(), "user-1", tc.lines)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}

	if repo.Len() != 0 {
		t.Errorf("expected no persisted orders, got %d", repo.Len())
	}
}

type failingMenuRepo struct{}

func (failingMenuRepo) List(ctx context.Context) ([]menu.Item, error) {
	return nil, errors.New("connection refused")
}

func (failingMenuRepo) Get(ctx context.Context, id string) (*menu.Item, error) {
	return nil, errors.New("connection refused")
}

func TestPlaceOrderMenuReadFailure(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(failingMenuRepo{}, repo)

	_, err := service.PlaceOrder(context.Background(), "user-1", []LineRequest{
		{ID: "tea", Quantity: 1},
	})
	if !errors.Is(err, ErrMenuUnavailable) {
		t.Fatalf("expected ErrMenuUnavailable, got %v", err)
	}
}

type failingOrderRepo struct {
	InMemoryRepository
}

func (failingOrderRepo) Insert(ctx context.Context, o *Order) error {
	return errors.New("write timeout")
}

func TestPlaceOrderPersistenceFailure(t *testing.T) {
	service := NewService(testMenu(), &failingOrderRepo{})

	_, err := service.PlaceOrder(context.Background(), "user-1", []LineRequest{
		{ID: "tea", Quantity: 1},
	})
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(testMenu(), repo)

	for _, id := range []string{"tea", "cutlet"} {
		if _, err := service.PlaceOrder(context.Background(), "user-1", []LineRequest{{ID: id, Quantity: 1}}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if _, err := service.PlaceOrder(context.Background(), "user-2", []LineRequest{{ID: "tea", Quantity: 1}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	orders, err := service.History(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].Items[0].ID != "cutlet" {
		t.Errorf("expected newest order first, got %+v", orders[0].Items)
	}
}
