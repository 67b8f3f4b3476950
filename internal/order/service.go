package order

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Suj93s/campus-cafe-craft/internal/menu"
)

type Service struct {
	menuRepo menu.Repository
	repo     Repository
}

func NewService(menuRepo menu.Repository, repo Repository) *Service {
	return &Service{
		menuRepo: menuRepo,
		repo:     repo,
	}
}

// PlaceOrder resolves every cart line against the current menu, totals
// price and macros, and persists exactly one order. Any unknown item id
// aborts the whole call before anything is written.
//
// Payment is settled by the storefront's QR flow before this is called,
// so the order lands already marked completed.
func (s *Service) PlaceOrder(ctx context.Context, userID string, lines []LineRequest) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrInvalidInput
	}
	for _, line := range lines {
		if line.ID == "" || line.Quantity < 1 {
			return nil, ErrInvalidInput
		}
	}

	menuItems, err := s.menuRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMenuUnavailable, err)
	}

	byID := make(map[string]menu.Item, len(menuItems))
	for _, it := range menuItems {
		byID[it.ID] = it
	}

	o := &Order{
		ID:            uuid.New().String(),
		UserID:        userID,
		Items:         make([]Item, 0, len(lines)),
		PaymentMethod: "qr",
		PaymentStatus: "completed",
	}

	for _, line := range lines {
		mi, ok := byID[line.ID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrItemNotFound, line.ID)
		}

		qty := float64(line.Quantity)
		o.TotalProtein += mi.Protein * qty
		o.TotalCarbs += mi.Carbs * qty
		o.TotalFat += mi.Fat * qty
		o.TotalPrice += mi.Price * qty

		o.Items = append(o.Items, Item{
			ID:       mi.ID,
			Name:     mi.Name,
			Quantity: line.Quantity,
			Price:    mi.Price,
		})
	}

	if err := s.repo.Insert(ctx, o); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return o, nil
}

// History returns the caller's past orders, newest first.
func (s *Service) History(ctx context.Context, userID string) ([]Order, error) {
	orders, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrdersFetch, err)
	}
	if orders == nil {
		orders = []Order{}
	}
	return orders, nil
}
