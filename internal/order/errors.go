package order

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid items")
	ErrItemNotFound    = errors.New("menu item not found")
	ErrMenuUnavailable = errors.New("failed to fetch menu")
	ErrPersistence     = errors.New("failed to create order")
	ErrOrdersFetch     = errors.New("failed to fetch orders")
)
