package order

import "time"

// LineRequest is one cart line as submitted by the storefront.
type LineRequest struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// Item is the per-line snapshot stored inside an order. Price is captured
// at order time, so later catalog edits never rewrite history.
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Order is the persisted record. Append-only: written once per checkout,
// never mutated.
type Order struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Items         []Item    `json:"items"`
	TotalProtein  float64   `json:"total_protein"`
	TotalCarbs    float64   `json:"total_carbs"`
	TotalFat      float64   `json:"total_fat"`
	TotalPrice    float64   `json:"total_price"`
	PaymentMethod string    `json:"payment_method"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
}
