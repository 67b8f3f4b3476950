package order

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert writes the order as a single row, item snapshots inline as JSONB.
// One statement, so the write is all-or-nothing.
func (r *PostgresRepository) Insert(ctx context.Context, o *Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}

	return r.db.QueryRow(ctx, `
		INSERT INTO orders (
			id, user_id, items,
			total_protein, total_carbs, total_fat, total_price,
			payment_method, payment_status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`,
		o.ID, o.UserID, items,
		o.TotalProtein, o.TotalCarbs, o.TotalFat, o.TotalPrice,
		o.PaymentMethod, o.PaymentStatus,
	).Scan(&o.CreatedAt)
}

func (r *PostgresRepository) MostRecentForUser(ctx context.Context, userID string) (*Order, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, items,
		       total_protein, total_carbs, total_fat, total_price,
		       payment_method, payment_status, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, userID)

	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return o, nil
}

func (r *PostgresRepository) ListForUser(ctx context.Context, userID string) ([]Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, items,
		       total_protein, total_carbs, total_fat, total_price,
		       payment_method, payment_status, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

func scanOrder(row pgx.Row) (*Order, error) {
	o := &Order{}
	var items []byte

	err := row.Scan(
		&o.ID, &o.UserID, &items,
		&o.TotalProtein, &o.TotalCarbs, &o.TotalFat, &o.TotalPrice,
		&o.PaymentMethod, &o.PaymentStatus, &o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, err
	}
	return o, nil
}
