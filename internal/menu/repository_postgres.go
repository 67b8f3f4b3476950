package menu

import (
	"context"
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

// List returns the catalog in seed order (position is assigned on insert).
func (r *PostgresRepository) List(ctx context.Context) ([]Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, price, protein, carbs, fat
		FROM menu
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Price, &it.Protein, &it.Carbs, &it.Fat); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*Item, error) {
	it := &Item{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, price, protein, carbs, fat
		FROM menu
		WHERE id = $1
	`, id).Scan(&it.ID, &it.Name, &it.Price, &it.Protein, &it.Carbs, &it.Fat)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return it, nil
}
