package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Suj93s/campus-cafe-craft/internal/menu"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("Connected to PostgreSQL")

	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates or updates the database schema and seeds the catalog.
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	usersSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, usersSQL); err != nil {
		return err
	}

	// -------------------------------
	// MENU
	// -------------------------------
	menuSQL := `
		CREATE TABLE IF NOT EXISTS menu (
			id VARCHAR(100) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
			protein NUMERIC(10,2) NOT NULL DEFAULT 0,
			carbs NUMERIC(10,2) NOT NULL DEFAULT 0,
			fat NUMERIC(10,2) NOT NULL DEFAULT 0,
			position SERIAL
		)
	`
	if _, err := pool.Exec(ctx, menuSQL); err != nil {
		return err
	}

	// -------------------------------
	// ORDERS (line snapshots kept inline as JSONB)
	// -------------------------------
	ordersSQL := `
		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			items JSONB NOT NULL,
			total_protein NUMERIC(10,2) NOT NULL DEFAULT 0,
			total_carbs NUMERIC(10,2) NOT NULL DEFAULT 0,
			total_fat NUMERIC(10,2) NOT NULL DEFAULT 0,
			total_price NUMERIC(10,2) NOT NULL DEFAULT 0,
			payment_method VARCHAR(50) NOT NULL,
			payment_status VARCHAR(50) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, ordersSQL); err != nil {
		return err
	}

	ordersIndexSQL := `
		CREATE INDEX IF NOT EXISTS idx_orders_user_created
		ON orders (user_id, created_at DESC)
	`
	if _, err := pool.Exec(ctx, ordersIndexSQL); err != nil {
		return err
	}

	if err := seedMenu(ctx, pool); err != nil {
		return err
	}

	log.Println("Schema initialized successfully")
	return nil
}

// seedMenu inserts the launch catalog. Existing rows are left untouched so
// price edits made directly in the store survive restarts.
func seedMenu(ctx context.Context, pool *pgxpool.Pool) error {
	for _, it := range menu.Catalog {
		_, err := pool.Exec(ctx, `
			INSERT INTO menu (id, name, price, protein, carbs, fat)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO NOTHING
		`, it.ID, it.Name, it.Price, it.Protein, it.Carbs, it.Fat)
		if err != nil {
			return err
		}
	}
	return nil
}
