package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ConnectPostgres opens the secondary catalog store. The relational mirror
// is queried with plain row filters only; no geospatial extension is assumed.
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

	log.Println("✅ Connected to catalog PostgreSQL")

	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates the catalog mirror tables. Shops and products use
// numeric ids here (the seeder's convention); the document store keeps its
// own object ids.
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	shopsSQL := `
		CREATE TABLE IF NOT EXISTS shops (
			id BIGINT PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			category VARCHAR(100),
			address VARCHAR(255),
			latitude DOUBLE PRECISION NOT NULL,
			longitude DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, shopsSQL); err != nil {
		return err
	}

	productsSQL := `
		CREATE TABLE IF NOT EXISTS products (
			id BIGINT PRIMARY KEY,
			shop_id BIGINT NOT NULL REFERENCES shops(id),
			name VARCHAR(100) NOT NULL,
			price NUMERIC(10,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, productsSQL); err != nil {
		return err
	}

	indexSQL := `
		CREATE INDEX IF NOT EXISTS idx_products_shop_id ON products(shop_id);
		CREATE INDEX IF NOT EXISTS idx_products_name ON products(name);
	`
	if _, err := pool.Exec(ctx, indexSQL); err != nil {
		return err
	}

	log.Println("✅ Catalog schema initialized")
	return nil
}
