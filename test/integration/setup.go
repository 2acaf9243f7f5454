package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	createSchema(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// createSchema creates the database schema for testing.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS categories (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			image TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS products (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			price DECIMAL(10, 2) NOT NULL,
			original_price DECIMAL(10, 2),
			images JSONB,
			badge VARCHAR(100) NOT NULL DEFAULT '',
			badge_color VARCHAR(100) NOT NULL DEFAULT '',
			materials JSONB,
			tagline TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			category_id VARCHAR(64),
			variants JSONB,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_products_category_id ON products(category_id);
		CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at);

		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			customer_name VARCHAR(255) NOT NULL,
			customer_mobile VARCHAR(32) NOT NULL DEFAULT '',
			customer_address TEXT NOT NULL DEFAULT '',
			items JSONB NOT NULL,
			total_amount DECIMAL(12, 2) NOT NULL,
			status VARCHAR(20) NOT NULL,
			source VARCHAR(10) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_orders_source ON orders(source);

		CREATE TABLE IF NOT EXISTS site_settings (
			id SMALLINT PRIMARY KEY,
			background_url TEXT NOT NULL DEFAULT '',
			hero_text TEXT NOT NULL DEFAULT '',
			sub_text TEXT NOT NULL DEFAULT ''
		);
	`

	_, err := pool.Exec(ctx, schema)
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// SeedCatalog inserts test category and product data into the database.
func SeedCatalog(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	categories := []struct {
		id, name string
	}{
		{"C001", "Idols"},
		{"C002", "Pooja Essentials"},
	}
	for _, c := range categories {
		_, err := pool.Exec(ctx,
			"INSERT INTO categories (id, name, image, created_at) VALUES ($1, $2, '', $3)",
			c.id, c.name, time.Now(),
		)
		if err != nil {
			t.Fatalf("failed to seed category %s: %v", c.id, err)
		}
	}

	products := []struct {
		id, name   string
		price      float64
		categoryID string
		variants   string
	}{
		{"P001", "Brass Ganesha Idol", 2499, "C001",
			`[{"type":"Size","options":["Small",{"label":"Large","price":"4499"}]}]`},
		{"P002", "Clay Diya Set", 249, "C002", `[]`},
		{"P003", "Incense Holder", 399, "C002", `[]`},
	}
	for i, p := range products {
		// Stagger created_at so newest-first ordering is deterministic.
		createdAt := time.Now().Add(time.Duration(i) * time.Second)
		_, err := pool.Exec(ctx, `
			INSERT INTO products (id, name, price, images, materials, category_id, variants, created_at)
			VALUES ($1, $2, $3, '[]', '[]', $4, $5, $6)
		`, p.id, p.name, p.price, p.categoryID, p.variants, createdAt)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.id, err)
		}
	}
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"orders", "products", "categories", "site_settings"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
