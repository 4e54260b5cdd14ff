// Command dbtool initializes the database schema and seeds the package type
// reference data. It is idempotent and safe to re-run against an existing
// database.
package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS package_types (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS user_sessions (
		id UUID PRIMARY KEY,
		token VARCHAR(255) NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		last_activity TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS packages (
		id UUID PRIMARY KEY,
		name VARCHAR(200) NOT NULL,
		weight DOUBLE PRECISION NOT NULL,
		price_usd DOUBLE PRECISION NOT NULL,
		package_type_id UUID NOT NULL REFERENCES package_types (id),
		user_session_id UUID NOT NULL REFERENCES user_sessions (id),
		shipping_cost_rub DOUBLE PRECISION,
		is_shipping_cost_calculated BOOLEAN NOT NULL DEFAULT FALSE,
		shipping_company_id UUID,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_packages_session ON packages (user_session_id)`,
	`CREATE INDEX IF NOT EXISTS idx_packages_uncosted
		ON packages (created_at) WHERE NOT is_shipping_cost_calculated`,
}

var seedTypes = []struct {
	name        string
	description string
}{
	{"clothes", "Clothing and textiles"},
	{"electronics", "Electronic devices and accessories"},
	{"misc", "Everything else"},
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		env("DB_HOST", "localhost"),
		env("DB_PORT", "5432"),
		env("DB_USER", "postgres"),
		env("DB_PASSWORD", "postgres"),
		env("DB_NAME", "parcels"),
		env("DB_SSLMODE", "disable"),
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err = db.Ping(); err != nil {
		log.Fatalf("database is unreachable: %v", err)
	}

	log.Println("Initializing database schema...")
	if err = initSchema(db); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding package types...")
	if err = seedPackageTypes(db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}

func initSchema(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

func seedPackageTypes(db *sql.DB) error {
	for _, t := range seedTypes {
		_, err := db.Exec(`
			INSERT INTO package_types (id, name, description)
			VALUES ($1, $2, $3)
			ON CONFLICT (name) DO NOTHING
		`, uuid.NewString(), t.name, t.description)
		if err != nil {
			return fmt.Errorf("seed package type %s: %w", t.name, err)
		}
	}
	return nil
}

func env(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
