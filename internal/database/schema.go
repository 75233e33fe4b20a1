package database

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// Default administrator account seeded on first startup.
const (
	DefaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

var tableStatements = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id SERIAL PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		description TEXT,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS warehouses (
		id SERIAL PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		location TEXT,
		capacity INTEGER,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS inventory_items (
		id SERIAL PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		unit TEXT NOT NULL DEFAULT 'pcs',
		buy_price NUMERIC(14,2) NOT NULL DEFAULT 0 CHECK (buy_price >= 0),
		sell_price NUMERIC(14,2) CHECK (sell_price >= 0),
		location TEXT NOT NULL DEFAULT '',
		warehouse_code TEXT,
		category_code TEXT,
		status TEXT NOT NULL DEFAULT 'active',
		quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		min_stock_level INTEGER NOT NULL DEFAULT 10,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS material_shipments (
		id SERIAL PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		material_name TEXT NOT NULL,
		item_code TEXT,
		category_code TEXT,
		quantity INTEGER NOT NULL DEFAULT 0,
		unit TEXT NOT NULL DEFAULT 'pcs',
		type TEXT NOT NULL DEFAULT 'inbound',
		status TEXT NOT NULL DEFAULT 'pending',
		source TEXT NOT NULL DEFAULT '',
		destination TEXT NOT NULL DEFAULT '',
		shipped_date TIMESTAMPTZ,
		estimated_date TIMESTAMPTZ,
		received_date TIMESTAMPTZ,
		handler TEXT,
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS order_shipments (
		id SERIAL PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		customer_name TEXT NOT NULL,
		item_code TEXT,
		product_name TEXT NOT NULL DEFAULT '',
		quantity INTEGER NOT NULL DEFAULT 0,
		total_value NUMERIC(14,2) NOT NULL DEFAULT 0,
		priority TEXT NOT NULL DEFAULT 'medium',
		status TEXT NOT NULL DEFAULT 'processing',
		order_date TIMESTAMPTZ,
		ship_date TIMESTAMPTZ,
		delivery_date TIMESTAMPTZ,
		tracking_number TEXT,
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		full_name TEXT,
		role TEXT NOT NULL DEFAULT 'admin',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		message TEXT NOT NULL,
		type TEXT NOT NULL DEFAULT 'info',
		is_read BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS scan_history (
		id SERIAL PRIMARY KEY,
		code TEXT NOT NULL,
		scan_type TEXT NOT NULL DEFAULT 'barcode',
		item_code TEXT,
		product_name TEXT,
		quantity INTEGER NOT NULL DEFAULT 1,
		status TEXT NOT NULL DEFAULT 'ok',
		scanned_by TEXT,
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL
	)`,
}

var seedCategories = []struct{ Code, Name, Description string }{
	{"CAT001", "Electronics", "Electronic components and devices"},
	{"CAT002", "Accessories", "Supporting parts and accessories"},
	{"CAT003", "Raw Materials", "Unprocessed production inputs"},
}

var seedWarehouses = []struct{ Code, Name, Location string }{
	{"WH001", "Main Warehouse", "Building A"},
	{"WH002", "Overflow Warehouse", "Building B"},
}

// EnsureSchema creates the managed tables if absent and seeds the default
// categories, warehouses and administrator account. It is idempotent and a
// no-op when the backing store is unavailable.
func EnsureSchema(m *Manager) error {
	db, ok := m.Handle()
	if !ok {
		log.Warn().Msg("skipping schema initialization, database unavailable")
		return nil
	}

	for _, stmt := range tableStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("creating table: %w", err)
		}
	}
	if err := seedDefaults(db); err != nil {
		return err
	}
	log.Info().Msg("database schema ensured")
	return nil
}

func seedDefaults(db *sql.DB) error {
	for _, c := range seedCategories {
		_, err := db.Exec(
			`INSERT INTO categories (code, name, description, created_at, updated_at)
			 VALUES ($1, $2, $3, NOW(), NOW())
			 ON CONFLICT (code) DO NOTHING`,
			c.Code, c.Name, c.Description,
		)
		if err != nil {
			return fmt.Errorf("seeding category %s: %w", c.Code, err)
		}
	}

	for _, w := range seedWarehouses {
		_, err := db.Exec(
			`INSERT INTO warehouses (code, name, location, created_at, updated_at)
			 VALUES ($1, $2, $3, NOW(), NOW())
			 ON CONFLICT (code) DO NOTHING`,
			w.Code, w.Name, w.Location,
		)
		if err != nil {
			return fmt.Errorf("seeding warehouse %s: %w", w.Code, err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing default admin password: %w", err)
	}
	_, err = db.Exec(
		`INSERT INTO users (username, password_hash, full_name, role, created_at, updated_at)
		 VALUES ($1, $2, $3, 'admin', NOW(), NOW())
		 ON CONFLICT (username) DO NOTHING`,
		DefaultAdminUsername, string(hash), "Administrator",
	)
	if err != nil {
		return fmt.Errorf("seeding admin user: %w", err)
	}
	return nil
}
