package repositories

import (
	"database/sql"
	"testing"
	"time"

	"stocktrack_backend/internal/database"

	_ "modernc.org/sqlite"
)

// setupTestDB opens an in-memory database with the application schema and
// wraps it in a Manager. A single connection keeps every statement on the
// same in-memory database.
func setupTestDB(t *testing.T) *database.Manager {
	t.Helper()

	testDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test DB: %v", err)
	}
	testDB.SetMaxOpenConns(1)
	t.Cleanup(func() { testDB.Close() })

	statements := []string{
		`CREATE TABLE categories (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			code TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			description TEXT,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE warehouses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			code TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			location TEXT,
			capacity INTEGER,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE inventory_items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			code TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			unit TEXT NOT NULL DEFAULT 'pcs',
			buy_price REAL NOT NULL DEFAULT 0,
			sell_price REAL,
			location TEXT NOT NULL DEFAULT '',
			warehouse_code TEXT,
			category_code TEXT,
			status TEXT NOT NULL DEFAULT 'active',
			quantity INTEGER NOT NULL DEFAULT 0,
			min_stock_level INTEGER NOT NULL DEFAULT 10,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE material_shipments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			code TEXT NOT NULL UNIQUE,
			material_name TEXT NOT NULL,
			item_code TEXT,
			category_code TEXT,
			quantity INTEGER NOT NULL DEFAULT 0,
			unit TEXT NOT NULL DEFAULT 'pcs',
			type TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			source TEXT NOT NULL DEFAULT '',
			destination TEXT NOT NULL DEFAULT '',
			shipped_date DATETIME,
			estimated_date DATETIME,
			received_date DATETIME,
			handler TEXT,
			notes TEXT,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE order_shipments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			code TEXT NOT NULL UNIQUE,
			customer_name TEXT NOT NULL,
			item_code TEXT,
			product_name TEXT NOT NULL DEFAULT '',
			quantity INTEGER NOT NULL DEFAULT 0,
			total_value REAL NOT NULL DEFAULT 0,
			priority TEXT NOT NULL DEFAULT 'medium',
			status TEXT NOT NULL DEFAULT 'processing',
			order_date DATETIME,
			ship_date DATETIME,
			delivery_date DATETIME,
			tracking_number TEXT,
			notes TEXT,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			full_name TEXT,
			role TEXT NOT NULL DEFAULT 'staff',
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE notifications (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			message TEXT NOT NULL,
			type TEXT NOT NULL DEFAULT 'info',
			is_read BOOLEAN NOT NULL DEFAULT FALSE,
			created_at DATETIME NOT NULL
		)`,
		`CREATE TABLE scan_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			code TEXT NOT NULL,
			scan_type TEXT NOT NULL DEFAULT 'barcode',
			item_code TEXT,
			product_name TEXT,
			quantity INTEGER NOT NULL DEFAULT 1,
			status TEXT NOT NULL DEFAULT 'ok',
			scanned_by TEXT,
			notes TEXT,
			created_at DATETIME NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := testDB.Exec(stmt); err != nil {
			t.Fatalf("Failed to create test schema: %v", err)
		}
	}

	return database.ManagerForHandle(testDB)
}

// seedReference inserts the categories and warehouses the enrichment joins
// resolve against.
func seedReference(t *testing.T, mgr *database.Manager) {
	t.Helper()
	db, ok := mgr.Handle()
	if !ok {
		t.Fatal("test database unexpectedly unavailable")
	}
	now := time.Now()
	rows := []struct{ table, code, name string }{
		{"categories", "CAT001", "Electronics"},
		{"categories", "CAT002", "Accessories"},
		{"warehouses", "WH001", "Main Warehouse"},
	}
	for _, r := range rows {
		_, err := db.Exec(
			`INSERT INTO `+r.table+` (code, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
			r.code, r.name, now, now,
		)
		if err != nil {
			t.Fatalf("Failed to seed %s: %v", r.table, err)
		}
	}
}

// unavailableManager is a Manager whose backing store can never be reached.
func unavailableManager(t *testing.T) *database.Manager {
	t.Helper()
	return database.NewManager("postgres", "")
}
