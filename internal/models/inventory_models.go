package models

import "time"

// Item lifecycle statuses.
const (
	ItemStatusActive   = "active"
	ItemStatusInactive = "inactive"
)

// Category represents a product category, seeded at initialization
type Category struct {
	ID          int64     `json:"id" db:"id"`
	Code        string    `json:"code" db:"code" binding:"required"`
	Name        string    `json:"name" db:"name" binding:"required"`
	Description *string   `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Warehouse represents a physical storage site, seeded at initialization
type Warehouse struct {
	ID        int64     `json:"id" db:"id"`
	Code      string    `json:"code" db:"code" binding:"required"`
	Name      string    `json:"name" db:"name" binding:"required"`
	Location  *string   `json:"location,omitempty" db:"location"`
	Capacity  *int      `json:"capacity,omitempty" db:"capacity"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// InventoryItem represents a tracked stock item. Category and warehouse are
// soft references by code; CategoryName/WarehouseName are enrichment fields
// filled in by read queries and stay nil when the referenced row is absent.
type InventoryItem struct {
	ID            int64     `json:"id" db:"id"`
	Code          string    `json:"code" db:"code" binding:"required"`
	Name          string    `json:"name" db:"name" binding:"required"`
	Unit          string    `json:"unit" db:"unit"`
	BuyPrice      float64   `json:"buy_price" db:"buy_price"`
	SellPrice     *float64  `json:"sell_price,omitempty" db:"sell_price"`
	Location      string    `json:"location" db:"location"`
	WarehouseCode *string   `json:"warehouse_code,omitempty" db:"warehouse_code"`
	CategoryCode  *string   `json:"category_code,omitempty" db:"category_code"`
	Status        string    `json:"status" db:"status"`
	Quantity      int       `json:"quantity" db:"quantity"`
	MinStockLevel int       `json:"min_stock_level" db:"min_stock_level"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`

	CategoryName  *string `json:"category_name,omitempty"`
	WarehouseName *string `json:"warehouse_name,omitempty"`
}
