package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"stocktrack_backend/internal/database"
	"stocktrack_backend/internal/models"
)

// Quantity adjustment modes.
const (
	AdjustSet      = "set"
	AdjustAdd      = "add"
	AdjustSubtract = "subtract"
)

// InventoryRepository defines the interface for inventory-item database
// operations. Reads degrade to empty results when the backing store is
// unavailable; writes return ErrStoreUnavailable.
type InventoryRepository interface {
	GetItems(f Filters) ([]models.InventoryItem, error)
	GetItemByID(id int64) (*models.InventoryItem, error)
	GetItemByCode(code string) (*models.InventoryItem, error)
	CreateItem(item *models.InventoryItem) (int64, error)
	UpdateItem(item *models.InventoryItem) error
	DeleteItem(id int64) (*models.InventoryItem, error)
	DeleteItems(ids []int64) ([]models.InventoryItem, error)
	AdjustQuantity(id int64, amount int, mode string) (int, error)
}

type inventoryRepository struct {
	mgr *database.Manager
}

// NewInventoryRepository creates a new instance of InventoryRepository.
func NewInventoryRepository(mgr *database.Manager) InventoryRepository {
	return &inventoryRepository{mgr: mgr}
}

// itemColumns is the enriched column list shared by every item read.
const itemColumns = `
	i.id, i.code, i.name, i.unit, i.buy_price, i.sell_price, i.location,
	i.warehouse_code, i.category_code, i.status, i.quantity, i.min_stock_level,
	i.created_at, i.updated_at,
	c.name AS category_name, w.name AS warehouse_name`

const itemBase = `SELECT` + itemColumns + `
	FROM inventory_items i
	LEFT JOIN categories c ON i.category_code = c.code
	LEFT JOIN warehouses w ON i.warehouse_code = w.code`

var itemQuery = TableQuery{
	Base:          itemBase,
	SearchColumns: []string{"i.code", "i.name", "i.location"},
	Columns: map[string]string{
		"status":    "i.status",
		"category":  "i.category_code",
		"warehouse": "i.warehouse_code",
	},
	OrderBy: "i.updated_at DESC",
}

func scanItem(s scanner) (*models.InventoryItem, error) {
	item := &models.InventoryItem{}
	var sellPrice sql.NullFloat64
	var warehouseCode, categoryCode, categoryName, warehouseName sql.NullString

	err := s.Scan(
		&item.ID, &item.Code, &item.Name, &item.Unit, &item.BuyPrice, &sellPrice,
		&item.Location, &warehouseCode, &categoryCode, &item.Status,
		&item.Quantity, &item.MinStockLevel, &item.CreatedAt, &item.UpdatedAt,
		&categoryName, &warehouseName,
	)
	if err != nil {
		return nil, err
	}
	if sellPrice.Valid {
		item.SellPrice = &sellPrice.Float64
	}
	if warehouseCode.Valid {
		item.WarehouseCode = &warehouseCode.String
	}
	if categoryCode.Valid {
		item.CategoryCode = &categoryCode.String
	}
	if categoryName.Valid {
		item.CategoryName = &categoryName.String
	}
	if warehouseName.Valid {
		item.WarehouseName = &warehouseName.String
	}
	return item, nil
}

func (r *inventoryRepository) GetItems(f Filters) ([]models.InventoryItem, error) {
	items := []models.InventoryItem{}
	db, ok := r.mgr.Handle()
	if !ok {
		return items, nil
	}

	query, args := itemQuery.Build(f)
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getting inventory items: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning inventory item: %v", ErrDatabaseError, err)
		}
		items = append(items, *item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating inventory items: %v", ErrDatabaseError, err)
	}
	return items, nil
}

func (r *inventoryRepository) GetItemByID(id int64) (*models.InventoryItem, error) {
	db, ok := r.mgr.Handle()
	if !ok {
		return nil, ErrStoreUnavailable
	}

	item, err := scanItem(db.QueryRow(itemBase+` WHERE i.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting inventory item %d: %v", ErrDatabaseError, id, err)
	}
	return item, nil
}

func (r *inventoryRepository) GetItemByCode(code string) (*models.InventoryItem, error) {
	db, ok := r.mgr.Handle()
	if !ok {
		return nil, ErrStoreUnavailable
	}

	item, err := scanItem(db.QueryRow(itemBase+` WHERE i.code = $1`, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting inventory item by code %s: %v", ErrDatabaseError, code, err)
	}
	return item, nil
}

func (r *inventoryRepository) CreateItem(item *models.InventoryItem) (int64, error) {
	db, ok := r.mgr.Handle()
	if !ok {
		return 0, ErrStoreUnavailable
	}

	query := `INSERT INTO inventory_items
	          (code, name, unit, buy_price, sell_price, location, warehouse_code,
	           category_code, status, quantity, min_stock_level, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	          RETURNING id`
	now := time.Now()
	err := db.QueryRow(query,
		item.Code, item.Name, item.Unit, item.BuyPrice, item.SellPrice,
		item.Location, item.WarehouseCode, item.CategoryCode, item.Status,
		item.Quantity, item.MinStockLevel, now, now,
	).Scan(&item.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: item code '%s' already exists", ErrDuplicateKey, item.Code)
		}
		return 0, fmt.Errorf("%w: creating inventory item: %v", ErrDatabaseError, err)
	}
	return item.ID, nil
}

func (r *inventoryRepository) UpdateItem(item *models.InventoryItem) error {
	db, ok := r.mgr.Handle()
	if !ok {
		return ErrStoreUnavailable
	}

	query := `UPDATE inventory_items SET
	          code = $1, name = $2, unit = $3, buy_price = $4, sell_price = $5,
	          location = $6, warehouse_code = $7, category_code = $8, status = $9,
	          quantity = $10, min_stock_level = $11, updated_at = $12
	          WHERE id = $13`
	result, err := db.Exec(query,
		item.Code, item.Name, item.Unit, item.BuyPrice, item.SellPrice,
		item.Location, item.WarehouseCode, item.CategoryCode, item.Status,
		item.Quantity, item.MinStockLevel, time.Now(), item.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: item code '%s' already exists", ErrDuplicateKey, item.Code)
		}
		return fmt.Errorf("%w: updating inventory item %d: %v", ErrDatabaseError, item.ID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *inventoryRepository) DeleteItem(id int64) (*models.InventoryItem, error) {
	item, err := r.GetItemByID(id)
	if err != nil {
		return nil, err
	}
	db, _ := r.mgr.Handle()
	if _, err := db.Exec(`DELETE FROM inventory_items WHERE id = $1`, id); err != nil {
		return nil, fmt.Errorf("%w: deleting inventory item %d: %v", ErrDatabaseError, id, err)
	}
	return item, nil
}

func (r *inventoryRepository) DeleteItems(ids []int64) ([]models.InventoryItem, error) {
	deleted := []models.InventoryItem{}
	if len(ids) == 0 {
		return deleted, nil
	}
	db, ok := r.mgr.Handle()
	if !ok {
		return nil, ErrStoreUnavailable
	}

	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	in := placeholders(1, len(ids))

	// Collect the rows that will actually be deleted; missing ids are
	// simply not reported.
	rows, err := db.Query(itemBase+` WHERE i.id IN (`+in+`)`, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: selecting inventory items for delete: %v", ErrDatabaseError, err)
	}
	defer rows.Close()
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning inventory item: %v", ErrDatabaseError, err)
		}
		deleted = append(deleted, *item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating inventory items: %v", ErrDatabaseError, err)
	}

	if err := deleteByIDs(db, "inventory_items", ids); err != nil {
		return nil, fmt.Errorf("%w: deleting inventory items: %v", ErrDatabaseError, err)
	}
	return deleted, nil
}

func (r *inventoryRepository) AdjustQuantity(id int64, amount int, mode string) (int, error) {
	db, ok := r.mgr.Handle()
	if !ok {
		return 0, ErrStoreUnavailable
	}

	var expr string
	switch mode {
	case AdjustSet:
		expr = `$1`
	case AdjustAdd:
		expr = `quantity + $1`
	case AdjustSubtract:
		// Floored at zero, never negative.
		expr = `CASE WHEN quantity - $1 < 0 THEN 0 ELSE quantity - $1 END`
	default:
		return 0, fmt.Errorf("unknown adjustment mode %q", mode)
	}

	query := `UPDATE inventory_items SET quantity = ` + expr + `, updated_at = $2 WHERE id = $3 RETURNING quantity`
	var newQuantity int
	err := db.QueryRow(query, amount, time.Now(), id).Scan(&newQuantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("%w: adjusting quantity of item %d: %v", ErrDatabaseError, id, err)
	}
	return newQuantity, nil
}
