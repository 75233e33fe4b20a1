package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"stocktrack_backend/internal/database"
	"stocktrack_backend/internal/models"
)

// ReferenceRepository covers the two read-mostly lookup tables, categories
// and warehouses. Both are seeded at startup and rarely mutated.
type ReferenceRepository interface {
	GetCategories(f Filters) ([]models.Category, error)
	GetCategoryByID(id int64) (*models.Category, error)
	CreateCategory(category *models.Category) (int64, error)
	UpdateCategory(category *models.Category) error
	DeleteCategory(id int64) (*models.Category, error)

	GetWarehouses(f Filters) ([]models.Warehouse, error)
	GetWarehouseByID(id int64) (*models.Warehouse, error)
	CreateWarehouse(warehouse *models.Warehouse) (int64, error)
	UpdateWarehouse(warehouse *models.Warehouse) error
	DeleteWarehouse(id int64) (*models.Warehouse, error)
}

type referenceRepository struct {
	mgr *database.Manager
}

// NewReferenceRepository creates a new instance of ReferenceRepository.
func NewReferenceRepository(mgr *database.Manager) ReferenceRepository {
	return &referenceRepository{mgr: mgr}
}

var categoryQuery = TableQuery{
	Base:          `SELECT id, code, name, description, created_at, updated_at FROM categories`,
	SearchColumns: []string{"code", "name"},
	Columns:       map[string]string{},
	OrderBy:       "name",
}

var warehouseQuery = TableQuery{
	Base:          `SELECT id, code, name, location, capacity, created_at, updated_at FROM warehouses`,
	SearchColumns: []string{"code", "name", "location"},
	Columns:       map[string]string{},
	OrderBy:       "name",
}

func scanCategory(s scanner) (*models.Category, error) {
	category := &models.Category{}
	var description sql.NullString
	err := s.Scan(&category.ID, &category.Code, &category.Name, &description,
		&category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if description.Valid {
		category.Description = &description.String
	}
	return category, nil
}

func scanWarehouse(s scanner) (*models.Warehouse, error) {
	warehouse := &models.Warehouse{}
	var location sql.NullString
	var capacity sql.NullInt64
	err := s.Scan(&warehouse.ID, &warehouse.Code, &warehouse.Name, &location,
		&capacity, &warehouse.CreatedAt, &warehouse.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if location.Valid {
		warehouse.Location = &location.String
	}
	if capacity.Valid {
		c := int(capacity.Int64)
		warehouse.Capacity = &c
	}
	return warehouse, nil
}

// --- Category methods ---

func (r *referenceRepository) GetCategories(f Filters) ([]models.Category, error) {
	categories := []models.Category{}
	db, ok := r.mgr.Handle()
	if !ok {
		return categories, nil
	}

	query, args := categoryQuery.Build(f)
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getting categories: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning category: %v", ErrDatabaseError, err)
		}
		categories = append(categories, *category)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating categories: %v", ErrDatabaseError, err)
	}
	return categories, nil
}

func (r *referenceRepository) GetCategoryByID(id int64) (*models.Category, error) {
	db, ok := r.mgr.Handle()
	if !ok {
		return nil, ErrStoreUnavailable
	}
	category, err := scanCategory(db.QueryRow(
		`SELECT id, code, name, description, created_at, updated_at FROM categories WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting category %d: %v", ErrDatabaseError, id, err)
	}
	return category, nil
}

func (r *referenceRepository) CreateCategory(category *models.Category) (int64, error) {
	db, ok := r.mgr.Handle()
	if !ok {
		return 0, ErrStoreUnavailable
	}
	now := time.Now()
	err := db.QueryRow(
		`INSERT INTO categories (code, name, description, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		category.Code, category.Name, category.Description, now, now,
	).Scan(&category.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: category code '%s' already exists", ErrDuplicateKey, category.Code)
		}
		return 0, fmt.Errorf("%w: creating category: %v", ErrDatabaseError, err)
	}
	return category.ID, nil
}

func (r *referenceRepository) UpdateCategory(category *models.Category) error {
	db, ok := r.mgr.Handle()
	if !ok {
		return ErrStoreUnavailable
	}
	result, err := db.Exec(
		`UPDATE categories SET code = $1, name = $2, description = $3, updated_at = $4 WHERE id = $5`,
		category.Code, category.Name, category.Description, time.Now(), category.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: category code '%s' already exists", ErrDuplicateKey, category.Code)
		}
		return fmt.Errorf("%w: updating category %d: %v", ErrDatabaseError, category.ID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *referenceRepository) DeleteCategory(id int64) (*models.Category, error) {
	category, err := r.GetCategoryByID(id)
	if err != nil {
		return nil, err
	}
	db, _ := r.mgr.Handle()
	if _, err := db.Exec(`DELETE FROM categories WHERE id = $1`, id); err != nil {
		return nil, fmt.Errorf("%w: deleting category %d: %v", ErrDatabaseError, id, err)
	}
	return category, nil
}

// --- Warehouse methods ---

func (r *referenceRepository) GetWarehouses(f Filters) ([]models.Warehouse, error) {
	warehouses := []models.Warehouse{}
	db, ok := r.mgr.Handle()
	if !ok {
		return warehouses, nil
	}

	query, args := warehouseQuery.Build(f)
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getting warehouses: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		warehouse, err := scanWarehouse(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning warehouse: %v", ErrDatabaseError, err)
		}
		warehouses = append(warehouses, *warehouse)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating warehouses: %v", ErrDatabaseError, err)
	}
	return warehouses, nil
}

func (r *referenceRepository) GetWarehouseByID(id int64) (*models.Warehouse, error) {
	db, ok := r.mgr.Handle()
	if !ok {
		return nil, ErrStoreUnavailable
	}
	warehouse, err := scanWarehouse(db.QueryRow(
		`SELECT id, code, name, location, capacity, created_at, updated_at FROM warehouses WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting warehouse %d: %v", ErrDatabaseError, id, err)
	}
	return warehouse, nil
}

func (r *referenceRepository) CreateWarehouse(warehouse *models.Warehouse) (int64, error) {
	db, ok := r.mgr.Handle()
	if !ok {
		return 0, ErrStoreUnavailable
	}
	now := time.Now()
	err := db.QueryRow(
		`INSERT INTO warehouses (code, name, location, capacity, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		warehouse.Code, warehouse.Name, warehouse.Location, warehouse.Capacity, now, now,
	).Scan(&warehouse.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: warehouse code '%s' already exists", ErrDuplicateKey, warehouse.Code)
		}
		return 0, fmt.Errorf("%w: creating warehouse: %v", ErrDatabaseError, err)
	}
	return warehouse.ID, nil
}

func (r *referenceRepository) UpdateWarehouse(warehouse *models.Warehouse) error {
	db, ok := r.mgr.Handle()
	if !ok {
		return ErrStoreUnavailable
	}
	result, err := db.Exec(
		`UPDATE warehouses SET code = $1, name = $2, location = $3, capacity = $4, updated_at = $5 WHERE id = $6`,
		warehouse.Code, warehouse.Name, warehouse.Location, warehouse.Capacity, time.Now(), warehouse.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: warehouse code '%s' already exists", ErrDuplicateKey, warehouse.Code)
		}
		return fmt.Errorf("%w: updating warehouse %d: %v", ErrDatabaseError, warehouse.ID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *referenceRepository) DeleteWarehouse(id int64) (*models.Warehouse, error) {
	warehouse, err := r.GetWarehouseByID(id)
	if err != nil {
		return nil, err
	}
	db, _ := r.mgr.Handle()
	if _, err := db.Exec(`DELETE FROM warehouses WHERE id = $1`, id); err != nil {
		return nil, fmt.Errorf("%w: deleting warehouse %d: %v", ErrDatabaseError, id, err)
	}
	return warehouse, nil
}
