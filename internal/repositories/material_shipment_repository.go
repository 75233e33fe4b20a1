package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"stocktrack_backend/internal/database"
	"stocktrack_backend/internal/models"
)

// MaterialShipmentRepository defines the interface for material-shipment
// database operations.
type MaterialShipmentRepository interface {
	GetShipments(f Filters) ([]models.MaterialShipment, error)
	GetShipmentByID(id int64) (*models.MaterialShipment, error)
	CreateShipment(shipment *models.MaterialShipment) (int64, error)
	UpdateShipment(shipment *models.MaterialShipment) error
	DeleteShipment(id int64) (*models.MaterialShipment, error)
	DeleteShipments(ids []int64) ([]models.MaterialShipment, error)
}

type materialShipmentRepository struct {
	mgr *database.Manager
}

// NewMaterialShipmentRepository creates a new instance of MaterialShipmentRepository.
func NewMaterialShipmentRepository(mgr *database.Manager) MaterialShipmentRepository {
	return &materialShipmentRepository{mgr: mgr}
}

const materialShipmentBase = `SELECT
	id, code, material_name, item_code, category_code, quantity, unit, type,
	status, source, destination, shipped_date, estimated_date, received_date,
	handler, notes, created_at, updated_at
	FROM material_shipments`

var materialShipmentQuery = TableQuery{
	Base:          materialShipmentBase,
	SearchColumns: []string{"code", "material_name", "source", "destination"},
	Columns: map[string]string{
		"status":   "status",
		"type":     "type",
		"category": "category_code",
		"date":     "shipped_date",
	},
	OrderBy: "updated_at DESC",
}

func scanMaterialShipment(s scanner) (*models.MaterialShipment, error) {
	shipment := &models.MaterialShipment{}
	var itemCode, categoryCode, handler, notes sql.NullString
	var shippedDate, estimatedDate, receivedDate sql.NullTime

	err := s.Scan(
		&shipment.ID, &shipment.Code, &shipment.MaterialName, &itemCode,
		&categoryCode, &shipment.Quantity, &shipment.Unit, &shipment.Type,
		&shipment.Status, &shipment.Source, &shipment.Destination,
		&shippedDate, &estimatedDate, &receivedDate, &handler, &notes,
		&shipment.CreatedAt, &shipment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if itemCode.Valid {
		shipment.ItemCode = &itemCode.String
	}
	if categoryCode.Valid {
		shipment.CategoryCode = &categoryCode.String
	}
	if handler.Valid {
		shipment.Handler = &handler.String
	}
	if notes.Valid {
		shipment.Notes = &notes.String
	}
	if shippedDate.Valid {
		shipment.ShippedDate = &shippedDate.Time
	}
	if estimatedDate.Valid {
		shipment.EstimatedDate = &estimatedDate.Time
	}
	if receivedDate.Valid {
		shipment.ReceivedDate = &receivedDate.Time
	}
	return shipment, nil
}

func (r *materialShipmentRepository) GetShipments(f Filters) ([]models.MaterialShipment, error) {
	shipments := []models.MaterialShipment{}
	db, ok := r.mgr.Handle()
	if !ok {
		return shipments, nil
	}

	query, args := materialShipmentQuery.Build(f)
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getting material shipments: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		shipment, err := scanMaterialShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning material shipment: %v", ErrDatabaseError, err)
		}
		shipments = append(shipments, *shipment)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating material shipments: %v", ErrDatabaseError, err)
	}
	return shipments, nil
}

func (r *materialShipmentRepository) GetShipmentByID(id int64) (*models.MaterialShipment, error) {
	db, ok := r.mgr.Handle()
	if !ok {
		return nil, ErrStoreUnavailable
	}

	shipment, err := scanMaterialShipment(db.QueryRow(materialShipmentBase+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting material shipment %d: %v", ErrDatabaseError, id, err)
	}
	return shipment, nil
}

func (r *materialShipmentRepository) CreateShipment(shipment *models.MaterialShipment) (int64, error) {
	db, ok := r.mgr.Handle()
	if !ok {
		return 0, ErrStoreUnavailable
	}

	query := `INSERT INTO material_shipments
	          (code, material_name, item_code, category_code, quantity, unit, type,
	           status, source, destination, shipped_date, estimated_date,
	           received_date, handler, notes, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	          RETURNING id`
	now := time.Now()
	err := db.QueryRow(query,
		shipment.Code, shipment.MaterialName, shipment.ItemCode, shipment.CategoryCode,
		shipment.Quantity, shipment.Unit, shipment.Type, shipment.Status,
		shipment.Source, shipment.Destination, shipment.ShippedDate,
		shipment.EstimatedDate, shipment.ReceivedDate, shipment.Handler,
		shipment.Notes, now, now,
	).Scan(&shipment.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: shipment code '%s' already exists", ErrDuplicateKey, shipment.Code)
		}
		return 0, fmt.Errorf("%w: creating material shipment: %v", ErrDatabaseError, err)
	}
	return shipment.ID, nil
}

func (r *materialShipmentRepository) UpdateShipment(shipment *models.MaterialShipment) error {
	db, ok := r.mgr.Handle()
	if !ok {
		return ErrStoreUnavailable
	}

	query := `UPDATE material_shipments SET
	          code = $1, material_name = $2, item_code = $3, category_code = $4,
	          quantity = $5, unit = $6, type = $7, status = $8, source = $9,
	          destination = $10, shipped_date = $11, estimated_date = $12,
	          received_date = $13, handler = $14, notes = $15, updated_at = $16
	          WHERE id = $17`
	result, err := db.Exec(query,
		shipment.Code, shipment.MaterialName, shipment.ItemCode, shipment.CategoryCode,
		shipment.Quantity, shipment.Unit, shipment.Type, shipment.Status,
		shipment.Source, shipment.Destination, shipment.ShippedDate,
		shipment.EstimatedDate, shipment.ReceivedDate, shipment.Handler,
		shipment.Notes, time.Now(), shipment.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: shipment code '%s' already exists", ErrDuplicateKey, shipment.Code)
		}
		return fmt.Errorf("%w: updating material shipment %d: %v", ErrDatabaseError, shipment.ID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *materialShipmentRepository) DeleteShipment(id int64) (*models.MaterialShipment, error) {
	shipment, err := r.GetShipmentByID(id)
	if err != nil {
		return nil, err
	}
	db, _ := r.mgr.Handle()
	if _, err := db.Exec(`DELETE FROM material_shipments WHERE id = $1`, id); err != nil {
		return nil, fmt.Errorf("%w: deleting material shipment %d: %v", ErrDatabaseError, id, err)
	}
	return shipment, nil
}

func (r *materialShipmentRepository) DeleteShipments(ids []int64) ([]models.MaterialShipment, error) {
	deleted := []models.MaterialShipment{}
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

	rows, err := db.Query(materialShipmentBase+` WHERE id IN (`+in+`)`, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: selecting material shipments for delete: %v", ErrDatabaseError, err)
	}
	defer rows.Close()
	for rows.Next() {
		shipment, err := scanMaterialShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning material shipment: %v", ErrDatabaseError, err)
		}
		deleted = append(deleted, *shipment)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating material shipments: %v", ErrDatabaseError, err)
	}

	if err := deleteByIDs(db, "material_shipments", ids); err != nil {
		return nil, fmt.Errorf("%w: deleting material shipments: %v", ErrDatabaseError, err)
	}
	return deleted, nil
}
