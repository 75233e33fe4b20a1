package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"stocktrack_backend/internal/database"
	"stocktrack_backend/internal/models"
)

// OrderShipmentRepository defines the interface for order-shipment database
// operations.
type OrderShipmentRepository interface {
	GetOrders(f Filters) ([]models.OrderShipment, error)
	GetOrderByID(id int64) (*models.OrderShipment, error)
	CreateOrder(order *models.OrderShipment) (int64, error)
	UpdateOrder(order *models.OrderShipment) error
	DeleteOrder(id int64) (*models.OrderShipment, error)
	DeleteOrders(ids []int64) ([]models.OrderShipment, error)
}

type orderShipmentRepository struct {
	mgr *database.Manager
}

// NewOrderShipmentRepository creates a new instance of OrderShipmentRepository.
func NewOrderShipmentRepository(mgr *database.Manager) OrderShipmentRepository {
	return &orderShipmentRepository{mgr: mgr}
}

const orderShipmentBase = `SELECT
	id, code, customer_name, item_code, product_name, quantity, total_value,
	priority, status, order_date, ship_date, delivery_date, tracking_number,
	notes, created_at, updated_at
	FROM order_shipments`

var orderShipmentQuery = TableQuery{
	Base:          orderShipmentBase,
	SearchColumns: []string{"code", "customer_name", "product_name", "tracking_number"},
	Columns: map[string]string{
		"status":   "status",
		"priority": "priority",
		"date":     "order_date",
	},
	OrderBy: "updated_at DESC",
}

func scanOrderShipment(s scanner) (*models.OrderShipment, error) {
	order := &models.OrderShipment{}
	var itemCode, trackingNumber, notes sql.NullString
	var orderDate, shipDate, deliveryDate sql.NullTime

	err := s.Scan(
		&order.ID, &order.Code, &order.CustomerName, &itemCode, &order.ProductName,
		&order.Quantity, &order.TotalValue, &order.Priority, &order.Status,
		&orderDate, &shipDate, &deliveryDate, &trackingNumber, &notes,
		&order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if itemCode.Valid {
		order.ItemCode = &itemCode.String
	}
	if trackingNumber.Valid {
		order.TrackingNumber = &trackingNumber.String
	}
	if notes.Valid {
		order.Notes = &notes.String
	}
	if orderDate.Valid {
		order.OrderDate = &orderDate.Time
	}
	if shipDate.Valid {
		order.ShipDate = &shipDate.Time
	}
	if deliveryDate.Valid {
		order.DeliveryDate = &deliveryDate.Time
	}
	return order, nil
}

func (r *orderShipmentRepository) GetOrders(f Filters) ([]models.OrderShipment, error) {
	orders := []models.OrderShipment{}
	db, ok := r.mgr.Handle()
	if !ok {
		return orders, nil
	}

	query, args := orderShipmentQuery.Build(f)
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getting order shipments: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		order, err := scanOrderShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning order shipment: %v", ErrDatabaseError, err)
		}
		orders = append(orders, *order)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating order shipments: %v", ErrDatabaseError, err)
	}
	return orders, nil
}

func (r *orderShipmentRepository) GetOrderByID(id int64) (*models.OrderShipment, error) {
	db, ok := r.mgr.Handle()
	if !ok {
		return nil, ErrStoreUnavailable
	}

	order, err := scanOrderShipment(db.QueryRow(orderShipmentBase+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting order shipment %d: %v", ErrDatabaseError, id, err)
	}
	return order, nil
}

func (r *orderShipmentRepository) CreateOrder(order *models.OrderShipment) (int64, error) {
	db, ok := r.mgr.Handle()
	if !ok {
		return 0, ErrStoreUnavailable
	}

	query := `INSERT INTO order_shipments
	          (code, customer_name, item_code, product_name, quantity, total_value,
	           priority, status, order_date, ship_date, delivery_date,
	           tracking_number, notes, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	          RETURNING id`
	now := time.Now()
	err := db.QueryRow(query,
		order.Code, order.CustomerName, order.ItemCode, order.ProductName,
		order.Quantity, order.TotalValue, order.Priority, order.Status,
		order.OrderDate, order.ShipDate, order.DeliveryDate,
		order.TrackingNumber, order.Notes, now, now,
	).Scan(&order.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: order code '%s' already exists", ErrDuplicateKey, order.Code)
		}
		return 0, fmt.Errorf("%w: creating order shipment: %v", ErrDatabaseError, err)
	}
	return order.ID, nil
}

func (r *orderShipmentRepository) UpdateOrder(order *models.OrderShipment) error {
	db, ok := r.mgr.Handle()
	if !ok {
		return ErrStoreUnavailable
	}

	query := `UPDATE order_shipments SET
	          code = $1, customer_name = $2, item_code = $3, product_name = $4,
	          quantity = $5, total_value = $6, priority = $7, status = $8,
	          order_date = $9, ship_date = $10, delivery_date = $11,
	          tracking_number = $12, notes = $13, updated_at = $14
	          WHERE id = $15`
	result, err := db.Exec(query,
		order.Code, order.CustomerName, order.ItemCode, order.ProductName,
		order.Quantity, order.TotalValue, order.Priority, order.Status,
		order.OrderDate, order.ShipDate, order.DeliveryDate,
		order.TrackingNumber, order.Notes, time.Now(), order.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: order code '%s' already exists", ErrDuplicateKey, order.Code)
		}
		return fmt.Errorf("%w: updating order shipment %d: %v", ErrDatabaseError, order.ID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *orderShipmentRepository) DeleteOrder(id int64) (*models.OrderShipment, error) {
	order, err := r.GetOrderByID(id)
	if err != nil {
		return nil, err
	}
	db, _ := r.mgr.Handle()
	if _, err := db.Exec(`DELETE FROM order_shipments WHERE id = $1`, id); err != nil {
		return nil, fmt.Errorf("%w: deleting order shipment %d: %v", ErrDatabaseError, id, err)
	}
	return order, nil
}

func (r *orderShipmentRepository) DeleteOrders(ids []int64) ([]models.OrderShipment, error) {
	deleted := []models.OrderShipment{}
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

	rows, err := db.Query(orderShipmentBase+` WHERE id IN (`+in+`)`, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: selecting order shipments for delete: %v", ErrDatabaseError, err)
	}
	defer rows.Close()
	for rows.Next() {
		order, err := scanOrderShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning order shipment: %v", ErrDatabaseError, err)
		}
		deleted = append(deleted, *order)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating order shipments: %v", ErrDatabaseError, err)
	}

	if err := deleteByIDs(db, "order_shipments", ids); err != nil {
		return nil, fmt.Errorf("%w: deleting order shipments: %v", ErrDatabaseError, err)
	}
	return deleted, nil
}
