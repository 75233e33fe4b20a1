package repositories

import (
	"database/sql"
	"fmt"

	"golang.org/x/sync/errgroup"

	"stocktrack_backend/internal/database"
	"stocktrack_backend/internal/models"
)

// LowStockThreshold is the fixed quantity below which an item counts as low
// stock in the inventory summary.
const LowStockThreshold = 10

// ShipmentFlow is one aggregated material-shipment bucket: total quantity
// per referenced item code, direction and status.
type ShipmentFlow struct {
	ItemCode string
	Type     string
	Status   string
	Quantity int
}

// ItemStock is the slice of an inventory row the impact projection needs.
type ItemStock struct {
	Code          string
	Name          string
	Quantity      int
	MinStockLevel int
}

// StatsRepository runs the aggregate queries behind the derived-statistics
// reports. Each report issues its independent count/sum statements
// concurrently and assembles the results; an unavailable store yields
// all-zero reports, never an error.
type StatsRepository interface {
	InventoryStats() (*models.InventoryStats, error)
	MaterialShipmentStats() (*models.MaterialShipmentStats, error)
	OrderShipmentStats() (*models.OrderShipmentStats, error)
	ShipmentFlows() ([]ShipmentFlow, error)
	ItemStocks() ([]ItemStock, error)
}

type statsRepository struct {
	mgr *database.Manager
}

// NewStatsRepository creates a new instance of StatsRepository.
func NewStatsRepository(mgr *database.Manager) StatsRepository {
	return &statsRepository{mgr: mgr}
}

func countQuery(db *sql.DB, dest *int, query string, args ...interface{}) func() error {
	return func() error {
		if err := db.QueryRow(query, args...).Scan(dest); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrDatabaseError, query, err)
		}
		return nil
	}
}

func (r *statsRepository) InventoryStats() (*models.InventoryStats, error) {
	stats := &models.InventoryStats{}
	db, ok := r.mgr.Handle()
	if !ok {
		return stats, nil
	}

	var g errgroup.Group
	g.Go(countQuery(db, &stats.TotalItems, `SELECT COUNT(*) FROM inventory_items`))
	g.Go(countQuery(db, &stats.ActiveItems,
		`SELECT COUNT(*) FROM inventory_items WHERE status = $1`, models.ItemStatusActive))
	g.Go(countQuery(db, &stats.LowStockItems,
		`SELECT COUNT(*) FROM inventory_items WHERE quantity < $1`, LowStockThreshold))
	g.Go(func() error {
		err := db.QueryRow(`SELECT COALESCE(SUM(buy_price * quantity), 0) FROM inventory_items`).
			Scan(&stats.TotalValue)
		if err != nil {
			return fmt.Errorf("%w: summing inventory value: %v", ErrDatabaseError, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *statsRepository) MaterialShipmentStats() (*models.MaterialShipmentStats, error) {
	stats := &models.MaterialShipmentStats{}
	db, ok := r.mgr.Handle()
	if !ok {
		return stats, nil
	}

	var g errgroup.Group
	g.Go(countQuery(db, &stats.Total, `SELECT COUNT(*) FROM material_shipments`))
	g.Go(countQuery(db, &stats.Pending,
		`SELECT COUNT(*) FROM material_shipments WHERE status = $1`, models.ShipmentStatusPending))
	g.Go(countQuery(db, &stats.Shipped,
		`SELECT COUNT(*) FROM material_shipments WHERE status = $1`, models.ShipmentStatusShipped))
	g.Go(countQuery(db, &stats.Delivered,
		`SELECT COUNT(*) FROM material_shipments WHERE status = $1`, models.ShipmentStatusDelivered))
	g.Go(countQuery(db, &stats.Inbound,
		`SELECT COUNT(*) FROM material_shipments WHERE type = $1`, models.ShipmentTypeInbound))
	g.Go(countQuery(db, &stats.Outbound,
		`SELECT COUNT(*) FROM material_shipments WHERE type = $1`, models.ShipmentTypeOutbound))
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *statsRepository) OrderShipmentStats() (*models.OrderShipmentStats, error) {
	stats := &models.OrderShipmentStats{}
	db, ok := r.mgr.Handle()
	if !ok {
		return stats, nil
	}

	var g errgroup.Group
	g.Go(countQuery(db, &stats.Total, `SELECT COUNT(*) FROM order_shipments`))
	g.Go(countQuery(db, &stats.Processing,
		`SELECT COUNT(*) FROM order_shipments WHERE status = $1`, models.OrderStatusProcessing))
	g.Go(countQuery(db, &stats.Shipped,
		`SELECT COUNT(*) FROM order_shipments WHERE status = $1`, models.OrderStatusShipped))
	g.Go(countQuery(db, &stats.Delivered,
		`SELECT COUNT(*) FROM order_shipments WHERE status = $1`, models.OrderStatusDelivered))
	g.Go(countQuery(db, &stats.LowPriority,
		`SELECT COUNT(*) FROM order_shipments WHERE priority = $1`, models.OrderPriorityLow))
	g.Go(countQuery(db, &stats.MediumPriority,
		`SELECT COUNT(*) FROM order_shipments WHERE priority = $1`, models.OrderPriorityMedium))
	g.Go(countQuery(db, &stats.HighPriority,
		`SELECT COUNT(*) FROM order_shipments WHERE priority = $1`, models.OrderPriorityHigh))
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *statsRepository) ShipmentFlows() ([]ShipmentFlow, error) {
	flows := []ShipmentFlow{}
	db, ok := r.mgr.Handle()
	if !ok {
		return flows, nil
	}

	rows, err := db.Query(
		`SELECT item_code, type, status, COALESCE(SUM(quantity), 0)
		 FROM material_shipments
		 WHERE item_code IS NOT NULL AND item_code <> ''
		 GROUP BY item_code, type, status`)
	if err != nil {
		return nil, fmt.Errorf("%w: aggregating shipment flows: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var f ShipmentFlow
		if err := rows.Scan(&f.ItemCode, &f.Type, &f.Status, &f.Quantity); err != nil {
			return nil, fmt.Errorf("%w: scanning shipment flow: %v", ErrDatabaseError, err)
		}
		flows = append(flows, f)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating shipment flows: %v", ErrDatabaseError, err)
	}
	return flows, nil
}

func (r *statsRepository) ItemStocks() ([]ItemStock, error) {
	stocks := []ItemStock{}
	db, ok := r.mgr.Handle()
	if !ok {
		return stocks, nil
	}

	rows, err := db.Query(`SELECT code, name, quantity, min_stock_level FROM inventory_items`)
	if err != nil {
		return nil, fmt.Errorf("%w: getting item stocks: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var s ItemStock
		if err := rows.Scan(&s.Code, &s.Name, &s.Quantity, &s.MinStockLevel); err != nil {
			return nil, fmt.Errorf("%w: scanning item stock: %v", ErrDatabaseError, err)
		}
		stocks = append(stocks, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating item stocks: %v", ErrDatabaseError, err)
	}
	return stocks, nil
}
