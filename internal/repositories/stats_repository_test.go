package repositories

import (
	"testing"
	"time"

	"stocktrack_backend/internal/database"
	"stocktrack_backend/internal/models"
)

func seedShipment(t *testing.T, mgr *database.Manager, code, itemCode, typ, status string, qty int) {
	t.Helper()
	db, _ := mgr.Handle()
	now := time.Now()
	_, err := db.Exec(
		`INSERT INTO material_shipments
		 (code, material_name, item_code, quantity, unit, type, status, source, destination, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, 'pcs', $5, $6, '', '', $7, $8)`,
		code, "Material "+code, itemCode, qty, typ, status, now, now,
	)
	if err != nil {
		t.Fatalf("Failed to seed shipment: %v", err)
	}
}

func TestInventoryStatsCounters(t *testing.T) {
	mgr := setupTestDB(t)
	inv := NewInventoryRepository(mgr)
	repo := NewStatsRepository(mgr)

	a := newTestItem("ST001", "Plenty")
	a.Quantity = 40
	a.BuyPrice = 2
	if _, err := inv.CreateItem(a); err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}
	b := newTestItem("ST002", "Scarce")
	b.Quantity = 4
	b.BuyPrice = 10
	b.Status = models.ItemStatusInactive
	if _, err := inv.CreateItem(b); err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}

	stats, err := repo.InventoryStats()
	if err != nil {
		t.Fatalf("InventoryStats failed: %v", err)
	}
	if stats.TotalItems != 2 || stats.ActiveItems != 1 || stats.LowStockItems != 1 {
		t.Errorf("Unexpected counters: %+v", stats)
	}
	if stats.TotalValue != 40*2+4*10 {
		t.Errorf("Expected total value 120, got %v", stats.TotalValue)
	}
}

func TestShipmentFlowsGrouping(t *testing.T) {
	mgr := setupTestDB(t)
	repo := NewStatsRepository(mgr)

	seedShipment(t, mgr, "SHP-1", "ITM001", models.ShipmentTypeInbound, models.ShipmentStatusDelivered, 10)
	seedShipment(t, mgr, "SHP-2", "ITM001", models.ShipmentTypeInbound, models.ShipmentStatusDelivered, 5)
	seedShipment(t, mgr, "SHP-3", "ITM001", models.ShipmentTypeOutbound, models.ShipmentStatusShipped, 3)
	// No item reference, excluded from flows.
	seedShipment(t, mgr, "SHP-4", "", models.ShipmentTypeInbound, models.ShipmentStatusDelivered, 99)

	flows, err := repo.ShipmentFlows()
	if err != nil {
		t.Fatalf("ShipmentFlows failed: %v", err)
	}
	if len(flows) != 2 {
		t.Fatalf("Expected 2 aggregated buckets, got %d: %+v", len(flows), flows)
	}
	for _, f := range flows {
		if f.ItemCode != "ITM001" {
			t.Errorf("Unexpected item code %q", f.ItemCode)
		}
		switch {
		case f.Type == models.ShipmentTypeInbound && f.Status == models.ShipmentStatusDelivered:
			if f.Quantity != 15 {
				t.Errorf("Expected summed inbound quantity 15, got %d", f.Quantity)
			}
		case f.Type == models.ShipmentTypeOutbound && f.Status == models.ShipmentStatusShipped:
			if f.Quantity != 3 {
				t.Errorf("Expected outbound quantity 3, got %d", f.Quantity)
			}
		default:
			t.Errorf("Unexpected bucket: %+v", f)
		}
	}
}

func TestStatsDegradedMode(t *testing.T) {
	repo := NewStatsRepository(unavailableManager(t))

	stats, err := repo.InventoryStats()
	if err != nil {
		t.Fatalf("InventoryStats failed: %v", err)
	}
	if *stats != (models.InventoryStats{}) {
		t.Errorf("Expected all-zero stats, got %+v", stats)
	}

	flows, err := repo.ShipmentFlows()
	if err != nil || len(flows) != 0 {
		t.Errorf("Expected empty flows, got %v (err %v)", flows, err)
	}
	stocks, err := repo.ItemStocks()
	if err != nil || len(stocks) != 0 {
		t.Errorf("Expected empty stocks, got %v (err %v)", stocks, err)
	}
}
