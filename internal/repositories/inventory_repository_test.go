package repositories

import (
	"errors"
	"testing"

	"stocktrack_backend/internal/models"
)

func strp(s string) *string { return &s }

func newTestItem(code, name string) *models.InventoryItem {
	return &models.InventoryItem{
		Code:          code,
		Name:          name,
		Unit:          "pcs",
		BuyPrice:      2.5,
		Status:        models.ItemStatusActive,
		Quantity:      50,
		MinStockLevel: 10,
	}
}

func TestCreateAndGetItem(t *testing.T) {
	mgr := setupTestDB(t)
	seedReference(t, mgr)
	repo := NewInventoryRepository(mgr)

	item := newTestItem("ITM001", "Resistor Pack")
	item.CategoryCode = strp("CAT001")
	item.WarehouseCode = strp("WH001")
	id, err := repo.CreateItem(item)
	if err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}
	if id == 0 {
		t.Fatal("Expected non-zero id")
	}

	got, err := repo.GetItemByID(id)
	if err != nil {
		t.Fatalf("GetItemByID failed: %v", err)
	}
	if got.Code != "ITM001" || got.Name != "Resistor Pack" || got.Quantity != 50 {
		t.Errorf("Round trip mismatch: %+v", got)
	}
	if got.CategoryName == nil || *got.CategoryName != "Electronics" {
		t.Errorf("Expected category name Electronics, got %v", got.CategoryName)
	}
	if got.WarehouseName == nil || *got.WarehouseName != "Main Warehouse" {
		t.Errorf("Expected warehouse name Main Warehouse, got %v", got.WarehouseName)
	}
}

func TestGetItemEnrichmentNilForUnknownReferences(t *testing.T) {
	mgr := setupTestDB(t)
	repo := NewInventoryRepository(mgr)

	item := newTestItem("ITM002", "Loose Part")
	item.CategoryCode = strp("CAT999")
	id, err := repo.CreateItem(item)
	if err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}

	got, err := repo.GetItemByID(id)
	if err != nil {
		t.Fatalf("GetItemByID failed: %v", err)
	}
	if got.CategoryName != nil {
		t.Errorf("Expected nil category name for dangling reference, got %v", *got.CategoryName)
	}
}

func TestCreateItemDuplicateCode(t *testing.T) {
	mgr := setupTestDB(t)
	repo := NewInventoryRepository(mgr)

	if _, err := repo.CreateItem(newTestItem("ITM003", "First")); err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}
	_, err := repo.CreateItem(newTestItem("ITM003", "Second"))
	if !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("Expected ErrDuplicateKey, got %v", err)
	}
}

func TestGetItemsFiltering(t *testing.T) {
	mgr := setupTestDB(t)
	repo := NewInventoryRepository(mgr)

	active := newTestItem("ITM010", "Active Widget")
	if _, err := repo.CreateItem(active); err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}
	inactive := newTestItem("ITM011", "Retired Widget")
	inactive.Status = models.ItemStatusInactive
	if _, err := repo.CreateItem(inactive); err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}

	items, err := repo.GetItems(Filters{"status": models.ItemStatusActive})
	if err != nil {
		t.Fatalf("GetItems failed: %v", err)
	}
	if len(items) != 1 || items[0].Code != "ITM010" {
		t.Errorf("Expected only the active item, got %+v", items)
	}

	items, err = repo.GetItems(Filters{"search": "RETIRED"})
	if err != nil {
		t.Fatalf("GetItems failed: %v", err)
	}
	if len(items) != 1 || items[0].Code != "ITM011" {
		t.Errorf("Expected case-insensitive match on name, got %+v", items)
	}
}

func TestAdjustQuantityModes(t *testing.T) {
	mgr := setupTestDB(t)
	repo := NewInventoryRepository(mgr)

	item := newTestItem("ITM020", "Counted Widget")
	item.Quantity = 10
	id, err := repo.CreateItem(item)
	if err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}

	qty, err := repo.AdjustQuantity(id, 5, AdjustAdd)
	if err != nil || qty != 15 {
		t.Errorf("add: expected 15, got %d (err %v)", qty, err)
	}
	qty, err = repo.AdjustQuantity(id, 5, AdjustSubtract)
	if err != nil || qty != 10 {
		t.Errorf("subtract: expected 10, got %d (err %v)", qty, err)
	}
	qty, err = repo.AdjustQuantity(id, 42, AdjustSet)
	if err != nil || qty != 42 {
		t.Errorf("set: expected 42, got %d (err %v)", qty, err)
	}
}

func TestAdjustQuantitySubtractFloorsAtZero(t *testing.T) {
	mgr := setupTestDB(t)
	repo := NewInventoryRepository(mgr)

	item := newTestItem("ITM021", "Scarce Widget")
	item.Quantity = 3
	id, err := repo.CreateItem(item)
	if err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}

	qty, err := repo.AdjustQuantity(id, 10, AdjustSubtract)
	if err != nil {
		t.Fatalf("AdjustQuantity failed: %v", err)
	}
	if qty != 0 {
		t.Errorf("Expected quantity floored at 0, got %d", qty)
	}
}

func TestAdjustQuantityUnknownItem(t *testing.T) {
	mgr := setupTestDB(t)
	repo := NewInventoryRepository(mgr)

	if _, err := repo.AdjustQuantity(999, 1, AdjustAdd); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestDeleteItems(t *testing.T) {
	mgr := setupTestDB(t)
	repo := NewInventoryRepository(mgr)

	id1, err := repo.CreateItem(newTestItem("ITM030", "One"))
	if err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}
	id2, err := repo.CreateItem(newTestItem("ITM031", "Two"))
	if err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}

	// Missing ids are skipped, present ones deleted and reported.
	deleted, err := repo.DeleteItems([]int64{id1, id2, 999})
	if err != nil {
		t.Fatalf("DeleteItems failed: %v", err)
	}
	if len(deleted) != 2 {
		t.Errorf("Expected 2 deleted items, got %d", len(deleted))
	}

	items, err := repo.GetItems(Filters{})
	if err != nil {
		t.Fatalf("GetItems failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Expected empty table after bulk delete, got %d items", len(items))
	}
}

func TestDeleteItemsEmptyInput(t *testing.T) {
	mgr := setupTestDB(t)
	repo := NewInventoryRepository(mgr)

	deleted, err := repo.DeleteItems(nil)
	if err != nil {
		t.Fatalf("DeleteItems failed: %v", err)
	}
	if len(deleted) != 0 {
		t.Errorf("Expected no deletions, got %d", len(deleted))
	}
}

func TestInventoryDegradedMode(t *testing.T) {
	repo := NewInventoryRepository(unavailableManager(t))

	items, err := repo.GetItems(Filters{})
	if err != nil || len(items) != 0 {
		t.Errorf("Expected empty list without error, got %v / %v", items, err)
	}

	if _, err := repo.GetItemByID(1); !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("Expected ErrStoreUnavailable from GetItemByID, got %v", err)
	}
	if _, err := repo.CreateItem(newTestItem("ITM040", "Ghost")); !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("Expected ErrStoreUnavailable from CreateItem, got %v", err)
	}
	if _, err := repo.AdjustQuantity(1, 1, AdjustAdd); !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("Expected ErrStoreUnavailable from AdjustQuantity, got %v", err)
	}
}
