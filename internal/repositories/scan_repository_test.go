package repositories

import (
	"errors"
	"fmt"
	"testing"

	"stocktrack_backend/internal/models"
)

func TestScanCRUD(t *testing.T) {
	mgr := setupTestDB(t)
	repo := NewScanRepository(mgr)

	record := &models.ScanRecord{
		Code:     "4006381333931",
		ScanType: "barcode",
		Quantity: 2,
		Status:   "ok",
	}
	if err := repo.CreateScan(record); err != nil {
		t.Fatalf("CreateScan failed: %v", err)
	}

	got, err := repo.GetScanByID(record.ID)
	if err != nil {
		t.Fatalf("GetScanByID failed: %v", err)
	}
	if got.Code != record.Code || got.Quantity != 2 {
		t.Errorf("Round trip mismatch: %+v", got)
	}

	scans, err := repo.GetScans(Filters{"status": "ok"})
	if err != nil || len(scans) != 1 {
		t.Errorf("Expected 1 scan, got %v (err %v)", scans, err)
	}

	if err := repo.DeleteScan(record.ID); err != nil {
		t.Fatalf("DeleteScan failed: %v", err)
	}
	if _, err := repo.GetScanByID(record.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
}

func TestScanFallbackBuffer(t *testing.T) {
	repo := NewScanRepository(unavailableManager(t))

	record := &models.ScanRecord{Code: "CODE1", ScanType: "barcode", Quantity: 1, Status: "ok"}
	if err := repo.CreateScan(record); err != nil {
		t.Fatalf("CreateScan should buffer, got: %v", err)
	}

	got, err := repo.GetScanByID(record.ID)
	if err != nil {
		t.Fatalf("GetScanByID from buffer failed: %v", err)
	}
	if got.Code != "CODE1" {
		t.Errorf("Expected buffered scan, got %+v", got)
	}

	if err := repo.DeleteScan(record.ID); err != nil {
		t.Fatalf("DeleteScan from buffer failed: %v", err)
	}
	if _, err := repo.GetScanByID(record.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after buffer delete, got %v", err)
	}
}

func TestScanFallbackBufferCapped(t *testing.T) {
	repo := NewScanRepository(unavailableManager(t))

	for i := 0; i < scanFallbackCapacity+10; i++ {
		record := &models.ScanRecord{Code: fmt.Sprintf("C%d", i), ScanType: "barcode", Quantity: 1, Status: "ok"}
		if err := repo.CreateScan(record); err != nil {
			t.Fatalf("CreateScan failed: %v", err)
		}
	}

	scans, err := repo.GetScans(Filters{})
	if err != nil {
		t.Fatalf("GetScans failed: %v", err)
	}
	if len(scans) != scanFallbackCapacity {
		t.Fatalf("Expected buffer capped at %d, got %d", scanFallbackCapacity, len(scans))
	}
	if scans[0].Code != fmt.Sprintf("C%d", scanFallbackCapacity+9) {
		t.Errorf("Expected newest scan first, got %s", scans[0].Code)
	}
}
