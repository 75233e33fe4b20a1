package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"stocktrack_backend/internal/models"
	"stocktrack_backend/internal/repositories"
)

// fakeOrderRepo is an in-memory OrderShipmentRepository.
type fakeOrderRepo struct {
	orders []models.OrderShipment
}

func (f *fakeOrderRepo) GetOrders(repositories.Filters) ([]models.OrderShipment, error) {
	return append([]models.OrderShipment{}, f.orders...), nil
}

func (f *fakeOrderRepo) GetOrderByID(id int64) (*models.OrderShipment, error) {
	for _, o := range f.orders {
		if o.ID == id {
			copied := o
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeOrderRepo) CreateOrder(o *models.OrderShipment) (int64, error) {
	o.ID = int64(len(f.orders) + 1)
	f.orders = append(f.orders, *o)
	return o.ID, nil
}

func (f *fakeOrderRepo) UpdateOrder(o *models.OrderShipment) error { return nil }

func (f *fakeOrderRepo) DeleteOrder(id int64) (*models.OrderShipment, error) {
	return nil, repositories.ErrNotFound
}

func (f *fakeOrderRepo) DeleteOrders(ids []int64) ([]models.OrderShipment, error) {
	return []models.OrderShipment{}, nil
}

func newExportFixture(t *testing.T) ExportService {
	t.Helper()
	inventory := newFakeInventoryRepo()
	category := "Electronics"
	item := &models.InventoryItem{
		Code: "ITM001", Name: "Widget", Unit: "pcs", BuyPrice: 2.5,
		Quantity: 30, Status: models.ItemStatusActive, CategoryName: &category,
	}
	if _, err := inventory.CreateItem(item); err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}
	return NewExportService(inventory, newFakeShipmentRepo(), &fakeOrderRepo{})
}

func TestExportInventoryCSV(t *testing.T) {
	svc := newExportFixture(t)

	var buf bytes.Buffer
	if err := svc.ExportInventory(repositories.Filters{}, FormatCSV, &buf); err != nil {
		t.Fatalf("ExportInventory failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("Output is not valid CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected header + 1 row, got %d records", len(records))
	}
	if records[0][0] != "Code" {
		t.Errorf("Unexpected header: %v", records[0])
	}
	row := strings.Join(records[1], ",")
	if !strings.Contains(row, "ITM001") || !strings.Contains(row, "Electronics") {
		t.Errorf("Unexpected data row: %v", records[1])
	}
}

func TestExportInventoryXLSX(t *testing.T) {
	svc := newExportFixture(t)

	var buf bytes.Buffer
	if err := svc.ExportInventory(repositories.Filters{}, FormatXLSX, &buf); err != nil {
		t.Fatalf("ExportInventory failed: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("Output is not a readable workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Inventory")
	if err != nil {
		t.Fatalf("Missing Inventory sheet: %v", err)
	}
	if len(rows) != 2 || rows[1][0] != "ITM001" {
		t.Errorf("Unexpected sheet contents: %v", rows)
	}
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	svc := newExportFixture(t)

	var buf bytes.Buffer
	if err := svc.ExportInventory(repositories.Filters{}, "pdf", &buf); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected ErrValidation for unknown format, got %v", err)
	}
}
