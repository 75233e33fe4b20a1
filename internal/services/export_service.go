package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"stocktrack_backend/internal/repositories"
)

// Export formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// ExportService renders filtered listings as CSV or Excel workbooks,
// honoring the same filter objects as the list endpoints.
type ExportService interface {
	ExportInventory(f repositories.Filters, format string, w io.Writer) error
	ExportMaterialShipments(f repositories.Filters, format string, w io.Writer) error
	ExportOrderShipments(f repositories.Filters, format string, w io.Writer) error
}

type exportService struct {
	inventoryRepo repositories.InventoryRepository
	shipmentRepo  repositories.MaterialShipmentRepository
	orderRepo     repositories.OrderShipmentRepository
}

// NewExportService creates a new ExportService.
func NewExportService(
	inventoryRepo repositories.InventoryRepository,
	shipmentRepo repositories.MaterialShipmentRepository,
	orderRepo repositories.OrderShipmentRepository,
) ExportService {
	return &exportService{
		inventoryRepo: inventoryRepo,
		shipmentRepo:  shipmentRepo,
		orderRepo:     orderRepo,
	}
}

func (s *exportService) ExportInventory(f repositories.Filters, format string, w io.Writer) error {
	items, err := s.inventoryRepo.GetItems(f)
	if err != nil {
		return err
	}

	headers := []string{"Code", "Name", "Unit", "Buy Price", "Quantity", "Status", "Category", "Warehouse", "Location", "Updated At"}
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.Code, item.Name, item.Unit,
			strconv.FormatFloat(item.BuyPrice, 'f', 2, 64),
			strconv.Itoa(item.Quantity), item.Status,
			strPtr(item.CategoryName), strPtr(item.WarehouseName),
			item.Location, item.UpdatedAt.Format(time.RFC3339),
		})
	}
	return writeExport(w, format, "Inventory", headers, rows)
}

func (s *exportService) ExportMaterialShipments(f repositories.Filters, format string, w io.Writer) error {
	shipments, err := s.shipmentRepo.GetShipments(f)
	if err != nil {
		return err
	}

	headers := []string{"Code", "Material", "Item Code", "Quantity", "Unit", "Type", "Status", "Source", "Destination", "Updated At"}
	rows := make([][]string, 0, len(shipments))
	for _, sh := range shipments {
		rows = append(rows, []string{
			sh.Code, sh.MaterialName, strPtr(sh.ItemCode),
			strconv.Itoa(sh.Quantity), sh.Unit, sh.Type, sh.Status,
			sh.Source, sh.Destination, sh.UpdatedAt.Format(time.RFC3339),
		})
	}
	return writeExport(w, format, "Material Shipments", headers, rows)
}

func (s *exportService) ExportOrderShipments(f repositories.Filters, format string, w io.Writer) error {
	orders, err := s.orderRepo.GetOrders(f)
	if err != nil {
		return err
	}

	headers := []string{"Code", "Customer", "Product", "Quantity", "Total Value", "Priority", "Status", "Tracking Number", "Updated At"}
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			o.Code, o.CustomerName, o.ProductName,
			strconv.Itoa(o.Quantity),
			strconv.FormatFloat(o.TotalValue, 'f', 2, 64),
			o.Priority, o.Status, strPtr(o.TrackingNumber),
			o.UpdatedAt.Format(time.RFC3339),
		})
	}
	return writeExport(w, format, "Order Shipments", headers, rows)
}

func strPtr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func writeExport(w io.Writer, format, sheet string, headers []string, rows [][]string) error {
	switch format {
	case FormatXLSX:
		return writeExcel(w, sheet, headers, rows)
	case FormatCSV, "":
		return writeCSV(w, headers, rows)
	default:
		return fmt.Errorf("%w: unsupported export format %q", ErrValidation, format)
	}
}

func writeCSV(w io.Writer, headers []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeExcel(w io.Writer, sheet string, headers []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return f.Write(w)
}
