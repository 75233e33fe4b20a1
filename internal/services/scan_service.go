package services

import (
	"errors"

	"stocktrack_backend/internal/models"
	"stocktrack_backend/internal/repositories"
)

// Scan outcome statuses.
const (
	ScanStatusOK       = "ok"
	ScanStatusNotFound = "not_found"
)

// --- Scan DTOs ---

type CreateScanRequest struct {
	Code      string  `json:"code" binding:"required"`
	ScanType  string  `json:"scan_type"`
	Quantity  *int    `json:"quantity"`
	ScannedBy *string `json:"scanned_by"`
	Notes     *string `json:"notes"`
}

type ScanService interface {
	GetScans(f repositories.Filters) ([]models.ScanRecord, error)
	GetScanByID(id int64) (*models.ScanRecord, error)
	RecordScan(req CreateScanRequest) (*models.ScanRecord, error)
	DeleteScan(id int64) error
}

type scanService struct {
	scanRepo      repositories.ScanRepository
	inventoryRepo repositories.InventoryRepository
}

// NewScanService creates a new ScanService.
func NewScanService(scanRepo repositories.ScanRepository, inventoryRepo repositories.InventoryRepository) ScanService {
	return &scanService{scanRepo: scanRepo, inventoryRepo: inventoryRepo}
}

func (s *scanService) GetScans(f repositories.Filters) ([]models.ScanRecord, error) {
	return s.scanRepo.GetScans(f)
}

func (s *scanService) GetScanByID(id int64) (*models.ScanRecord, error) {
	return s.scanRepo.GetScanByID(id)
}

// RecordScan stores one scan event. The scanned code is resolved against
// the inventory so known items get their code and product name captured;
// unknown codes are still recorded, marked not_found.
func (s *scanService) RecordScan(req CreateScanRequest) (*models.ScanRecord, error) {
	if err := requireField(req.Code, "code"); err != nil {
		return nil, err
	}

	record := &models.ScanRecord{
		Code:      req.Code,
		ScanType:  req.ScanType,
		Quantity:  1,
		Status:    ScanStatusOK,
		ScannedBy: req.ScannedBy,
		Notes:     req.Notes,
	}
	if record.ScanType == "" {
		record.ScanType = "barcode"
	}
	if req.Quantity != nil && *req.Quantity > 0 {
		record.Quantity = *req.Quantity
	}

	item, err := s.inventoryRepo.GetItemByCode(req.Code)
	switch {
	case err == nil:
		record.ItemCode = &item.Code
		record.ProductName = &item.Name
	case errors.Is(err, repositories.ErrNotFound):
		record.Status = ScanStatusNotFound
	case errors.Is(err, repositories.ErrStoreUnavailable):
		// Lookup impossible; the scan itself still lands in the fallback buffer.
	default:
		return nil, err
	}

	if err := s.scanRepo.CreateScan(record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *scanService) DeleteScan(id int64) error {
	return s.scanRepo.DeleteScan(id)
}
