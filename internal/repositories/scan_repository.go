package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"stocktrack_backend/internal/database"
	"stocktrack_backend/internal/models"
)

// scanFallbackCapacity bounds the in-process scan log when the backing
// store is unreachable.
const scanFallbackCapacity = 100

// ScanRepository stores barcode scan history. Like notifications, scan
// records are advisory: when the backing store is unavailable they fall
// back to a bounded in-process buffer instead of failing.
type ScanRepository interface {
	GetScans(f Filters) ([]models.ScanRecord, error)
	GetScanByID(id int64) (*models.ScanRecord, error)
	CreateScan(scan *models.ScanRecord) error
	DeleteScan(id int64) error
}

type scanRepository struct {
	mgr *database.Manager

	mu     sync.Mutex
	buf    []models.ScanRecord
	nextID int64
}

// NewScanRepository creates a new instance of ScanRepository.
func NewScanRepository(mgr *database.Manager) ScanRepository {
	return &scanRepository{mgr: mgr, nextID: 1}
}

const scanBase = `SELECT id, code, scan_type, item_code, product_name, quantity,
	status, scanned_by, notes, created_at FROM scan_history`

var scanQuery = TableQuery{
	Base:          scanBase,
	SearchColumns: []string{"code", "product_name", "scanned_by"},
	Columns: map[string]string{
		"type":   "scan_type",
		"status": "status",
	},
	OrderBy: "created_at DESC",
}

func scanScanRecord(s scanner) (*models.ScanRecord, error) {
	record := &models.ScanRecord{}
	var itemCode, productName, scannedBy, notes sql.NullString
	err := s.Scan(
		&record.ID, &record.Code, &record.ScanType, &itemCode, &productName,
		&record.Quantity, &record.Status, &scannedBy, &notes, &record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if itemCode.Valid {
		record.ItemCode = &itemCode.String
	}
	if productName.Valid {
		record.ProductName = &productName.String
	}
	if scannedBy.Valid {
		record.ScannedBy = &scannedBy.String
	}
	if notes.Valid {
		record.Notes = &notes.String
	}
	return record, nil
}

func (r *scanRepository) GetScans(f Filters) ([]models.ScanRecord, error) {
	db, ok := r.mgr.Handle()
	if !ok {
		return r.bufferList(), nil
	}

	scans := []models.ScanRecord{}
	query, args := scanQuery.Build(f)
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getting scan history: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		record, err := scanScanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning scan record: %v", ErrDatabaseError, err)
		}
		scans = append(scans, *record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating scan history: %v", ErrDatabaseError, err)
	}
	return scans, nil
}

func (r *scanRepository) GetScanByID(id int64) (*models.ScanRecord, error) {
	db, ok := r.mgr.Handle()
	if !ok {
		r.mu.Lock()
		defer r.mu.Unlock()
		for _, record := range r.buf {
			if record.ID == id {
				copied := record
				return &copied, nil
			}
		}
		return nil, ErrNotFound
	}

	record, err := scanScanRecord(db.QueryRow(scanBase+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting scan record %d: %v", ErrDatabaseError, id, err)
	}
	return record, nil
}

func (r *scanRepository) CreateScan(scan *models.ScanRecord) error {
	db, ok := r.mgr.Handle()
	if !ok {
		r.bufferAdd(scan)
		return nil
	}

	scan.CreatedAt = time.Now()
	err := db.QueryRow(
		`INSERT INTO scan_history
		 (code, scan_type, item_code, product_name, quantity, status, scanned_by, notes, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`,
		scan.Code, scan.ScanType, scan.ItemCode, scan.ProductName,
		scan.Quantity, scan.Status, scan.ScannedBy, scan.Notes, scan.CreatedAt,
	).Scan(&scan.ID)
	if err != nil {
		return fmt.Errorf("%w: creating scan record: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *scanRepository) DeleteScan(id int64) error {
	db, ok := r.mgr.Handle()
	if !ok {
		r.mu.Lock()
		defer r.mu.Unlock()
		for i := range r.buf {
			if r.buf[i].ID == id {
				r.buf = append(r.buf[:i], r.buf[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	}

	result, err := db.Exec(`DELETE FROM scan_history WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting scan record %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *scanRepository) bufferAdd(scan *models.ScanRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	scan.ID = r.nextID
	r.nextID++
	scan.CreatedAt = time.Now()
	r.buf = append([]models.ScanRecord{*scan}, r.buf...)
	if len(r.buf) > scanFallbackCapacity {
		r.buf = r.buf[:scanFallbackCapacity]
	}
}

func (r *scanRepository) bufferList() []models.ScanRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.ScanRecord, len(r.buf))
	copy(out, r.buf)
	return out
}
