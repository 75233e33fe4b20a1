package models

import "time"

// Notification severities.
const (
	NotificationInfo    = "info"
	NotificationSuccess = "success"
	NotificationWarning = "warning"
	NotificationError   = "error"
)

// Notification is an advisory message produced as a side effect of mutating
// operations. Best-effort: may live in an in-process buffer when the
// backing store is down.
type Notification struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title" binding:"required"`
	Message   string    `json:"message" db:"message"`
	Type      string    `json:"type" db:"type"`
	IsRead    bool      `json:"is_read" db:"is_read"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ScanRecord is one barcode/QR scan event captured at the warehouse floor.
type ScanRecord struct {
	ID          int64     `json:"id" db:"id"`
	Code        string    `json:"code" db:"code" binding:"required"`
	ScanType    string    `json:"scan_type" db:"scan_type"`
	ItemCode    *string   `json:"item_code,omitempty" db:"item_code"`
	ProductName *string   `json:"product_name,omitempty" db:"product_name"`
	Quantity    int       `json:"quantity" db:"quantity"`
	Status      string    `json:"status" db:"status"`
	ScannedBy   *string   `json:"scanned_by,omitempty" db:"scanned_by"`
	Notes       *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
