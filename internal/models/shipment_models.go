package models

import "time"

// Material shipment directions and statuses.
const (
	ShipmentTypeInbound  = "inbound"
	ShipmentTypeOutbound = "outbound"

	ShipmentStatusPending   = "pending"
	ShipmentStatusShipped   = "shipped"
	ShipmentStatusDelivered = "delivered"
)

// Order shipment statuses and priorities.
const (
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"

	OrderPriorityLow    = "low"
	OrderPriorityMedium = "medium"
	OrderPriorityHigh   = "high"
)

// MaterialShipment represents a material moving into or out of stock.
// ItemCode/CategoryCode are soft references resolved at query time.
type MaterialShipment struct {
	ID            int64      `json:"id" db:"id"`
	Code          string     `json:"code" db:"code"`
	MaterialName  string     `json:"material_name" db:"material_name" binding:"required"`
	ItemCode      *string    `json:"item_code,omitempty" db:"item_code"`
	CategoryCode  *string    `json:"category_code,omitempty" db:"category_code"`
	Quantity      int        `json:"quantity" db:"quantity"`
	Unit          string     `json:"unit" db:"unit"`
	Type          string     `json:"type" db:"type"`
	Status        string     `json:"status" db:"status"`
	Source        string     `json:"source" db:"source"`
	Destination   string     `json:"destination" db:"destination"`
	ShippedDate   *time.Time `json:"shipped_date,omitempty" db:"shipped_date"`
	EstimatedDate *time.Time `json:"estimated_date,omitempty" db:"estimated_date"`
	ReceivedDate  *time.Time `json:"received_date,omitempty" db:"received_date"`
	Handler       *string    `json:"handler,omitempty" db:"handler"`
	Notes         *string    `json:"notes,omitempty" db:"notes"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// OrderShipment represents an outgoing customer order.
type OrderShipment struct {
	ID             int64      `json:"id" db:"id"`
	Code           string     `json:"code" db:"code"`
	CustomerName   string     `json:"customer_name" db:"customer_name" binding:"required"`
	ItemCode       *string    `json:"item_code,omitempty" db:"item_code"`
	ProductName    string     `json:"product_name" db:"product_name"`
	Quantity       int        `json:"quantity" db:"quantity"`
	TotalValue     float64    `json:"total_value" db:"total_value"`
	Priority       string     `json:"priority" db:"priority"`
	Status         string     `json:"status" db:"status"`
	OrderDate      *time.Time `json:"order_date,omitempty" db:"order_date"`
	ShipDate       *time.Time `json:"ship_date,omitempty" db:"ship_date"`
	DeliveryDate   *time.Time `json:"delivery_date,omitempty" db:"delivery_date"`
	TrackingNumber *string    `json:"tracking_number,omitempty" db:"tracking_number"`
	Notes          *string    `json:"notes,omitempty" db:"notes"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}
