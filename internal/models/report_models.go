package models

// Stock classification for the impact projection.
const (
	StockStatusLow     = "low"
	StockStatusWarning = "warning"
	StockStatusNormal  = "normal"
)

// InventoryStats summarizes the whole inventory table.
type InventoryStats struct {
	TotalItems    int     `json:"total_items"`
	ActiveItems   int     `json:"active_items"`
	LowStockItems int     `json:"low_stock_items"`
	TotalValue    float64 `json:"total_value"`
}

// MaterialShipmentStats counts material shipments by status and direction.
type MaterialShipmentStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Shipped   int `json:"shipped"`
	Delivered int `json:"delivered"`
	Inbound   int `json:"inbound"`
	Outbound  int `json:"outbound"`
}

// OrderShipmentStats counts order shipments by status and priority.
type OrderShipmentStats struct {
	Total          int `json:"total"`
	Processing     int `json:"processing"`
	Shipped        int `json:"shipped"`
	Delivered      int `json:"delivered"`
	LowPriority    int `json:"low_priority"`
	MediumPriority int `json:"medium_priority"`
	HighPriority   int `json:"high_priority"`
}

// ItemImpact is the per-item row of the inventory impact projection: current
// stock merged with delivered and in-transit material shipment flow.
type ItemImpact struct {
	ItemCode          string `json:"item_code"`
	ItemName          string `json:"item_name"`
	CurrentStock      int    `json:"current_stock"`
	MinStockLevel     int    `json:"min_stock_level"`
	DeliveredInbound  int    `json:"delivered_inbound"`
	DeliveredOutbound int    `json:"delivered_outbound"`
	PendingInbound    int    `json:"pending_inbound"`
	PendingOutbound   int    `json:"pending_outbound"`
	ProjectedStock    int    `json:"projected_stock"`
	StockStatus       string `json:"stock_status"`
}

// ImpactSummary aggregates the impact rows.
type ImpactSummary struct {
	TotalItems      int `json:"total_items"`
	LowStockItems   int `json:"low_stock_items"`
	WarningItems    int `json:"warning_items"`
	PendingInbound  int `json:"pending_inbound"`
	PendingOutbound int `json:"pending_outbound"`
}

// InventoryImpact is the full stock-impact report.
type InventoryImpact struct {
	Items   []ItemImpact  `json:"items"`
	Summary ImpactSummary `json:"summary"`
}
