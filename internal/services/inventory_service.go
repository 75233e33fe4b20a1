package services

import (
	"fmt"

	"stocktrack_backend/internal/models"
	"stocktrack_backend/internal/repositories"
)

// --- Inventory DTOs ---

type CreateInventoryItemRequest struct {
	Code          string   `json:"code" binding:"required"`
	Name          string   `json:"name" binding:"required"`
	Unit          string   `json:"unit"`
	BuyPrice      float64  `json:"buy_price"`
	SellPrice     *float64 `json:"sell_price"`
	Location      string   `json:"location"`
	WarehouseCode *string  `json:"warehouse_code"`
	CategoryCode  *string  `json:"category_code"`
	Status        string   `json:"status"`
	Quantity      *int     `json:"quantity"`
	MinStockLevel *int     `json:"min_stock_level"`
}

type UpdateInventoryItemRequest struct {
	Code          *string  `json:"code"` // Pointer to distinguish between empty and not provided
	Name          *string  `json:"name"`
	Unit          *string  `json:"unit"`
	BuyPrice      *float64 `json:"buy_price"`
	SellPrice     *float64 `json:"sell_price"`
	Location      *string  `json:"location"`
	WarehouseCode *string  `json:"warehouse_code"`
	CategoryCode  *string  `json:"category_code"`
	Status        *string  `json:"status"`
	Quantity      *int     `json:"quantity"`
	MinStockLevel *int     `json:"min_stock_level"`
}

type AdjustQuantityRequest struct {
	Amount int    `json:"amount" binding:"required"`
	Mode   string `json:"mode" binding:"required"`
}

// --- InventoryService Interface ---

type InventoryService interface {
	GetItems(f repositories.Filters) ([]models.InventoryItem, error)
	GetItemByID(id int64) (*models.InventoryItem, error)
	CreateItem(req CreateInventoryItemRequest) (*models.InventoryItem, error)
	UpdateItem(id int64, req UpdateInventoryItemRequest) (*models.InventoryItem, error)
	DeleteItem(id int64) (*models.InventoryItem, error)
	DeleteItems(ids []int64) ([]models.InventoryItem, error)
	AdjustQuantity(id int64, req AdjustQuantityRequest) (*models.InventoryItem, error)
}

type inventoryService struct {
	inventoryRepo repositories.InventoryRepository
	notifier      Notifier
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(repo repositories.InventoryRepository, notifier Notifier) InventoryService {
	return &inventoryService{inventoryRepo: repo, notifier: notifier}
}

func (s *inventoryService) GetItems(f repositories.Filters) ([]models.InventoryItem, error) {
	items, err := s.inventoryRepo.GetItems(f)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory items: %w", err)
	}
	return items, nil
}

func (s *inventoryService) GetItemByID(id int64) (*models.InventoryItem, error) {
	return s.inventoryRepo.GetItemByID(id)
}

func (s *inventoryService) CreateItem(req CreateInventoryItemRequest) (*models.InventoryItem, error) {
	if err := requireField(req.Code, "code"); err != nil {
		return nil, err
	}
	if err := requireField(req.Name, "name"); err != nil {
		return nil, err
	}
	if err := requireNonNegative(req.BuyPrice, "buy_price"); err != nil {
		return nil, err
	}
	if req.SellPrice != nil {
		if err := requireNonNegative(*req.SellPrice, "sell_price"); err != nil {
			return nil, err
		}
	}
	status := req.Status
	if status == "" {
		status = models.ItemStatusActive
	}
	if err := requireOneOf(status, "status", models.ItemStatusActive, models.ItemStatusInactive); err != nil {
		return nil, err
	}

	item := &models.InventoryItem{
		Code:          req.Code,
		Name:          req.Name,
		Unit:          req.Unit,
		BuyPrice:      req.BuyPrice,
		SellPrice:     req.SellPrice,
		Location:      req.Location,
		WarehouseCode: req.WarehouseCode,
		CategoryCode:  req.CategoryCode,
		Status:        status,
		MinStockLevel: repositories.LowStockThreshold,
	}
	if item.Unit == "" {
		item.Unit = "pcs"
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return nil, fmt.Errorf("%w: quantity must not be negative", ErrValidation)
		}
		item.Quantity = *req.Quantity
	}
	if req.MinStockLevel != nil {
		item.MinStockLevel = *req.MinStockLevel
	}

	id, err := s.inventoryRepo.CreateItem(item)
	if err != nil {
		return nil, err
	}
	s.notifier.Notify("Item created",
		fmt.Sprintf("Inventory item %s (%s) was created", item.Name, item.Code),
		models.NotificationSuccess)
	// Fetch to pick up timestamps and enrichment fields.
	return s.inventoryRepo.GetItemByID(id)
}

func (s *inventoryService) UpdateItem(id int64, req UpdateInventoryItemRequest) (*models.InventoryItem, error) {
	item, err := s.inventoryRepo.GetItemByID(id)
	if err != nil {
		return nil, err
	}

	if req.Code != nil {
		if err := requireField(*req.Code, "code"); err != nil {
			return nil, err
		}
		item.Code = *req.Code
	}
	if req.Name != nil {
		if err := requireField(*req.Name, "name"); err != nil {
			return nil, err
		}
		item.Name = *req.Name
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.BuyPrice != nil {
		if err := requireNonNegative(*req.BuyPrice, "buy_price"); err != nil {
			return nil, err
		}
		item.BuyPrice = *req.BuyPrice
	}
	if req.SellPrice != nil {
		if err := requireNonNegative(*req.SellPrice, "sell_price"); err != nil {
			return nil, err
		}
		item.SellPrice = req.SellPrice
	}
	if req.Location != nil {
		item.Location = *req.Location
	}
	if req.WarehouseCode != nil {
		item.WarehouseCode = req.WarehouseCode
	}
	if req.CategoryCode != nil {
		item.CategoryCode = req.CategoryCode
	}
	if req.Status != nil {
		if err := requireOneOf(*req.Status, "status", models.ItemStatusActive, models.ItemStatusInactive); err != nil {
			return nil, err
		}
		item.Status = *req.Status
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return nil, fmt.Errorf("%w: quantity must not be negative", ErrValidation)
		}
		item.Quantity = *req.Quantity
	}
	if req.MinStockLevel != nil {
		item.MinStockLevel = *req.MinStockLevel
	}

	if err := s.inventoryRepo.UpdateItem(item); err != nil {
		return nil, err
	}
	return s.inventoryRepo.GetItemByID(id)
}

func (s *inventoryService) DeleteItem(id int64) (*models.InventoryItem, error) {
	item, err := s.inventoryRepo.DeleteItem(id)
	if err != nil {
		return nil, err
	}
	s.notifier.Notify("Item deleted",
		fmt.Sprintf("Inventory item %s (%s) was deleted", item.Name, item.Code),
		models.NotificationWarning)
	return item, nil
}

func (s *inventoryService) DeleteItems(ids []int64) ([]models.InventoryItem, error) {
	deleted, err := s.inventoryRepo.DeleteItems(ids)
	if err != nil {
		return nil, err
	}
	if len(deleted) > 0 {
		s.notifier.Notify("Items deleted",
			fmt.Sprintf("%d inventory items were deleted", len(deleted)),
			models.NotificationWarning)
	}
	return deleted, nil
}

func (s *inventoryService) AdjustQuantity(id int64, req AdjustQuantityRequest) (*models.InventoryItem, error) {
	if err := requireOneOf(req.Mode, "mode",
		repositories.AdjustSet, repositories.AdjustAdd, repositories.AdjustSubtract); err != nil {
		return nil, err
	}
	if req.Amount < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", ErrValidation)
	}

	newQuantity, err := s.inventoryRepo.AdjustQuantity(id, req.Amount, req.Mode)
	if err != nil {
		return nil, err
	}

	item, err := s.inventoryRepo.GetItemByID(id)
	if err != nil {
		return nil, err
	}
	if newQuantity < item.MinStockLevel {
		s.notifier.Notify("Low stock",
			fmt.Sprintf("Item %s (%s) is down to %d units", item.Name, item.Code, newQuantity),
			models.NotificationWarning)
	}
	return item, nil
}
