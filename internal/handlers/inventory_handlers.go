package handlers

import (
	"net/http"

	"stocktrack_backend/internal/models"
	"stocktrack_backend/internal/services"
	"stocktrack_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// InventoryHandler holds the inventory service.
type InventoryHandler struct {
	inventoryService services.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(is services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: is}
}

// GetItems handles fetching inventory items with optional filters.
func (h *InventoryHandler) GetItems(c *gin.Context) {
	items, err := h.inventoryService.GetItems(queryFilters(c))
	if err != nil {
		utils.LogError(err, "GetItems: Error from inventoryService.GetItems")
		respondServiceError(c, err, "Inventory item")
		return
	}
	if items == nil {
		items = []models.InventoryItem{}
	}
	c.JSON(http.StatusOK, items)
}

// GetItemByID handles fetching a single inventory item by ID.
func (h *InventoryHandler) GetItemByID(c *gin.Context) {
	id, ok := parseIDParam(c, "item")
	if !ok {
		return
	}
	item, err := h.inventoryService.GetItemByID(id)
	if err != nil {
		utils.LogError(err, "GetItemByID: Error from inventoryService.GetItemByID")
		respondServiceError(c, err, "Inventory item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateItem handles creation of a new inventory item.
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req services.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	item, err := h.inventoryService.CreateItem(req)
	if err != nil {
		utils.LogError(err, "CreateItem: Error from inventoryService.CreateItem")
		respondServiceError(c, err, "Inventory item")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateItem handles partial updates of an inventory item.
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	id, ok := parseIDParam(c, "item")
	if !ok {
		return
	}
	var req services.UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	item, err := h.inventoryService.UpdateItem(id, req)
	if err != nil {
		utils.LogError(err, "UpdateItem: Error from inventoryService.UpdateItem")
		respondServiceError(c, err, "Inventory item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// AdjustQuantity handles relative and absolute stock adjustments.
func (h *InventoryHandler) AdjustQuantity(c *gin.Context) {
	id, ok := parseIDParam(c, "item")
	if !ok {
		return
	}
	var req services.AdjustQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	item, err := h.inventoryService.AdjustQuantity(id, req)
	if err != nil {
		utils.LogError(err, "AdjustQuantity: Error from inventoryService.AdjustQuantity")
		respondServiceError(c, err, "Inventory item")
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteItem handles deleting a single inventory item.
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	id, ok := parseIDParam(c, "item")
	if !ok {
		return
	}
	item, err := h.inventoryService.DeleteItem(id)
	if err != nil {
		utils.LogError(err, "DeleteItem: Error from inventoryService.DeleteItem")
		respondServiceError(c, err, "Inventory item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inventory item deleted successfully", "item": item})
}

// DeleteItems handles bulk deletion of inventory items.
func (h *InventoryHandler) DeleteItems(c *gin.Context) {
	var req bulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	items, err := h.inventoryService.DeleteItems(req.IDs)
	if err != nil {
		utils.LogError(err, "DeleteItems: Error from inventoryService.DeleteItems")
		respondServiceError(c, err, "Inventory item")
		return
	}
	if items == nil {
		items = []models.InventoryItem{}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inventory items deleted successfully", "deleted": len(items), "items": items})
}
