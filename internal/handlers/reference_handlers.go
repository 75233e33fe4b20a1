package handlers

import (
	"net/http"

	"stocktrack_backend/internal/models"
	"stocktrack_backend/internal/services"
	"stocktrack_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ReferenceHandler serves the category and warehouse reference endpoints.
type ReferenceHandler struct {
	referenceService services.ReferenceService
}

// NewReferenceHandler creates a new ReferenceHandler.
func NewReferenceHandler(rs services.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{referenceService: rs}
}

// Categories

// GetCategories handles fetching all categories.
func (h *ReferenceHandler) GetCategories(c *gin.Context) {
	categories, err := h.referenceService.GetCategories(queryFilters(c))
	if err != nil {
		utils.LogError(err, "GetCategories: Error from referenceService.GetCategories")
		respondServiceError(c, err, "Category")
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	c.JSON(http.StatusOK, categories)
}

// GetCategoryByID handles fetching a single category by ID.
func (h *ReferenceHandler) GetCategoryByID(c *gin.Context) {
	id, ok := parseIDParam(c, "category")
	if !ok {
		return
	}
	category, err := h.referenceService.GetCategoryByID(id)
	if err != nil {
		utils.LogError(err, "GetCategoryByID: Error from referenceService.GetCategoryByID")
		respondServiceError(c, err, "Category")
		return
	}
	c.JSON(http.StatusOK, category)
}

// CreateCategory handles creation of a new category.
func (h *ReferenceHandler) CreateCategory(c *gin.Context) {
	var req services.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	category, err := h.referenceService.CreateCategory(req)
	if err != nil {
		utils.LogError(err, "CreateCategory: Error from referenceService.CreateCategory")
		respondServiceError(c, err, "Category")
		return
	}
	c.JSON(http.StatusCreated, category)
}

// UpdateCategory handles partial updates of a category.
func (h *ReferenceHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "category")
	if !ok {
		return
	}
	var req services.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	category, err := h.referenceService.UpdateCategory(id, req)
	if err != nil {
		utils.LogError(err, "UpdateCategory: Error from referenceService.UpdateCategory")
		respondServiceError(c, err, "Category")
		return
	}
	c.JSON(http.StatusOK, category)
}

// DeleteCategory handles deleting a category.
func (h *ReferenceHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "category")
	if !ok {
		return
	}
	category, err := h.referenceService.DeleteCategory(id)
	if err != nil {
		utils.LogError(err, "DeleteCategory: Error from referenceService.DeleteCategory")
		respondServiceError(c, err, "Category")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully", "category": category})
}

// Warehouses

// GetWarehouses handles fetching all warehouses.
func (h *ReferenceHandler) GetWarehouses(c *gin.Context) {
	warehouses, err := h.referenceService.GetWarehouses(queryFilters(c))
	if err != nil {
		utils.LogError(err, "GetWarehouses: Error from referenceService.GetWarehouses")
		respondServiceError(c, err, "Warehouse")
		return
	}
	if warehouses == nil {
		warehouses = []models.Warehouse{}
	}
	c.JSON(http.StatusOK, warehouses)
}

// GetWarehouseByID handles fetching a single warehouse by ID.
func (h *ReferenceHandler) GetWarehouseByID(c *gin.Context) {
	id, ok := parseIDParam(c, "warehouse")
	if !ok {
		return
	}
	warehouse, err := h.referenceService.GetWarehouseByID(id)
	if err != nil {
		utils.LogError(err, "GetWarehouseByID: Error from referenceService.GetWarehouseByID")
		respondServiceError(c, err, "Warehouse")
		return
	}
	c.JSON(http.StatusOK, warehouse)
}

// CreateWarehouse handles creation of a new warehouse.
func (h *ReferenceHandler) CreateWarehouse(c *gin.Context) {
	var req services.CreateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	warehouse, err := h.referenceService.CreateWarehouse(req)
	if err != nil {
		utils.LogError(err, "CreateWarehouse: Error from referenceService.CreateWarehouse")
		respondServiceError(c, err, "Warehouse")
		return
	}
	c.JSON(http.StatusCreated, warehouse)
}

// UpdateWarehouse handles partial updates of a warehouse.
func (h *ReferenceHandler) UpdateWarehouse(c *gin.Context) {
	id, ok := parseIDParam(c, "warehouse")
	if !ok {
		return
	}
	var req services.UpdateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	warehouse, err := h.referenceService.UpdateWarehouse(id, req)
	if err != nil {
		utils.LogError(err, "UpdateWarehouse: Error from referenceService.UpdateWarehouse")
		respondServiceError(c, err, "Warehouse")
		return
	}
	c.JSON(http.StatusOK, warehouse)
}

// DeleteWarehouse handles deleting a warehouse.
func (h *ReferenceHandler) DeleteWarehouse(c *gin.Context) {
	id, ok := parseIDParam(c, "warehouse")
	if !ok {
		return
	}
	warehouse, err := h.referenceService.DeleteWarehouse(id)
	if err != nil {
		utils.LogError(err, "DeleteWarehouse: Error from referenceService.DeleteWarehouse")
		respondServiceError(c, err, "Warehouse")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Warehouse deleted successfully", "warehouse": warehouse})
}
