package handlers

import (
	"net/http"

	"stocktrack_backend/internal/models"
	"stocktrack_backend/internal/services"
	"stocktrack_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MaterialShipmentHandler holds the material shipment service.
type MaterialShipmentHandler struct {
	shipmentService services.MaterialShipmentService
}

// NewMaterialShipmentHandler creates a new MaterialShipmentHandler.
func NewMaterialShipmentHandler(ms services.MaterialShipmentService) *MaterialShipmentHandler {
	return &MaterialShipmentHandler{shipmentService: ms}
}

// GetShipments handles fetching material shipments with optional filters.
func (h *MaterialShipmentHandler) GetShipments(c *gin.Context) {
	shipments, err := h.shipmentService.GetShipments(queryFilters(c))
	if err != nil {
		utils.LogError(err, "GetShipments: Error from shipmentService.GetShipments")
		respondServiceError(c, err, "Material shipment")
		return
	}
	if shipments == nil {
		shipments = []models.MaterialShipment{}
	}
	c.JSON(http.StatusOK, shipments)
}

// GetShipmentByID handles fetching a single material shipment by ID.
func (h *MaterialShipmentHandler) GetShipmentByID(c *gin.Context) {
	id, ok := parseIDParam(c, "shipment")
	if !ok {
		return
	}
	shipment, err := h.shipmentService.GetShipmentByID(id)
	if err != nil {
		utils.LogError(err, "GetShipmentByID: Error from shipmentService.GetShipmentByID")
		respondServiceError(c, err, "Material shipment")
		return
	}
	c.JSON(http.StatusOK, shipment)
}

// CreateShipment handles creation of a new material shipment.
func (h *MaterialShipmentHandler) CreateShipment(c *gin.Context) {
	var req services.CreateMaterialShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	shipment, err := h.shipmentService.CreateShipment(req)
	if err != nil {
		utils.LogError(err, "CreateShipment: Error from shipmentService.CreateShipment")
		respondServiceError(c, err, "Material shipment")
		return
	}
	c.JSON(http.StatusCreated, shipment)
}

// UpdateShipment handles partial updates of a material shipment.
func (h *MaterialShipmentHandler) UpdateShipment(c *gin.Context) {
	id, ok := parseIDParam(c, "shipment")
	if !ok {
		return
	}
	var req services.UpdateMaterialShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	shipment, err := h.shipmentService.UpdateShipment(id, req)
	if err != nil {
		utils.LogError(err, "UpdateShipment: Error from shipmentService.UpdateShipment")
		respondServiceError(c, err, "Material shipment")
		return
	}
	c.JSON(http.StatusOK, shipment)
}

// DeleteShipment handles deleting a single material shipment.
func (h *MaterialShipmentHandler) DeleteShipment(c *gin.Context) {
	id, ok := parseIDParam(c, "shipment")
	if !ok {
		return
	}
	shipment, err := h.shipmentService.DeleteShipment(id)
	if err != nil {
		utils.LogError(err, "DeleteShipment: Error from shipmentService.DeleteShipment")
		respondServiceError(c, err, "Material shipment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Material shipment deleted successfully", "shipment": shipment})
}

// DeleteShipments handles bulk deletion of material shipments.
func (h *MaterialShipmentHandler) DeleteShipments(c *gin.Context) {
	var req bulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	shipments, err := h.shipmentService.DeleteShipments(req.IDs)
	if err != nil {
		utils.LogError(err, "DeleteShipments: Error from shipmentService.DeleteShipments")
		respondServiceError(c, err, "Material shipment")
		return
	}
	if shipments == nil {
		shipments = []models.MaterialShipment{}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Material shipments deleted successfully", "deleted": len(shipments), "shipments": shipments})
}
