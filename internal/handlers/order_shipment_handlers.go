package handlers

import (
	"net/http"

	"stocktrack_backend/internal/models"
	"stocktrack_backend/internal/services"
	"stocktrack_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// OrderShipmentHandler holds the order shipment service.
type OrderShipmentHandler struct {
	orderService services.OrderShipmentService
}

// NewOrderShipmentHandler creates a new OrderShipmentHandler.
func NewOrderShipmentHandler(os services.OrderShipmentService) *OrderShipmentHandler {
	return &OrderShipmentHandler{orderService: os}
}

// GetOrders handles fetching order shipments with optional filters.
func (h *OrderShipmentHandler) GetOrders(c *gin.Context) {
	orders, err := h.orderService.GetOrders(queryFilters(c))
	if err != nil {
		utils.LogError(err, "GetOrders: Error from orderService.GetOrders")
		respondServiceError(c, err, "Order shipment")
		return
	}
	if orders == nil {
		orders = []models.OrderShipment{}
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrderByID handles fetching a single order shipment by ID.
func (h *OrderShipmentHandler) GetOrderByID(c *gin.Context) {
	id, ok := parseIDParam(c, "order")
	if !ok {
		return
	}
	order, err := h.orderService.GetOrderByID(id)
	if err != nil {
		utils.LogError(err, "GetOrderByID: Error from orderService.GetOrderByID")
		respondServiceError(c, err, "Order shipment")
		return
	}
	c.JSON(http.StatusOK, order)
}

// CreateOrder handles creation of a new order shipment.
func (h *OrderShipmentHandler) CreateOrder(c *gin.Context) {
	var req services.CreateOrderShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	order, err := h.orderService.CreateOrder(req)
	if err != nil {
		utils.LogError(err, "CreateOrder: Error from orderService.CreateOrder")
		respondServiceError(c, err, "Order shipment")
		return
	}
	c.JSON(http.StatusCreated, order)
}

// UpdateOrder handles partial updates of an order shipment.
func (h *OrderShipmentHandler) UpdateOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "order")
	if !ok {
		return
	}
	var req services.UpdateOrderShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	order, err := h.orderService.UpdateOrder(id, req)
	if err != nil {
		utils.LogError(err, "UpdateOrder: Error from orderService.UpdateOrder")
		respondServiceError(c, err, "Order shipment")
		return
	}
	c.JSON(http.StatusOK, order)
}

// DeleteOrder handles deleting a single order shipment.
func (h *OrderShipmentHandler) DeleteOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "order")
	if !ok {
		return
	}
	order, err := h.orderService.DeleteOrder(id)
	if err != nil {
		utils.LogError(err, "DeleteOrder: Error from orderService.DeleteOrder")
		respondServiceError(c, err, "Order shipment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order shipment deleted successfully", "order": order})
}

// DeleteOrders handles bulk deletion of order shipments.
func (h *OrderShipmentHandler) DeleteOrders(c *gin.Context) {
	var req bulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	orders, err := h.orderService.DeleteOrders(req.IDs)
	if err != nil {
		utils.LogError(err, "DeleteOrders: Error from orderService.DeleteOrders")
		respondServiceError(c, err, "Order shipment")
		return
	}
	if orders == nil {
		orders = []models.OrderShipment{}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order shipments deleted successfully", "deleted": len(orders), "orders": orders})
}
