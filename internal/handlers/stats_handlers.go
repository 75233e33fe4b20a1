package handlers

import (
	"net/http"

	"stocktrack_backend/internal/services"
	"stocktrack_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// StatsHandler serves the dashboard aggregation endpoints.
type StatsHandler struct {
	statsService services.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(ss services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: ss}
}

// GetInventoryStats handles the inventory dashboard counters.
func (h *StatsHandler) GetInventoryStats(c *gin.Context) {
	stats, err := h.statsService.InventoryStats()
	if err != nil {
		utils.LogError(err, "GetInventoryStats: Error from statsService.InventoryStats")
		respondServiceError(c, err, "Inventory stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetMaterialShipmentStats handles the material shipment counters.
func (h *StatsHandler) GetMaterialShipmentStats(c *gin.Context) {
	stats, err := h.statsService.MaterialShipmentStats()
	if err != nil {
		utils.LogError(err, "GetMaterialShipmentStats: Error from statsService.MaterialShipmentStats")
		respondServiceError(c, err, "Material shipment stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetOrderShipmentStats handles the order shipment counters.
func (h *StatsHandler) GetOrderShipmentStats(c *gin.Context) {
	stats, err := h.statsService.OrderShipmentStats()
	if err != nil {
		utils.LogError(err, "GetOrderShipmentStats: Error from statsService.OrderShipmentStats")
		respondServiceError(c, err, "Order shipment stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetInventoryImpact handles the projected stock impact report.
func (h *StatsHandler) GetInventoryImpact(c *gin.Context) {
	impact, err := h.statsService.InventoryImpact()
	if err != nil {
		utils.LogError(err, "GetInventoryImpact: Error from statsService.InventoryImpact")
		respondServiceError(c, err, "Inventory impact")
		return
	}
	c.JSON(http.StatusOK, impact)
}
