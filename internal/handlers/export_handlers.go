package handlers

import (
	"fmt"
	"net/http"
	"time"

	"stocktrack_backend/internal/services"
	"stocktrack_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ExportHandler serves file exports of the main entity lists.
type ExportHandler struct {
	exportService services.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(es services.ExportService) *ExportHandler {
	return &ExportHandler{exportService: es}
}

func exportHeaders(c *gin.Context, name, format string) string {
	if format == "" {
		format = services.FormatCSV
	}
	switch format {
	case services.FormatXLSX:
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	case services.FormatCSV:
		c.Header("Content-Type", "text/csv")
	default:
		// Unknown formats get no download headers; the service rejects them.
		return format
	}
	filename := fmt.Sprintf("%s-%s.%s", name, time.Now().Format("2006-01-02"), format)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	return format
}

// ExportInventory streams the filtered inventory list as CSV or XLSX.
func (h *ExportHandler) ExportInventory(c *gin.Context) {
	format := exportHeaders(c, "inventory", c.Query("format"))
	if err := h.exportService.ExportInventory(queryFilters(c), format, c.Writer); err != nil {
		utils.LogError(err, "ExportInventory: Error from exportService.ExportInventory")
		respondServiceError(c, err, "Inventory export")
		return
	}
	c.Status(http.StatusOK)
}

// ExportMaterialShipments streams the filtered material shipment list.
func (h *ExportHandler) ExportMaterialShipments(c *gin.Context) {
	format := exportHeaders(c, "material-shipments", c.Query("format"))
	if err := h.exportService.ExportMaterialShipments(queryFilters(c), format, c.Writer); err != nil {
		utils.LogError(err, "ExportMaterialShipments: Error from exportService.ExportMaterialShipments")
		respondServiceError(c, err, "Material shipment export")
		return
	}
	c.Status(http.StatusOK)
}

// ExportOrderShipments streams the filtered order shipment list.
func (h *ExportHandler) ExportOrderShipments(c *gin.Context) {
	format := exportHeaders(c, "order-shipments", c.Query("format"))
	if err := h.exportService.ExportOrderShipments(queryFilters(c), format, c.Writer); err != nil {
		utils.LogError(err, "ExportOrderShipments: Error from exportService.ExportOrderShipments")
		respondServiceError(c, err, "Order shipment export")
		return
	}
	c.Status(http.StatusOK)
}
