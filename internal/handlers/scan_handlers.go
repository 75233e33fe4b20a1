package handlers

import (
	"net/http"

	"stocktrack_backend/internal/models"
	"stocktrack_backend/internal/services"
	"stocktrack_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ScanHandler holds the scan service.
type ScanHandler struct {
	scanService services.ScanService
}

// NewScanHandler creates a new ScanHandler.
func NewScanHandler(ss services.ScanService) *ScanHandler {
	return &ScanHandler{scanService: ss}
}

// GetScans handles fetching scan history with optional filters.
func (h *ScanHandler) GetScans(c *gin.Context) {
	scans, err := h.scanService.GetScans(queryFilters(c))
	if err != nil {
		utils.LogError(err, "GetScans: Error from scanService.GetScans")
		respondServiceError(c, err, "Scan record")
		return
	}
	if scans == nil {
		scans = []models.ScanRecord{}
	}
	c.JSON(http.StatusOK, scans)
}

// GetScanByID handles fetching a single scan record by ID.
func (h *ScanHandler) GetScanByID(c *gin.Context) {
	id, ok := parseIDParam(c, "scan")
	if !ok {
		return
	}
	scan, err := h.scanService.GetScanByID(id)
	if err != nil {
		utils.LogError(err, "GetScanByID: Error from scanService.GetScanByID")
		respondServiceError(c, err, "Scan record")
		return
	}
	c.JSON(http.StatusOK, scan)
}

// RecordScan handles recording a barcode scan. Unknown codes are recorded
// with a not_found status rather than rejected.
func (h *ScanHandler) RecordScan(c *gin.Context) {
	var req services.CreateScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	scan, err := h.scanService.RecordScan(req)
	if err != nil {
		utils.LogError(err, "RecordScan: Error from scanService.RecordScan")
		respondServiceError(c, err, "Scan record")
		return
	}
	c.JSON(http.StatusCreated, scan)
}

// DeleteScan handles deleting a scan record.
func (h *ScanHandler) DeleteScan(c *gin.Context) {
	id, ok := parseIDParam(c, "scan")
	if !ok {
		return
	}
	if err := h.scanService.DeleteScan(id); err != nil {
		utils.LogError(err, "DeleteScan: Error from scanService.DeleteScan")
		respondServiceError(c, err, "Scan record")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Scan record deleted successfully"})
}
