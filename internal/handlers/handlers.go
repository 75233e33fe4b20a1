package handlers

import (
	"errors"
	"net/http"

	"stocktrack_backend/internal/repositories"
	"stocktrack_backend/internal/services"
	"stocktrack_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// queryFilters collects the recognized list filters from the request query
// string. Absent parameters stay absent; repositories ignore keys they do
// not map.
func queryFilters(c *gin.Context) repositories.Filters {
	f := repositories.Filters{}
	for _, key := range []string{"search", "status", "category", "warehouse", "type", "date", "priority"} {
		if v := c.Query(key); v != "" {
			f[key] = v
		}
	}
	return f
}

// parseIDParam extracts and validates the numeric :id path parameter.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid "+name+" ID format.", err.Error()))
		return 0, false
	}
	return id, true
}

// bulkDeleteRequest is the body of collection-level DELETE endpoints.
type bulkDeleteRequest struct {
	IDs []int64 `json:"ids" binding:"required"`
}

// respondServiceError translates service and repository sentinel errors
// into the standard API error shape. entity names the resource for the
// human-readable message.
func respondServiceError(c *gin.Context, err error, entity string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
	case errors.Is(err, repositories.ErrNotFound):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, entity+" not found.", err.Error()))
	case errors.Is(err, repositories.ErrDuplicateKey):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, entity+" already exists.", err.Error()))
	case errors.Is(err, repositories.ErrStoreUnavailable):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusServiceUnavailable, utils.ErrCodeServiceUnavailable, "Storage is temporarily unavailable.", err.Error()))
	default:
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServer, "Failed to process "+entity+" request.", "Internal error"))
	}
}
