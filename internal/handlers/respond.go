package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"a1art-gateway/internal/a1art"
	"a1art-gateway/internal/models"
	"a1art-gateway/internal/storage"
	"a1art-gateway/internal/templates"
)

// writeError translates the component error taxonomy to the boundary:
// validation misses and provider rejections are client errors, transport and
// persistence failures are server errors. Provider messages pass through
// verbatim.
func writeError(c *gin.Context, err error) {
	var rejected *a1art.RejectedError
	if errors.As(err, &rejected) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "provider rejected request",
			Message: rejected.Message,
		})
		return
	}

	if errors.Is(err, templates.ErrNotFound) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "template not found",
			Message: err.Error(),
		})
		return
	}

	var unavailable *a1art.UnavailableError
	if errors.As(err, &unavailable) {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "provider unavailable",
			Message: unavailable.Error(),
		})
		return
	}

	var storageErr *storage.Error
	if errors.As(err, &storageErr) {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to save file",
			Message: storageErr.Error(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "internal error",
		Message: err.Error(),
	})
}
