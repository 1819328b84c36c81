package api

import (
	"net/http"

	"alcyxob/workout-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ExportHandler creates backup archives of a user's programs.
type ExportHandler struct {
	exportService service.ExportService
}

func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// CreateExport godoc
// @Summary Export programs and logged sessions
// @Description Builds a ZIP with programs.json and sessions.csv and returns a presigned download URL.
// @Tags Exports
// @Produce json
// @Security BearerAuth
// @Success 201 {object} service.Export
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /exports [post]
func (h *ExportHandler) CreateExport(c *gin.Context) {
	ownerID, ok := requireUserID(c)
	if !ok {
		return
	}
	export, err := h.exportService.CreateExport(c.Request.Context(), ownerID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, export)
}
