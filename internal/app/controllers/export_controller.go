package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusdesk/facultyhub/internal/app/models/dto"
	"github.com/campusdesk/facultyhub/internal/app/services"
	"github.com/campusdesk/facultyhub/internal/middleware"
	"github.com/campusdesk/facultyhub/internal/pkg/apperrors"
	"github.com/campusdesk/facultyhub/internal/pkg/export"
)

// ExportController serves publication search, filtering and file export
type ExportController struct {
	exportService *services.ExportService
}

// NewExportController creates a new ExportController
func NewExportController(exportService *services.ExportService) *ExportController {
	return &ExportController{exportService: exportService}
}

// ExportByName exports publications of faculties whose name matches the
// name query parameter
func (ctrl *ExportController) ExportByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		middleware.HandleAPIError(c, apperrors.NewValidationError("name query parameter is required"))
		return
	}

	file, err := ctrl.exportService.ExportByFacultyName(
		c.Request.Context(), name, export.Format(c.Query("format")))
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	ctrl.respondFile(c, file)
}

// ExportFiltered exports publications filtered by department and/or
// publication type query parameters; empty filters match everything
func (ctrl *ExportController) ExportFiltered(c *gin.Context) {
	file, err := ctrl.exportService.ExportFiltered(
		c.Request.Context(),
		c.Query("department"),
		c.Query("publicationType"),
		export.Format(c.Query("format")),
	)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}

	ctrl.respondFile(c, file)
}

// respondFile streams a generated export. Recognized formats download as
// attachments; the JSON fallback renders inline.
func (ctrl *ExportController) respondFile(c *gin.Context, file *export.File) {
	if file.ContentType != "application/json" {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	}
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// respondError keeps the no-data case on the standard message body and
// attaches the underlying cause for generation failures
func (ctrl *ExportController) respondError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNoExportData) || errors.Is(err, apperrors.ErrValidationFailed) {
		middleware.HandleAPIError(c, err)
		return
	}

	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
		Message: "Failed to generate export",
		Error:   err.Error(),
	})
}
