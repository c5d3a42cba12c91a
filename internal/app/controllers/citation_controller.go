package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusdesk/facultyhub/internal/app/models"
	"github.com/campusdesk/facultyhub/internal/app/models/dto"
	"github.com/campusdesk/facultyhub/internal/app/repositories"
	"github.com/campusdesk/facultyhub/internal/middleware"
	"github.com/campusdesk/facultyhub/internal/pkg/apperrors"
)

// CitationController handles yearly citation metric snapshots
type CitationController struct {
	citationRepo *repositories.CitationRepository
}

// NewCitationController creates a new CitationController
func NewCitationController(citationRepo *repositories.CitationRepository) *CitationController {
	return &CitationController{citationRepo: citationRepo}
}

func metricFromRequest(req *dto.CitationMetricRequest, facultyID int64) *models.CitationMetric {
	return &models.CitationMetric{
		FacultyID:      facultyID,
		HIndex:         req.HIndex,
		I10Index:       req.I10Index,
		TotalCitations: req.TotalCitations,
		YearRecorded:   req.YearRecorded,
	}
}

// Create adds a citation snapshot for the caller
func (ctrl *CitationController) Create(c *gin.Context) {
	var req dto.CitationMetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	metric := metricFromRequest(&req, middleware.FacultyID(c))
	if err := ctrl.citationRepo.Create(c.Request.Context(), metric); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, metric)
}

// List returns the caller's citation history in chronological order
func (ctrl *CitationController) List(c *gin.Context) {
	metrics, err := ctrl.citationRepo.ListByFaculty(c.Request.Context(), middleware.FacultyID(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// Update replaces a citation snapshot the caller owns
func (ctrl *CitationController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.CitationMetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	facultyID := middleware.FacultyID(c)
	metric := metricFromRequest(&req, facultyID)
	metric.ID = id

	if err := ctrl.citationRepo.Update(c.Request.Context(), metric, facultyID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, metric)
}

// Delete removes a citation snapshot the caller owns
func (ctrl *CitationController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.citationRepo.Delete(c.Request.Context(), id, middleware.FacultyID(c)); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Citation metric deleted"})
}
