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

// PatentController handles patent records
type PatentController struct {
	patentRepo *repositories.PatentRepository
}

// NewPatentController creates a new PatentController
func NewPatentController(patentRepo *repositories.PatentRepository) *PatentController {
	return &PatentController{patentRepo: patentRepo}
}

func patentFromRequest(req *dto.PatentRequest, facultyID int64) *models.Patent {
	return &models.Patent{
		FacultyID:    facultyID,
		Title:        req.Title,
		PatentNumber: req.PatentNumber,
		Status:       req.Status,
		YearAwarded:  req.YearAwarded,
	}
}

// Create adds a new patent for the caller
func (ctrl *PatentController) Create(c *gin.Context) {
	var req dto.PatentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	patent := patentFromRequest(&req, middleware.FacultyID(c))
	if err := ctrl.patentRepo.Create(c.Request.Context(), patent); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, patent)
}

// List returns all of the caller's patents
func (ctrl *PatentController) List(c *gin.Context) {
	patents, err := ctrl.patentRepo.ListByFaculty(c.Request.Context(), middleware.FacultyID(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, patents)
}

// Update replaces a patent the caller owns
func (ctrl *PatentController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.PatentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	facultyID := middleware.FacultyID(c)
	patent := patentFromRequest(&req, facultyID)
	patent.ID = id

	if err := ctrl.patentRepo.Update(c.Request.Context(), patent, facultyID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, patent)
}

// Delete removes a patent the caller owns
func (ctrl *PatentController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.patentRepo.Delete(c.Request.Context(), id, middleware.FacultyID(c)); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Patent deleted"})
}
