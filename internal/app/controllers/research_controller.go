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

// ResearchController handles research project records
type ResearchController struct {
	researchRepo *repositories.ResearchRepository
}

// NewResearchController creates a new ResearchController
func NewResearchController(researchRepo *repositories.ResearchRepository) *ResearchController {
	return &ResearchController{researchRepo: researchRepo}
}

func researchFromRequest(req *dto.ResearchProjectRequest, facultyID int64) *models.ResearchProject {
	return &models.ResearchProject{
		FacultyID:     facultyID,
		Title:         req.Title,
		FundingAgency: req.FundingAgency,
		Amount:        req.Amount,
		Status:        req.Status,
		StartDate:     req.StartDate.Time,
		EndDate:       req.EndDate.TimePtr(),
	}
}

// Create adds a new research project for the caller
func (ctrl *ResearchController) Create(c *gin.Context) {
	var req dto.ResearchProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	project := researchFromRequest(&req, middleware.FacultyID(c))
	if err := ctrl.researchRepo.Create(c.Request.Context(), project); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// List returns all of the caller's research projects
func (ctrl *ResearchController) List(c *gin.Context) {
	projects, err := ctrl.researchRepo.ListByFaculty(c.Request.Context(), middleware.FacultyID(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// Update replaces a research project the caller owns
func (ctrl *ResearchController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.ResearchProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	facultyID := middleware.FacultyID(c)
	project := researchFromRequest(&req, facultyID)
	project.ID = id

	if err := ctrl.researchRepo.Update(c.Request.Context(), project, facultyID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// Delete removes a research project the caller owns
func (ctrl *ResearchController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.researchRepo.Delete(c.Request.Context(), id, middleware.FacultyID(c)); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Research project deleted"})
}
