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

// QualificationController handles academic qualification records
type QualificationController struct {
	qualificationRepo *repositories.QualificationRepository
}

// NewQualificationController creates a new QualificationController
func NewQualificationController(qualificationRepo *repositories.QualificationRepository) *QualificationController {
	return &QualificationController{qualificationRepo: qualificationRepo}
}

func qualificationFromRequest(req *dto.QualificationRequest, facultyID int64) *models.Qualification {
	return &models.Qualification{
		FacultyID:      facultyID,
		Degree:         req.Degree,
		Institution:    req.Institution,
		Specialization: req.Specialization,
		YearOfPassing:  req.YearOfPassing,
	}
}

// Create adds a new qualification for the caller
func (ctrl *QualificationController) Create(c *gin.Context) {
	var req dto.QualificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	qualification := qualificationFromRequest(&req, middleware.FacultyID(c))
	if err := ctrl.qualificationRepo.Create(c.Request.Context(), qualification); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, qualification)
}

// List returns all of the caller's qualifications
func (ctrl *QualificationController) List(c *gin.Context) {
	qualifications, err := ctrl.qualificationRepo.ListByFaculty(c.Request.Context(), middleware.FacultyID(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, qualifications)
}

// Update replaces a qualification the caller owns
func (ctrl *QualificationController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.QualificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	facultyID := middleware.FacultyID(c)
	qualification := qualificationFromRequest(&req, facultyID)
	qualification.ID = id

	if err := ctrl.qualificationRepo.Update(c.Request.Context(), qualification, facultyID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, qualification)
}

// Delete removes a qualification the caller owns
func (ctrl *QualificationController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.qualificationRepo.Delete(c.Request.Context(), id, middleware.FacultyID(c)); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Qualification deleted"})
}
