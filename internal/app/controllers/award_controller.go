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

// AwardController handles award records
type AwardController struct {
	awardRepo *repositories.AwardRepository
}

// NewAwardController creates a new AwardController
func NewAwardController(awardRepo *repositories.AwardRepository) *AwardController {
	return &AwardController{awardRepo: awardRepo}
}

func awardFromRequest(req *dto.AwardRequest, facultyID int64) *models.Award {
	return &models.Award{
		FacultyID:    facultyID,
		AwardName:    req.AwardName,
		AwardingBody: req.AwardingBody,
		YearRecorded: req.YearRecorded,
	}
}

// Create adds a new award for the caller
func (ctrl *AwardController) Create(c *gin.Context) {
	var req dto.AwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	award := awardFromRequest(&req, middleware.FacultyID(c))
	if err := ctrl.awardRepo.Create(c.Request.Context(), award); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, award)
}

// List returns all of the caller's awards
func (ctrl *AwardController) List(c *gin.Context) {
	awards, err := ctrl.awardRepo.ListByFaculty(c.Request.Context(), middleware.FacultyID(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, awards)
}

// Update replaces an award the caller owns
func (ctrl *AwardController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.AwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	facultyID := middleware.FacultyID(c)
	award := awardFromRequest(&req, facultyID)
	award.ID = id

	if err := ctrl.awardRepo.Update(c.Request.Context(), award, facultyID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, award)
}

// Delete removes an award the caller owns
func (ctrl *AwardController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.awardRepo.Delete(c.Request.Context(), id, middleware.FacultyID(c)); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Award deleted"})
}
