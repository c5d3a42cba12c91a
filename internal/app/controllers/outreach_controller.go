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

// OutreachController handles outreach activity records
type OutreachController struct {
	outreachRepo *repositories.OutreachRepository
}

// NewOutreachController creates a new OutreachController
func NewOutreachController(outreachRepo *repositories.OutreachRepository) *OutreachController {
	return &OutreachController{outreachRepo: outreachRepo}
}

func outreachFromRequest(req *dto.OutreachActivityRequest, facultyID int64) *models.OutreachActivity {
	return &models.OutreachActivity{
		FacultyID:    facultyID,
		ActivityName: req.ActivityName,
		Role:         req.Role,
		EventDate:    req.EventDate.Time,
		Venue:        req.Venue,
	}
}

// Create adds a new outreach activity for the caller
func (ctrl *OutreachController) Create(c *gin.Context) {
	var req dto.OutreachActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	activity := outreachFromRequest(&req, middleware.FacultyID(c))
	if err := ctrl.outreachRepo.Create(c.Request.Context(), activity); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, activity)
}

// List returns all of the caller's outreach activities
func (ctrl *OutreachController) List(c *gin.Context) {
	activities, err := ctrl.outreachRepo.ListByFaculty(c.Request.Context(), middleware.FacultyID(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, activities)
}

// Update replaces an outreach activity the caller owns
func (ctrl *OutreachController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.OutreachActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	facultyID := middleware.FacultyID(c)
	activity := outreachFromRequest(&req, facultyID)
	activity.ID = id

	if err := ctrl.outreachRepo.Update(c.Request.Context(), activity, facultyID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, activity)
}

// Delete removes an outreach activity the caller owns
func (ctrl *OutreachController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.outreachRepo.Delete(c.Request.Context(), id, middleware.FacultyID(c)); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Outreach activity deleted"})
}
