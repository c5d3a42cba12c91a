package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusdesk/facultyhub/internal/app/models/dto"
	"github.com/campusdesk/facultyhub/internal/app/services"
	"github.com/campusdesk/facultyhub/internal/middleware"
	"github.com/campusdesk/facultyhub/internal/pkg/apperrors"
)

// FacultyController handles directory reads and profile management
type FacultyController struct {
	facultyService *services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService *services.FacultyService) *FacultyController {
	return &FacultyController{facultyService: facultyService}
}

// GetFaculty returns the public directory view of a faculty account
func (ctrl *FacultyController) GetFaculty(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	faculty, err := ctrl.facultyService.GetFaculty(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, faculty)
}

// GetProfile returns a faculty profile for an authenticated caller
func (ctrl *FacultyController) GetProfile(c *gin.Context) {
	facultyID, err := parseIDParam(c, "facultyId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	profile, err := ctrl.facultyService.GetProfile(c.Request.Context(), facultyID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile updates the caller's own profile
func (ctrl *FacultyController) UpdateProfile(c *gin.Context) {
	facultyID, err := parseIDParam(c, "facultyId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	profile, err := ctrl.facultyService.UpdateProfile(
		c.Request.Context(), facultyID, middleware.FacultyID(c), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
