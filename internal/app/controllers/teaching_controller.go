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

// TeachingController handles teaching experiences and the subjects taught
// under them
type TeachingController struct {
	teachingRepo *repositories.TeachingRepository
}

// NewTeachingController creates a new TeachingController
func NewTeachingController(teachingRepo *repositories.TeachingRepository) *TeachingController {
	return &TeachingController{teachingRepo: teachingRepo}
}

func experienceFromRequest(req *dto.TeachingExperienceRequest, facultyID int64) *models.TeachingExperience {
	return &models.TeachingExperience{
		FacultyID:   facultyID,
		Institution: req.Institution,
		Designation: req.Designation,
		StartDate:   req.StartDate.Time,
		EndDate:     req.EndDate.TimePtr(),
	}
}

// CreateExperience adds a new teaching experience for the caller
func (ctrl *TeachingController) CreateExperience(c *gin.Context) {
	var req dto.TeachingExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	experience := experienceFromRequest(&req, middleware.FacultyID(c))
	if err := ctrl.teachingRepo.Create(c.Request.Context(), experience); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, experience)
}

// ListExperiences returns all of the caller's teaching experiences
func (ctrl *TeachingController) ListExperiences(c *gin.Context) {
	experiences, err := ctrl.teachingRepo.ListByFaculty(c.Request.Context(), middleware.FacultyID(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, experiences)
}

// UpdateExperience replaces a teaching experience the caller owns
func (ctrl *TeachingController) UpdateExperience(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.TeachingExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	facultyID := middleware.FacultyID(c)
	experience := experienceFromRequest(&req, facultyID)
	experience.ID = id

	if err := ctrl.teachingRepo.Update(c.Request.Context(), experience, facultyID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, experience)
}

// DeleteExperience removes a teaching experience the caller owns
func (ctrl *TeachingController) DeleteExperience(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.teachingRepo.Delete(c.Request.Context(), id, middleware.FacultyID(c)); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Teaching experience deleted"})
}

// CreateSubject adds a subject taught by the caller
func (ctrl *TeachingController) CreateSubject(c *gin.Context) {
	var req dto.SubjectTaughtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	subject := &models.SubjectTaught{
		FacultyID:   middleware.FacultyID(c),
		SubjectName: req.SubjectName,
		Semester:    req.Semester,
		Year:        req.Year,
	}
	if err := ctrl.teachingRepo.CreateSubject(c.Request.Context(), subject); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, subject)
}

// ListSubjects returns all subjects taught by the caller
func (ctrl *TeachingController) ListSubjects(c *gin.Context) {
	subjects, err := ctrl.teachingRepo.ListSubjectsByFaculty(c.Request.Context(), middleware.FacultyID(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, subjects)
}

// UpdateSubject replaces a subject record the caller owns
func (ctrl *TeachingController) UpdateSubject(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.SubjectTaughtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	facultyID := middleware.FacultyID(c)
	subject := &models.SubjectTaught{
		ID:          id,
		FacultyID:   facultyID,
		SubjectName: req.SubjectName,
		Semester:    req.Semester,
		Year:        req.Year,
	}

	if err := ctrl.teachingRepo.UpdateSubject(c.Request.Context(), subject, facultyID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, subject)
}

// DeleteSubject removes a subject record the caller owns
func (ctrl *TeachingController) DeleteSubject(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.teachingRepo.DeleteSubject(c.Request.Context(), id, middleware.FacultyID(c)); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Subject deleted"})
}
