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

// EventController handles organised events and their types
type EventController struct {
	eventRepo *repositories.EventRepository
}

// NewEventController creates a new EventController
func NewEventController(eventRepo *repositories.EventRepository) *EventController {
	return &EventController{eventRepo: eventRepo}
}

func eventFromRequest(req *dto.EventRequest, facultyID int64) *models.EventOrganised {
	return &models.EventOrganised{
		FacultyID:   facultyID,
		EventName:   req.EventName,
		EventTypeID: req.EventTypeID,
		Role:        req.Role,
		StartDate:   req.StartDate.Time,
		EndDate:     req.EndDate.TimePtr(),
	}
}

// Create adds a new organised event for the caller
func (ctrl *EventController) Create(c *gin.Context) {
	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	event := eventFromRequest(&req, middleware.FacultyID(c))
	if err := ctrl.eventRepo.Create(c.Request.Context(), event); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// List returns all of the caller's organised events
func (ctrl *EventController) List(c *gin.Context) {
	events, err := ctrl.eventRepo.ListByFaculty(c.Request.Context(), middleware.FacultyID(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// Update replaces an organised event the caller owns
func (ctrl *EventController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	facultyID := middleware.FacultyID(c)
	event := eventFromRequest(&req, facultyID)
	event.ID = id

	if err := ctrl.eventRepo.Update(c.Request.Context(), event, facultyID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// Delete removes an organised event the caller owns
func (ctrl *EventController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.eventRepo.Delete(c.Request.Context(), id, middleware.FacultyID(c)); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Event deleted"})
}

// ListTypes returns the shared event type catalog
func (ctrl *EventController) ListTypes(c *gin.Context) {
	types, err := ctrl.eventRepo.ListTypes(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, types)
}

// CreateType adds an event type to the shared catalog. Creating an existing
// name returns the existing type.
func (ctrl *EventController) CreateType(c *gin.Context) {
	var req dto.EventTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	eventType := &models.EventType{Name: req.Name}
	if err := ctrl.eventRepo.CreateType(c.Request.Context(), eventType); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, eventType)
}
