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

// PublicationController handles publications with their type-detail
// sub-records and indexing links
type PublicationController struct {
	publicationRepo *repositories.PublicationRepository
}

// NewPublicationController creates a new PublicationController
func NewPublicationController(publicationRepo *repositories.PublicationRepository) *PublicationController {
	return &PublicationController{publicationRepo: publicationRepo}
}

func publicationFromRequest(req *dto.PublicationRequest, facultyID int64) *models.Publication {
	publication := &models.Publication{
		FacultyID:       facultyID,
		Title:           req.Title,
		PublicationType: models.PublicationType(req.PublicationType),
		PublicationYear: req.PublicationYear,
	}

	switch publication.PublicationType {
	case models.PublicationJournal:
		if req.Journal != nil {
			publication.Journal = &models.JournalDetail{
				JournalName: req.Journal.JournalName,
				Volume:      req.Journal.Volume,
				Issue:       req.Journal.Issue,
				PageNumbers: req.Journal.PageNumbers,
			}
		}
	case models.PublicationConference:
		if req.Conference != nil {
			publication.Conference = &models.ConferenceDetail{
				ConferenceName: req.Conference.ConferenceName,
				Location:       req.Conference.Location,
			}
		}
	case models.PublicationBook:
		if req.Book != nil {
			publication.Book = &models.BookDetail{
				Publisher: req.Book.Publisher,
				ISBN:      req.Book.ISBN,
			}
		}
	}

	return publication
}

// Create adds a new publication for the caller
func (ctrl *PublicationController) Create(c *gin.Context) {
	var req dto.PublicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	publication := publicationFromRequest(&req, middleware.FacultyID(c))
	if err := ctrl.publicationRepo.Create(c.Request.Context(), publication, req.Indexing); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, publication)
}

// List returns all of the caller's publications
func (ctrl *PublicationController) List(c *gin.Context) {
	publications, err := ctrl.publicationRepo.ListByFaculty(c.Request.Context(), middleware.FacultyID(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, publications)
}

// Update replaces a publication the caller owns, details included
func (ctrl *PublicationController) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.PublicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	facultyID := middleware.FacultyID(c)
	publication := publicationFromRequest(&req, facultyID)
	publication.ID = id

	if err := ctrl.publicationRepo.Update(c.Request.Context(), publication, facultyID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, publication)
}

// Delete removes a publication the caller owns
func (ctrl *PublicationController) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.publicationRepo.Delete(c.Request.Context(), id, middleware.FacultyID(c)); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Publication deleted"})
}

// AddLink attaches an indexing classification link to a publication
func (ctrl *PublicationController) AddLink(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.IndexingLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError(err.Error()))
		return
	}

	link, err := ctrl.publicationRepo.AddLink(c.Request.Context(), id, middleware.FacultyID(c), req.Indexing)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, link)
}
