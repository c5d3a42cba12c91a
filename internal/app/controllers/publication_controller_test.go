package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusdesk/facultyhub/internal/app/models"
	"github.com/campusdesk/facultyhub/internal/app/models/dto"
)

func TestPublicationFromRequest(t *testing.T) {
	req := &dto.PublicationRequest{
		Title:           "Graph Sketching at Scale",
		PublicationType: "journal",
		PublicationYear: 2023,
		Journal: &dto.JournalDetailRequest{
			JournalName: "ACM TODS",
			Volume:      "48",
		},
		// Detail blocks not matching the type are ignored
		Book: &dto.BookDetailRequest{Publisher: "stray"},
	}

	publication := publicationFromRequest(req, 7)

	assert.Equal(t, int64(7), publication.FacultyID)
	assert.Equal(t, models.PublicationJournal, publication.PublicationType)
	require.NotNil(t, publication.Journal)
	assert.Equal(t, "ACM TODS", publication.Journal.JournalName)
	assert.Nil(t, publication.Book)
	assert.Nil(t, publication.Conference)
}

func TestPublicationFromRequestBook(t *testing.T) {
	req := &dto.PublicationRequest{
		Title:           "Databases in Depth",
		PublicationType: "book",
		PublicationYear: 2021,
		Book:            &dto.BookDetailRequest{Publisher: "O'Reilly", ISBN: "978-0"},
	}

	publication := publicationFromRequest(req, 3)

	require.NotNil(t, publication.Book)
	assert.Equal(t, "O'Reilly", publication.Book.Publisher)
	assert.Nil(t, publication.Journal)
}
