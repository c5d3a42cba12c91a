package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusdesk/facultyhub/internal/app/repositories"
)

func TestRowsToRecords(t *testing.T) {
	rows := []*repositories.PublicationExportRow{
		{
			FacultyName:     "Asha Verma",
			Department:      "Computer Science",
			Title:           "Graph Sketching at Scale",
			PublicationType: "journal",
			PublicationYear: 2023,
			Indexing:        "Scopus",
		},
	}

	records := rowsToRecords(rows)
	require.Len(t, records, 1)
	assert.Equal(t, "Asha Verma", records[0]["facultyName"])
	assert.Equal(t, "Computer Science", records[0]["department"])
	assert.Equal(t, 2023, records[0]["publicationYear"])
	assert.Equal(t, "Scopus", records[0]["indexing"])

	// Every export column has a value in the record
	for _, col := range publicationExportColumns {
		_, ok := records[0][col]
		assert.True(t, ok, "missing column %s", col)
	}

	assert.Empty(t, rowsToRecords(nil))
}
