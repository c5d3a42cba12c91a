package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campusdesk/facultyhub/internal/app/repositories"
	"github.com/campusdesk/facultyhub/internal/pkg/export"
)

// publicationExportColumns fixes the column order of every publication
// export. Records are maps, so the order has to be carried explicitly.
var publicationExportColumns = []string{
	"facultyName",
	"department",
	"title",
	"publicationType",
	"publicationYear",
	"indexing",
}

// ExportService resolves publication rows and hands them to the export
// pipeline
type ExportService struct {
	filterRepo *repositories.FilterRepository
	logger     zerolog.Logger
}

// NewExportService creates a new ExportService
func NewExportService(filterRepo *repositories.FilterRepository, logger zerolog.Logger) *ExportService {
	return &ExportService{
		filterRepo: filterRepo,
		logger:     logger,
	}
}

// ExportByFacultyName exports the publications of faculties whose name
// matches the given fragment
func (s *ExportService) ExportByFacultyName(ctx context.Context, name string, format export.Format) (*export.File, error) {
	rows, err := s.filterRepo.SearchByFacultyName(ctx, name)
	if err != nil {
		return nil, err
	}

	return s.exportRows(rows, format, "faculty_publications")
}

// ExportFiltered exports publications filtered by department name and/or
// publication type; empty filter values match everything
func (s *ExportService) ExportFiltered(ctx context.Context, department, publicationType string, format export.Format) (*export.File, error) {
	rows, err := s.filterRepo.FilterPublications(ctx, department, publicationType)
	if err != nil {
		return nil, err
	}

	return s.exportRows(rows, format, "filtered_publications")
}

func (s *ExportService) exportRows(rows []*repositories.PublicationExportRow, format export.Format, baseName string) (*export.File, error) {
	file, err := export.Export(publicationExportColumns, rowsToRecords(rows), format, baseName)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("filename", file.Filename).
		Int("records", len(rows)).
		Msg("Export generated")

	return file, nil
}

func rowsToRecords(rows []*repositories.PublicationExportRow) []export.Record {
	records := make([]export.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, export.Record{
			"facultyName":     row.FacultyName,
			"department":      row.Department,
			"title":           row.Title,
			"publicationType": row.PublicationType,
			"publicationYear": row.PublicationYear,
			"indexing":        row.Indexing,
		})
	}
	return records
}
