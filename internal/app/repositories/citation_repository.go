package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusdesk/facultyhub/internal/app/models"
)

// CitationRepository handles database operations for citation metrics
type CitationRepository struct {
	db *pgxpool.Pool
}

// NewCitationRepository creates a new citation metric repository
func NewCitationRepository(db *pgxpool.Pool) *CitationRepository {
	return &CitationRepository{
		db: db,
	}
}

// Create inserts a new citation metric snapshot
func (r *CitationRepository) Create(ctx context.Context, metric *models.CitationMetric) error {
	query := `
		INSERT INTO citation_metrics (faculty_id, h_index, i10_index, total_citations, year_recorded)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		metric.FacultyID,
		metric.HIndex,
		metric.I10Index,
		metric.TotalCitations,
		metric.YearRecorded,
	).Scan(&metric.ID)

	if err != nil {
		return fmt.Errorf("error creating citation metric: %w", err)
	}

	return nil
}

// ListByFaculty retrieves the full citation series of a faculty in
// chronological order
func (r *CitationRepository) ListByFaculty(ctx context.Context, facultyID int64) ([]*models.CitationMetric, error) {
	query := `
		SELECT id, faculty_id, h_index, i10_index, total_citations, year_recorded
		FROM citation_metrics
		WHERE faculty_id = $1
		ORDER BY year_recorded ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query, facultyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	metrics := make([]*models.CitationMetric, 0)
	for rows.Next() {
		var m models.CitationMetric
		if err := rows.Scan(&m.ID, &m.FacultyID, &m.HIndex, &m.I10Index, &m.TotalCitations, &m.YearRecorded); err != nil {
			return nil, err
		}
		metrics = append(metrics, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return metrics, nil
}

// Latest returns the most recent citation snapshot, or nil when the faculty
// has none
func (r *CitationRepository) Latest(ctx context.Context, facultyID int64) (*models.CitationMetric, error) {
	query := `
		SELECT id, faculty_id, h_index, i10_index, total_citations, year_recorded
		FROM citation_metrics
		WHERE faculty_id = $1
		ORDER BY year_recorded DESC, id DESC
		LIMIT 1
	`

	var m models.CitationMetric
	err := r.db.QueryRow(ctx, query, facultyID).
		Scan(&m.ID, &m.FacultyID, &m.HIndex, &m.I10Index, &m.TotalCitations, &m.YearRecorded)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving latest citation metric: %w", err)
	}

	return &m, nil
}

// Update replaces a citation metric owned by facultyID
func (r *CitationRepository) Update(ctx context.Context, metric *models.CitationMetric, facultyID int64) error {
	if err := checkOwner(ctx, r.db, "citation_metrics", metric.ID, facultyID); err != nil {
		return err
	}

	query := `
		UPDATE citation_metrics
		SET h_index = $1, i10_index = $2, total_citations = $3, year_recorded = $4
		WHERE id = $5
	`

	_, err := r.db.Exec(ctx, query, metric.HIndex, metric.I10Index, metric.TotalCitations, metric.YearRecorded, metric.ID)
	if err != nil {
		return fmt.Errorf("error updating citation metric: %w", err)
	}

	return nil
}

// Delete removes a citation metric owned by facultyID
func (r *CitationRepository) Delete(ctx context.Context, id, facultyID int64) error {
	if err := checkOwner(ctx, r.db, "citation_metrics", id, facultyID); err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, `DELETE FROM citation_metrics WHERE id = $1`, id); err != nil {
		return fmt.Errorf("error deleting citation metric: %w", err)
	}

	return nil
}
