package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusdesk/facultyhub/internal/app/models"
)

// ResearchRepository handles database operations for research projects
type ResearchRepository struct {
	db *pgxpool.Pool
}

// NewResearchRepository creates a new research project repository
func NewResearchRepository(db *pgxpool.Pool) *ResearchRepository {
	return &ResearchRepository{
		db: db,
	}
}

// Create inserts a new research project
func (r *ResearchRepository) Create(ctx context.Context, project *models.ResearchProject) error {
	query := `
		INSERT INTO research_projects (faculty_id, title, funding_agency, amount, status, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		project.FacultyID,
		project.Title,
		project.FundingAgency,
		project.Amount,
		project.Status,
		project.StartDate,
		project.EndDate,
	).Scan(&project.ID)

	if err != nil {
		return fmt.Errorf("error creating research project: %w", err)
	}

	return nil
}

// ListByFaculty retrieves all research projects of a faculty, newest first
func (r *ResearchRepository) ListByFaculty(ctx context.Context, facultyID int64) ([]*models.ResearchProject, error) {
	query := `
		SELECT id, faculty_id, title, funding_agency, amount, status, start_date, end_date
		FROM research_projects
		WHERE faculty_id = $1
		ORDER BY start_date DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query, facultyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]*models.ResearchProject, 0)
	for rows.Next() {
		var p models.ResearchProject
		if err := rows.Scan(
			&p.ID, &p.FacultyID, &p.Title, &p.FundingAgency,
			&p.Amount, &p.Status, &p.StartDate, &p.EndDate,
		); err != nil {
			return nil, err
		}
		projects = append(projects, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}

// Update replaces a research project owned by facultyID
func (r *ResearchRepository) Update(ctx context.Context, project *models.ResearchProject, facultyID int64) error {
	if err := checkOwner(ctx, r.db, "research_projects", project.ID, facultyID); err != nil {
		return err
	}

	query := `
		UPDATE research_projects
		SET title = $1, funding_agency = $2, amount = $3, status = $4, start_date = $5, end_date = $6
		WHERE id = $7
	`

	_, err := r.db.Exec(ctx, query,
		project.Title,
		project.FundingAgency,
		project.Amount,
		project.Status,
		project.StartDate,
		project.EndDate,
		project.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating research project: %w", err)
	}

	return nil
}

// Delete removes a research project owned by facultyID
func (r *ResearchRepository) Delete(ctx context.Context, id, facultyID int64) error {
	if err := checkOwner(ctx, r.db, "research_projects", id, facultyID); err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, `DELETE FROM research_projects WHERE id = $1`, id); err != nil {
		return fmt.Errorf("error deleting research project: %w", err)
	}

	return nil
}

// CountByFaculty returns the number of research projects owned by a faculty
func (r *ResearchRepository) CountByFaculty(ctx context.Context, facultyID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM research_projects WHERE faculty_id = $1`, facultyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting research projects: %w", err)
	}
	return count, nil
}

// RecentByFaculty returns the newest research projects of a faculty, limited
func (r *ResearchRepository) RecentByFaculty(ctx context.Context, facultyID int64, limit int) ([]*models.ResearchProject, error) {
	query := `
		SELECT id, faculty_id, title, funding_agency, amount, status, start_date, end_date
		FROM research_projects
		WHERE faculty_id = $1
		ORDER BY start_date DESC, id DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, facultyID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]*models.ResearchProject, 0, limit)
	for rows.Next() {
		var p models.ResearchProject
		if err := rows.Scan(
			&p.ID, &p.FacultyID, &p.Title, &p.FundingAgency,
			&p.Amount, &p.Status, &p.StartDate, &p.EndDate,
		); err != nil {
			return nil, err
		}
		projects = append(projects, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}
