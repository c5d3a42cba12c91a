package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusdesk/facultyhub/internal/app/models"
)

// PatentRepository handles database operations for patents
type PatentRepository struct {
	db *pgxpool.Pool
}

// NewPatentRepository creates a new patent repository
func NewPatentRepository(db *pgxpool.Pool) *PatentRepository {
	return &PatentRepository{
		db: db,
	}
}

// Create inserts a new patent
func (r *PatentRepository) Create(ctx context.Context, patent *models.Patent) error {
	query := `
		INSERT INTO patents (faculty_id, title, patent_number, status, year_awarded)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		patent.FacultyID,
		patent.Title,
		patent.PatentNumber,
		patent.Status,
		patent.YearAwarded,
	).Scan(&patent.ID)

	if err != nil {
		return fmt.Errorf("error creating patent: %w", err)
	}

	return nil
}

// ListByFaculty retrieves all patents of a faculty, newest year first
func (r *PatentRepository) ListByFaculty(ctx context.Context, facultyID int64) ([]*models.Patent, error) {
	query := `
		SELECT id, faculty_id, title, patent_number, status, year_awarded
		FROM patents
		WHERE faculty_id = $1
		ORDER BY year_awarded DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query, facultyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	patents := make([]*models.Patent, 0)
	for rows.Next() {
		var p models.Patent
		if err := rows.Scan(&p.ID, &p.FacultyID, &p.Title, &p.PatentNumber, &p.Status, &p.YearAwarded); err != nil {
			return nil, err
		}
		patents = append(patents, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return patents, nil
}

// Update replaces a patent owned by facultyID
func (r *PatentRepository) Update(ctx context.Context, patent *models.Patent, facultyID int64) error {
	if err := checkOwner(ctx, r.db, "patents", patent.ID, facultyID); err != nil {
		return err
	}

	query := `
		UPDATE patents
		SET title = $1, patent_number = $2, status = $3, year_awarded = $4
		WHERE id = $5
	`

	_, err := r.db.Exec(ctx, query, patent.Title, patent.PatentNumber, patent.Status, patent.YearAwarded, patent.ID)
	if err != nil {
		return fmt.Errorf("error updating patent: %w", err)
	}

	return nil
}

// Delete removes a patent owned by facultyID
func (r *PatentRepository) Delete(ctx context.Context, id, facultyID int64) error {
	if err := checkOwner(ctx, r.db, "patents", id, facultyID); err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, `DELETE FROM patents WHERE id = $1`, id); err != nil {
		return fmt.Errorf("error deleting patent: %w", err)
	}

	return nil
}

// CountByFaculty returns the number of patents owned by a faculty
func (r *PatentRepository) CountByFaculty(ctx context.Context, facultyID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM patents WHERE faculty_id = $1`, facultyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting patents: %w", err)
	}
	return count, nil
}

// RecentByFaculty returns the newest patents of a faculty, limited
func (r *PatentRepository) RecentByFaculty(ctx context.Context, facultyID int64, limit int) ([]*models.Patent, error) {
	query := `
		SELECT id, faculty_id, title, patent_number, status, year_awarded
		FROM patents
		WHERE faculty_id = $1
		ORDER BY year_awarded DESC, id DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, facultyID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	patents := make([]*models.Patent, 0, limit)
	for rows.Next() {
		var p models.Patent
		if err := rows.Scan(&p.ID, &p.FacultyID, &p.Title, &p.PatentNumber, &p.Status, &p.YearAwarded); err != nil {
			return nil, err
		}
		patents = append(patents, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return patents, nil
}
