package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusdesk/facultyhub/internal/app/models"
)

// QualificationRepository handles database operations for qualifications
type QualificationRepository struct {
	db *pgxpool.Pool
}

// NewQualificationRepository creates a new qualification repository
func NewQualificationRepository(db *pgxpool.Pool) *QualificationRepository {
	return &QualificationRepository{
		db: db,
	}
}

// Create inserts a new qualification
func (r *QualificationRepository) Create(ctx context.Context, qualification *models.Qualification) error {
	query := `
		INSERT INTO qualifications (faculty_id, degree, institution, specialization, year_of_passing)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		qualification.FacultyID,
		qualification.Degree,
		qualification.Institution,
		qualification.Specialization,
		qualification.YearOfPassing,
	).Scan(&qualification.ID)

	if err != nil {
		return fmt.Errorf("error creating qualification: %w", err)
	}

	return nil
}

// ListByFaculty retrieves all qualifications of a faculty, newest year first
func (r *QualificationRepository) ListByFaculty(ctx context.Context, facultyID int64) ([]*models.Qualification, error) {
	query := `
		SELECT id, faculty_id, degree, institution, specialization, year_of_passing
		FROM qualifications
		WHERE faculty_id = $1
		ORDER BY year_of_passing DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query, facultyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	qualifications := make([]*models.Qualification, 0)
	for rows.Next() {
		var q models.Qualification
		if err := rows.Scan(&q.ID, &q.FacultyID, &q.Degree, &q.Institution, &q.Specialization, &q.YearOfPassing); err != nil {
			return nil, err
		}
		qualifications = append(qualifications, &q)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return qualifications, nil
}

// Update replaces a qualification owned by facultyID
func (r *QualificationRepository) Update(ctx context.Context, qualification *models.Qualification, facultyID int64) error {
	if err := checkOwner(ctx, r.db, "qualifications", qualification.ID, facultyID); err != nil {
		return err
	}

	query := `
		UPDATE qualifications
		SET degree = $1, institution = $2, specialization = $3, year_of_passing = $4
		WHERE id = $5
	`

	_, err := r.db.Exec(ctx, query,
		qualification.Degree,
		qualification.Institution,
		qualification.Specialization,
		qualification.YearOfPassing,
		qualification.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating qualification: %w", err)
	}

	return nil
}

// Delete removes a qualification owned by facultyID
func (r *QualificationRepository) Delete(ctx context.Context, id, facultyID int64) error {
	if err := checkOwner(ctx, r.db, "qualifications", id, facultyID); err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, `DELETE FROM qualifications WHERE id = $1`, id); err != nil {
		return fmt.Errorf("error deleting qualification: %w", err)
	}

	return nil
}

// CountByFaculty returns the number of qualifications owned by a faculty
func (r *QualificationRepository) CountByFaculty(ctx context.Context, facultyID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM qualifications WHERE faculty_id = $1`, facultyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting qualifications: %w", err)
	}
	return count, nil
}
