package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusdesk/facultyhub/internal/app/models"
)

// TeachingRepository handles database operations for teaching experiences and
// subjects taught
type TeachingRepository struct {
	db *pgxpool.Pool
}

// NewTeachingRepository creates a new teaching repository
func NewTeachingRepository(db *pgxpool.Pool) *TeachingRepository {
	return &TeachingRepository{
		db: db,
	}
}

// Create inserts a new teaching experience
func (r *TeachingRepository) Create(ctx context.Context, experience *models.TeachingExperience) error {
	query := `
		INSERT INTO teaching_experiences (faculty_id, institution, designation, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		experience.FacultyID,
		experience.Institution,
		experience.Designation,
		experience.StartDate,
		experience.EndDate,
	).Scan(&experience.ID)

	if err != nil {
		return fmt.Errorf("error creating teaching experience: %w", err)
	}

	return nil
}

// ListByFaculty retrieves all teaching experiences of a faculty, newest first
func (r *TeachingRepository) ListByFaculty(ctx context.Context, facultyID int64) ([]*models.TeachingExperience, error) {
	query := `
		SELECT id, faculty_id, institution, designation, start_date, end_date
		FROM teaching_experiences
		WHERE faculty_id = $1
		ORDER BY start_date DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query, facultyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	experiences := make([]*models.TeachingExperience, 0)
	for rows.Next() {
		var t models.TeachingExperience
		if err := rows.Scan(&t.ID, &t.FacultyID, &t.Institution, &t.Designation, &t.StartDate, &t.EndDate); err != nil {
			return nil, err
		}
		experiences = append(experiences, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return experiences, nil
}

// Update replaces a teaching experience owned by facultyID
func (r *TeachingRepository) Update(ctx context.Context, experience *models.TeachingExperience, facultyID int64) error {
	if err := checkOwner(ctx, r.db, "teaching_experiences", experience.ID, facultyID); err != nil {
		return err
	}

	query := `
		UPDATE teaching_experiences
		SET institution = $1, designation = $2, start_date = $3, end_date = $4
		WHERE id = $5
	`

	_, err := r.db.Exec(ctx, query,
		experience.Institution,
		experience.Designation,
		experience.StartDate,
		experience.EndDate,
		experience.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating teaching experience: %w", err)
	}

	return nil
}

// Delete removes a teaching experience owned by facultyID
func (r *TeachingRepository) Delete(ctx context.Context, id, facultyID int64) error {
	if err := checkOwner(ctx, r.db, "teaching_experiences", id, facultyID); err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, `DELETE FROM teaching_experiences WHERE id = $1`, id); err != nil {
		return fmt.Errorf("error deleting teaching experience: %w", err)
	}

	return nil
}

// CreateSubject inserts a new subject taught
func (r *TeachingRepository) CreateSubject(ctx context.Context, subject *models.SubjectTaught) error {
	query := `
		INSERT INTO subjects_taught (faculty_id, subject_name, semester, year)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		subject.FacultyID,
		subject.SubjectName,
		subject.Semester,
		subject.Year,
	).Scan(&subject.ID)

	if err != nil {
		return fmt.Errorf("error creating subject taught: %w", err)
	}

	return nil
}

// ListSubjectsByFaculty retrieves all subjects taught by a faculty, newest
// year first
func (r *TeachingRepository) ListSubjectsByFaculty(ctx context.Context, facultyID int64) ([]*models.SubjectTaught, error) {
	query := `
		SELECT id, faculty_id, subject_name, semester, year
		FROM subjects_taught
		WHERE faculty_id = $1
		ORDER BY year DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query, facultyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subjects := make([]*models.SubjectTaught, 0)
	for rows.Next() {
		var s models.SubjectTaught
		if err := rows.Scan(&s.ID, &s.FacultyID, &s.SubjectName, &s.Semester, &s.Year); err != nil {
			return nil, err
		}
		subjects = append(subjects, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subjects, nil
}

// UpdateSubject replaces a subject taught owned by facultyID
func (r *TeachingRepository) UpdateSubject(ctx context.Context, subject *models.SubjectTaught, facultyID int64) error {
	if err := checkOwner(ctx, r.db, "subjects_taught", subject.ID, facultyID); err != nil {
		return err
	}

	query := `
		UPDATE subjects_taught
		SET subject_name = $1, semester = $2, year = $3
		WHERE id = $4
	`

	_, err := r.db.Exec(ctx, query, subject.SubjectName, subject.Semester, subject.Year, subject.ID)
	if err != nil {
		return fmt.Errorf("error updating subject taught: %w", err)
	}

	return nil
}

// DeleteSubject removes a subject taught owned by facultyID
func (r *TeachingRepository) DeleteSubject(ctx context.Context, id, facultyID int64) error {
	if err := checkOwner(ctx, r.db, "subjects_taught", id, facultyID); err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, `DELETE FROM subjects_taught WHERE id = $1`, id); err != nil {
		return fmt.Errorf("error deleting subject taught: %w", err)
	}

	return nil
}

// CountSubjectsByFaculty returns the number of subjects taught by a faculty
func (r *TeachingRepository) CountSubjectsByFaculty(ctx context.Context, facultyID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM subjects_taught WHERE faculty_id = $1`, facultyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting subjects taught: %w", err)
	}
	return count, nil
}
