package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusdesk/facultyhub/internal/app/models"
	"github.com/campusdesk/facultyhub/internal/pkg/apperrors"
	"github.com/campusdesk/facultyhub/internal/pkg/dberrors"
)

// FacultyRepository handles database operations for faculty accounts
type FacultyRepository struct {
	db *pgxpool.Pool
}

// NewFacultyRepository creates a new faculty repository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{
		db: db,
	}
}

// Create inserts a new faculty account
func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) error {
	query := `
		INSERT INTO faculties (first_name, last_name, email, password, phone, date_of_birth, designation, role, is_approved, department_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		faculty.FirstName,
		faculty.LastName,
		faculty.Email,
		faculty.Password,
		faculty.Phone,
		faculty.DateOfBirth,
		faculty.Designation,
		faculty.Role,
		faculty.IsApproved,
		faculty.DepartmentID,
	).Scan(&faculty.ID, &faculty.CreatedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating faculty: %w", err)
	}

	return nil
}

// GetByID retrieves a faculty account by ID, including its department
func (r *FacultyRepository) GetByID(ctx context.Context, id int64) (*models.Faculty, error) {
	query := `
		SELECT f.id, f.first_name, f.last_name, f.email, f.password, f.phone, f.date_of_birth,
		       f.designation, f.role, f.is_approved, f.department_id, f.created_at, d.name
		FROM faculties f
		JOIN departments d ON d.id = f.department_id
		WHERE f.id = $1
	`

	var faculty models.Faculty
	var department models.Department
	err := r.db.QueryRow(ctx, query, id).Scan(
		&faculty.ID,
		&faculty.FirstName,
		&faculty.LastName,
		&faculty.Email,
		&faculty.Password,
		&faculty.Phone,
		&faculty.DateOfBirth,
		&faculty.Designation,
		&faculty.Role,
		&faculty.IsApproved,
		&faculty.DepartmentID,
		&faculty.CreatedAt,
		&department.Name,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrFacultyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}

	department.ID = faculty.DepartmentID
	faculty.Department = &department
	return &faculty, nil
}

// GetByEmail retrieves a faculty account by email
func (r *FacultyRepository) GetByEmail(ctx context.Context, email string) (*models.Faculty, error) {
	query := `
		SELECT id, first_name, last_name, email, password, phone, date_of_birth,
		       designation, role, is_approved, department_id, created_at
		FROM faculties
		WHERE email = $1
	`

	var faculty models.Faculty
	err := r.db.QueryRow(ctx, query, email).Scan(
		&faculty.ID,
		&faculty.FirstName,
		&faculty.LastName,
		&faculty.Email,
		&faculty.Password,
		&faculty.Phone,
		&faculty.DateOfBirth,
		&faculty.Designation,
		&faculty.Role,
		&faculty.IsApproved,
		&faculty.DepartmentID,
		&faculty.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrFacultyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving faculty by email: %w", err)
	}

	return &faculty, nil
}

// UpdateProfile updates the editable profile fields of a faculty account
func (r *FacultyRepository) UpdateProfile(ctx context.Context, faculty *models.Faculty) error {
	query := `
		UPDATE faculties
		SET first_name = $1, last_name = $2, phone = $3, date_of_birth = $4, designation = $5
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		faculty.FirstName,
		faculty.LastName,
		faculty.Phone,
		faculty.DateOfBirth,
		faculty.Designation,
		faculty.ID,
	)

	if err != nil {
		return fmt.Errorf("error updating faculty profile: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}

	return nil
}

// ListPending retrieves all unapproved Faculty-role accounts
func (r *FacultyRepository) ListPending(ctx context.Context) ([]*models.Faculty, error) {
	query := `
		SELECT f.id, f.first_name, f.last_name, f.email, f.phone, f.date_of_birth,
		       f.designation, f.role, f.is_approved, f.department_id, f.created_at, d.name
		FROM faculties f
		JOIN departments d ON d.id = f.department_id
		WHERE f.role = $1 AND f.is_approved = FALSE
		ORDER BY f.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, models.RoleFaculty)
	if err != nil {
		return nil, fmt.Errorf("error listing pending faculties: %w", err)
	}
	defer rows.Close()

	pending := make([]*models.Faculty, 0)
	for rows.Next() {
		var faculty models.Faculty
		var department models.Department
		if err := rows.Scan(
			&faculty.ID,
			&faculty.FirstName,
			&faculty.LastName,
			&faculty.Email,
			&faculty.Phone,
			&faculty.DateOfBirth,
			&faculty.Designation,
			&faculty.Role,
			&faculty.IsApproved,
			&faculty.DepartmentID,
			&faculty.CreatedAt,
			&department.Name,
		); err != nil {
			return nil, err
		}
		department.ID = faculty.DepartmentID
		faculty.Department = &department
		pending = append(pending, &faculty)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return pending, nil
}

// Approve sets the approval flag on a faculty account
func (r *FacultyRepository) Approve(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE faculties SET is_approved = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error approving faculty: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}

	return nil
}

// Delete removes a faculty account (admin rejection)
func (r *FacultyRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM faculties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting faculty: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}

	return nil
}
