package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusdesk/facultyhub/internal/app/models"
)

// AwardRepository handles database operations for awards
type AwardRepository struct {
	db *pgxpool.Pool
}

// NewAwardRepository creates a new award repository
func NewAwardRepository(db *pgxpool.Pool) *AwardRepository {
	return &AwardRepository{
		db: db,
	}
}

// Create inserts a new award
func (r *AwardRepository) Create(ctx context.Context, award *models.Award) error {
	query := `
		INSERT INTO awards (faculty_id, award_name, awarding_body, year_recorded)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		award.FacultyID,
		award.AwardName,
		award.AwardingBody,
		award.YearRecorded,
	).Scan(&award.ID)

	if err != nil {
		return fmt.Errorf("error creating award: %w", err)
	}

	return nil
}

// ListByFaculty retrieves all awards of a faculty, newest year first
func (r *AwardRepository) ListByFaculty(ctx context.Context, facultyID int64) ([]*models.Award, error) {
	query := `
		SELECT id, faculty_id, award_name, awarding_body, year_recorded
		FROM awards
		WHERE faculty_id = $1
		ORDER BY year_recorded DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query, facultyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	awards := make([]*models.Award, 0)
	for rows.Next() {
		var a models.Award
		if err := rows.Scan(&a.ID, &a.FacultyID, &a.AwardName, &a.AwardingBody, &a.YearRecorded); err != nil {
			return nil, err
		}
		awards = append(awards, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return awards, nil
}

// Update replaces an award owned by facultyID
func (r *AwardRepository) Update(ctx context.Context, award *models.Award, facultyID int64) error {
	if err := checkOwner(ctx, r.db, "awards", award.ID, facultyID); err != nil {
		return err
	}

	query := `
		UPDATE awards
		SET award_name = $1, awarding_body = $2, year_recorded = $3
		WHERE id = $4
	`

	_, err := r.db.Exec(ctx, query, award.AwardName, award.AwardingBody, award.YearRecorded, award.ID)
	if err != nil {
		return fmt.Errorf("error updating award: %w", err)
	}

	return nil
}

// Delete removes an award owned by facultyID
func (r *AwardRepository) Delete(ctx context.Context, id, facultyID int64) error {
	if err := checkOwner(ctx, r.db, "awards", id, facultyID); err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, `DELETE FROM awards WHERE id = $1`, id); err != nil {
		return fmt.Errorf("error deleting award: %w", err)
	}

	return nil
}

// CountByFaculty returns the number of awards owned by a faculty
func (r *AwardRepository) CountByFaculty(ctx context.Context, facultyID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM awards WHERE faculty_id = $1`, facultyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting awards: %w", err)
	}
	return count, nil
}

// RecentByFaculty returns the newest awards of a faculty, limited
func (r *AwardRepository) RecentByFaculty(ctx context.Context, facultyID int64, limit int) ([]*models.Award, error) {
	query := `
		SELECT id, faculty_id, award_name, awarding_body, year_recorded
		FROM awards
		WHERE faculty_id = $1
		ORDER BY year_recorded DESC, id DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, facultyID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	awards := make([]*models.Award, 0, limit)
	for rows.Next() {
		var a models.Award
		if err := rows.Scan(&a.ID, &a.FacultyID, &a.AwardName, &a.AwardingBody, &a.YearRecorded); err != nil {
			return nil, err
		}
		awards = append(awards, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return awards, nil
}
