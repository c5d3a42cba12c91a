package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusdesk/facultyhub/internal/app/models"
)

// OutreachRepository handles database operations for outreach activities
type OutreachRepository struct {
	db *pgxpool.Pool
}

// NewOutreachRepository creates a new outreach repository
func NewOutreachRepository(db *pgxpool.Pool) *OutreachRepository {
	return &OutreachRepository{
		db: db,
	}
}

// Create inserts a new outreach activity
func (r *OutreachRepository) Create(ctx context.Context, activity *models.OutreachActivity) error {
	query := `
		INSERT INTO outreach_activities (faculty_id, activity_name, role, event_date, venue)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		activity.FacultyID,
		activity.ActivityName,
		activity.Role,
		activity.EventDate,
		activity.Venue,
	).Scan(&activity.ID)

	if err != nil {
		return fmt.Errorf("error creating outreach activity: %w", err)
	}

	return nil
}

// ListByFaculty retrieves all outreach activities of a faculty, newest first
func (r *OutreachRepository) ListByFaculty(ctx context.Context, facultyID int64) ([]*models.OutreachActivity, error) {
	query := `
		SELECT id, faculty_id, activity_name, role, event_date, venue
		FROM outreach_activities
		WHERE faculty_id = $1
		ORDER BY event_date DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query, facultyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := make([]*models.OutreachActivity, 0)
	for rows.Next() {
		var a models.OutreachActivity
		if err := rows.Scan(&a.ID, &a.FacultyID, &a.ActivityName, &a.Role, &a.EventDate, &a.Venue); err != nil {
			return nil, err
		}
		activities = append(activities, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return activities, nil
}

// Update replaces an outreach activity owned by facultyID
func (r *OutreachRepository) Update(ctx context.Context, activity *models.OutreachActivity, facultyID int64) error {
	if err := checkOwner(ctx, r.db, "outreach_activities", activity.ID, facultyID); err != nil {
		return err
	}

	query := `
		UPDATE outreach_activities
		SET activity_name = $1, role = $2, event_date = $3, venue = $4
		WHERE id = $5
	`

	_, err := r.db.Exec(ctx, query, activity.ActivityName, activity.Role, activity.EventDate, activity.Venue, activity.ID)
	if err != nil {
		return fmt.Errorf("error updating outreach activity: %w", err)
	}

	return nil
}

// Delete removes an outreach activity owned by facultyID
func (r *OutreachRepository) Delete(ctx context.Context, id, facultyID int64) error {
	if err := checkOwner(ctx, r.db, "outreach_activities", id, facultyID); err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, `DELETE FROM outreach_activities WHERE id = $1`, id); err != nil {
		return fmt.Errorf("error deleting outreach activity: %w", err)
	}

	return nil
}

// CountByFaculty returns the number of outreach activities owned by a faculty
func (r *OutreachRepository) CountByFaculty(ctx context.Context, facultyID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM outreach_activities WHERE faculty_id = $1`, facultyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting outreach activities: %w", err)
	}
	return count, nil
}
