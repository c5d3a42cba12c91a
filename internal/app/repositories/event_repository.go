package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusdesk/facultyhub/internal/app/models"
)

// EventRepository handles database operations for organised events and event
// types
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
	}
}

// Create inserts a new organised event
func (r *EventRepository) Create(ctx context.Context, event *models.EventOrganised) error {
	query := `
		INSERT INTO events_organised (faculty_id, event_name, event_type_id, role, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		event.FacultyID,
		event.EventName,
		event.EventTypeID,
		event.Role,
		event.StartDate,
		event.EndDate,
	).Scan(&event.ID)

	if err != nil {
		return fmt.Errorf("error creating event: %w", err)
	}

	return nil
}

// ListByFaculty retrieves all organised events of a faculty with their event
// type joined in, newest first
func (r *EventRepository) ListByFaculty(ctx context.Context, facultyID int64) ([]*models.EventOrganised, error) {
	query := `
		SELECT e.id, e.faculty_id, e.event_name, e.event_type_id, e.role, e.start_date, e.end_date, t.name
		FROM events_organised e
		JOIN event_types t ON t.id = e.event_type_id
		WHERE e.faculty_id = $1
		ORDER BY e.start_date DESC, e.id DESC
	`

	rows, err := r.db.Query(ctx, query, facultyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*models.EventOrganised, 0)
	for rows.Next() {
		var e models.EventOrganised
		var eventType models.EventType
		if err := rows.Scan(
			&e.ID, &e.FacultyID, &e.EventName, &e.EventTypeID,
			&e.Role, &e.StartDate, &e.EndDate, &eventType.Name,
		); err != nil {
			return nil, err
		}
		eventType.ID = e.EventTypeID
		e.EventType = &eventType
		events = append(events, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// Update replaces an organised event owned by facultyID
func (r *EventRepository) Update(ctx context.Context, event *models.EventOrganised, facultyID int64) error {
	if err := checkOwner(ctx, r.db, "events_organised", event.ID, facultyID); err != nil {
		return err
	}

	query := `
		UPDATE events_organised
		SET event_name = $1, event_type_id = $2, role = $3, start_date = $4, end_date = $5
		WHERE id = $6
	`

	_, err := r.db.Exec(ctx, query,
		event.EventName,
		event.EventTypeID,
		event.Role,
		event.StartDate,
		event.EndDate,
		event.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating event: %w", err)
	}

	return nil
}

// Delete removes an organised event owned by facultyID
func (r *EventRepository) Delete(ctx context.Context, id, facultyID int64) error {
	if err := checkOwner(ctx, r.db, "events_organised", id, facultyID); err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, `DELETE FROM events_organised WHERE id = $1`, id); err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}

	return nil
}

// CountByFaculty returns the number of organised events owned by a faculty
func (r *EventRepository) CountByFaculty(ctx context.Context, facultyID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM events_organised WHERE faculty_id = $1`, facultyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting events: %w", err)
	}
	return count, nil
}

// RecentByFaculty returns the newest organised events of a faculty, limited
func (r *EventRepository) RecentByFaculty(ctx context.Context, facultyID int64, limit int) ([]*models.EventOrganised, error) {
	query := `
		SELECT id, faculty_id, event_name, event_type_id, role, start_date, end_date
		FROM events_organised
		WHERE faculty_id = $1
		ORDER BY start_date DESC, id DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, facultyID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*models.EventOrganised, 0, limit)
	for rows.Next() {
		var e models.EventOrganised
		if err := rows.Scan(&e.ID, &e.FacultyID, &e.EventName, &e.EventTypeID, &e.Role, &e.StartDate, &e.EndDate); err != nil {
			return nil, err
		}
		events = append(events, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// ListTypes retrieves all event types ordered by name
func (r *EventRepository) ListTypes(ctx context.Context) ([]*models.EventType, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM event_types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := make([]*models.EventType, 0)
	for rows.Next() {
		var t models.EventType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		types = append(types, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return types, nil
}

// CreateType inserts an event type, reusing an existing one with the same name
func (r *EventRepository) CreateType(ctx context.Context, eventType *models.EventType) error {
	query := `
		INSERT INTO event_types (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`

	if err := r.db.QueryRow(ctx, query, eventType.Name).Scan(&eventType.ID); err != nil {
		return fmt.Errorf("error creating event type: %w", err)
	}

	return nil
}
