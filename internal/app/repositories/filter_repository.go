package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PublicationExportRow is one flattened row of the export result set: a
// publication joined with its owning faculty and department.
type PublicationExportRow struct {
	FacultyName     string
	Department      string
	Title           string
	PublicationType string
	PublicationYear int
	Indexing        string
}

// FilterRepository resolves the flattened publication rows consumed by the
// export pipeline
type FilterRepository struct {
	db *pgxpool.Pool
}

// NewFilterRepository creates a new filter repository
func NewFilterRepository(db *pgxpool.Pool) *FilterRepository {
	return &FilterRepository{
		db: db,
	}
}

const exportRowSelect = `
	SELECT f.first_name || ' ' || f.last_name,
	       d.name,
	       p.title,
	       p.publication_type,
	       p.publication_year,
	       COALESCE(l.indexing, '')
	FROM publications p
	JOIN faculties f ON f.id = p.faculty_id
	JOIN departments d ON d.id = f.department_id
	LEFT JOIN faculty_publication_links l
	       ON l.publication_id = p.id AND l.faculty_id = f.id
`

// SearchByFacultyName returns export rows for faculties whose full name
// matches the given fragment, case-insensitively
func (r *FilterRepository) SearchByFacultyName(ctx context.Context, name string) ([]*PublicationExportRow, error) {
	query := exportRowSelect + `
	WHERE (f.first_name || ' ' || f.last_name) ILIKE '%' || $1 || '%'
	ORDER BY p.publication_year DESC, p.id DESC
	`

	return r.queryRows(ctx, query, name)
}

// FilterPublications returns export rows filtered by department name and/or
// publication type; empty filter values match everything
func (r *FilterRepository) FilterPublications(ctx context.Context, department, publicationType string) ([]*PublicationExportRow, error) {
	query := exportRowSelect + `
	WHERE ($1 = '' OR d.name = $1)
	  AND ($2 = '' OR p.publication_type = $2)
	ORDER BY p.publication_year DESC, p.id DESC
	`

	return r.queryRows(ctx, query, department, publicationType)
}

func (r *FilterRepository) queryRows(ctx context.Context, query string, args ...interface{}) ([]*PublicationExportRow, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying export rows: %w", err)
	}
	defer rows.Close()

	result := make([]*PublicationExportRow, 0)
	for rows.Next() {
		var row PublicationExportRow
		if err := rows.Scan(
			&row.FacultyName,
			&row.Department,
			&row.Title,
			&row.PublicationType,
			&row.PublicationYear,
			&row.Indexing,
		); err != nil {
			return nil, err
		}
		result = append(result, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
