package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusdesk/facultyhub/internal/app/models"
)

// PublicationRepository handles database operations for publications, their
// type-specific detail sub-records and indexing links
type PublicationRepository struct {
	db *pgxpool.Pool
}

// NewPublicationRepository creates a new publication repository
func NewPublicationRepository(db *pgxpool.Pool) *PublicationRepository {
	return &PublicationRepository{
		db: db,
	}
}

// Create inserts a publication together with its matching detail sub-record
// and, when an indexing classification is given, a faculty-publication link.
// All inserts happen in one transaction.
func (r *PublicationRepository) Create(ctx context.Context, publication *models.Publication, indexing string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO publications (faculty_id, title, publication_type, publication_year)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, publication.FacultyID, publication.Title, publication.PublicationType, publication.PublicationYear).
		Scan(&publication.ID)
	if err != nil {
		return fmt.Errorf("error creating publication: %w", err)
	}

	if err := insertDetail(ctx, tx, publication); err != nil {
		return err
	}

	if indexing != "" {
		_, err = tx.Exec(ctx, `
			INSERT INTO faculty_publication_links (faculty_id, publication_id, indexing)
			VALUES ($1, $2, $3)
		`, publication.FacultyID, publication.ID, indexing)
		if err != nil {
			return fmt.Errorf("error creating publication link: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// insertDetail writes the detail sub-record matching the publication type
func insertDetail(ctx context.Context, tx pgx.Tx, publication *models.Publication) error {
	switch publication.PublicationType {
	case models.PublicationJournal:
		if publication.Journal == nil {
			return nil
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO journal_details (publication_id, journal_name, volume, issue, page_numbers)
			VALUES ($1, $2, $3, $4, $5)
		`, publication.ID, publication.Journal.JournalName, publication.Journal.Volume,
			publication.Journal.Issue, publication.Journal.PageNumbers)
		if err != nil {
			return fmt.Errorf("error creating journal detail: %w", err)
		}
	case models.PublicationConference:
		if publication.Conference == nil {
			return nil
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO conference_details (publication_id, conference_name, location)
			VALUES ($1, $2, $3)
		`, publication.ID, publication.Conference.ConferenceName, publication.Conference.Location)
		if err != nil {
			return fmt.Errorf("error creating conference detail: %w", err)
		}
	case models.PublicationBook:
		if publication.Book == nil {
			return nil
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO book_details (publication_id, publisher, isbn)
			VALUES ($1, $2, $3)
		`, publication.ID, publication.Book.Publisher, publication.Book.ISBN)
		if err != nil {
			return fmt.Errorf("error creating book detail: %w", err)
		}
	}
	return nil
}

// ListByFaculty retrieves all publications of a faculty, newest year first,
// with their detail sub-records joined in
func (r *PublicationRepository) ListByFaculty(ctx context.Context, facultyID int64) ([]*models.Publication, error) {
	query := `
		SELECT p.id, p.faculty_id, p.title, p.publication_type, p.publication_year,
		       j.journal_name, j.volume, j.issue, j.page_numbers,
		       c.conference_name, c.location,
		       b.publisher, b.isbn
		FROM publications p
		LEFT JOIN journal_details j ON j.publication_id = p.id
		LEFT JOIN conference_details c ON c.publication_id = p.id
		LEFT JOIN book_details b ON b.publication_id = p.id
		WHERE p.faculty_id = $1
		ORDER BY p.publication_year DESC, p.id DESC
	`

	rows, err := r.db.Query(ctx, query, facultyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	publications := make([]*models.Publication, 0)
	for rows.Next() {
		var p models.Publication
		var journalName, volume, issue, pageNumbers *string
		var conferenceName, location *string
		var publisher, isbn *string

		if err := rows.Scan(
			&p.ID, &p.FacultyID, &p.Title, &p.PublicationType, &p.PublicationYear,
			&journalName, &volume, &issue, &pageNumbers,
			&conferenceName, &location,
			&publisher, &isbn,
		); err != nil {
			return nil, err
		}

		if journalName != nil {
			p.Journal = &models.JournalDetail{
				PublicationID: p.ID,
				JournalName:   *journalName,
				Volume:        deref(volume),
				Issue:         deref(issue),
				PageNumbers:   deref(pageNumbers),
			}
		}
		if conferenceName != nil {
			p.Conference = &models.ConferenceDetail{
				PublicationID:  p.ID,
				ConferenceName: *conferenceName,
				Location:       deref(location),
			}
		}
		if publisher != nil {
			p.Book = &models.BookDetail{
				PublicationID: p.ID,
				Publisher:     *publisher,
				ISBN:          deref(isbn),
			}
		}

		publications = append(publications, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return publications, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Update replaces a publication and its detail sub-record. The stored owner
// must match facultyID.
func (r *PublicationRepository) Update(ctx context.Context, publication *models.Publication, facultyID int64) error {
	if err := checkOwner(ctx, r.db, "publications", publication.ID, facultyID); err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		UPDATE publications
		SET title = $1, publication_type = $2, publication_year = $3
		WHERE id = $4
	`, publication.Title, publication.PublicationType, publication.PublicationYear, publication.ID)
	if err != nil {
		return fmt.Errorf("error updating publication: %w", err)
	}

	// Replace the detail sub-record; the type may have changed
	for _, table := range []string{"journal_details", "conference_details", "book_details"} {
		if _, err := tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE publication_id = $1`, table), publication.ID); err != nil {
			return fmt.Errorf("error clearing publication details: %w", err)
		}
	}
	if err := insertDetail(ctx, tx, publication); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Delete removes a publication, its details and links. The stored owner must
// match facultyID.
func (r *PublicationRepository) Delete(ctx context.Context, id, facultyID int64) error {
	if err := checkOwner(ctx, r.db, "publications", id, facultyID); err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, table := range []string{"faculty_publication_links", "journal_details", "conference_details", "book_details"} {
		if _, err := tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE publication_id = $1`, table), id); err != nil {
			return fmt.Errorf("error deleting publication relations: %w", err)
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM publications WHERE id = $1`, id); err != nil {
		return fmt.Errorf("error deleting publication: %w", err)
	}

	return tx.Commit(ctx)
}

// AddLink attaches an indexing classification link to a publication owned by
// facultyID
func (r *PublicationRepository) AddLink(ctx context.Context, publicationID, facultyID int64, indexing string) (*models.FacultyPublicationLink, error) {
	if err := checkOwner(ctx, r.db, "publications", publicationID, facultyID); err != nil {
		return nil, err
	}

	link := &models.FacultyPublicationLink{
		FacultyID:     facultyID,
		PublicationID: publicationID,
		Indexing:      indexing,
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO faculty_publication_links (faculty_id, publication_id, indexing)
		VALUES ($1, $2, $3)
		RETURNING id
	`, facultyID, publicationID, indexing).Scan(&link.ID)
	if err != nil {
		return nil, fmt.Errorf("error creating publication link: %w", err)
	}

	return link, nil
}

// CountByFaculty returns the number of publications owned by a faculty
func (r *PublicationRepository) CountByFaculty(ctx context.Context, facultyID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM publications WHERE faculty_id = $1`, facultyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting publications: %w", err)
	}
	return count, nil
}

// RecentByFaculty returns the newest publications of a faculty, limited
func (r *PublicationRepository) RecentByFaculty(ctx context.Context, facultyID int64, limit int) ([]*models.Publication, error) {
	query := `
		SELECT id, faculty_id, title, publication_type, publication_year
		FROM publications
		WHERE faculty_id = $1
		ORDER BY publication_year DESC, id DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, facultyID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	publications := make([]*models.Publication, 0, limit)
	for rows.Next() {
		var p models.Publication
		if err := rows.Scan(&p.ID, &p.FacultyID, &p.Title, &p.PublicationType, &p.PublicationYear); err != nil {
			return nil, err
		}
		publications = append(publications, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return publications, nil
}
