package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusdesk/facultyhub/internal/pkg/apperrors"
)

// checkOwner verifies that the record identified by id in the given table is
// owned by facultyID. Every mutating repository operation on an owned entity
// goes through this check before touching the row.
func checkOwner(ctx context.Context, db *pgxpool.Pool, table string, id, facultyID int64) error {
	var owner int64
	query := fmt.Sprintf(`SELECT faculty_id FROM %s WHERE id = $1`, table)

	err := db.QueryRow(ctx, query, id).Scan(&owner)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrRecordNotFound
	}
	if err != nil {
		return fmt.Errorf("error checking record owner: %w", err)
	}

	if owner != facultyID {
		return apperrors.ErrNotRecordOwner
	}

	return nil
}
