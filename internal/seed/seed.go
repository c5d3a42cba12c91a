package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/campusdesk/facultyhub/internal/app/models"
	"github.com/campusdesk/facultyhub/internal/app/repositories"
	"github.com/campusdesk/facultyhub/internal/pkg/apperrors"
	"github.com/campusdesk/facultyhub/internal/pkg/auth"
)

// defaultEventTypes is the catalog available before anyone adds their own
var defaultEventTypes = []string{
	"Workshop",
	"Conference",
	"Seminar",
	"FDP",
	"Webinar",
}

// CreateDefaultData seeds the event type catalog and a bootstrap admin
// account. Everything here is idempotent; reruns are no-ops.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, adminEmail, adminPassword string, lgr zerolog.Logger) error {
	eventRepo := repositories.NewEventRepository(dbPool)
	facultyRepo := repositories.NewFacultyRepository(dbPool)
	departmentRepo := repositories.NewDepartmentRepository(dbPool)

	var finalErr error
	for _, name := range defaultEventTypes {
		if err := eventRepo.CreateType(ctx, &models.EventType{Name: name}); err != nil {
			lgr.Error().Err(err).Str("eventType", name).Msg("Error seeding event type")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if adminEmail == "" || adminPassword == "" {
		lgr.Debug().Msg("No bootstrap admin configured, skipping admin seed")
		return finalErr
	}

	if _, err := facultyRepo.GetByEmail(ctx, adminEmail); err == nil {
		return finalErr
	} else if !errors.Is(err, apperrors.ErrFacultyNotFound) {
		return errors.Join(finalErr, err)
	}

	department, err := departmentRepo.GetOrCreateByName(ctx, "Administration")
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating admin department")
		return errors.Join(finalErr, err)
	}

	hashed, err := auth.HashPassword(adminPassword)
	if err != nil {
		return errors.Join(finalErr, err)
	}

	admin := &models.Faculty{
		FirstName:    "System",
		LastName:     "Admin",
		Email:        adminEmail,
		Password:     hashed,
		Role:         models.RoleAdmin,
		IsApproved:   true,
		DepartmentID: department.ID,
	}
	if err := facultyRepo.Create(ctx, admin); err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		lgr.Error().Err(err).Msg("Error seeding admin account")
		return errors.Join(finalErr, err)
	}

	lgr.Info().Str("email", adminEmail).Msg("Bootstrap admin account ready")
	return finalErr
}
