package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campusdesk/facultyhub/internal/app/models"
	"github.com/campusdesk/facultyhub/internal/app/models/dto"
	"github.com/campusdesk/facultyhub/internal/app/repositories"
	"github.com/campusdesk/facultyhub/internal/pkg/apperrors"
)

// AdminService handles the account approval workflow
type AdminService struct {
	facultyRepo *repositories.FacultyRepository
	logger      zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(facultyRepo *repositories.FacultyRepository, logger zerolog.Logger) *AdminService {
	return &AdminService{
		facultyRepo: facultyRepo,
		logger:      logger,
	}
}

// ListPending returns all Faculty-role accounts awaiting approval. The result
// is never nil so an empty list serializes as [].
func (s *AdminService) ListPending(ctx context.Context) ([]dto.FacultyResponse, error) {
	pending, err := s.facultyRepo.ListPending(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.FacultyResponse, 0, len(pending))
	for _, faculty := range pending {
		responses = append(responses, dto.NewFacultyResponse(faculty))
	}
	return responses, nil
}

// Approve marks a pending account as approved
func (s *AdminService) Approve(ctx context.Context, facultyID int64) error {
	if err := s.facultyRepo.Approve(ctx, facultyID); err != nil {
		return err
	}

	s.logger.Info().Int64("facultyId", facultyID).Msg("Faculty account approved")
	return nil
}

// Reject deletes a pending account. Admin accounts cannot be rejected.
func (s *AdminService) Reject(ctx context.Context, facultyID int64) error {
	faculty, err := s.facultyRepo.GetByID(ctx, facultyID)
	if err != nil {
		return err
	}

	if faculty.Role == models.RoleAdmin {
		return apperrors.NewForbiddenError("Admin accounts cannot be rejected")
	}

	if err := s.facultyRepo.Delete(ctx, facultyID); err != nil {
		return err
	}

	s.logger.Info().Int64("facultyId", facultyID).Msg("Faculty account rejected")
	return nil
}
