package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campusdesk/facultyhub/internal/app/models/dto"
	"github.com/campusdesk/facultyhub/internal/app/repositories"
	"github.com/campusdesk/facultyhub/internal/pkg/apperrors"
)

// FacultyService handles directory reads and profile management
type FacultyService struct {
	facultyRepo *repositories.FacultyRepository
	logger      zerolog.Logger
}

// NewFacultyService creates a new FacultyService
func NewFacultyService(facultyRepo *repositories.FacultyRepository, logger zerolog.Logger) *FacultyService {
	return &FacultyService{
		facultyRepo: facultyRepo,
		logger:      logger,
	}
}

// GetFaculty returns the public directory view of a faculty account
func (s *FacultyService) GetFaculty(ctx context.Context, id int64) (*dto.FacultyResponse, error) {
	faculty, err := s.facultyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.NewFacultyResponse(faculty)
	return &resp, nil
}

// GetProfile returns a faculty profile for an authenticated caller
func (s *FacultyService) GetProfile(ctx context.Context, facultyID int64) (*dto.FacultyResponse, error) {
	return s.GetFaculty(ctx, facultyID)
}

// UpdateProfile updates the editable fields of the caller's own profile.
// Callers can only update themselves.
func (s *FacultyService) UpdateProfile(ctx context.Context, facultyID, callerID int64, req *dto.UpdateProfileRequest) (*dto.FacultyResponse, error) {
	if facultyID != callerID {
		return nil, apperrors.ErrPermissionDenied
	}

	faculty, err := s.facultyRepo.GetByID(ctx, facultyID)
	if err != nil {
		return nil, err
	}

	faculty.FirstName = req.FirstName
	faculty.LastName = req.LastName
	faculty.Phone = req.Phone
	faculty.DateOfBirth = req.DateOfBirth.TimePtr()
	faculty.Designation = req.Designation

	if err := s.facultyRepo.UpdateProfile(ctx, faculty); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("facultyId", facultyID).Msg("Faculty profile updated")

	resp := dto.NewFacultyResponse(faculty)
	return &resp, nil
}
