package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campusdesk/facultyhub/internal/app/models"
	"github.com/campusdesk/facultyhub/internal/app/models/dto"
	"github.com/campusdesk/facultyhub/internal/app/repositories"
	"github.com/campusdesk/facultyhub/internal/pkg/apperrors"
	"github.com/campusdesk/facultyhub/internal/pkg/auth"
	"github.com/campusdesk/facultyhub/internal/pkg/validation"
)

// AuthService handles signup and login
type AuthService struct {
	facultyRepo    *repositories.FacultyRepository
	departmentRepo *repositories.DepartmentRepository
	jwtService     *auth.JWTService
	logger         zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	facultyRepo *repositories.FacultyRepository,
	departmentRepo *repositories.DepartmentRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		facultyRepo:    facultyRepo,
		departmentRepo: departmentRepo,
		jwtService:     jwtService,
		logger:         logger,
	}
}

// Signup registers a new faculty account. The department is resolved by name
// and created when missing. Faculty-role accounts start unapproved and cannot
// log in until an admin approves them; Admin accounts are approved
// immediately.
func (s *AuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.FacultyResponse, error) {
	if err := validation.ValidateEmail(req.Email); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	role := req.Role
	if role == "" {
		role = models.RoleFaculty
	}

	department, err := s.departmentRepo.GetOrCreateByName(ctx, req.Department)
	if err != nil {
		return nil, fmt.Errorf("error resolving department: %w", err)
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	faculty := &models.Faculty{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Password:     hashedPassword,
		Phone:        req.Phone,
		DateOfBirth:  req.DateOfBirth.TimePtr(),
		Designation:  req.Designation,
		Role:         role,
		IsApproved:   role == models.RoleAdmin,
		DepartmentID: department.ID,
	}

	if err := s.facultyRepo.Create(ctx, faculty); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, err
	}

	faculty.Department = department
	s.logger.Info().
		Int64("facultyId", faculty.ID).
		Str("role", string(role)).
		Msg("Faculty account registered")

	resp := dto.NewFacultyResponse(faculty)
	return &resp, nil
}

// Login verifies credentials and issues a JWT. Unknown email and wrong
// password collapse into the same invalid-credentials error so the response
// does not reveal which part failed.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	faculty, err := s.facultyRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrFacultyNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(faculty.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !faculty.IsApproved {
		return nil, apperrors.ErrAccountNotApproved
	}

	if faculty.Department == nil {
		department, err := s.departmentRepo.GetByID(ctx, faculty.DepartmentID)
		if err == nil {
			faculty.Department = department
		}
	}

	token, expiresIn, err := s.jwtService.GenerateToken(faculty)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	s.logger.Info().Int64("facultyId", faculty.ID).Msg("Faculty logged in")

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		Faculty: dto.NewFacultyResponse(faculty),
	}, nil
}
