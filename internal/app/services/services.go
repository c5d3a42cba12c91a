package services

import (
	"github.com/rs/zerolog"

	"github.com/campusdesk/facultyhub/internal/app/repositories"
	"github.com/campusdesk/facultyhub/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	AuthService      *AuthService
	AdminService     *AdminService
	FacultyService   *FacultyService
	DashboardService *DashboardService
	ExportService    *ExportService
}

// NewServices initializes all services over the shared repositories
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, logger zerolog.Logger) *Services {
	return &Services{
		AuthService:      NewAuthService(repos.FacultyRepository, repos.DepartmentRepository, jwtService, logger),
		AdminService:     NewAdminService(repos.FacultyRepository, logger),
		FacultyService:   NewFacultyService(repos.FacultyRepository, logger),
		DashboardService: NewDashboardService(repos, logger),
		ExportService:    NewExportService(repos.FilterRepository, logger),
	}
}
